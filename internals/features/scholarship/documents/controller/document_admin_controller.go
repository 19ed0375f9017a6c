// file: internals/features/scholarship/documents/controller/document_admin_controller.go
package controller

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "iskolar_backend/internals/features/scholarship/documents/dto"
	model "iskolar_backend/internals/features/scholarship/documents/model"
	service "iskolar_backend/internals/features/scholarship/documents/service"
	helper "iskolar_backend/internals/helpers"
)

type DocumentAdminController struct {
	DB       *gorm.DB
	Verifier *service.VerificationService
}

func NewDocumentAdminController(db *gorm.DB, verifier *service.VerificationService) *DocumentAdminController {
	return &DocumentAdminController{DB: db, Verifier: verifier}
}

/* ============================================
   LIST documents of an application
   GET /api/a/applications/:id/documents
============================================ */

func (ctl *DocumentAdminController) ListByApplication(c *fiber.Ctx) error {
	appID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid application id")
	}

	var docs []model.DocumentModel
	if err := ctl.DB.
		Where("document_application_id = ?", appID).
		Order("document_uploaded_at ASC").
		Find(&docs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load documents")
	}

	return helper.JsonOK(c, "Documents", dto.FromDocumentModels(docs))
}

/* ============================================
   RUN verification queue
   POST /api/a/applications/:id/verify
============================================ */

// RunVerification discovers the application's unverified documents and
// drives them through the queue, one at a time. The run uses a background
// context: the pacing between AI calls must not be cut short by the
// request-level timeout. Per-document failures come back in the report;
// the endpoint itself only fails when discovery does.
func (ctl *DocumentAdminController) RunVerification(c *fiber.Ctx) error {
	appID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid application id")
	}

	ids, err := ctl.Verifier.DiscoverUnverified(appID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to discover unverified documents")
	}

	failures := ctl.Verifier.RunQueue(context.Background(), ids)

	return helper.JsonOK(c, "Verification run finished", fiber.Map{
		"application_id": appID,
		"processed":      len(ids),
		"failed":         len(failures),
		"failures":       failures,
	})
}

/* ============================================
   RE-VERIFY one document
   POST /api/a/documents/:id/verify
============================================ */

// ReverifyOne re-enters verification for a single document, overwriting the
// previous outcome. Allowed at any time, also for already-verified documents.
func (ctl *DocumentAdminController) ReverifyOne(c *fiber.Ctx) error {
	docID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid document id")
	}

	if err := ctl.Verifier.VerifyOne(context.Background(), docID); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Document not found")
		case errors.Is(err, service.ErrVerificationInProgress):
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		case errors.Is(err, service.ErrExtractionFailed):
			return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to verify document")
	}

	var doc model.DocumentModel
	if err := ctl.DB.First(&doc, "document_id = ?", docID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload document")
	}
	return helper.JsonOK(c, "Document verified", dto.FromDocumentModel(doc))
}

/* ============================================
   AGGREGATE
   GET /api/a/applications/:id/verification-summary
============================================ */

func (ctl *DocumentAdminController) Aggregate(c *fiber.Ctx) error {
	appID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid application id")
	}

	summary, err := ctl.Verifier.Aggregate(appID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build verification summary")
	}
	return helper.JsonOK(c, "Verification summary", summary)
}
