// file: internals/features/scholarship/documents/controller/document_user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	appModel "iskolar_backend/internals/features/scholarship/applications/model"
	dto "iskolar_backend/internals/features/scholarship/documents/dto"
	model "iskolar_backend/internals/features/scholarship/documents/model"
	helper "iskolar_backend/internals/helpers"
)

type DocumentUserController struct {
	DB *gorm.DB
}

func NewDocumentUserController(db *gorm.DB) *DocumentUserController {
	return &DocumentUserController{DB: db}
}

// loadOwnedApplication loads the application and checks the caller owns it.
func (ctl *DocumentUserController) loadOwnedApplication(c *fiber.Ctx, appID uuid.UUID) (*appModel.ApplicationModel, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}

	var app appModel.ApplicationModel
	if err := ctl.DB.First(&app, "application_id = ?", appID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Application not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load application")
	}
	if app.ApplicationUserID != userID {
		return nil, fiber.NewError(fiber.StatusForbidden, "This application does not belong to you")
	}
	return &app, nil
}

/* ============================================
   UPLOAD
   POST /api/u/applications/:id/documents  (multipart)
============================================ */

func (ctl *DocumentUserController) Upload(c *fiber.Ctx) error {
	appID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid application id")
	}

	app, err := ctl.loadOwnedApplication(c, appID)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	docType := strings.TrimSpace(c.FormValue("document_type"))
	if !model.IsValidDocumentType(docType) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid document type")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing file upload")
	}

	publicURL, storedSize, err := helper.UploadDocumentFile("applications/"+appID.String(), fileHeader)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadGateway, err.Error())
	}

	doc := model.DocumentModel{
		DocumentApplicationID:      app.ApplicationID,
		DocumentType:               docType,
		DocumentFileURL:            publicURL,
		DocumentFileSize:           storedSize,
		DocumentVerificationStatus: model.VerificationStatusUnverified,
	}
	if err := ctl.DB.Create(&doc).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save document record")
	}

	return helper.JsonCreated(c, "Document uploaded", dto.FromDocumentModel(doc))
}

/* ============================================
   LIST own documents
   GET /api/u/applications/:id/documents
============================================ */

func (ctl *DocumentUserController) ListByApplication(c *fiber.Ctx) error {
	appID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid application id")
	}

	app, err := ctl.loadOwnedApplication(c, appID)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	var docs []model.DocumentModel
	if err := ctl.DB.
		Where("document_application_id = ?", app.ApplicationID).
		Order("document_uploaded_at ASC").
		Find(&docs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load documents")
	}

	return helper.JsonOK(c, "Documents", dto.FromDocumentModels(docs))
}
