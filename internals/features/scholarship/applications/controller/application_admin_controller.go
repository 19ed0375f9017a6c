// file: internals/features/scholarship/applications/controller/application_admin_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "iskolar_backend/internals/features/scholarship/applications/dto"
	model "iskolar_backend/internals/features/scholarship/applications/model"
	service "iskolar_backend/internals/features/scholarship/applications/service"
	helper "iskolar_backend/internals/helpers"
)

type ApplicationAdminController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewApplicationAdminController(db *gorm.DB, v *validator.Validate) *ApplicationAdminController {
	if v == nil {
		v = validator.New()
	}
	return &ApplicationAdminController{DB: db, Validator: v}
}

/* ============================================
   LIST per semester
   GET /api/a/semesters/:id/applications?status=
============================================ */

func (ctl *ApplicationAdminController) ListBySemester(c *fiber.Ctx) error {
	semID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid semester id")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.ApplicationModel{}).
		Where("application_semester_id = ?", semID)
	if status := c.Query("status"); status != "" {
		if !model.IsValidApplicationStatus(status) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid status filter")
		}
		q = q.Where("application_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count applications")
	}

	var apps []model.ApplicationModel
	if err := q.
		Order("application_created_at ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&apps).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load applications")
	}

	return helper.JsonList(c, "Applications",
		dto.FromApplicationModels(apps),
		helper.BuildPagination(total, paging.Page, paging.PerPage, len(apps)))
}

/* ============================================
   DETAIL
   GET /api/a/applications/:id
============================================ */

func (ctl *ApplicationAdminController) GetByID(c *fiber.Ctx) error {
	appID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid application id")
	}

	var app model.ApplicationModel
	if err := ctl.DB.First(&app, "application_id = ?", appID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Application not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load application")
	}

	return helper.JsonOK(c, "Application", dto.FromApplicationModel(app))
}

/* ============================================
   DECIDE (approve / reject)
   PATCH /api/a/applications/:id/status
============================================ */

func (ctl *ApplicationAdminController) UpdateStatus(c *fiber.Ctx) error {
	appID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid application id")
	}

	var p dto.ApplicationDecisionDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	var app model.ApplicationModel
	if err := ctl.DB.First(&app, "application_id = ?", appID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Application not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load application")
	}

	if err := service.UpdateStatus(ctl.DB, &app, p.ApplicationStatus); err != nil {
		if errors.Is(err, service.ErrInvalidTransition) {
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update application status")
	}

	return helper.JsonUpdated(c, "Application "+p.ApplicationStatus, dto.FromApplicationModel(app))
}
