// file: internals/features/scholarship/applications/controller/application_user_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "iskolar_backend/internals/features/scholarship/applications/dto"
	model "iskolar_backend/internals/features/scholarship/applications/model"
	service "iskolar_backend/internals/features/scholarship/applications/service"
	semModel "iskolar_backend/internals/features/scholarship/semesters/model"
	semService "iskolar_backend/internals/features/scholarship/semesters/service"
	helper "iskolar_backend/internals/helpers"
)

/* ============================================
   Controller
============================================ */

type ApplicationUserController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewApplicationUserController(db *gorm.DB, v *validator.Validate) *ApplicationUserController {
	if v == nil {
		v = validator.New()
	}
	return &ApplicationUserController{DB: db, Validator: v}
}

func bindAndValidate[T any](c *fiber.Ctx, v *validator.Validate, dst *T) error {
	if err := c.BodyParser(dst); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid payload")
	}
	if v != nil {
		if err := v.Struct(dst); err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
	}
	return nil
}

func admissionErrStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, service.ErrWindowEnded),
		errors.Is(err, service.ErrWindowClosed),
		errors.Is(err, service.ErrDuplicateApplication),
		errors.Is(err, service.ErrInvalidTransition):
		return fiber.StatusConflict, true
	}
	return 0, false
}

/* ============================================
   SUBMIT
   POST /api/u/applications
============================================ */

func (ctl *ApplicationUserController) Submit(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	var p dto.ApplicationSubmitDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	p.Normalize()

	var sem semModel.SemesterModel
	if err := ctl.DB.First(&sem, "semester_id = ?", p.ApplicationSemesterID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Semester not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load semester")
	}

	now := time.Now()
	semService.ExpireIfNeeded(ctl.DB, &sem, now)

	app := p.ToModel(userID)
	if err := service.Submit(ctl.DB, &app, &sem, now); err != nil {
		if code, ok := admissionErrStatus(err); ok {
			return helper.JsonError(c, code, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit application")
	}

	return helper.JsonCreated(c, "Application submitted", dto.FromApplicationModel(app))
}

/* ============================================
   CAN-SUBMIT probe
   GET /api/u/semesters/:id/can-submit
============================================ */

// CanSubmit lets the portal decide whether to show the form before the
// applicant fills anything in.
func (ctl *ApplicationUserController) CanSubmit(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	semID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid semester id")
	}

	var sem semModel.SemesterModel
	if err := ctl.DB.First(&sem, "semester_id = ?", semID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Semester not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load semester")
	}

	now := time.Now()
	semService.ExpireIfNeeded(ctl.DB, &sem, now)

	if err := service.CanSubmit(ctl.DB, userID, &sem, now); err != nil {
		if _, ok := admissionErrStatus(err); ok {
			return helper.JsonOK(c, "Submission check", fiber.Map{
				"can_submit": false,
				"reason":     err.Error(),
			})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check submission eligibility")
	}

	return helper.JsonOK(c, "Submission check", fiber.Map{"can_submit": true})
}

/* ============================================
   MY APPLICATIONS
   GET /api/u/applications
============================================ */

func (ctl *ApplicationUserController) ListMine(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	var apps []model.ApplicationModel
	if err := ctl.DB.
		Where("application_user_id = ?", userID).
		Order("application_created_at DESC").
		Find(&apps).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load applications")
	}

	return helper.JsonOK(c, "My applications", dto.FromApplicationModels(apps))
}
