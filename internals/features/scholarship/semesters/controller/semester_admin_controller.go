// file: internals/features/scholarship/semesters/controller/semester_admin_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	appModel "iskolar_backend/internals/features/scholarship/applications/model"
	docModel "iskolar_backend/internals/features/scholarship/documents/model"
	dto "iskolar_backend/internals/features/scholarship/semesters/dto"
	model "iskolar_backend/internals/features/scholarship/semesters/model"
	service "iskolar_backend/internals/features/scholarship/semesters/service"
	helper "iskolar_backend/internals/helpers"
)

/* ============================================
   Controller
============================================ */

type SemesterAdminController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSemesterAdminController(db *gorm.DB, v *validator.Validate) *SemesterAdminController {
	if v == nil {
		v = validator.New()
	}
	return &SemesterAdminController{DB: db, Validator: v}
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

/* ============================================
   CREATE academic year
   POST /api/a/academic-years
============================================ */

func (ctl *SemesterAdminController) CreateAcademicYear(c *fiber.Ctx) error {
	var p dto.AcademicYearCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	p.Normalize()

	ent := p.ToModel()
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create academic year")
	}
	return helper.JsonCreated(c, "Academic year created", dto.FromAcademicYearModel(ent))
}

/* ============================================
   CREATE semester
   POST /api/a/semesters
============================================ */

func (ctl *SemesterAdminController) CreateSemester(c *fiber.Ctx) error {
	var p dto.SemesterCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	p.Normalize()

	if p.SemesterEndDate.Before(p.SemesterStartDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "End date must be >= start date")
	}

	// parent must exist
	var year model.AcademicYearModel
	if err := ctl.DB.First(&year, "academic_year_id = ?", p.SemesterAcademicYearID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Academic year not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check academic year")
	}

	// one first + one second per year
	var cnt int64
	if err := ctl.DB.Model(&model.SemesterModel{}).
		Where("semester_academic_year_id = ? AND semester_name = ?", p.SemesterAcademicYearID, p.SemesterName).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check existing semesters")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "This academic year already has that semester")
	}

	ent := p.ToModel()
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create semester")
	}
	return helper.JsonCreated(c, "Semester created", dto.FromSemesterModel(ent, time.Now()))
}

/* ============================================
   TOGGLE window
   PATCH /api/a/semesters/:id/toggle
============================================ */

func (ctl *SemesterAdminController) Toggle(c *fiber.Ctx) error {
	semID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid semester id")
	}

	var p dto.SemesterToggleDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	var sem model.SemesterModel
	if err := ctl.DB.First(&sem, "semester_id = ?", semID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Semester not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load semester")
	}

	now := time.Now()
	if err := service.Toggle(ctl.DB, &sem, *p.SemesterApplicationsOpen, now); err != nil {
		if errors.Is(err, service.ErrWindowEnded) {
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to toggle application window")
	}
	return helper.JsonUpdated(c, "Application window updated", dto.FromSemesterModel(sem, now))
}

/* ============================================
   DELETE semester (cascading)
   DELETE /api/a/semesters/:id
============================================ */

// Delete removes the semester together with its applications and their
// documents, in one transaction. This is the only path that destroys
// application records.
func (ctl *SemesterAdminController) Delete(c *fiber.Ctx) error {
	semID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid semester id")
	}

	var sem model.SemesterModel
	if err := ctl.DB.First(&sem, "semester_id = ?", semID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Semester not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load semester")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("document_application_id IN (?)",
				tx.Model(&appModel.ApplicationModel{}).
					Select("application_id").
					Where("application_semester_id = ?", semID),
			).
			Delete(&docModel.DocumentModel{}).Error; err != nil {
			return err
		}
		if err := tx.
			Where("application_semester_id = ?", semID).
			Delete(&appModel.ApplicationModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&sem).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete semester")
	}
	return helper.JsonDeleted(c, "Semester and its applications deleted", fiber.Map{"semester_id": semID})
}
