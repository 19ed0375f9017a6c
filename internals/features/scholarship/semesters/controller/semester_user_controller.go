// file: internals/features/scholarship/semesters/controller/semester_user_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "iskolar_backend/internals/features/scholarship/semesters/dto"
	model "iskolar_backend/internals/features/scholarship/semesters/model"
	service "iskolar_backend/internals/features/scholarship/semesters/service"
	helper "iskolar_backend/internals/helpers"
)

type SemesterUserController struct {
	DB *gorm.DB
}

func NewSemesterUserController(db *gorm.DB) *SemesterUserController {
	return &SemesterUserController{DB: db}
}

/* ============================================
   LIST semesters (public)
   GET /api/public/semesters
============================================ */

func (ctl *SemesterUserController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctl.DB.Model(&model.SemesterModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count semesters")
	}

	var sems []model.SemesterModel
	if err := ctl.DB.
		Order("semester_start_date DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&sems).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load semesters")
	}

	// Lazy expiry on every read path: stored flags self-correct here.
	now := time.Now()
	for i := range sems {
		service.ExpireIfNeeded(ctl.DB, &sems[i], now)
	}

	return helper.JsonList(c, "Semesters",
		dto.FromSemesterModels(sems, now),
		helper.BuildPagination(total, paging.Page, paging.PerPage, len(sems)))
}

/* ============================================
   GET one semester (public)
   GET /api/public/semesters/:id
============================================ */

func (ctl *SemesterUserController) GetByID(c *fiber.Ctx) error {
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

	now := time.Now()
	service.ExpireIfNeeded(ctl.DB, &sem, now)

	return helper.JsonOK(c, "Semester", dto.FromSemesterModel(sem, now))
}
