// file: internals/features/notices/controller/notice_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "iskolar_backend/internals/features/notices/dto"
	model "iskolar_backend/internals/features/notices/model"
	helper "iskolar_backend/internals/helpers"
)

type NoticeController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewNoticeController(db *gorm.DB, v *validator.Validate) *NoticeController {
	if v == nil {
		v = validator.New()
	}
	return &NoticeController{DB: db, Validator: v}
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
   LIST published (public)
   GET /api/public/notices
============================================ */

func (ctl *NoticeController) ListPublished(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.NoticeModel{}).Where("notice_is_published = TRUE")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count notices")
	}

	var notices []model.NoticeModel
	if err := q.
		Order("notice_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&notices).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load notices")
	}

	return helper.JsonList(c, "Notices",
		dto.FromNoticeModels(notices),
		helper.BuildPagination(total, paging.Page, paging.PerPage, len(notices)))
}

/* ============================================
   CREATE (admin)
   POST /api/a/notices
============================================ */

func (ctl *NoticeController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	var p dto.NoticeCreateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}
	p.Normalize()

	ent := p.ToModel(userID)
	if err := ctl.DB.Create(&ent).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create notice")
	}
	return helper.JsonCreated(c, "Notice posted", dto.FromNoticeModel(ent))
}

/* ============================================
   UPDATE (admin)
   PATCH /api/a/notices/:id
============================================ */

func (ctl *NoticeController) Update(c *fiber.Ctx) error {
	noticeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notice id")
	}

	var p dto.NoticeUpdateDTO
	if err := bindAndValidate(c, ctl.Validator, &p); err != nil {
		return helper.JsonError(c, err.(*fiber.Error).Code, err.Error())
	}

	var ent model.NoticeModel
	if err := ctl.DB.First(&ent, "notice_id = ?", noticeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Notice not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load notice")
	}

	updates := map[string]any{}
	if p.NoticeTitle != nil {
		updates["notice_title"] = *p.NoticeTitle
	}
	if p.NoticeBody != nil {
		updates["notice_body"] = *p.NoticeBody
	}
	if p.NoticeIsPublished != nil {
		updates["notice_is_published"] = *p.NoticeIsPublished
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Nothing to update", dto.FromNoticeModel(ent))
	}

	if err := ctl.DB.Model(&ent).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update notice")
	}
	return helper.JsonUpdated(c, "Notice updated", dto.FromNoticeModel(ent))
}

/* ============================================
   DELETE (admin)
   DELETE /api/a/notices/:id
============================================ */

func (ctl *NoticeController) Delete(c *fiber.Ctx) error {
	noticeID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notice id")
	}

	res := ctl.DB.Where("notice_id = ?", noticeID).Delete(&model.NoticeModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete notice")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Notice not found")
	}
	return helper.JsonDeleted(c, "Notice deleted", fiber.Map{"notice_id": noticeID})
}
