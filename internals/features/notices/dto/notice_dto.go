// file: internals/features/notices/dto/notice_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "iskolar_backend/internals/features/notices/model"
)

type NoticeCreateDTO struct {
	NoticeTitle       string `json:"notice_title" validate:"required,min=3,max=160"`
	NoticeBody        string `json:"notice_body" validate:"required"`
	NoticeIsPublished *bool  `json:"notice_is_published"`
}

func (p *NoticeCreateDTO) Normalize() {
	p.NoticeTitle = strings.TrimSpace(p.NoticeTitle)
}

func (p *NoticeCreateDTO) ToModel(postedBy uuid.UUID) model.NoticeModel {
	published := true
	if p.NoticeIsPublished != nil {
		published = *p.NoticeIsPublished
	}
	return model.NoticeModel{
		NoticeTitle:       p.NoticeTitle,
		NoticeBody:        p.NoticeBody,
		NoticeIsPublished: published,
		NoticePostedBy:    postedBy,
	}
}

type NoticeUpdateDTO struct {
	NoticeTitle       *string `json:"notice_title" validate:"omitempty,min=3,max=160"`
	NoticeBody        *string `json:"notice_body"`
	NoticeIsPublished *bool   `json:"notice_is_published"`
}

type NoticeResponse struct {
	NoticeID          uuid.UUID `json:"notice_id"`
	NoticeTitle       string    `json:"notice_title"`
	NoticeBody        string    `json:"notice_body"`
	NoticeIsPublished bool      `json:"notice_is_published"`
	NoticePostedBy    uuid.UUID `json:"notice_posted_by"`
	NoticeCreatedAt   time.Time `json:"notice_created_at"`
	NoticeUpdatedAt   time.Time `json:"notice_updated_at"`
}

func FromNoticeModel(m model.NoticeModel) NoticeResponse {
	return NoticeResponse{
		NoticeID:          m.NoticeID,
		NoticeTitle:       m.NoticeTitle,
		NoticeBody:        m.NoticeBody,
		NoticeIsPublished: m.NoticeIsPublished,
		NoticePostedBy:    m.NoticePostedBy,
		NoticeCreatedAt:   m.NoticeCreatedAt,
		NoticeUpdatedAt:   m.NoticeUpdatedAt,
	}
}

func FromNoticeModels(ms []model.NoticeModel) []NoticeResponse {
	out := make([]NoticeResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromNoticeModel(m))
	}
	return out
}
