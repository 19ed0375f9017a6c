// file: internals/features/notices/model/notice_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoticeModel struct {
	NoticeID uuid.UUID `gorm:"column:notice_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"notice_id"`

	NoticeTitle       string `gorm:"column:notice_title;type:varchar(160);not null" json:"notice_title"`
	NoticeBody        string `gorm:"column:notice_body;type:text;not null" json:"notice_body"`
	NoticeIsPublished bool   `gorm:"column:notice_is_published;not null;default:true" json:"notice_is_published"`

	NoticePostedBy uuid.UUID `gorm:"column:notice_posted_by;type:uuid;not null" json:"notice_posted_by"`

	NoticeCreatedAt time.Time      `gorm:"column:notice_created_at;type:timestamptz;not null;autoCreateTime" json:"notice_created_at"`
	NoticeUpdatedAt time.Time      `gorm:"column:notice_updated_at;type:timestamptz;not null;autoUpdateTime" json:"notice_updated_at"`
	NoticeDeletedAt gorm.DeletedAt `gorm:"column:notice_deleted_at;index" json:"-"`
}

func (NoticeModel) TableName() string { return "notices" }

func (m *NoticeModel) BeforeSave(tx *gorm.DB) error {
	m.NoticeTitle = strings.TrimSpace(m.NoticeTitle)
	return nil
}
