// file: internals/features/users/auth/model/user_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	UserEmail    string    `gorm:"column:user_email;type:varchar(120);not null;uniqueIndex" json:"user_email"`
	UserPassword string    `gorm:"column:user_password;type:text;not null" json:"-"`
	UserFullName string    `gorm:"column:user_full_name;type:varchar(120);not null" json:"user_full_name"`

	// scholar | admin (see constants)
	UserRole string `gorm:"column:user_role;type:varchar(10);not null;default:'scholar'" json:"user_role"`

	UserIsActive bool `gorm:"column:user_is_active;not null;default:true" json:"user_is_active"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;type:timestamptz;not null;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;type:timestamptz;not null;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"-"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) BeforeSave(tx *gorm.DB) error {
	m.UserEmail = strings.ToLower(strings.TrimSpace(m.UserEmail))
	m.UserFullName = strings.TrimSpace(m.UserFullName)
	return nil
}
