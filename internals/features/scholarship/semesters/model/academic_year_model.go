// file: internals/features/scholarship/semesters/model/academic_year_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AcademicYearModel struct {
	AcademicYearID uuid.UUID `gorm:"column:academic_year_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"academic_year_id"`

	// Example label: "2025-2026"
	AcademicYearLabel string `gorm:"column:academic_year_label;type:varchar(20);not null;uniqueIndex" json:"academic_year_label"`

	AcademicYearCreatedAt time.Time      `gorm:"column:academic_year_created_at;type:timestamptz;not null;autoCreateTime" json:"academic_year_created_at"`
	AcademicYearUpdatedAt time.Time      `gorm:"column:academic_year_updated_at;type:timestamptz;not null;autoUpdateTime" json:"academic_year_updated_at"`
	AcademicYearDeletedAt gorm.DeletedAt `gorm:"column:academic_year_deleted_at;index" json:"-"`
}

func (AcademicYearModel) TableName() string { return "academic_years" }
