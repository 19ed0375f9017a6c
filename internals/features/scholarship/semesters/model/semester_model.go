// file: internals/features/scholarship/semesters/model/semester_model.go
package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Semester labels
const (
	SemesterNameFirst  = "first"
	SemesterNameSecond = "second"
)

type SemesterModel struct {
	// ============ PK & parent ============
	SemesterID             uuid.UUID `gorm:"column:semester_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"semester_id"`
	SemesterAcademicYearID uuid.UUID `gorm:"column:semester_academic_year_id;type:uuid;not null;index" json:"semester_academic_year_id"`

	// ============ Window ============
	SemesterName      string    `gorm:"column:semester_name;type:varchar(10);not null" json:"semester_name"`
	SemesterStartDate time.Time `gorm:"column:semester_start_date;type:timestamptz;not null" json:"semester_start_date"`
	SemesterEndDate   time.Time `gorm:"column:semester_end_date;type:timestamptz;not null" json:"semester_end_date"`

	// Admin-controlled toggle. The derived window status wins over this flag:
	// a semester past its end date reads as ended no matter what is stored here.
	SemesterApplicationsOpen bool `gorm:"column:semester_applications_open;not null;default:false" json:"semester_applications_open"`

	// ============ Audit / Soft delete ============
	SemesterCreatedAt time.Time      `gorm:"column:semester_created_at;type:timestamptz;not null;autoCreateTime" json:"semester_created_at"`
	SemesterUpdatedAt time.Time      `gorm:"column:semester_updated_at;type:timestamptz;not null;autoUpdateTime" json:"semester_updated_at"`
	SemesterDeletedAt gorm.DeletedAt `gorm:"column:semester_deleted_at;index" json:"-"`
}

func (SemesterModel) TableName() string { return "semesters" }

// ============ Hooks: validation & light normalization ============
func (m *SemesterModel) BeforeSave(tx *gorm.DB) error {
	// Mirror CHECK: end >= start
	if m.SemesterEndDate.Before(m.SemesterStartDate) {
		return errors.New("semester_end_date must be >= semester_start_date")
	}

	m.SemesterName = strings.ToLower(strings.TrimSpace(m.SemesterName))
	if m.SemesterName != SemesterNameFirst && m.SemesterName != SemesterNameSecond {
		return errors.New("semester_name must be 'first' or 'second'")
	}
	return nil
}
