// file: internals/features/scholarship/applications/model/application_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Application review statuses. pending is the only non-terminal state.
const (
	ApplicationStatusPending  = "pending"
	ApplicationStatusApproved = "approved"
	ApplicationStatusRejected = "rejected"
)

func IsValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusApproved, ApplicationStatusRejected:
		return true
	}
	return false
}

type ApplicationModel struct {
	// ============ PK & owners ============
	ApplicationID         uuid.UUID `gorm:"column:application_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"application_id"`
	ApplicationUserID     uuid.UUID `gorm:"column:application_user_id;type:uuid;not null;uniqueIndex:uq_application_user_semester" json:"application_user_id"`
	ApplicationSemesterID uuid.UUID `gorm:"column:application_semester_id;type:uuid;not null;uniqueIndex:uq_application_user_semester;index" json:"application_semester_id"`

	// ============ Review state ============
	ApplicationStatus string `gorm:"column:application_status;type:varchar(10);not null;default:'pending'" json:"application_status"`

	// ============ Submission snapshot ============
	// Captured at submission time; later profile edits do not retroactively
	// change what the reviewer sees.
	ApplicationSchoolName      string  `gorm:"column:application_school_name;type:varchar(120);not null" json:"application_school_name"`
	ApplicationCourse          string  `gorm:"column:application_course;type:varchar(120);not null" json:"application_course"`
	ApplicationYearLevel       string  `gorm:"column:application_year_level;type:varchar(20);not null" json:"application_year_level"`
	ApplicationGPA             *string `gorm:"column:application_gpa;type:varchar(10)" json:"application_gpa,omitempty"`
	ApplicationFullName        string  `gorm:"column:application_full_name;type:varchar(120);not null" json:"application_full_name"`
	ApplicationBirthDate       *string `gorm:"column:application_birth_date;type:varchar(10)" json:"application_birth_date,omitempty"`
	ApplicationAddress         *string `gorm:"column:application_address;type:text" json:"application_address,omitempty"`
	ApplicationGuardianName    string  `gorm:"column:application_guardian_name;type:varchar(120);not null" json:"application_guardian_name"`
	ApplicationGuardianContact string  `gorm:"column:application_guardian_contact;type:varchar(30);not null" json:"application_guardian_contact"`

	// ============ Audit / Soft delete ============
	ApplicationCreatedAt time.Time      `gorm:"column:application_created_at;type:timestamptz;not null;autoCreateTime" json:"application_created_at"`
	ApplicationUpdatedAt time.Time      `gorm:"column:application_updated_at;type:timestamptz;not null;autoUpdateTime" json:"application_updated_at"`
	ApplicationDeletedAt gorm.DeletedAt `gorm:"column:application_deleted_at;index" json:"-"`
}

func (ApplicationModel) TableName() string { return "applications" }

func (m *ApplicationModel) BeforeSave(tx *gorm.DB) error {
	m.ApplicationSchoolName = strings.TrimSpace(m.ApplicationSchoolName)
	m.ApplicationCourse = strings.TrimSpace(m.ApplicationCourse)
	m.ApplicationFullName = strings.TrimSpace(m.ApplicationFullName)
	m.ApplicationGuardianName = strings.TrimSpace(m.ApplicationGuardianName)
	m.ApplicationGuardianContact = strings.TrimSpace(m.ApplicationGuardianContact)
	return nil
}
