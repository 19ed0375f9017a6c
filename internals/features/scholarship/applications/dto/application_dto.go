// file: internals/features/scholarship/applications/dto/application_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "iskolar_backend/internals/features/scholarship/applications/model"
)

type ApplicationSubmitDTO struct {
	ApplicationSemesterID uuid.UUID `json:"application_semester_id" validate:"required"`

	ApplicationSchoolName      string  `json:"application_school_name" validate:"required,min=2,max=120"`
	ApplicationCourse          string  `json:"application_course" validate:"required,min=2,max=120"`
	ApplicationYearLevel       string  `json:"application_year_level" validate:"required,max=20"`
	ApplicationGPA             *string `json:"application_gpa,omitempty" validate:"omitempty,max=10"`
	ApplicationFullName        string  `json:"application_full_name" validate:"required,min=2,max=120"`
	ApplicationBirthDate       *string `json:"application_birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ApplicationAddress         *string `json:"application_address,omitempty"`
	ApplicationGuardianName    string  `json:"application_guardian_name" validate:"required,min=2,max=120"`
	ApplicationGuardianContact string  `json:"application_guardian_contact" validate:"required,min=7,max=30"`
}

func (p *ApplicationSubmitDTO) Normalize() {
	p.ApplicationSchoolName = strings.TrimSpace(p.ApplicationSchoolName)
	p.ApplicationCourse = strings.TrimSpace(p.ApplicationCourse)
	p.ApplicationYearLevel = strings.TrimSpace(p.ApplicationYearLevel)
	p.ApplicationFullName = strings.TrimSpace(p.ApplicationFullName)
	p.ApplicationGuardianName = strings.TrimSpace(p.ApplicationGuardianName)
	p.ApplicationGuardianContact = strings.TrimSpace(p.ApplicationGuardianContact)
}

func (p *ApplicationSubmitDTO) ToModel(userID uuid.UUID) model.ApplicationModel {
	return model.ApplicationModel{
		ApplicationUserID:          userID,
		ApplicationSemesterID:      p.ApplicationSemesterID,
		ApplicationSchoolName:      p.ApplicationSchoolName,
		ApplicationCourse:          p.ApplicationCourse,
		ApplicationYearLevel:       p.ApplicationYearLevel,
		ApplicationGPA:             p.ApplicationGPA,
		ApplicationFullName:        p.ApplicationFullName,
		ApplicationBirthDate:       p.ApplicationBirthDate,
		ApplicationAddress:         p.ApplicationAddress,
		ApplicationGuardianName:    p.ApplicationGuardianName,
		ApplicationGuardianContact: p.ApplicationGuardianContact,
	}
}

type ApplicationDecisionDTO struct {
	ApplicationStatus string `json:"application_status" validate:"required,oneof=approved rejected"`
}

type ApplicationResponse struct {
	ApplicationID         uuid.UUID `json:"application_id"`
	ApplicationUserID     uuid.UUID `json:"application_user_id"`
	ApplicationSemesterID uuid.UUID `json:"application_semester_id"`
	ApplicationStatus     string    `json:"application_status"`

	ApplicationSchoolName      string  `json:"application_school_name"`
	ApplicationCourse          string  `json:"application_course"`
	ApplicationYearLevel       string  `json:"application_year_level"`
	ApplicationGPA             *string `json:"application_gpa,omitempty"`
	ApplicationFullName        string  `json:"application_full_name"`
	ApplicationBirthDate       *string `json:"application_birth_date,omitempty"`
	ApplicationAddress         *string `json:"application_address,omitempty"`
	ApplicationGuardianName    string  `json:"application_guardian_name"`
	ApplicationGuardianContact string  `json:"application_guardian_contact"`

	ApplicationCreatedAt time.Time `json:"application_created_at"`
	ApplicationUpdatedAt time.Time `json:"application_updated_at"`
}

func FromApplicationModel(m model.ApplicationModel) ApplicationResponse {
	return ApplicationResponse{
		ApplicationID:              m.ApplicationID,
		ApplicationUserID:          m.ApplicationUserID,
		ApplicationSemesterID:      m.ApplicationSemesterID,
		ApplicationStatus:          m.ApplicationStatus,
		ApplicationSchoolName:      m.ApplicationSchoolName,
		ApplicationCourse:          m.ApplicationCourse,
		ApplicationYearLevel:       m.ApplicationYearLevel,
		ApplicationGPA:             m.ApplicationGPA,
		ApplicationFullName:        m.ApplicationFullName,
		ApplicationBirthDate:       m.ApplicationBirthDate,
		ApplicationAddress:         m.ApplicationAddress,
		ApplicationGuardianName:    m.ApplicationGuardianName,
		ApplicationGuardianContact: m.ApplicationGuardianContact,
		ApplicationCreatedAt:       m.ApplicationCreatedAt,
		ApplicationUpdatedAt:       m.ApplicationUpdatedAt,
	}
}

func FromApplicationModels(ms []model.ApplicationModel) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromApplicationModel(m))
	}
	return out
}
