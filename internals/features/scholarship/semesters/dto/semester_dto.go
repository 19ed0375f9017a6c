// file: internals/features/scholarship/semesters/dto/semester_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "iskolar_backend/internals/features/scholarship/semesters/model"
	service "iskolar_backend/internals/features/scholarship/semesters/service"
)

/* ============================================
   Academic year
============================================ */

type AcademicYearCreateDTO struct {
	AcademicYearLabel string `json:"academic_year_label" validate:"required,min=4,max=20"`
}

func (p *AcademicYearCreateDTO) Normalize() {
	p.AcademicYearLabel = strings.TrimSpace(p.AcademicYearLabel)
}

func (p *AcademicYearCreateDTO) ToModel() model.AcademicYearModel {
	return model.AcademicYearModel{
		AcademicYearLabel: p.AcademicYearLabel,
	}
}

type AcademicYearResponse struct {
	AcademicYearID    uuid.UUID `json:"academic_year_id"`
	AcademicYearLabel string    `json:"academic_year_label"`
}

func FromAcademicYearModel(m model.AcademicYearModel) AcademicYearResponse {
	return AcademicYearResponse{
		AcademicYearID:    m.AcademicYearID,
		AcademicYearLabel: m.AcademicYearLabel,
	}
}

/* ============================================
   Semester
============================================ */

type SemesterCreateDTO struct {
	SemesterAcademicYearID   uuid.UUID `json:"semester_academic_year_id" validate:"required"`
	SemesterName             string    `json:"semester_name" validate:"required,oneof=first second"`
	SemesterStartDate        time.Time `json:"semester_start_date" validate:"required"`
	SemesterEndDate          time.Time `json:"semester_end_date" validate:"required"`
	SemesterApplicationsOpen bool      `json:"semester_applications_open"`
}

func (p *SemesterCreateDTO) Normalize() {
	p.SemesterName = strings.ToLower(strings.TrimSpace(p.SemesterName))
}

func (p *SemesterCreateDTO) ToModel() model.SemesterModel {
	return model.SemesterModel{
		SemesterAcademicYearID:   p.SemesterAcademicYearID,
		SemesterName:             p.SemesterName,
		SemesterStartDate:        p.SemesterStartDate,
		SemesterEndDate:          p.SemesterEndDate,
		SemesterApplicationsOpen: p.SemesterApplicationsOpen,
	}
}

type SemesterToggleDTO struct {
	SemesterApplicationsOpen *bool `json:"semester_applications_open" validate:"required"`
}

// SemesterResponse carries the derived window status alongside the raw row so
// clients never have to re-derive open/closed/ended themselves.
type SemesterResponse struct {
	SemesterID               uuid.UUID `json:"semester_id"`
	SemesterAcademicYearID   uuid.UUID `json:"semester_academic_year_id"`
	SemesterName             string    `json:"semester_name"`
	SemesterStartDate        time.Time `json:"semester_start_date"`
	SemesterEndDate          time.Time `json:"semester_end_date"`
	SemesterApplicationsOpen bool      `json:"semester_applications_open"`
	SemesterWindowStatus     string    `json:"semester_window_status"`
}

func FromSemesterModel(m model.SemesterModel, now time.Time) SemesterResponse {
	return SemesterResponse{
		SemesterID:               m.SemesterID,
		SemesterAcademicYearID:   m.SemesterAcademicYearID,
		SemesterName:             m.SemesterName,
		SemesterStartDate:        m.SemesterStartDate,
		SemesterEndDate:          m.SemesterEndDate,
		SemesterApplicationsOpen: m.SemesterApplicationsOpen,
		SemesterWindowStatus:     string(service.DeriveStatus(&m, now)),
	}
}

func FromSemesterModels(ms []model.SemesterModel, now time.Time) []SemesterResponse {
	out := make([]SemesterResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromSemesterModel(m, now))
	}
	return out
}
