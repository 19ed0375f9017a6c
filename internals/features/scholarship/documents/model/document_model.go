// file: internals/features/scholarship/documents/model/document_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Document types accepted by the portal
const (
	DocumentTypeRegistrationCertificate = "registration_certificate"
	DocumentTypeGradeCertificate        = "grade_certificate"
	DocumentTypeIdentification          = "identification"
	DocumentTypeBirthCertificate        = "birth_certificate"
	DocumentTypeProofOfResidency        = "proof_of_residency"
)

func IsValidDocumentType(t string) bool {
	switch t {
	case DocumentTypeRegistrationCertificate,
		DocumentTypeGradeCertificate,
		DocumentTypeIdentification,
		DocumentTypeBirthCertificate,
		DocumentTypeProofOfResidency:
		return true
	}
	return false
}

// Per-document verification states. Each document carries its own state so
// concurrent runs over different applications never share queue state.
const (
	VerificationStatusUnverified = "unverified"
	VerificationStatusVerifying  = "verifying"
	VerificationStatusVerified   = "verified"
)

// Confidence levels derived from the discrepancy set
const (
	ConfidenceLow    = "low"
	ConfidenceMedium = "medium"
	ConfidenceHigh   = "high"
)

// Discrepancy severities
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Discrepancy is one mismatch between a declared field and what the AI
// extracted from the uploaded file. Serialized as ordered JSONB.
type Discrepancy struct {
	Field       string `json:"field"`
	Expected    string `json:"expected"`
	Found       string `json:"found"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

type DocumentModel struct {
	// ============ PK & owner ============
	DocumentID            uuid.UUID `gorm:"column:document_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"document_id"`
	DocumentApplicationID uuid.UUID `gorm:"column:document_application_id;type:uuid;not null;index" json:"document_application_id"`

	// ============ Upload metadata ============
	DocumentType       string    `gorm:"column:document_type;type:varchar(40);not null" json:"document_type"`
	DocumentFileURL    string    `gorm:"column:document_file_url;type:text;not null" json:"document_file_url"`
	DocumentFileSize   int64     `gorm:"column:document_file_size;not null;default:0" json:"document_file_size"`
	DocumentUploadedAt time.Time `gorm:"column:document_uploaded_at;type:timestamptz;not null;autoCreateTime" json:"document_uploaded_at"`

	// ============ Verification outcome ============
	// Invariant: document_ai_verified=true implies confidence + date are set.
	// These fields are written only by the verification orchestrator.
	DocumentVerificationStatus string         `gorm:"column:document_verification_status;type:varchar(12);not null;default:'unverified';index" json:"document_verification_status"`
	DocumentAIVerified         bool           `gorm:"column:document_ai_verified;not null;default:false" json:"document_ai_verified"`
	DocumentAISummary          *string        `gorm:"column:document_ai_summary;type:text" json:"document_ai_summary,omitempty"`
	DocumentAIDiscrepancies    datatypes.JSON `gorm:"column:document_ai_discrepancies;type:jsonb" json:"document_ai_discrepancies,omitempty"`
	DocumentConfidenceLevel    *string        `gorm:"column:document_confidence_level;type:varchar(10)" json:"document_confidence_level,omitempty"`
	DocumentVerificationDate   *time.Time     `gorm:"column:document_verification_date;type:timestamptz" json:"document_verification_date,omitempty"`
	DocumentExtractedData      datatypes.JSON `gorm:"column:document_extracted_data;type:jsonb" json:"document_extracted_data,omitempty"`

	// ============ Audit / Soft delete ============
	DocumentCreatedAt time.Time      `gorm:"column:document_created_at;type:timestamptz;not null;autoCreateTime" json:"document_created_at"`
	DocumentUpdatedAt time.Time      `gorm:"column:document_updated_at;type:timestamptz;not null;autoUpdateTime" json:"document_updated_at"`
	DocumentDeletedAt gorm.DeletedAt `gorm:"column:document_deleted_at;index" json:"-"`
}

func (DocumentModel) TableName() string { return "documents" }
