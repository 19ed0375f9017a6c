// file: internals/features/scholarship/documents/dto/document_dto.go
package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	model "iskolar_backend/internals/features/scholarship/documents/model"
)

type DocumentResponse struct {
	DocumentID            uuid.UUID `json:"document_id"`
	DocumentApplicationID uuid.UUID `json:"document_application_id"`
	DocumentType          string    `json:"document_type"`
	DocumentFileURL       string    `json:"document_file_url"`
	DocumentFileSize      int64     `json:"document_file_size"`
	DocumentUploadedAt    time.Time `json:"document_uploaded_at"`

	DocumentVerificationStatus string              `json:"document_verification_status"`
	DocumentAIVerified         bool                `json:"document_ai_verified"`
	DocumentAISummary          *string             `json:"document_ai_summary,omitempty"`
	DocumentAIDiscrepancies    []model.Discrepancy `json:"document_ai_discrepancies,omitempty"`
	DocumentConfidenceLevel    *string             `json:"document_confidence_level,omitempty"`
	DocumentVerificationDate   *time.Time          `json:"document_verification_date,omitempty"`
	DocumentExtractedData      json.RawMessage     `json:"document_extracted_data,omitempty"`
}

func FromDocumentModel(m model.DocumentModel) DocumentResponse {
	resp := DocumentResponse{
		DocumentID:                 m.DocumentID,
		DocumentApplicationID:      m.DocumentApplicationID,
		DocumentType:               m.DocumentType,
		DocumentFileURL:            m.DocumentFileURL,
		DocumentFileSize:           m.DocumentFileSize,
		DocumentUploadedAt:         m.DocumentUploadedAt,
		DocumentVerificationStatus: m.DocumentVerificationStatus,
		DocumentAIVerified:         m.DocumentAIVerified,
		DocumentAISummary:          m.DocumentAISummary,
		DocumentConfidenceLevel:    m.DocumentConfidenceLevel,
		DocumentVerificationDate:   m.DocumentVerificationDate,
	}
	if len(m.DocumentAIDiscrepancies) > 0 {
		_ = json.Unmarshal(m.DocumentAIDiscrepancies, &resp.DocumentAIDiscrepancies)
	}
	if len(m.DocumentExtractedData) > 0 {
		resp.DocumentExtractedData = json.RawMessage(m.DocumentExtractedData)
	}
	return resp
}

func FromDocumentModels(ms []model.DocumentModel) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromDocumentModel(m))
	}
	return out
}
