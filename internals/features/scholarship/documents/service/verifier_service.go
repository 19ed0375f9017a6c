// file: internals/features/scholarship/documents/service/verifier_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	appModel "iskolar_backend/internals/features/scholarship/applications/model"
	model "iskolar_backend/internals/features/scholarship/documents/model"
)

// ErrVerificationInProgress: another caller already holds the document's
// verifying slot; the second caller no-ops instead of racing the write.
var ErrVerificationInProgress = errors.New("this document is already being verified")

/* ============================================
   Service
============================================ */

type VerificationService struct {
	DB        *gorm.DB
	Extractor Extractor
	Gate      *IntervalGate
}

// Spacing between extraction calls; respects the AI service's rate limit.
const defaultVerifyInterval = 1500 * time.Millisecond

func NewVerificationService(db *gorm.DB, extractor Extractor) *VerificationService {
	return &VerificationService{
		DB:        db,
		Extractor: extractor,
		Gate:      NewIntervalGate(defaultVerifyInterval),
	}
}

/* ============================================
   Confidence (pure)
============================================ */

// ComputeConfidence maps a discrepancy set to a confidence level:
// high = none, low = any high-severity item, medium otherwise.
// Total over every input — no weighting beyond the severity ceiling.
func ComputeConfidence(discrepancies []model.Discrepancy) string {
	if len(discrepancies) == 0 {
		return model.ConfidenceHigh
	}
	for _, d := range discrepancies {
		if d.Severity == model.SeverityHigh {
			return model.ConfidenceLow
		}
	}
	return model.ConfidenceMedium
}

/* ============================================
   Expected fields per document type (pure)
============================================ */

// ExpectedFieldsFor builds the type-dependent cross-reference set: a birth
// certificate is checked against declared name/birth date, a grade
// certificate against school/course, and so on.
func ExpectedFieldsFor(docType string, app *appModel.ApplicationModel) []ExpectedField {
	fields := []ExpectedField{
		{Name: "full_name", Value: app.ApplicationFullName},
	}

	switch docType {
	case model.DocumentTypeBirthCertificate:
		if app.ApplicationBirthDate != nil {
			fields = append(fields, ExpectedField{Name: "birth_date", Value: *app.ApplicationBirthDate})
		}
	case model.DocumentTypeIdentification, model.DocumentTypeProofOfResidency:
		if app.ApplicationAddress != nil {
			fields = append(fields, ExpectedField{Name: "address", Value: *app.ApplicationAddress})
		}
	case model.DocumentTypeRegistrationCertificate:
		fields = append(fields,
			ExpectedField{Name: "school_name", Value: app.ApplicationSchoolName},
			ExpectedField{Name: "course", Value: app.ApplicationCourse},
			ExpectedField{Name: "year_level", Value: app.ApplicationYearLevel},
		)
	case model.DocumentTypeGradeCertificate:
		fields = append(fields,
			ExpectedField{Name: "school_name", Value: app.ApplicationSchoolName},
			ExpectedField{Name: "course", Value: app.ApplicationCourse},
		)
		if app.ApplicationGPA != nil {
			fields = append(fields, ExpectedField{Name: "gpa", Value: *app.ApplicationGPA})
		}
	}
	return fields
}

/* ============================================
   Discovery
============================================ */

// DiscoverUnverified returns the ordered set of a single application's
// documents that still need a verification pass. Upload order drives the
// queue order.
func (s *VerificationService) DiscoverUnverified(applicationID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := s.DB.Model(&model.DocumentModel{}).
		Where("document_application_id = ? AND document_ai_verified = FALSE", applicationID).
		Order("document_uploaded_at ASC").
		Pluck("document_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

/* ============================================
   VerifyOne
============================================ */

// VerifyOne runs the full unit of work for one document:
// claim (unverified|verified -> verifying), extract, compute confidence,
// persist everything in one update. On any extraction failure the claim is
// released and nothing else is written — no partial results ever land.
// Re-verification is allowed at any time and wholesale-overwrites the prior
// outcome.
func (s *VerificationService) VerifyOne(ctx context.Context, documentID uuid.UUID) error {
	// Atomic claim. A concurrent caller loses this compare-and-set and
	// observes "already in progress" instead of double-writing.
	claim := s.DB.Model(&model.DocumentModel{}).
		Where("document_id = ? AND document_verification_status <> ?", documentID, model.VerificationStatusVerifying).
		Update("document_verification_status", model.VerificationStatusVerifying)
	if claim.Error != nil {
		return claim.Error
	}
	if claim.RowsAffected == 0 {
		var cnt int64
		if err := s.DB.Model(&model.DocumentModel{}).
			Where("document_id = ?", documentID).
			Count(&cnt).Error; err != nil {
			return err
		}
		if cnt == 0 {
			return gorm.ErrRecordNotFound
		}
		return ErrVerificationInProgress
	}

	var doc model.DocumentModel
	if err := s.DB.First(&doc, "document_id = ?", documentID).Error; err != nil {
		s.releaseClaim(documentID)
		return err
	}

	var app appModel.ApplicationModel
	if err := s.DB.First(&app, "application_id = ?", doc.DocumentApplicationID).Error; err != nil {
		s.releaseClaim(documentID)
		return err
	}

	result, err := s.Extractor.Extract(ctx, ExtractionRequest{
		FileURL:        doc.DocumentFileURL,
		DocumentType:   doc.DocumentType,
		ExpectedFields: ExpectedFieldsFor(doc.DocumentType, &app),
	})
	if err != nil {
		s.releaseClaim(documentID)
		if errors.Is(err, ErrExtractionFailed) {
			return err
		}
		return errors.Join(ErrExtractionFailed, err)
	}

	confidence := ComputeConfidence(result.Discrepancies)
	now := time.Now()

	discrepanciesJSON, err := json.Marshal(result.Discrepancies)
	if err != nil {
		s.releaseClaim(documentID)
		return err
	}
	extractedJSON, err := json.Marshal(result.ExtractedData)
	if err != nil {
		s.releaseClaim(documentID)
		return err
	}

	summary := result.Summary
	updates := map[string]any{
		"document_verification_status": model.VerificationStatusVerified,
		"document_ai_verified":         true,
		"document_ai_summary":          &summary,
		"document_ai_discrepancies":    datatypes.JSON(discrepanciesJSON),
		"document_confidence_level":    &confidence,
		"document_verification_date":   &now,
		"document_extracted_data":      datatypes.JSON(extractedJSON),
	}
	if err := s.DB.Model(&model.DocumentModel{}).
		Where("document_id = ?", documentID).
		Updates(updates).Error; err != nil {
		s.releaseClaim(documentID)
		return err
	}
	return nil
}

// releaseClaim restores a failed document to its pre-claim state: a failed
// re-verification of an already-verified document goes back to verified (its
// stored outcome is untouched), everything else back to unverified.
// Best-effort: a stuck 'verifying' row is still safely re-enterable later.
func (s *VerificationService) releaseClaim(documentID uuid.UUID) {
	if err := s.DB.Model(&model.DocumentModel{}).
		Where("document_id = ? AND document_verification_status = ?", documentID, model.VerificationStatusVerifying).
		Update("document_verification_status", gorm.Expr(
			"CASE WHEN document_ai_verified THEN ? ELSE ? END",
			model.VerificationStatusVerified, model.VerificationStatusUnverified,
		)).Error; err != nil {
		log.Printf("[VERIFY] release claim failed for document %s: %v", documentID, err)
	}
}

/* ============================================
   RunQueue
============================================ */

// QueueFailure is one per-document failure reported after a queue drains.
type QueueFailure struct {
	DocumentID uuid.UUID `json:"document_id"`
	Reason     string    `json:"reason"`
}

// RunQueue drives documents strictly one at a time, in order, with the gate's
// mandatory cool-down between items. One in flight at a time is a deliberate
// throttle for the AI service — never parallelize this. A failed item does
// not stop the rest; all failures are reported once the queue drains.
func (s *VerificationService) RunQueue(ctx context.Context, documentIDs []uuid.UUID) []QueueFailure {
	return runQueue(ctx, documentIDs, s.Gate, s.VerifyOne)
}

// runQueue is the pacing-only driver, split out from the service so the
// iteration logic stays independent of both GORM and the delay policy.
func runQueue(ctx context.Context, documentIDs []uuid.UUID, gate *IntervalGate, verify func(context.Context, uuid.UUID) error) []QueueFailure {
	failures := make([]QueueFailure, 0)
	for i, id := range documentIDs {
		if err := gate.Wait(ctx); err != nil {
			// cancelled while cooling down: every untried item stays
			// unverified and shows up in the drained-queue report
			for _, rest := range documentIDs[i:] {
				failures = append(failures, QueueFailure{DocumentID: rest, Reason: err.Error()})
			}
			return failures
		}

		if err := verify(ctx, id); err != nil {
			log.Printf("[VERIFY] document %s failed: %v", id, err)
			failures = append(failures, QueueFailure{DocumentID: id, Reason: err.Error()})
		}
	}
	return failures
}

/* ============================================
   Aggregate
============================================ */

// VerificationSummary feeds the reviewer-facing progress indicator.
type VerificationSummary struct {
	ApplicationID   uuid.UUID `json:"application_id"`
	TotalDocuments  int       `json:"total_documents"`
	VerifiedCount   int       `json:"verified_count"`
	UnverifiedCount int       `json:"unverified_count"`
	HighCount       int       `json:"high_count"`
	MediumCount     int       `json:"medium_count"`
	LowCount        int       `json:"low_count"`
	FullyVerified   bool      `json:"fully_verified"`
}

// Aggregate summarizes verification state across all of an application's
// documents. fully_verified is true only when every document has been
// AI-verified; an application with zero documents is not fully verified.
func (s *VerificationService) Aggregate(applicationID uuid.UUID) (*VerificationSummary, error) {
	var docs []model.DocumentModel
	if err := s.DB.
		Where("document_application_id = ?", applicationID).
		Find(&docs).Error; err != nil {
		return nil, err
	}
	summary := aggregateDocuments(docs)
	summary.ApplicationID = applicationID
	return &summary, nil
}

func aggregateDocuments(docs []model.DocumentModel) VerificationSummary {
	out := VerificationSummary{TotalDocuments: len(docs)}
	for _, d := range docs {
		if !d.DocumentAIVerified {
			out.UnverifiedCount++
			continue
		}
		out.VerifiedCount++
		if d.DocumentConfidenceLevel == nil {
			continue
		}
		switch *d.DocumentConfidenceLevel {
		case model.ConfidenceHigh:
			out.HighCount++
		case model.ConfidenceMedium:
			out.MediumCount++
		case model.ConfidenceLow:
			out.LowCount++
		}
	}
	out.FullyVerified = out.TotalDocuments > 0 && out.VerifiedCount == out.TotalDocuments
	return out
}
