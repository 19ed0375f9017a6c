package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	appModel "iskolar_backend/internals/features/scholarship/applications/model"
	model "iskolar_backend/internals/features/scholarship/documents/model"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

type stubExtractor struct {
	result *ExtractionResult
	err    error
}

func (s *stubExtractor) Extract(ctx context.Context, req ExtractionRequest) (*ExtractionResult, error) {
	return s.result, s.err
}

/* ============================================
   ComputeConfidence
============================================ */

func TestComputeConfidence(t *testing.T) {
	tests := []struct {
		name          string
		discrepancies []model.Discrepancy
		want          string
	}{
		{"no discrepancies", nil, model.ConfidenceHigh},
		{"empty slice", []model.Discrepancy{}, model.ConfidenceHigh},
		{
			"only low severities",
			[]model.Discrepancy{{Severity: model.SeverityLow}, {Severity: model.SeverityLow}},
			model.ConfidenceMedium,
		},
		{
			"medium severities",
			[]model.Discrepancy{{Severity: model.SeverityMedium}},
			model.ConfidenceMedium,
		},
		{
			"single high severity forces low",
			[]model.Discrepancy{{Severity: model.SeverityHigh}},
			model.ConfidenceLow,
		},
		{
			"one high among lows still low",
			[]model.Discrepancy{
				{Severity: model.SeverityLow},
				{Severity: model.SeverityHigh},
				{Severity: model.SeverityLow},
			},
			model.ConfidenceLow,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeConfidence(tt.discrepancies))
		})
	}
}

/* ============================================
   ExpectedFieldsFor
============================================ */

func TestExpectedFieldsFor(t *testing.T) {
	birthDate := "2004-06-01"
	address := "123 Mabini St, Quezon City"
	gpa := "1.75"
	app := &appModel.ApplicationModel{
		ApplicationFullName:   "Juan Dela Cruz",
		ApplicationSchoolName: "PUP",
		ApplicationCourse:     "BS Computer Science",
		ApplicationYearLevel:  "3rd",
		ApplicationBirthDate:  &birthDate,
		ApplicationAddress:    &address,
		ApplicationGPA:        &gpa,
	}

	fieldNames := func(fs []ExpectedField) []string {
		names := make([]string, 0, len(fs))
		for _, f := range fs {
			names = append(names, f.Name)
		}
		return names
	}

	t.Run("every type checks the full name", func(t *testing.T) {
		for _, dt := range []string{
			model.DocumentTypeRegistrationCertificate,
			model.DocumentTypeGradeCertificate,
			model.DocumentTypeIdentification,
			model.DocumentTypeBirthCertificate,
			model.DocumentTypeProofOfResidency,
		} {
			assert.Contains(t, fieldNames(ExpectedFieldsFor(dt, app)), "full_name", dt)
		}
	})

	t.Run("birth certificate", func(t *testing.T) {
		got := ExpectedFieldsFor(model.DocumentTypeBirthCertificate, app)
		assert.ElementsMatch(t, []string{"full_name", "birth_date"}, fieldNames(got))
	})

	t.Run("identification", func(t *testing.T) {
		got := ExpectedFieldsFor(model.DocumentTypeIdentification, app)
		assert.ElementsMatch(t, []string{"full_name", "address"}, fieldNames(got))
	})

	t.Run("registration certificate", func(t *testing.T) {
		got := ExpectedFieldsFor(model.DocumentTypeRegistrationCertificate, app)
		assert.ElementsMatch(t, []string{"full_name", "school_name", "course", "year_level"}, fieldNames(got))
	})

	t.Run("grade certificate", func(t *testing.T) {
		got := ExpectedFieldsFor(model.DocumentTypeGradeCertificate, app)
		assert.ElementsMatch(t, []string{"full_name", "school_name", "course", "gpa"}, fieldNames(got))
	})

	t.Run("optional fields are skipped when absent", func(t *testing.T) {
		bare := &appModel.ApplicationModel{ApplicationFullName: "Juan Dela Cruz"}
		got := ExpectedFieldsFor(model.DocumentTypeBirthCertificate, bare)
		assert.ElementsMatch(t, []string{"full_name"}, fieldNames(got))
	})
}

/* ============================================
   runQueue
============================================ */

func TestRunQueueProcessesInOrderWithSpacing(t *testing.T) {
	const interval = 40 * time.Millisecond
	gate := NewIntervalGate(interval)
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	var mu sync.Mutex
	var seen []uuid.UUID
	var stamps []time.Time

	failures := runQueue(context.Background(), ids, gate, func(ctx context.Context, id uuid.UUID) error {
		mu.Lock()
		seen = append(seen, id)
		stamps = append(stamps, time.Now())
		mu.Unlock()
		return nil
	})

	require.Empty(t, failures)
	require.Equal(t, ids, seen, "queue order must match upload order")
	for i := 1; i < len(stamps); i++ {
		gap := stamps[i].Sub(stamps[i-1])
		assert.GreaterOrEqual(t, gap, interval-5*time.Millisecond,
			"items %d and %d ran closer than the mandatory cool-down", i-1, i)
	}
}

func TestRunQueueFailureDoesNotHaltQueue(t *testing.T) {
	gate := NewIntervalGate(time.Millisecond)
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	bad := ids[1]

	var seen []uuid.UUID
	failures := runQueue(context.Background(), ids, gate, func(ctx context.Context, id uuid.UUID) error {
		seen = append(seen, id)
		if id == bad {
			return ErrExtractionFailed
		}
		return nil
	})

	assert.Equal(t, ids, seen, "the item after a failure must still be processed")
	require.Len(t, failures, 1)
	assert.Equal(t, bad, failures[0].DocumentID)
	assert.Equal(t, ErrExtractionFailed.Error(), failures[0].Reason)
}

func TestRunQueueStopsOnCancelledContext(t *testing.T) {
	gate := NewIntervalGate(time.Hour)
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls int
	failures := runQueue(ctx, ids, gate, func(ctx context.Context, id uuid.UUID) error {
		calls++
		return nil
	})

	// the first item passes the gate immediately, the second hits the
	// cancelled cool-down, and every untried item is reported
	assert.Equal(t, 1, calls)
	require.Len(t, failures, 2)
	assert.Equal(t, ids[1], failures[0].DocumentID)
	assert.Equal(t, ids[2], failures[1].DocumentID)
	assert.Equal(t, context.Canceled.Error(), failures[0].Reason)
}

func TestRunQueueEmpty(t *testing.T) {
	gate := NewIntervalGate(time.Millisecond)
	failures := runQueue(context.Background(), nil, gate, func(ctx context.Context, id uuid.UUID) error {
		t.Fatal("verify must not be called for an empty queue")
		return nil
	})
	assert.Empty(t, failures)
}

/* ============================================
   IntervalGate
============================================ */

func TestIntervalGateFirstPassIsImmediate(t *testing.T) {
	gate := NewIntervalGate(time.Hour)
	start := time.Now()
	require.NoError(t, gate.Wait(context.Background()))
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}

func TestIntervalGateEnforcesSpacing(t *testing.T) {
	const interval = 40 * time.Millisecond
	gate := NewIntervalGate(interval)

	require.NoError(t, gate.Wait(context.Background()))
	start := time.Now()
	require.NoError(t, gate.Wait(context.Background()))
	assert.GreaterOrEqual(t, time.Since(start), interval-5*time.Millisecond)
}

func TestIntervalGateCancellation(t *testing.T) {
	gate := NewIntervalGate(time.Hour)
	require.NoError(t, gate.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := gate.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

/* ============================================
   VerifyOne claim & release
============================================ */

func TestVerifyOneConcurrentClaimLoses(t *testing.T) {
	db, mock := newMockDB(t)
	svc := &VerificationService{DB: db}

	// claim matches no rows because another run holds the verifying slot
	mock.ExpectExec(`UPDATE "documents"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "documents"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	err := svc.VerifyOne(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrVerificationInProgress)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestVerifyOneUnknownDocument(t *testing.T) {
	db, mock := newMockDB(t)
	svc := &VerificationService{DB: db}

	mock.ExpectExec(`UPDATE "documents"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "documents"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	err := svc.VerifyOne(context.Background(), uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFailedReverificationReleasesToPriorState(t *testing.T) {
	db, mock := newMockDB(t)
	svc := &VerificationService{
		DB:        db,
		Extractor: &stubExtractor{err: ErrExtractionFailed},
		Gate:      NewIntervalGate(time.Millisecond),
	}

	docID := uuid.New()
	appID := uuid.New()

	// claim: verified -> verifying (re-verification is allowed)
	mock.ExpectExec(`UPDATE "documents"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT \* FROM "documents"`).WillReturnRows(
		sqlmock.NewRows([]string{"document_id", "document_application_id", "document_type", "document_file_url", "document_ai_verified"}).
			AddRow(docID.String(), appID.String(), model.DocumentTypeIdentification, "https://files.example/id.webp", true))
	mock.ExpectQuery(`SELECT \* FROM "applications"`).WillReturnRows(
		sqlmock.NewRows([]string{"application_id", "application_full_name"}).
			AddRow(appID.String(), "Juan Dela Cruz"))

	// release restores the pre-claim state instead of forcing unverified,
	// so a verified document keeps reading verified after a failed re-run
	mock.ExpectExec(`CASE WHEN document_ai_verified THEN .+ ELSE .+ END`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := svc.VerifyOne(context.Background(), docID)
	require.ErrorIs(t, err, ErrExtractionFailed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/* ============================================
   aggregateDocuments
============================================ */

func docWithConfidence(verified bool, confidence string) model.DocumentModel {
	d := model.DocumentModel{DocumentAIVerified: verified}
	if verified {
		d.DocumentConfidenceLevel = &confidence
	}
	return d
}

func TestAggregateDocuments(t *testing.T) {
	t.Run("mixed verification state", func(t *testing.T) {
		got := aggregateDocuments([]model.DocumentModel{
			docWithConfidence(true, model.ConfidenceHigh),
			docWithConfidence(true, model.ConfidenceLow),
			docWithConfidence(false, ""),
		})
		assert.Equal(t, 3, got.TotalDocuments)
		assert.Equal(t, 2, got.VerifiedCount)
		assert.Equal(t, 1, got.UnverifiedCount)
		assert.Equal(t, 1, got.HighCount)
		assert.Equal(t, 1, got.LowCount)
		assert.Equal(t, 0, got.MediumCount)
		assert.False(t, got.FullyVerified, "one unverified document blocks fully_verified")
	})

	t.Run("all verified", func(t *testing.T) {
		got := aggregateDocuments([]model.DocumentModel{
			docWithConfidence(true, model.ConfidenceMedium),
			docWithConfidence(true, model.ConfidenceHigh),
		})
		assert.True(t, got.FullyVerified)
		assert.Equal(t, 1, got.MediumCount)
	})

	t.Run("zero documents is not fully verified", func(t *testing.T) {
		got := aggregateDocuments(nil)
		assert.Equal(t, 0, got.TotalDocuments)
		assert.False(t, got.FullyVerified)
	})
}

/* ============================================
   Extraction error identity
============================================ */

func TestExtractionFailureIsDetectable(t *testing.T) {
	wrapped := errors.Join(ErrExtractionFailed, errors.New("verifier returned status 500"))
	assert.ErrorIs(t, wrapped, ErrExtractionFailed)
}
