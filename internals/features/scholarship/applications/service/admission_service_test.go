package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	model "iskolar_backend/internals/features/scholarship/applications/model"
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

func TestCanTransition(t *testing.T) {
	tests := []struct {
		current string
		next    string
		want    bool
	}{
		{model.ApplicationStatusPending, model.ApplicationStatusApproved, true},
		{model.ApplicationStatusPending, model.ApplicationStatusRejected, true},
		{model.ApplicationStatusPending, model.ApplicationStatusPending, false},
		{model.ApplicationStatusApproved, model.ApplicationStatusRejected, false},
		{model.ApplicationStatusApproved, model.ApplicationStatusPending, false},
		{model.ApplicationStatusRejected, model.ApplicationStatusApproved, false},
		{model.ApplicationStatusRejected, model.ApplicationStatusPending, false},
		{model.ApplicationStatusPending, "withdrawn", false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_to_%s", tt.current, tt.next), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.current, tt.next))
		})
	}
}

func TestUpdateStatusRejectsDecidedApplication(t *testing.T) {
	app := &model.ApplicationModel{
		ApplicationID:     uuid.New(),
		ApplicationStatus: model.ApplicationStatusApproved,
	}

	// guard fires before any DB access, nil db proves it
	err := UpdateStatus(nil, app, model.ApplicationStatusRejected)
	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, model.ApplicationStatusApproved, app.ApplicationStatus)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	app := &model.ApplicationModel{
		ApplicationID:     uuid.New(),
		ApplicationStatus: model.ApplicationStatusPending,
	}
	err := UpdateStatus(nil, app, "banana")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestUpdateStatusLostRaceMapsToInvalidTransition(t *testing.T) {
	db, mock := newMockDB(t)

	// a concurrent reviewer decided first: the guarded UPDATE matches no rows
	mock.ExpectExec(`UPDATE "applications"`).WillReturnResult(sqlmock.NewResult(0, 0))

	app := &model.ApplicationModel{
		ApplicationID:     uuid.New(),
		ApplicationStatus: model.ApplicationStatusPending,
	}
	err := UpdateStatus(db, app, model.ApplicationStatusApproved)
	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, model.ApplicationStatusPending, app.ApplicationStatus,
		"in-memory status must not advance on a lost race")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusAppliesDecision(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec(`UPDATE "applications"`).WillReturnResult(sqlmock.NewResult(0, 1))

	app := &model.ApplicationModel{
		ApplicationID:     uuid.New(),
		ApplicationStatus: model.ApplicationStatusPending,
	}
	require.NoError(t, UpdateStatus(db, app, model.ApplicationStatusRejected))
	assert.Equal(t, model.ApplicationStatusRejected, app.ApplicationStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestErrorMessagesAreDistinct(t *testing.T) {
	msgs := map[string]bool{
		ErrWindowEnded.Error():          true,
		ErrWindowClosed.Error():         true,
		ErrDuplicateApplication.Error(): true,
		ErrInvalidTransition.Error():    true,
	}
	assert.Len(t, msgs, 4, "each admission error must carry its own user-facing message")
}

/* ============================================
   isUniqueViolation
============================================ */

type fakePgErr struct {
	state string
	msg   string
}

func (e *fakePgErr) SQLState() string { return e.state }
func (e *fakePgErr) Error() string    { return e.msg }

func TestIsUniqueViolation(t *testing.T) {
	t.Run("sqlstate 23505", func(t *testing.T) {
		err := &fakePgErr{state: "23505", msg: "duplicate key value violates unique constraint"}
		assert.True(t, isUniqueViolation(err))
	})

	t.Run("wrapped sqlstate 23505", func(t *testing.T) {
		err := fmt.Errorf("create application: %w", &fakePgErr{state: "23505", msg: "dup"})
		assert.True(t, isUniqueViolation(err))
	})

	t.Run("other sqlstate", func(t *testing.T) {
		err := &fakePgErr{state: "23503", msg: "foreign key violation"}
		assert.False(t, isUniqueViolation(err))
	})

	t.Run("string fallback duplicate key", func(t *testing.T) {
		assert.True(t, isUniqueViolation(errors.New(`ERROR: duplicate key value violates unique constraint "uq_application_user_semester"`)))
	})

	t.Run("string fallback sqlstate", func(t *testing.T) {
		assert.True(t, isUniqueViolation(errors.New("SQLSTATE 23505")))
	})

	t.Run("unrelated error", func(t *testing.T) {
		assert.False(t, isUniqueViolation(errors.New("connection refused")))
	})
}
