// file: internals/features/scholarship/applications/service/admission_service.go
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	model "iskolar_backend/internals/features/scholarship/applications/model"
	semModel "iskolar_backend/internals/features/scholarship/semesters/model"
	semService "iskolar_backend/internals/features/scholarship/semesters/service"
)

/* ============================================
   Error taxonomy
============================================ */

// Each of these maps to its own user-facing message; none may be collapsed
// into a generic failure.
var (
	ErrWindowEnded          = semService.ErrWindowEnded
	ErrWindowClosed         = errors.New("the application window for this semester is currently closed")
	ErrDuplicateApplication = errors.New("you have already submitted an application for this semester")
	ErrInvalidTransition    = errors.New("this application has already been decided and cannot be changed")
)

/* ============================================
   Admission checks
============================================ */

// CanSubmit runs the ordered preconditions: window open first, then no
// existing record for (user, semester). This pre-check only exists to give a
// friendly error before the insert; the DB unique constraint is the
// authoritative guard against racing double-submissions.
func CanSubmit(db *gorm.DB, userID uuid.UUID, sem *semModel.SemesterModel, now time.Time) error {
	switch semService.DeriveStatus(sem, now) {
	case semService.WindowEnded:
		return ErrWindowEnded
	case semService.WindowClosed:
		return ErrWindowClosed
	}

	var cnt int64
	if err := db.Model(&model.ApplicationModel{}).
		Where("application_user_id = ? AND application_semester_id = ?", userID, sem.SemesterID).
		Count(&cnt).Error; err != nil {
		return err
	}
	if cnt > 0 {
		return ErrDuplicateApplication
	}
	return nil
}

// Submit re-validates and inserts the pending application. A unique violation
// from the composite (user, semester) index is translated to
// ErrDuplicateApplication so a lost race reads the same as the pre-check.
func Submit(db *gorm.DB, app *model.ApplicationModel, sem *semModel.SemesterModel, now time.Time) error {
	if err := CanSubmit(db, app.ApplicationUserID, sem, now); err != nil {
		return err
	}

	app.ApplicationStatus = model.ApplicationStatusPending
	if err := db.Create(app).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

/* ============================================
   Status transitions (reviewer)
============================================ */

// CanTransition: pending -> approved|rejected only; approved/rejected are terminal.
func CanTransition(current, next string) bool {
	if current != model.ApplicationStatusPending {
		return false
	}
	return next == model.ApplicationStatusApproved || next == model.ApplicationStatusRejected
}

// UpdateStatus applies a reviewer decision. Only the status (and updated_at)
// may change through this path. Reviewer privilege is enforced by the admin
// route guard before this is reached.
func UpdateStatus(db *gorm.DB, app *model.ApplicationModel, newStatus string) error {
	if !model.IsValidApplicationStatus(newStatus) {
		return ErrInvalidTransition
	}
	if !CanTransition(app.ApplicationStatus, newStatus) {
		return ErrInvalidTransition
	}

	// Guarded write: a concurrent decision that landed first leaves zero rows
	// for the loser, which must surface as an invalid transition, not success.
	res := db.Model(&model.ApplicationModel{}).
		Where("application_id = ? AND application_status = ?", app.ApplicationID, model.ApplicationStatusPending).
		Update("application_status", newStatus)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInvalidTransition
	}
	app.ApplicationStatus = newStatus
	return nil
}

/* ============================================
   PG error mapping
============================================ */

type pgSQLErr interface {
	SQLState() string
	Error() string
}

// isUniqueViolation: Postgres unique violation (SQLSTATE 23505). The string
// fallback covers the simple-protocol path where the driver error is opaque.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		return pgErr.SQLState() == "23505"
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "23505")
}
