// file: internals/features/scholarship/semesters/service/semester_window_service.go
package service

import (
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	model "iskolar_backend/internals/features/scholarship/semesters/model"
)

/* ============================================
   Window status
============================================ */

type WindowStatus string

const (
	WindowOpen   WindowStatus = "open"
	WindowClosed WindowStatus = "closed"
	WindowEnded  WindowStatus = "ended"
)

var ErrWindowEnded = errors.New("the application window for this semester has already ended")

// DeriveStatus is the single source of truth for a semester's window state.
// ended wins over the stored open flag; the flag only decides open vs closed.
func DeriveStatus(sem *model.SemesterModel, now time.Time) WindowStatus {
	if now.After(sem.SemesterEndDate) {
		return WindowEnded
	}
	if sem.SemesterApplicationsOpen {
		return WindowOpen
	}
	return WindowClosed
}

// NeedsExpiry reports whether the persisted open flag lags the derived status.
func NeedsExpiry(sem *model.SemesterModel, now time.Time) bool {
	return DeriveStatus(sem, now) == WindowEnded && sem.SemesterApplicationsOpen
}

/* ============================================
   Toggle (admin)
============================================ */

// Toggle flips the applications_open flag. Fails on an ended window: the
// toggle path can never re-open a semester past its end date. Idempotent when
// the requested value equals the current one (no write issued).
func Toggle(db *gorm.DB, sem *model.SemesterModel, requestedOpen bool, now time.Time) error {
	if DeriveStatus(sem, now) == WindowEnded {
		return ErrWindowEnded
	}
	if sem.SemesterApplicationsOpen == requestedOpen {
		return nil
	}

	if err := db.Model(&model.SemesterModel{}).
		Where("semester_id = ?", sem.SemesterID).
		Update("semester_applications_open", requestedOpen).Error; err != nil {
		return err
	}
	sem.SemesterApplicationsOpen = requestedOpen
	return nil
}

/* ============================================
   Lazy expiry (read path)
============================================ */

// ExpireIfNeeded writes applications_open=false once a window is past its end
// date. It never raises: callers keep serving the correctly derived status
// even when the write-back fails, only the persisted flag may lag.
func ExpireIfNeeded(db *gorm.DB, sem *model.SemesterModel, now time.Time) {
	if !NeedsExpiry(sem, now) {
		return
	}

	if err := db.Model(&model.SemesterModel{}).
		Where("semester_id = ? AND semester_applications_open = TRUE", sem.SemesterID).
		Update("semester_applications_open", false).Error; err != nil {
		log.Printf("[EXPIRY] write-back failed for semester %s: %v", sem.SemesterID, err)
		return
	}
	sem.SemesterApplicationsOpen = false
}
