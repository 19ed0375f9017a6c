package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "iskolar_backend/internals/features/scholarship/semesters/model"
)

func semesterWindow(start, end time.Time, open bool) *model.SemesterModel {
	return &model.SemesterModel{
		SemesterName:             model.SemesterNameFirst,
		SemesterStartDate:        start,
		SemesterEndDate:          end,
		SemesterApplicationsOpen: open,
	}
}

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, -6, 0)
	future := now.AddDate(0, 6, 0)

	tests := []struct {
		name string
		sem  *model.SemesterModel
		want WindowStatus
	}{
		{"open flag within window", semesterWindow(past, future, true), WindowOpen},
		{"closed flag within window", semesterWindow(past, future, false), WindowClosed},
		{"ended wins over open flag", semesterWindow(past.AddDate(-1, 0, 0), past, true), WindowEnded},
		{"ended with closed flag", semesterWindow(past.AddDate(-1, 0, 0), past, false), WindowEnded},
		{"end date exactly now is not ended", semesterWindow(past, now, true), WindowOpen},
		{"one second past end is ended", semesterWindow(past, now.Add(-time.Second), true), WindowEnded},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.sem, now))
		})
	}
}

func TestNeedsExpiry(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, -1, 0)
	future := now.AddDate(0, 1, 0)

	assert.True(t, NeedsExpiry(semesterWindow(past.AddDate(0, -6, 0), past, true), now),
		"ended but still flagged open must need expiry")
	assert.False(t, NeedsExpiry(semesterWindow(past.AddDate(0, -6, 0), past, false), now),
		"ended and already closed needs nothing")
	assert.False(t, NeedsExpiry(semesterWindow(past, future, true), now),
		"still running, nothing to expire")
}

func TestToggleEndedWindow(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	sem := semesterWindow(now.AddDate(-1, 0, 0), now.AddDate(0, -1, 0), false)

	// guard fires before any DB access, nil db proves it
	err := Toggle(nil, sem, true, now)
	require.ErrorIs(t, err, ErrWindowEnded)
	assert.False(t, sem.SemesterApplicationsOpen)

	err = Toggle(nil, sem, false, now)
	assert.ErrorIs(t, err, ErrWindowEnded, "even closing an ended window is rejected")
}

func TestToggleIdempotentNoOp(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	sem := semesterWindow(now.AddDate(0, -1, 0), now.AddDate(0, 1, 0), true)

	// requested value equals current: returns before touching the DB
	require.NoError(t, Toggle(nil, sem, true, now))
	assert.True(t, sem.SemesterApplicationsOpen)

	sem.SemesterApplicationsOpen = false
	require.NoError(t, Toggle(nil, sem, false, now))
	assert.False(t, sem.SemesterApplicationsOpen)
}

func TestExpireIfNeededSkipsRunningWindow(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	sem := semesterWindow(now.AddDate(0, -1, 0), now.AddDate(0, 1, 0), true)

	// no write needed, nil db proves no DB call happens
	ExpireIfNeeded(nil, sem, now)
	assert.True(t, sem.SemesterApplicationsOpen)
}
