package scheduler

import (
	"log"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"

	model "iskolar_backend/internals/features/scholarship/semesters/model"
)

// StartSemesterExpiryScheduler periodically forces applications_open=false on
// semesters whose end date has passed. The lazy check on the read path stays
// authoritative; this sweep only keeps the persisted flags fresh for
// semesters nobody has read recently.
func StartSemesterExpiryScheduler(db *gorm.DB) {
	go func() {
		intervalMinutes := 30
		if val := os.Getenv("SEMESTER_EXPIRY_SWEEP_MINUTES"); val != "" {
			if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
				intervalMinutes = parsed
			}
		}

		for {
			res := db.Model(&model.SemesterModel{}).
				Where("semester_end_date < ? AND semester_applications_open = TRUE", time.Now()).
				Update("semester_applications_open", false)
			if res.Error != nil {
				log.Printf("[EXPIRY SWEEP] failed: %v", res.Error)
			} else if res.RowsAffected > 0 {
				log.Printf("[EXPIRY SWEEP] closed %d ended semester(s)", res.RowsAffected)
			}

			time.Sleep(time.Duration(intervalMinutes) * time.Minute)
		}
	}()
}
