package utils

import (
	"log"
	"time"

	"lms/database"
	courseModels "lms/models/course"

	"github.com/robfig/cron/v3"
)

// InitializeWorkshopScheduler sets up the workshop status scheduler
func InitializeWorkshopScheduler() {
	log.Println("[WORKSHOP-SCHEDULER] Initializing workshop scheduler...")

	c := cron.New()

	// Re-derive workshop statuses from session windows every 5 minutes
	c.AddFunc("*/5 * * * *", func() {
		SyncWorkshopStatuses()
	})

	c.Start()
	log.Println("[WORKSHOP-SCHEDULER] Workshop scheduler started - runs every 5 minutes")
}

// SyncWorkshopStatuses walks all workshops and updates any whose derived
// status drifted from the stored one
func SyncWorkshopStatuses() {
	db := database.Database.Db
	now := time.Now()

	var workshops []courseModels.Workshop
	if err := db.Where("is_deleted = ?", false).Find(&workshops).Error; err != nil {
		log.Printf("[WORKSHOP-SCHEDULER] Error fetching workshops: %v", err)
		return
	}

	updated := 0
	for _, w := range workshops {
		status := DeriveWorkshopStatus(w.Sessions, now)
		if status == w.Status {
			continue
		}
		if err := db.Model(&courseModels.Workshop{}).Where("id = ?", w.ID).Update("status", status).Error; err != nil {
			log.Printf("[WORKSHOP-SCHEDULER] Error updating workshop %s: %v", w.ID, err)
			continue
		}
		updated++
	}

	if updated > 0 {
		log.Printf("[WORKSHOP-SCHEDULER] Updated status of %d workshops", updated)
	}
}

// DeriveWorkshopStatus computes a workshop's status from its session
// schedule: upcoming before the first session starts, completed after the
// last session ends, ongoing in between. Workshops without parseable
// sessions stay upcoming.
func DeriveWorkshopStatus(sessions []courseModels.WorkshopSession, now time.Time) string {
	var first, last time.Time
	found := false

	for _, s := range sessions {
		start, err := time.ParseInLocation("2006-01-02 15:04", s.Date+" "+s.StartTime, now.Location())
		if err != nil {
			continue
		}
		end, err := time.ParseInLocation("2006-01-02 15:04", s.Date+" "+s.EndTime, now.Location())
		if err != nil {
			continue
		}
		if !found || start.Before(first) {
			first = start
		}
		if !found || end.After(last) {
			last = end
		}
		found = true
	}

	if !found {
		return courseModels.WorkshopUpcoming
	}
	switch {
	case now.Before(first):
		return courseModels.WorkshopUpcoming
	case now.After(last):
		return courseModels.WorkshopCompleted
	default:
		return courseModels.WorkshopOngoing
	}
}
