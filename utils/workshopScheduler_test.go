package utils

import (
	"testing"
	"time"

	courseModels "lms/models/course"

	"github.com/stretchr/testify/assert"
)

func TestDeriveWorkshopStatus(t *testing.T) {
	sessions := []courseModels.WorkshopSession{
		{ID: "s1", Date: "2025-04-01", StartTime: "10:00", EndTime: "12:00"},
		{ID: "s2", Date: "2025-04-03", StartTime: "10:00", EndTime: "12:00"},
	}

	at := func(value string) time.Time {
		ts, err := time.ParseInLocation("2006-01-02 15:04", value, time.Local)
		if err != nil {
			t.Fatalf("bad test timestamp %q: %v", value, err)
		}
		return ts
	}

	assert.Equal(t, courseModels.WorkshopUpcoming, DeriveWorkshopStatus(sessions, at("2025-03-30 09:00")))
	assert.Equal(t, courseModels.WorkshopOngoing, DeriveWorkshopStatus(sessions, at("2025-04-01 11:00")))
	// Between sessions still counts as ongoing.
	assert.Equal(t, courseModels.WorkshopOngoing, DeriveWorkshopStatus(sessions, at("2025-04-02 11:00")))
	assert.Equal(t, courseModels.WorkshopCompleted, DeriveWorkshopStatus(sessions, at("2025-04-03 13:00")))
}

func TestDeriveWorkshopStatusNoSessions(t *testing.T) {
	assert.Equal(t, courseModels.WorkshopUpcoming, DeriveWorkshopStatus(nil, time.Now()))

	broken := []courseModels.WorkshopSession{{ID: "s1", Date: "not-a-date", StartTime: "10:00", EndTime: "12:00"}}
	assert.Equal(t, courseModels.WorkshopUpcoming, DeriveWorkshopStatus(broken, time.Now()))
}
