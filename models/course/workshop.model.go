package course

import (
	"time"

	"gorm.io/datatypes"
)

// Workshop statuses
const (
	WorkshopUpcoming  = "upcoming"
	WorkshopOngoing   = "ongoing"
	WorkshopCompleted = "completed"
)

// WorkshopSession is one scheduled live session, stored in the workshop's
// JSON payload. Date is "2006-01-02", times are "15:04".
type WorkshopSession struct {
	ID           string `json:"id"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	VimeoLiveURL string `json:"vimeoLiveUrl,omitempty"`
	IsLive       bool   `json:"isLive"`
}

// Workshop represents a live workshop with scheduled sessions and a
// capacity-limited student list
type Workshop struct {
	ID               string                               `json:"id" gorm:"primaryKey"`
	CreatedAt        time.Time                            `json:"created_at"`
	UpdatedAt        time.Time                            `json:"updated_at"`
	Title            string                               `json:"title"`
	Description      string                               `json:"description" gorm:"type:text"`
	InstructorID     string                               `json:"instructor_id" gorm:"index"`
	InstructorName   string                               `json:"instructor_name"`
	Category         string                               `json:"category"`
	ThumbnailURL     string                               `json:"thumbnail_url"`
	Sessions         datatypes.JSONSlice[WorkshopSession] `json:"sessions"`
	EnrolledStudents datatypes.JSONSlice[string]          `json:"enrolled_students"`
	MaxStudents      int                                  `json:"max_students" gorm:"default:0"`
	Status           string                               `json:"status" gorm:"default:'upcoming'"` // upcoming, ongoing, completed
	IsDeleted        bool                                 `json:"-" gorm:"default:false"`
}

// HasStudent reports whether the student is already enrolled.
func (w Workshop) HasStudent(studentID string) bool {
	for _, id := range w.EnrolledStudents {
		if id == studentID {
			return true
		}
	}
	return false
}

// IsFull reports whether enrollment reached capacity. A zero MaxStudents
// means unlimited.
func (w Workshop) IsFull() bool {
	return w.MaxStudents > 0 && len(w.EnrolledStudents) >= w.MaxStudents
}
