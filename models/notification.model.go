package models

import "time"

// Notification types
const (
	NotificationCourseUpdate  = "course_update"
	NotificationCourseCreated = "course_created"
	NotificationEnrollment    = "enrollment"
)

// Notification is a per-user inbox entry about course activity
type Notification struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	CreatedAt   time.Time `json:"created_at"`
	UserID      string    `json:"user_id" gorm:"index;not null"`
	CourseID    string    `json:"course_id" gorm:"index"`
	CourseTitle string    `json:"course_title"`
	Type        string    `json:"type"` // course_update, course_created, enrollment
	Message     string    `json:"message"`
	Read        bool      `json:"read" gorm:"default:false"`
}
