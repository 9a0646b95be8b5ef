package course

import (
	"time"

	"gorm.io/datatypes"
)

// Lesson is one entry of a course's fixed lesson list, stored as part of
// the course's JSON payload
type Lesson struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	DurationSeconds int64  `json:"duration_seconds"`
	VideoURL        string `json:"video_url"`
}

// Course represents a learning course
type Course struct {
	ID               string                          `json:"id" gorm:"primaryKey"`
	CreatedAt        time.Time                       `json:"created_at"`
	UpdatedAt        time.Time                       `json:"updated_at"`
	Title            string                          `json:"title"`
	Description      string                          `json:"description" gorm:"type:text"`
	InstructorID     string                          `json:"instructor_id" gorm:"index"`
	InstructorName   string                          `json:"instructor_name"`
	Category         string                          `json:"category"`
	ThumbnailURL     string                          `json:"thumbnail_url"`
	Lessons          datatypes.JSONSlice[Lesson]     `json:"lessons"`
	EnrolledStudents datatypes.JSONSlice[string]     `json:"enrolled_students"`
	IsPublished      bool                            `json:"is_published" gorm:"default:false"`
	IsDeleted        bool                            `json:"-" gorm:"default:false"`
}

// LessonIDs returns the ordered lesson id list handed to the progress
// store at enrollment time.
func (c Course) LessonIDs() []string {
	ids := make([]string, len(c.Lessons))
	for i, l := range c.Lessons {
		ids[i] = l.ID
	}
	return ids
}

// HasStudent reports whether the student is already enrolled.
func (c Course) HasStudent(studentID string) bool {
	for _, id := range c.EnrolledStudents {
		if id == studentID {
			return true
		}
	}
	return false
}
