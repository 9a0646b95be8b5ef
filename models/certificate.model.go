package models

import "time"

// Certificate records a workshop completion certificate issued to a student
type Certificate struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	CreatedAt      time.Time `json:"created_at"`
	WorkshopID     string    `json:"workshop_id" gorm:"index;not null"`
	WorkshopTitle  string    `json:"workshop_title"`
	StudentID      string    `json:"student_id" gorm:"index;not null"`
	StudentName    string    `json:"student_name"`
	InstructorID   string    `json:"instructor_id" gorm:"index"`
	InstructorName string    `json:"instructor_name"`
	IssuedAt       time.Time `json:"issued_at"`
	IsDeleted      bool      `json:"-" gorm:"default:false"`
}
