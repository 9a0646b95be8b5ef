package models

import "time"

// Comment is a message posted on a workshop's discussion board
type Comment struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	CreatedAt  time.Time `json:"created_at"`
	WorkshopID string    `json:"workshop_id" gorm:"index;not null"`
	UserID     string    `json:"user_id" gorm:"index;not null"`
	UserName   string    `json:"user_name"`
	Message    string    `json:"message" gorm:"type:text"`
	IsDeleted  bool      `json:"-" gorm:"default:false"`
}
