package database

import (
	"errors"
	"time"

	"lms/progress"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// courseProgressRecord is one progress aggregate per (user, course) pair.
// The payload keeps the same JSON shape as the file-backed store so the
// two backends stay interchangeable.
type courseProgressRecord struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	UserID    string                                        `gorm:"uniqueIndex:idx_progress_user_course;not null"`
	CourseID  string                                        `gorm:"uniqueIndex:idx_progress_user_course;not null"`
	Data      datatypes.JSONType[progress.CourseProgress]
}

// ProgressRepository stores progress records one row per (user, course)
// pair with an atomic per-row upsert, unlike the file store's whole
// collection rewrite.
type ProgressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

func (r *ProgressRepository) GetAll() ([]progress.CourseProgress, error) {
	var rows []courseProgressRecord
	if err := r.db.Order("id asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]progress.CourseProgress, len(rows))
	for i, row := range rows {
		out[i] = row.Data.Data()
	}
	return out, nil
}

func (r *ProgressRepository) GetByUserAndCourse(userID, courseID string) (progress.CourseProgress, error) {
	var row courseProgressRecord
	err := r.db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return progress.CourseProgress{}, progress.ErrNotFound
	}
	if err != nil {
		return progress.CourseProgress{}, err
	}
	return row.Data.Data(), nil
}

func (r *ProgressRepository) GetAllForUser(userID string) ([]progress.CourseProgress, error) {
	var rows []courseProgressRecord
	if err := r.db.Where("user_id = ?", userID).Order("id asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]progress.CourseProgress, len(rows))
	for i, row := range rows {
		out[i] = row.Data.Data()
	}
	return out, nil
}

func (r *ProgressRepository) Upsert(p progress.CourseProgress) error {
	row := courseProgressRecord{
		UserID:   p.UserID,
		CourseID: p.CourseID,
		Data:     datatypes.NewJSONType(p),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "course_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&row).Error
}
