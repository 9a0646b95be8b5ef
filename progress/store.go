package progress

import (
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned by repositories when no record exists for a
// (userID, courseID) pair.
var ErrNotFound = errors.New("progress record not found")

// ErrAlreadyEnrolled is returned by Initialize when a record for the pair
// already exists.
var ErrAlreadyEnrolled = errors.New("progress record already exists")

// Repository is the storage boundary for progress records. Upsert replaces
// the record for its (userID, courseID) key atomically; implementations
// decide whether that means a per-row database upsert or rewriting a
// whole serialized collection.
type Repository interface {
	GetAll() ([]CourseProgress, error)
	GetByUserAndCourse(userID, courseID string) (CourseProgress, error)
	GetAllForUser(userID string) ([]CourseProgress, error)
	Upsert(p CourseProgress) error
}

// Store coordinates the engine with a Repository. It holds no state of its
// own between calls.
type Store struct {
	repo Repository
	now  func() time.Time
}

func NewStore(repo Repository) *Store {
	return &Store{repo: repo, now: time.Now}
}

// Initialize creates the progress record for an enrollment. Exactly one
// record may exist per (userID, courseID); a second call fails with
// ErrAlreadyEnrolled.
func (s *Store) Initialize(userID, courseID string, lessonIDs []string) (CourseProgress, error) {
	if _, err := s.repo.GetByUserAndCourse(userID, courseID); err == nil {
		return CourseProgress{}, ErrAlreadyEnrolled
	} else if !errors.Is(err, ErrNotFound) {
		return CourseProgress{}, fmt.Errorf("checking existing progress: %w", err)
	}

	record := NewCourseProgress(userID, courseID, lessonIDs, s.now())
	if err := s.repo.Upsert(record); err != nil {
		return CourseProgress{}, fmt.Errorf("saving progress: %w", err)
	}
	return record, nil
}

// GetByUserAndCourse returns the record for the pair, or ErrNotFound.
func (s *Store) GetByUserAndCourse(userID, courseID string) (CourseProgress, error) {
	return s.repo.GetByUserAndCourse(userID, courseID)
}

// GetAllForUser returns every record belonging to the user, in backend
// order.
func (s *Store) GetAllForUser(userID string) ([]CourseProgress, error) {
	return s.repo.GetAllForUser(userID)
}

// UpdateLessonCompletion marks a lesson complete or incomplete and adds
// additionalTime seconds to it. A missing record or lesson id is a silent
// no-op.
func (s *Store) UpdateLessonCompletion(userID, courseID, lessonID string, completed bool, additionalTime int64) error {
	record, err := s.repo.GetByUserAndCourse(userID, courseID)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading progress: %w", err)
	}

	updated, ok := ApplyLessonCompletion(record, lessonID, completed, additionalTime, s.now())
	if !ok {
		return nil
	}
	return s.repo.Upsert(updated)
}

// UpdateWatchProgress accumulates watched seconds on a lesson and records
// the latest playback position. Same not-found semantics as
// UpdateLessonCompletion.
func (s *Store) UpdateWatchProgress(userID, courseID, lessonID string, watchTime, currentPosition int64) error {
	record, err := s.repo.GetByUserAndCourse(userID, courseID)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading progress: %w", err)
	}

	updated, ok := ApplyWatchProgress(record, lessonID, watchTime, currentPosition, s.now())
	if !ok {
		return nil
	}
	return s.repo.Upsert(updated)
}
