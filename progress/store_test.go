package progress

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "progress.json")
	store := NewStore(NewFileRepository(path))
	store.now = func() time.Time { return testNow }
	return store, path
}

func TestStoreInitialize(t *testing.T) {
	store, _ := newTestStore(t)

	record, err := store.Initialize("user-1", "course-1", []string{"l1", "l2", "l3"})
	require.NoError(t, err)

	require.Len(t, record.Lessons, 3)
	for _, l := range record.Lessons {
		assert.False(t, l.Completed)
	}
	assert.Equal(t, 0, record.CompletionPercentage)
	assert.Equal(t, 1, record.CurrentStreak)
	assert.Empty(t, record.Achievements)

	loaded, err := store.GetByUserAndCourse("user-1", "course-1")
	require.NoError(t, err)
	assert.Equal(t, record, loaded)
}

func TestStoreInitializeDuplicate(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Initialize("user-1", "course-1", []string{"l1"})
	require.NoError(t, err)

	_, err = store.Initialize("user-1", "course-1", []string{"l1"})
	assert.ErrorIs(t, err, ErrAlreadyEnrolled)
}

func TestStoreGetByUserAndCourseNotFound(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.GetByUserAndCourse("user-1", "course-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreGetAllForUser(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Initialize("user-1", "course-1", []string{"l1"})
	require.NoError(t, err)
	_, err = store.Initialize("user-1", "course-2", []string{"l1"})
	require.NoError(t, err)
	_, err = store.Initialize("user-2", "course-1", []string{"l1"})
	require.NoError(t, err)

	records, err := store.GetAllForUser("user-1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	for _, r := range records {
		assert.Equal(t, "user-1", r.UserID)
	}
}

func TestStoreUpdateLessonCompletion(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Initialize("user-1", "course-1", []string{"l1", "l2"})
	require.NoError(t, err)

	require.NoError(t, store.UpdateLessonCompletion("user-1", "course-1", "l1", true, 300))

	record, err := store.GetByUserAndCourse("user-1", "course-1")
	require.NoError(t, err)
	assert.True(t, record.Lessons[0].Completed)
	assert.Equal(t, int64(300), record.TotalTimeSpent)
	assert.Equal(t, 50, record.CompletionPercentage)
	assert.Equal(t, []string{AchievementFirstLesson}, record.Achievements)
}

func TestStoreUpdateMissingRecordIsNoOp(t *testing.T) {
	store, path := newTestStore(t)

	_, err := store.Initialize("user-1", "course-1", []string{"l1"})
	require.NoError(t, err)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, store.UpdateLessonCompletion("missing-user", "course-1", "l1", true, 0))
	require.NoError(t, store.UpdateWatchProgress("user-1", "missing-course", "l1", 30, 30))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestStoreUpdateMissingLessonIsNoOp(t *testing.T) {
	store, path := newTestStore(t)

	_, err := store.Initialize("user-1", "course-1", []string{"l1"})
	require.NoError(t, err)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, store.UpdateLessonCompletion("user-1", "course-1", "missing-lesson", true, 0))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestStoreWatchAccumulation(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Initialize("user-1", "course-1", []string{"l1", "l2"})
	require.NoError(t, err)

	require.NoError(t, store.UpdateWatchProgress("user-1", "course-1", "l1", 30, 30))
	require.NoError(t, store.UpdateWatchProgress("user-1", "course-1", "l1", 45, 75))

	record, err := store.GetByUserAndCourse("user-1", "course-1")
	require.NoError(t, err)
	lesson := record.Lessons[0]
	assert.Equal(t, int64(75), lesson.VideoWatchTime)
	assert.Equal(t, int64(75), lesson.TimeSpent)
	assert.Equal(t, int64(75), lesson.LastWatchPosition)
	assert.Equal(t, 2, lesson.WatchCount)
	assert.Equal(t, int64(75), record.TotalTimeSpent)
	assert.Equal(t, 0, record.CompletionPercentage)
}
