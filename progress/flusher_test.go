package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlusherMergesSamples(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.Initialize("user-1", "course-1", []string{"l1"})
	require.NoError(t, err)

	f := NewFlusher(store, time.Hour)
	f.Record("user-1", "course-1", "l1", 30, 30)
	f.Record("user-1", "course-1", "l1", 45, 52)
	f.Flush()

	record, err := store.GetByUserAndCourse("user-1", "course-1")
	require.NoError(t, err)
	lesson := record.Lessons[0]
	// Samples buffered between flushes collapse into one watch event.
	assert.Equal(t, int64(75), lesson.VideoWatchTime)
	assert.Equal(t, int64(52), lesson.LastWatchPosition)
	assert.Equal(t, 1, lesson.WatchCount)
}

func TestFlusherFlushClearsPending(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.Initialize("user-1", "course-1", []string{"l1"})
	require.NoError(t, err)

	f := NewFlusher(store, time.Hour)
	f.Record("user-1", "course-1", "l1", 30, 30)
	f.Flush()
	f.Flush()

	record, err := store.GetByUserAndCourse("user-1", "course-1")
	require.NoError(t, err)
	assert.Equal(t, 1, record.Lessons[0].WatchCount)
	assert.Equal(t, int64(30), record.Lessons[0].VideoWatchTime)
}

func TestFlusherStopFlushesRemainder(t *testing.T) {
	store, _ := newTestStore(t)
	_, err := store.Initialize("user-1", "course-1", []string{"l1"})
	require.NoError(t, err)

	f := NewFlusher(store, time.Hour)
	f.Start()
	f.Record("user-1", "course-1", "l1", 15, 15)
	f.Stop()

	record, err := store.GetByUserAndCourse("user-1", "course-1")
	require.NoError(t, err)
	assert.Equal(t, int64(15), record.Lessons[0].VideoWatchTime)
}

func TestFlusherDropsUnknownTargets(t *testing.T) {
	store, _ := newTestStore(t)

	f := NewFlusher(store, time.Hour)
	f.Record("ghost", "course-1", "l1", 30, 30)
	// Flushing against a missing record is the store's silent no-op.
	f.Flush()

	records, err := store.GetAllForUser("ghost")
	require.NoError(t, err)
	assert.Empty(t, records)
}
