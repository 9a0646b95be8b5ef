package progress

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRepositoryMissingFile(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "nope.json"))

	records, err := repo.GetAll()
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFileRepositoryMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	repo := NewFileRepository(path)
	records, err := repo.GetAll()
	require.NoError(t, err)
	assert.Empty(t, records)

	// A write after a malformed read starts from an empty collection.
	require.NoError(t, repo.Upsert(NewCourseProgress("u", "c", []string{"l1"}, testNow)))
	records, err = repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestFileRepositoryUpsertReplaces(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "progress.json"))

	first := NewCourseProgress("u", "c", []string{"l1"}, testNow)
	require.NoError(t, repo.Upsert(first))

	updated, ok := ApplyLessonCompletion(first, "l1", true, 60, testNow)
	require.True(t, ok)
	require.NoError(t, repo.Upsert(updated))

	records, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].Lessons[0].Completed)
}

func TestFileRepositoryKeysByUserAndCourse(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "progress.json"))

	require.NoError(t, repo.Upsert(NewCourseProgress("u1", "c1", nil, testNow)))
	require.NoError(t, repo.Upsert(NewCourseProgress("u1", "c2", nil, testNow)))
	require.NoError(t, repo.Upsert(NewCourseProgress("u2", "c1", nil, testNow)))

	records, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, records, 3)

	record, err := repo.GetByUserAndCourse("u1", "c2")
	require.NoError(t, err)
	assert.Equal(t, "c2", record.CourseID)

	_, err = repo.GetByUserAndCourse("u2", "c2")
	assert.ErrorIs(t, err, ErrNotFound)
}
