package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestRecord(lessonIDs ...string) CourseProgress {
	return NewCourseProgress("user-1", "course-1", lessonIDs, testNow)
}

func TestNewCourseProgress(t *testing.T) {
	p := newTestRecord("l1", "l2", "l3")

	assert.Equal(t, "user-1", p.UserID)
	assert.Equal(t, "course-1", p.CourseID)
	require.Len(t, p.Lessons, 3)
	for i, id := range []string{"l1", "l2", "l3"} {
		assert.Equal(t, id, p.Lessons[i].LessonID)
		assert.False(t, p.Lessons[i].Completed)
		assert.Zero(t, p.Lessons[i].TimeSpent)
	}
	assert.Equal(t, 0, p.CompletionPercentage)
	assert.Equal(t, 1, p.CurrentStreak)
	assert.Empty(t, p.Achievements)
	assert.Equal(t, testNow, p.EnrolledAt)
	assert.Equal(t, testNow, p.LastAccessedAt)
	require.NotNil(t, p.LastActivityDate)
	assert.Equal(t, testNow, *p.LastActivityDate)
}

func TestApplyLessonCompletion(t *testing.T) {
	p := newTestRecord("l1", "l2")

	updated, ok := ApplyLessonCompletion(p, "l1", true, 120, testNow)
	require.True(t, ok)

	assert.True(t, updated.Lessons[0].Completed)
	require.NotNil(t, updated.Lessons[0].CompletedAt)
	assert.Equal(t, testNow, *updated.Lessons[0].CompletedAt)
	assert.Equal(t, int64(120), updated.Lessons[0].TimeSpent)
	assert.Equal(t, int64(120), updated.TotalTimeSpent)
	assert.Equal(t, 50, updated.CompletionPercentage)
	assert.Equal(t, []string{AchievementFirstLesson}, updated.Achievements)

	// input record untouched
	assert.False(t, p.Lessons[0].Completed)
	assert.Zero(t, p.TotalTimeSpent)
}

func TestApplyLessonCompletionUnknownLesson(t *testing.T) {
	p := newTestRecord("l1")

	updated, ok := ApplyLessonCompletion(p, "nope", true, 60, testNow)
	assert.False(t, ok)
	assert.Equal(t, p, updated)
}

func TestCompletedAtRetainedOnUncomplete(t *testing.T) {
	p := newTestRecord("l1")

	completed, ok := ApplyLessonCompletion(p, "l1", true, 0, testNow)
	require.True(t, ok)
	firstDone := completed.Lessons[0].CompletedAt
	require.NotNil(t, firstDone)

	later := testNow.Add(2 * time.Hour)
	uncompleted, ok := ApplyLessonCompletion(completed, "l1", false, 0, later)
	require.True(t, ok)

	assert.False(t, uncompleted.Lessons[0].Completed)
	require.NotNil(t, uncompleted.Lessons[0].CompletedAt)
	assert.Equal(t, *firstDone, *uncompleted.Lessons[0].CompletedAt)
}

func TestAchievementAwardIsIdempotent(t *testing.T) {
	p := newTestRecord("l1", "l2")

	once, ok := ApplyLessonCompletion(p, "l1", true, 0, testNow)
	require.True(t, ok)
	twice, ok := ApplyLessonCompletion(once, "l1", true, 0, testNow)
	require.True(t, ok)

	assert.Equal(t, []string{AchievementFirstLesson}, twice.Achievements)
}

func TestCompletionPercentageProgression(t *testing.T) {
	p := newTestRecord("l1", "l2", "l3", "l4")
	assert.Equal(t, 0, p.CompletionPercentage)

	p, _ = ApplyLessonCompletion(p, "l1", true, 0, testNow)
	assert.Equal(t, 25, p.CompletionPercentage)

	p, _ = ApplyLessonCompletion(p, "l2", true, 0, testNow)
	assert.Equal(t, 50, p.CompletionPercentage)
}

func TestCalculateCompletionPercentage(t *testing.T) {
	assert.Equal(t, 0, CalculateCompletionPercentage(nil))
	assert.Equal(t, 0, CalculateCompletionPercentage([]LessonProgress{}))

	lessons := []LessonProgress{
		{LessonID: "a", Completed: true},
		{LessonID: "b", Completed: true},
		{LessonID: "c"},
	}
	assert.Equal(t, 67, CalculateCompletionPercentage(lessons))
}

func TestNextStreak(t *testing.T) {
	last := testNow

	t.Run("no prior activity", func(t *testing.T) {
		assert.Equal(t, 1, NextStreak(nil, 5, testNow))
	})
	t.Run("same day", func(t *testing.T) {
		now := last.Add(20 * time.Hour)
		assert.Equal(t, 3, NextStreak(&last, 3, now))
	})
	t.Run("consecutive day", func(t *testing.T) {
		now := last.Add(25 * time.Hour)
		assert.Equal(t, 4, NextStreak(&last, 3, now))
	})
	t.Run("streak broken", func(t *testing.T) {
		now := last.Add(50 * time.Hour)
		assert.Equal(t, 1, NextStreak(&last, 3, now))
	})
}

func TestStreakThroughMutations(t *testing.T) {
	p := newTestRecord("l1", "l2")

	// Same elapsed day leaves the streak alone.
	sameDay, _ := ApplyLessonCompletion(p, "l1", true, 0, testNow.Add(6*time.Hour))
	assert.Equal(t, 1, sameDay.CurrentStreak)

	// 25h later counts as the next day.
	nextDay, _ := ApplyWatchProgress(sameDay, "l2", 30, 30, testNow.Add(6*time.Hour).Add(25*time.Hour))
	assert.Equal(t, 2, nextDay.CurrentStreak)

	// A 50h gap resets.
	broken, _ := ApplyLessonCompletion(nextDay, "l2", true, 0, nextDay.LastActivityDate.Add(50*time.Hour))
	assert.Equal(t, 1, broken.CurrentStreak)
}

func TestWeekStreakAchievement(t *testing.T) {
	p := newTestRecord("l1")
	p.CurrentStreak = 6

	updated, _ := ApplyLessonCompletion(p, "l1", true, 0, testNow.Add(25*time.Hour))
	assert.Equal(t, 7, updated.CurrentStreak)
	assert.Contains(t, updated.Achievements, AchievementWeekStreak)
}

func TestCourseCompleteAchievement(t *testing.T) {
	p := newTestRecord("l1", "l2")

	p, _ = ApplyLessonCompletion(p, "l1", true, 0, testNow)
	assert.NotContains(t, p.Achievements, AchievementCourseComplete)

	p, _ = ApplyLessonCompletion(p, "l2", true, 0, testNow)
	assert.Equal(t, 100, p.CompletionPercentage)
	assert.Contains(t, p.Achievements, AchievementCourseComplete)
}

func TestFiveHoursAchievementThreshold(t *testing.T) {
	p := newTestRecord("l1", "l2", "l3")

	p, _ = ApplyLessonCompletion(p, "l1", true, 17999, testNow)
	assert.NotContains(t, p.Achievements, AchievementFiveHours)
	assert.Equal(t, int64(17999), p.TotalTimeSpent)

	p, _ = ApplyLessonCompletion(p, "l2", true, 1, testNow)
	assert.Contains(t, p.Achievements, AchievementFiveHours)

	// Never revoked, even when later mutations reduce apparent activity.
	p, _ = ApplyLessonCompletion(p, "l1", false, 0, testNow.Add(72*time.Hour))
	assert.Contains(t, p.Achievements, AchievementFiveHours)
	assert.Contains(t, p.Achievements, AchievementFirstLesson)
}

func TestApplyWatchProgress(t *testing.T) {
	p := newTestRecord("l1", "l2")

	p, ok := ApplyWatchProgress(p, "l1", 30, 30, testNow)
	require.True(t, ok)
	p, ok = ApplyWatchProgress(p, "l1", 45, 52, testNow)
	require.True(t, ok)

	lesson := p.Lessons[0]
	assert.Equal(t, int64(75), lesson.VideoWatchTime)
	assert.Equal(t, int64(75), lesson.TimeSpent)
	assert.Equal(t, int64(52), lesson.LastWatchPosition)
	assert.Equal(t, 2, lesson.WatchCount)
	assert.Equal(t, int64(75), p.TotalTimeSpent)

	// Watching never completes lessons or unlocks achievements.
	assert.Equal(t, 0, p.CompletionPercentage)
	assert.Empty(t, p.Achievements)
}

func TestApplyWatchProgressUnknownLesson(t *testing.T) {
	p := newTestRecord("l1")

	updated, ok := ApplyWatchProgress(p, "nope", 30, 30, testNow)
	assert.False(t, ok)
	assert.Equal(t, p, updated)
}

func TestFormatTimeSpent(t *testing.T) {
	assert.Equal(t, "0m", FormatTimeSpent(0))
	assert.Equal(t, "2m", FormatTimeSpent(125))
	assert.Equal(t, "1h 2m", FormatTimeSpent(3725))
	assert.Equal(t, "5h 0m", FormatTimeSpent(18000))
}
