package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetAchievementDetails(t *testing.T) {
	details := GetAchievementDetails(AchievementFirstLesson)
	assert.Equal(t, "First Steps", details.Title)
	assert.Equal(t, "Completed your first lesson", details.Description)
	assert.NotEmpty(t, details.Icon)

	details = GetAchievementDetails(AchievementWeekStreak)
	assert.Equal(t, "Consistent Learner", details.Title)
}

func TestGetAchievementDetailsFallback(t *testing.T) {
	details := GetAchievementDetails("no_such_badge")
	assert.Equal(t, "Achievement", details.Title)
	assert.Empty(t, details.Description)
	assert.NotEmpty(t, details.Icon)
}

func TestCheckAchievementsAppendOrder(t *testing.T) {
	p := newTestRecord("l1", "l2", "l3", "l4", "l5")
	for _, l := range []string{"l1", "l2", "l3", "l4", "l5"} {
		p, _ = ApplyLessonCompletion(p, l, true, 0, testNow)
	}

	// first_lesson lands on the first completion; the rest land together on
	// the fifth, in rule order.
	assert.Equal(t, []string{
		AchievementFirstLesson,
		AchievementFiveLessons,
		AchievementCourseComplete,
	}, p.Achievements)
}
