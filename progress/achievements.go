package progress

// Achievement identifiers. Earned badges are append-only: once unlocked,
// an achievement stays on the record even if its condition later turns
// false again.
const (
	AchievementFirstLesson    = "first_lesson"
	AchievementFiveLessons    = "five_lessons"
	AchievementCourseComplete = "course_complete"
	AchievementWeekStreak     = "week_streak"
	AchievementFiveHours      = "five_hours"
)

// FiveHoursThreshold is the total learning time, in seconds, that unlocks
// the five_hours achievement.
const FiveHoursThreshold = 18000

// AchievementDetails is display metadata for an achievement id.
type AchievementDetails struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

var achievementCatalog = map[string]AchievementDetails{
	AchievementFirstLesson: {
		Title:       "First Steps",
		Description: "Completed your first lesson",
		Icon:        "🎯",
	},
	AchievementFiveLessons: {
		Title:       "Knowledge Seeker",
		Description: "Completed 5 lessons",
		Icon:        "📚",
	},
	AchievementCourseComplete: {
		Title:       "Course Master",
		Description: "Completed an entire course",
		Icon:        "🏆",
	},
	AchievementWeekStreak: {
		Title:       "Consistent Learner",
		Description: "Maintained a 7-day learning streak",
		Icon:        "🔥",
	},
	AchievementFiveHours: {
		Title:       "Time Invested",
		Description: "Spent 5 hours learning",
		Icon:        "⏰",
	},
}

// GetAchievementDetails looks up display metadata for an achievement id.
// Unknown ids map to a generic entry rather than failing.
func GetAchievementDetails(achievementID string) AchievementDetails {
	if details, ok := achievementCatalog[achievementID]; ok {
		return details
	}
	return AchievementDetails{Title: "Achievement", Description: "", Icon: "⭐"}
}

// checkAchievements evaluates every rule against the record after the
// current mutation and returns the previous set plus any newly qualifying
// ids. Awards are idempotent and never revoked.
func checkAchievements(p CourseProgress) []string {
	achievements := make([]string, len(p.Achievements))
	copy(achievements, p.Achievements)

	has := func(id string) bool {
		for _, a := range achievements {
			if a == id {
				return true
			}
		}
		return false
	}

	completedCount := p.CompletedLessons()

	if completedCount >= 1 && !has(AchievementFirstLesson) {
		achievements = append(achievements, AchievementFirstLesson)
	}
	if completedCount >= 5 && !has(AchievementFiveLessons) {
		achievements = append(achievements, AchievementFiveLessons)
	}
	if p.CompletionPercentage == 100 && !has(AchievementCourseComplete) {
		achievements = append(achievements, AchievementCourseComplete)
	}
	if p.CurrentStreak >= 7 && !has(AchievementWeekStreak) {
		achievements = append(achievements, AchievementWeekStreak)
	}
	if p.TotalTimeSpent >= FiveHoursThreshold && !has(AchievementFiveHours) {
		achievements = append(achievements, AchievementFiveHours)
	}

	return achievements
}
