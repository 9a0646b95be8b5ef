package progress

import (
	"fmt"
	"math"
	"time"
)

// The engine is a set of pure transformations over a CourseProgress record.
// Callers load a record, apply a transition with an explicit "now", and
// persist the result; the engine itself never touches storage.

// ApplyLessonCompletion toggles a lesson's completed flag, accumulates
// additionalTime and recomputes every derived field. The second return is
// false when lessonID does not belong to the record, in which case the
// input is returned unchanged.
func ApplyLessonCompletion(p CourseProgress, lessonID string, completed bool, additionalTime int64, now time.Time) (CourseProgress, bool) {
	idx := p.lessonIndex(lessonID)
	if idx < 0 {
		return p, false
	}

	out := p.Clone()
	lesson := &out.Lessons[idx]
	lesson.Completed = completed
	if completed {
		done := now
		lesson.CompletedAt = &done
	}
	// CompletedAt is kept as-is when un-completing; the timestamp records
	// the first completion, not the current flag.
	lesson.TimeSpent += additionalTime

	// Streak is computed against the previous activity date, before stamping.
	out.CurrentStreak = NextStreak(out.LastActivityDate, out.CurrentStreak, now)
	activity := now
	out.LastAccessedAt = now
	out.LastActivityDate = &activity
	out.TotalTimeSpent += additionalTime
	out.CompletionPercentage = CalculateCompletionPercentage(out.Lessons)
	out.Achievements = checkAchievements(out)

	return out, true
}

// ApplyWatchProgress accumulates video watch time on a lesson. Every call
// counts as one watch event and overwrites the last watch position with
// the reported one. Completion percentage and achievements are left alone;
// watching video does not by itself complete a lesson.
func ApplyWatchProgress(p CourseProgress, lessonID string, watchTime, currentPosition int64, now time.Time) (CourseProgress, bool) {
	idx := p.lessonIndex(lessonID)
	if idx < 0 {
		return p, false
	}

	out := p.Clone()
	lesson := &out.Lessons[idx]
	lesson.VideoWatchTime += watchTime
	lesson.LastWatchPosition = currentPosition
	lesson.WatchCount++
	lesson.TimeSpent += watchTime

	out.CurrentStreak = NextStreak(out.LastActivityDate, out.CurrentStreak, now)
	activity := now
	out.LastAccessedAt = now
	out.LastActivityDate = &activity
	out.TotalTimeSpent += watchTime

	return out, true
}

// NextStreak computes the streak that results from activity at "now" given
// the previous activity date. Day boundaries are elapsed 24h periods, not
// local midnights: two activities 20 hours apart count as the same day
// regardless of the calendar date.
func NextStreak(lastActivity *time.Time, current int, now time.Time) int {
	if lastActivity == nil {
		return 1
	}
	diffInDays := int(math.Floor(now.Sub(*lastActivity).Hours() / 24))
	switch {
	case diffInDays == 0:
		// Same day, maintain streak
		return current
	case diffInDays == 1:
		// Consecutive day, increase streak
		return current + 1
	default:
		// Streak broken, reset to 1
		return 1
	}
}

// CalculateCompletionPercentage returns round(100 * completed / total),
// or 0 for an empty lesson list.
func CalculateCompletionPercentage(lessons []LessonProgress) int {
	if len(lessons) == 0 {
		return 0
	}
	completed := 0
	for _, l := range lessons {
		if l.Completed {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(lessons)) * 100))
}

// FormatTimeSpent renders accumulated seconds as "Xh Ym", or "Ym" under an
// hour.
func FormatTimeSpent(seconds int64) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
