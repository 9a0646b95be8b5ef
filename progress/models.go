package progress

import "time"

// LessonProgress tracks a single lesson within an enrollment. Older stored
// records predate the video fields; those decode with the fields zeroed.
type LessonProgress struct {
	LessonID          string     `json:"lessonId"`
	Completed         bool       `json:"completed"`
	CompletedAt       *time.Time `json:"completedAt,omitempty"`
	TimeSpent         int64      `json:"timeSpent"`         // in seconds
	VideoWatchTime    int64      `json:"videoWatchTime"`    // in seconds - actual video watched
	LastWatchPosition int64      `json:"lastWatchPosition"` // in seconds - where user left off
	WatchCount        int        `json:"watchCount"`        // how many times watched
}

// CourseProgress is the aggregate progress record for one (user, course)
// enrollment. The lesson list is fixed at enrollment time.
type CourseProgress struct {
	CourseID             string           `json:"courseId"`
	UserID               string           `json:"userId"`
	EnrolledAt           time.Time        `json:"enrolledAt"`
	LastAccessedAt       time.Time        `json:"lastAccessedAt"`
	TotalTimeSpent       int64            `json:"totalTimeSpent"` // in seconds
	Lessons              []LessonProgress `json:"lessons"`
	CompletionPercentage int              `json:"completionPercentage"`
	CurrentStreak        int              `json:"currentStreak"` // consecutive days of learning
	LastActivityDate     *time.Time       `json:"lastActivityDate,omitempty"`
	Achievements         []string         `json:"achievements"`
}

// NewCourseProgress builds a fresh record with every lesson uncompleted and
// the streak seeded to 1.
func NewCourseProgress(userID, courseID string, lessonIDs []string, now time.Time) CourseProgress {
	lessons := make([]LessonProgress, len(lessonIDs))
	for i, id := range lessonIDs {
		lessons[i] = LessonProgress{LessonID: id}
	}
	activity := now
	return CourseProgress{
		CourseID:         courseID,
		UserID:           userID,
		EnrolledAt:       now,
		LastAccessedAt:   now,
		Lessons:          lessons,
		CurrentStreak:    1,
		LastActivityDate: &activity,
		Achievements:     []string{},
	}
}

// Clone returns a deep copy so engine transformations never alias the
// caller's slices.
func (p CourseProgress) Clone() CourseProgress {
	out := p
	out.Lessons = make([]LessonProgress, len(p.Lessons))
	copy(out.Lessons, p.Lessons)
	out.Achievements = make([]string, len(p.Achievements))
	copy(out.Achievements, p.Achievements)
	if p.LastActivityDate != nil {
		d := *p.LastActivityDate
		out.LastActivityDate = &d
	}
	return out
}

// CompletedLessons counts lessons marked complete.
func (p CourseProgress) CompletedLessons() int {
	count := 0
	for _, l := range p.Lessons {
		if l.Completed {
			count++
		}
	}
	return count
}

func (p CourseProgress) lessonIndex(lessonID string) int {
	for i, l := range p.Lessons {
		if l.LessonID == lessonID {
			return i
		}
	}
	return -1
}
