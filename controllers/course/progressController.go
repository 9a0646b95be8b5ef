package controllers

import (
	"errors"

	"lms/middleware"
	"lms/progress"

	"github.com/gofiber/fiber/v2"
)

// Progress is the progress store shared by the course controllers; wired
// in main against the configured backend.
var Progress *progress.Store

// Watch buffers watch-time reports and flushes them periodically.
var Watch *progress.Flusher

// GetCourseProgress returns the caller's progress record for a course
func GetCourseProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(string)

	record, err := Progress.GetByUserAndCourse(userID, courseID)
	if errors.Is(err, progress.ErrNotFound) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Not enrolled in this course!", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	achievements := make([]fiber.Map, len(record.Achievements))
	for i, id := range record.Achievements {
		details := progress.GetAchievementDetails(id)
		achievements[i] = fiber.Map{
			"id":          id,
			"title":       details.Title,
			"description": details.Description,
			"icon":        details.Icon,
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", fiber.Map{
		"progress":     record,
		"achievements": achievements,
		"time_spent":   progress.FormatTimeSpent(record.TotalTimeSpent),
	})
}

// CompleteLesson marks a lesson complete or incomplete. Unknown lessons
// and missing enrollments are silently ignored to keep the operation
// idempotent for stale clients.
func CompleteLesson(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(string)
	lessonID := c.Locals("lessonID").(string)

	reqData, ok := c.Locals("validatedCompletion").(*struct {
		Completed      bool  `json:"completed"`
		AdditionalTime int64 `json:"additional_time"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := Progress.UpdateLessonCompletion(userID, courseID, lessonID, reqData.Completed, reqData.AdditionalTime); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson progress!", nil)
	}

	record, err := Progress.GetByUserAndCourse(userID, courseID)
	if errors.Is(err, progress.ErrNotFound) {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson progress updated!", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson progress updated!", record)
}

// RecordWatchProgress buffers a watch-time report; the flusher writes it
// through on its next cycle
func RecordWatchProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(string)
	lessonID := c.Locals("lessonID").(string)

	reqData, ok := c.Locals("validatedWatch").(*struct {
		WatchTime       int64 `json:"watch_time"`
		CurrentPosition int64 `json:"current_position"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	Watch.Record(userID, courseID, lessonID, reqData.WatchTime, reqData.CurrentPosition)

	return middleware.JsonResponse(c, fiber.StatusAccepted, true, "Watch progress recorded!", nil)
}

// GetAchievementDetails resolves display metadata for one achievement id
func GetAchievementDetails(c *fiber.Ctx) error {
	achievementID := c.Params("achievement_id")
	details := progress.GetAchievementDetails(achievementID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Achievement details fetched successfully!", fiber.Map{
		"id":          achievementID,
		"title":       details.Title,
		"description": details.Description,
		"icon":        details.Icon,
	})
}
