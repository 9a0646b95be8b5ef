package controllers

import (
	"errors"
	"log"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/progress"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
)

func EnrollInCourse(c *fiber.Ctx) error {
	// Retrieve userId from JWT middleware
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	// Check if user exists
	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(string)

	// Check if course exists and is published
	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ? AND is_published = ?", courseID, false, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found or not published!", nil)
	}

	if course.HasStudent(userID) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
	}

	// Create the progress record; the store enforces one per (user, course)
	record, err := Progress.Initialize(userID, courseID, course.LessonIDs())
	if errors.Is(err, progress.ErrAlreadyEnrolled) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "User already enrolled in this course!", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	course.EnrolledStudents = append(course.EnrolledStudents, userID)
	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	if _, err := utils.CreateNotification(userID, course.ID, course.Title, models.NotificationEnrollment, "You enrolled in "+course.Title); err != nil {
		log.Printf("[ENROLLMENT] Failed to create notification: %v", err)
	}
	go func() {
		if err := utils.SendEnrollmentEmail(user.Email, user.Name, course.Title); err != nil {
			log.Printf("[ENROLLMENT] Failed to send email to %s: %v", user.Email, err)
		}
	}()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", fiber.Map{
		"course":   course,
		"progress": record,
	})
}

// GetMyEnrollments lists the caller's enrollments with their progress
func GetMyEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	records, err := Progress.GetAllForUser(userID)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	type enrollmentWithCourse struct {
		Progress       progress.CourseProgress `json:"progress"`
		CourseTitle    string                  `json:"course_title"`
		CourseCategory string                  `json:"course_category"`
		TimeSpent      string                  `json:"time_spent"`
	}

	result := make([]enrollmentWithCourse, len(records))
	for i, record := range records {
		var course courseModels.Course
		database.Database.Db.Where("id = ?", record.CourseID).First(&course)
		result[i] = enrollmentWithCourse{
			Progress:       record,
			CourseTitle:    course.Title,
			CourseCategory: course.Category,
			TimeSpent:      progress.FormatTimeSpent(record.TotalTimeSpent),
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": result,
		"total":       len(result),
	})
}
