package utils

import (
	"log"
	"time"

	"lms/database"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/google/uuid"
)

// CreateNotification writes one inbox entry for a user
func CreateNotification(userID, courseID, courseTitle, notifType, message string) (models.Notification, error) {
	notification := models.Notification{
		ID:          uuid.NewString(),
		CreatedAt:   time.Now(),
		UserID:      userID,
		CourseID:    courseID,
		CourseTitle: courseTitle,
		Type:        notifType,
		Message:     message,
	}
	if err := database.Database.Db.Create(&notification).Error; err != nil {
		return models.Notification{}, err
	}
	return notification, nil
}

// NotifyEnrolledStudents fans a course_update notification out to every
// student enrolled in the course
func NotifyEnrolledStudents(courseID, courseTitle, message string) {
	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		log.Printf("[NOTIFICATIONS] Course %s not found for fan-out: %v", courseID, err)
		return
	}

	for _, studentID := range course.EnrolledStudents {
		if _, err := CreateNotification(studentID, courseID, courseTitle, models.NotificationCourseUpdate, message); err != nil {
			log.Printf("[NOTIFICATIONS] Failed to notify student %s: %v", studentID, err)
		}
	}
}

// NotifyAllStudents fans a notification out to every active student
// account, used when a new course is published
func NotifyAllStudents(courseID, courseTitle, notifType, message string) {
	var students []models.User
	if err := database.Database.Db.Where("role = ? AND is_deleted = ?", models.RoleStudent, false).Find(&students).Error; err != nil {
		log.Printf("[NOTIFICATIONS] Failed to load students for fan-out: %v", err)
		return
	}

	for _, student := range students {
		if _, err := CreateNotification(student.ID, courseID, courseTitle, notifType, message); err != nil {
			log.Printf("[NOTIFICATIONS] Failed to notify student %s: %v", student.ID, err)
		}
	}
}
