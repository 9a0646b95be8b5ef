package adminController

import (
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// GetDashboardStats returns platform-wide counts for the admin
// dashboard
func GetDashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalStudents int64
	db.Model(&models.User{}).Where("role = ? AND is_deleted = ?", models.RoleStudent, false).Count(&totalStudents)

	var totalInstructors int64
	db.Model(&models.User{}).Where("role = ? AND is_deleted = ?", models.RoleInstructor, false).Count(&totalInstructors)

	var totalAdmins int64
	db.Model(&models.User{}).Where("role = ? AND is_deleted = ?", models.RoleAdmin, false).Count(&totalAdmins)

	var totalCourses int64
	db.Model(&courseModels.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)

	var publishedCourses int64
	db.Model(&courseModels.Course{}).Where("is_published = ? AND is_deleted = ?", true, false).Count(&publishedCourses)

	var totalWorkshops int64
	db.Model(&courseModels.Workshop{}).Where("is_deleted = ?", false).Count(&totalWorkshops)

	var totalCertificates int64
	db.Model(&models.Certificate{}).Where("is_deleted = ?", false).Count(&totalCertificates)

	// Enrollment lives in the course's JSON payload; sum in memory.
	var courses []courseModels.Course
	db.Where("is_deleted = ?", false).Find(&courses)
	totalEnrollments := 0
	for _, course := range courses {
		totalEnrollments += len(course.EnrolledStudents)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"total_students":     totalStudents,
		"total_instructors":  totalInstructors,
		"total_admins":       totalAdmins,
		"total_courses":      totalCourses,
		"published_courses":  publishedCourses,
		"total_workshops":    totalWorkshops,
		"total_enrollments":  totalEnrollments,
		"total_certificates": totalCertificates,
	})
}

// GetAllUsers lists users for the admin panel with pagination
func GetAllUsers(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedList").(*struct {
		Page  int `json:"page"`
		Limit int `json:"limit"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db.Model(&models.User{}).Where("is_deleted = ?", false)
	if role := c.Query("role"); role != "" {
		db = db.Where("role = ?", role)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to count users!", nil)
	}

	var users []models.User
	offset := (reqData.Page - 1) * reqData.Limit
	if err := db.Order("created_at desc").Offset(offset).Limit(reqData.Limit).Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", fiber.Map{
		"users": users,
		"total": total,
		"page":  reqData.Page,
		"limit": reqData.Limit,
	})
}
