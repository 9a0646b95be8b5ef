package certificateController

import (
	"log"
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// IssueCertificates issues completion certificates to a batch of
// workshop students. Students who already hold one are skipped, so the
// call can be safely repeated.
func IssueCertificates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	workshopID := c.Locals("workshopID").(string)

	var workshop courseModels.Workshop
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", workshopID, false).First(&workshop).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Workshop not found!", nil)
	}

	if workshop.InstructorID != user.ID && user.Role != models.RoleAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only issue certificates for your own workshops!", nil)
	}

	reqData, ok := c.Locals("validatedIssue").(*struct {
		StudentIDs []string `json:"student_ids"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	issued := make([]models.Certificate, 0)
	skipped := 0

	for _, studentID := range reqData.StudentIDs {
		if !workshop.HasStudent(studentID) {
			skipped++
			continue
		}

		var existing models.Certificate
		err := database.Database.Db.Where("workshop_id = ? AND student_id = ? AND is_deleted = ?", workshop.ID, studentID, false).First(&existing).Error
		if err == nil {
			skipped++
			continue
		}

		var student models.User
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", studentID, false).First(&student).Error; err != nil {
			skipped++
			continue
		}

		certificate := models.Certificate{
			ID:             uuid.NewString(),
			CreatedAt:      time.Now(),
			WorkshopID:     workshop.ID,
			WorkshopTitle:  workshop.Title,
			StudentID:      student.ID,
			StudentName:    student.Name,
			InstructorID:   workshop.InstructorID,
			InstructorName: workshop.InstructorName,
			IssuedAt:       time.Now(),
		}

		if err := database.Database.Db.Create(&certificate).Error; err != nil {
			log.Println("[CERTIFICATES] Failed to issue certificate:", err)
			skipped++
			continue
		}

		go func(email, name, title string) {
			if err := utils.SendCertificateEmail(email, name, title); err != nil {
				log.Println("[CERTIFICATES] Failed to send certificate email:", err)
			}
		}(student.Email, student.Name, workshop.Title)

		issued = append(issued, certificate)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates issued successfully!", fiber.Map{
		"issued":  issued,
		"skipped": skipped,
	})
}

// GetStudentCertificates lists the calling student's certificates,
// newest first
func GetStudentCertificates(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var certificates []models.Certificate
	if err := database.Database.Db.Where("student_id = ? AND is_deleted = ?", userID, false).Order("issued_at desc").Find(&certificates).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch certificates!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificates fetched successfully!", certificates)
}

// GetWorkshopCertificate returns the calling student's certificate for
// one workshop
func GetWorkshopCertificate(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	workshopID := c.Locals("workshopID").(string)

	var certificate models.Certificate
	if err := database.Database.Db.Where("workshop_id = ? AND student_id = ? AND is_deleted = ?", workshopID, userID, false).First(&certificate).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Certificate not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Certificate fetched successfully!", certificate)
}
