package certificateRoutes

import (
	certificateController "lms/controllers/certificate"
	"lms/middleware"
	"lms/models"
	certificateValidator "lms/validators/certificate"
	workshopValidator "lms/validators/workshop"

	"github.com/gofiber/fiber/v2"
)

func SetupCertificateRoutes(app *fiber.App) {
	certificate := app.Group("/certificate")

	certificate.Post("/workshop/:workshop_id/issue", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor, models.RoleAdmin), workshopValidator.WorkshopID(), certificateValidator.IssueCertificates(), certificateController.IssueCertificates)
	certificate.Get("/list", middleware.JWTMiddleware, certificateController.GetStudentCertificates)
	certificate.Get("/workshop/:workshop_id", middleware.JWTMiddleware, workshopValidator.WorkshopID(), certificateController.GetWorkshopCertificate)
}
