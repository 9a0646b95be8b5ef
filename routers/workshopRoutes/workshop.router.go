package workshopRoutes

import (
	workshopController "lms/controllers/workshop"
	"lms/middleware"
	"lms/models"
	workshopValidator "lms/validators/workshop"

	"github.com/gofiber/fiber/v2"
)

// SetupWorkshopRoutes sets up workshop, session and discussion routes
func SetupWorkshopRoutes(app *fiber.App) {
	workshop := app.Group("/workshop")

	workshop.Post("/create", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor, models.RoleAdmin), workshopValidator.CreateWorkshop(), workshopController.CreateWorkshop)
	workshop.Get("/list", middleware.JWTMiddleware, workshopController.GetWorkshops)
	workshop.Get("/mine", middleware.JWTMiddleware, middleware.RequireRole(models.RoleInstructor, models.RoleAdmin), workshopController.GetInstructorWorkshops)
	workshop.Get("/enrolled", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), workshopController.GetEnrolledWorkshops)
	workshop.Get("/:workshop_id", middleware.JWTMiddleware, workshopValidator.WorkshopID(), workshopController.GetWorkshopByID)
	workshop.Put("/:workshop_id", middleware.JWTMiddleware, workshopValidator.WorkshopID(), workshopValidator.WorkshopUpdate(), workshopController.UpdateWorkshop)
	workshop.Delete("/:workshop_id", middleware.JWTMiddleware, workshopValidator.WorkshopID(), workshopController.DeleteWorkshop)

	// Enrollment & sessions
	workshop.Post("/:workshop_id/enroll", middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), workshopValidator.WorkshopID(), workshopController.EnrollInWorkshop)
	workshop.Put("/:workshop_id/session/:session_id/live", middleware.JWTMiddleware, workshopValidator.WorkshopID(), workshopValidator.SessionID(), workshopValidator.LiveStatus(), workshopController.UpdateSessionLiveStatus)

	// Discussion
	workshop.Post("/:workshop_id/comment", middleware.JWTMiddleware, workshopValidator.WorkshopID(), workshopValidator.Comment(), workshopController.CreateComment)
	workshop.Get("/:workshop_id/comments", middleware.JWTMiddleware, workshopValidator.WorkshopID(), workshopController.GetWorkshopComments)
	app.Delete("/comment/:comment_id", middleware.JWTMiddleware, workshopValidator.CommentID(), workshopController.DeleteComment)
}
