package notificationRoutes

import (
	notificationController "lms/controllers/notification"
	"lms/middleware"
	notificationValidator "lms/validators/notification"

	"github.com/gofiber/fiber/v2"
)

func SetupNotificationRoutes(app *fiber.App) {
	notification := app.Group("/notification")

	notification.Get("/list", middleware.JWTMiddleware, notificationController.GetNotifications)
	notification.Get("/unread-count", middleware.JWTMiddleware, notificationController.GetUnreadCount)
	notification.Put("/:notification_id/read", middleware.JWTMiddleware, notificationValidator.NotificationID(), notificationController.MarkAsRead)
	notification.Put("/read-all", middleware.JWTMiddleware, notificationController.MarkAllAsRead)
}
