package notificationValidator

import (
	"strings"

	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// NotificationID validates the :notification_id route param
func NotificationID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		notificationID := strings.TrimSpace(c.Params("notification_id"))
		if notificationID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Notification id is required!", nil)
		}

		c.Locals("notificationID", notificationID)
		return c.Next()
	}
}
