package courseValidator

import (
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// LessonCompletion validates the lesson completion toggle body
func LessonCompletion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Completed      bool  `json:"completed"`
			AdditionalTime int64 `json:"additional_time"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Time only ever accumulates
		if reqData.AdditionalTime < 0 {
			errors["additional_time"] = "Additional time cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCompletion", reqData)
		return c.Next()
	}
}

// WatchProgress validates the video watch sample body
func WatchProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			WatchTime       int64 `json:"watch_time"`
			CurrentPosition int64 `json:"current_position"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.WatchTime < 0 {
			errors["watch_time"] = "Watch time cannot be negative!"
		}
		if reqData.CurrentPosition < 0 {
			errors["current_position"] = "Current position cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedWatch", reqData)
		return c.Next()
	}
}
