package certificateValidator

import (
	"lms/middleware"

	"github.com/gofiber/fiber/v2"
)

// IssueCertificates validates the bulk issue body
func IssueCertificates() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			StudentIDs []string `json:"student_ids"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(reqData.StudentIDs) == 0 {
			errors["student_ids"] = "At least one student id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedIssue", reqData)
		return c.Next()
	}
}
