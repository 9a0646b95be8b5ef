package workshopValidator

import (
	"strings"
	"time"

	"lms/middleware"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
)

// WorkshopID validates the :workshop_id route param
func WorkshopID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		workshopID := strings.TrimSpace(c.Params("workshop_id"))
		if workshopID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Workshop id is required!", nil)
		}

		c.Locals("workshopID", workshopID)
		return c.Next()
	}
}

// SessionID validates the :session_id route param
func SessionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := strings.TrimSpace(c.Params("session_id"))
		if sessionID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Session id is required!", nil)
		}

		c.Locals("sessionID", sessionID)
		return c.Next()
	}
}

// CommentID validates the :comment_id route param
func CommentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		commentID := strings.TrimSpace(c.Params("comment_id"))
		if commentID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Comment id is required!", nil)
		}

		c.Locals("commentID", commentID)
		return c.Next()
	}
}

func validateSessions(sessions []courseModels.WorkshopSession, errors map[string]string) {
	for _, session := range sessions {
		if _, err := time.Parse("2006-01-02", session.Date); err != nil {
			errors["sessions"] = "Session date must be in YYYY-MM-DD format!"
			return
		}
		if _, err := time.Parse("15:04", session.StartTime); err != nil {
			errors["sessions"] = "Session start time must be in HH:MM format!"
			return
		}
		if _, err := time.Parse("15:04", session.EndTime); err != nil {
			errors["sessions"] = "Session end time must be in HH:MM format!"
			return
		}
	}
}

func CreateWorkshop() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title        string                         `json:"title"`
			Description  string                         `json:"description"`
			Category     string                         `json:"category"`
			ThumbnailURL string                         `json:"thumbnail_url"`
			MaxStudents  int                            `json:"max_students"`
			Sessions     []courseModels.WorkshopSession `json:"sessions"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Title
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		} else if len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}

		// Validate Category
		if strings.TrimSpace(reqData.Category) == "" {
			errors["category"] = "Category is required!"
		}

		// Validate MaxStudents
		if reqData.MaxStudents < 0 {
			errors["max_students"] = "Max students cannot be negative!"
		}

		// Validate Sessions
		if len(reqData.Sessions) == 0 {
			errors["sessions"] = "At least one session is required!"
		} else {
			validateSessions(reqData.Sessions, errors)
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedWorkshop", reqData)
		return c.Next()
	}
}

func WorkshopUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title        string                         `json:"title"`
			Description  string                         `json:"description"`
			Category     string                         `json:"category"`
			ThumbnailURL string                         `json:"thumbnail_url"`
			MaxStudents  *int                           `json:"max_students"`
			Sessions     []courseModels.WorkshopSession `json:"sessions"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != "" && len(strings.TrimSpace(reqData.Title)) < 3 {
			errors["title"] = "Title must be at least 3 characters long!"
		}
		if reqData.MaxStudents != nil && *reqData.MaxStudents < 0 {
			errors["max_students"] = "Max students cannot be negative!"
		}
		if reqData.Sessions != nil {
			validateSessions(reqData.Sessions, errors)
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedWorkshopUpdate", reqData)
		return c.Next()
	}
}

// LiveStatus validates the session go-live body
func LiveStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			IsLive       bool   `json:"is_live"`
			VimeoLiveURL string `json:"vimeo_live_url"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.VimeoLiveURL != "" && !strings.HasPrefix(reqData.VimeoLiveURL, "http") {
			errors["vimeo_live_url"] = "Live URL must be an http(s) URL!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLiveStatus", reqData)
		return c.Next()
	}
}

// Comment validates the workshop comment body
func Comment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Message string `json:"message"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Message) == "" {
			errors["message"] = "Message is required!"
		} else if len(reqData.Message) > 2000 {
			errors["message"] = "Message must be at most 2000 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedComment", reqData)
		return c.Next()
	}
}
