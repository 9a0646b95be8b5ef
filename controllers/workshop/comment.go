package workshopController

import (
	"time"

	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CreateComment posts a comment on a workshop discussion
func CreateComment(c *fiber.Ctx) error {
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

	reqData, ok := c.Locals("validatedComment").(*struct {
		Message string `json:"message"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	comment := models.Comment{
		ID:         uuid.NewString(),
		CreatedAt:  time.Now(),
		WorkshopID: workshop.ID,
		UserID:     user.ID,
		UserName:   user.Name,
		Message:    reqData.Message,
	}

	if err := database.Database.Db.Create(&comment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to post comment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Comment posted successfully!", comment)
}

// GetWorkshopComments lists a workshop's comments, newest first
func GetWorkshopComments(c *fiber.Ctx) error {
	workshopID := c.Locals("workshopID").(string)

	var comments []models.Comment
	if err := database.Database.Db.Where("workshop_id = ? AND is_deleted = ?", workshopID, false).Order("created_at desc").Find(&comments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch comments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comments fetched successfully!", comments)
}

// DeleteComment soft deletes a comment. Only the author or an admin may
// delete; deleting an already gone comment still reports success.
func DeleteComment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	commentID := c.Locals("commentID").(string)

	var comment models.Comment
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", commentID, false).First(&comment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Comment deleted successfully!", nil)
	}

	if comment.UserID != user.ID && user.Role != models.RoleAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only delete your own comments!", nil)
	}

	if err := database.Database.Db.Model(&models.Comment{}).Where("id = ?", comment.ID).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete comment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comment deleted successfully!", nil)
}
