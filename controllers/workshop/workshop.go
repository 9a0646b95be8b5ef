package workshopController

import (
	"time"

	"lms/config"
	"lms/database"
	"lms/middleware"
	"lms/models"
	courseModels "lms/models/course"

	"github.com/go-resty/resty/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CreateWorkshop creates a workshop owned by the calling instructor
func CreateWorkshop(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedWorkshop").(*struct {
		Title        string                         `json:"title"`
		Description  string                         `json:"description"`
		Category     string                         `json:"category"`
		ThumbnailURL string                         `json:"thumbnail_url"`
		MaxStudents  int                            `json:"max_students"`
		Sessions     []courseModels.WorkshopSession `json:"sessions"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	sessions := reqData.Sessions
	for i := range sessions {
		if sessions[i].ID == "" {
			sessions[i].ID = uuid.NewString()
		}
		sessions[i].IsLive = false
	}

	workshop := courseModels.Workshop{
		ID:               uuid.NewString(),
		CreatedAt:        time.Now(),
		Title:            reqData.Title,
		Description:      reqData.Description,
		InstructorID:     user.ID,
		InstructorName:   user.Name,
		Category:         reqData.Category,
		ThumbnailURL:     reqData.ThumbnailURL,
		Sessions:         datatypes.NewJSONSlice(sessions),
		EnrolledStudents: datatypes.NewJSONSlice([]string{}),
		MaxStudents:      reqData.MaxStudents,
		Status:           courseModels.WorkshopUpcoming,
	}

	if err := database.Database.Db.Create(&workshop).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create workshop!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Workshop created successfully!", workshop)
}

// GetWorkshops lists all workshops
func GetWorkshops(c *fiber.Ctx) error {
	db := database.Database.Db.Where("is_deleted = ?", false)

	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}
	if category := c.Query("category"); category != "" {
		db = db.Where("category = ?", category)
	}

	var workshops []courseModels.Workshop
	if err := db.Order("created_at desc").Find(&workshops).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch workshops!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Workshops fetched successfully!", workshops)
}

// GetWorkshopByID gets one workshop
func GetWorkshopByID(c *fiber.Ctx) error {
	workshopID := c.Locals("workshopID").(string)

	var workshop courseModels.Workshop
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", workshopID, false).First(&workshop).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Workshop not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Workshop fetched successfully!", workshop)
}

// GetInstructorWorkshops lists the calling instructor's workshops
func GetInstructorWorkshops(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var workshops []courseModels.Workshop
	if err := database.Database.Db.Where("instructor_id = ? AND is_deleted = ?", userID, false).Order("created_at desc").Find(&workshops).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch workshops!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Workshops fetched successfully!", workshops)
}

// GetEnrolledWorkshops lists workshops the calling student is enrolled in
func GetEnrolledWorkshops(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var workshops []courseModels.Workshop
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("created_at desc").Find(&workshops).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch workshops!", nil)
	}

	// Enrollment lives in the JSON payload; filter in memory.
	enrolled := make([]courseModels.Workshop, 0)
	for _, w := range workshops {
		if w.HasStudent(userID) {
			enrolled = append(enrolled, w)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Workshops fetched successfully!", enrolled)
}

// UpdateWorkshop updates workshop metadata and sessions
func UpdateWorkshop(c *fiber.Ctx) error {
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
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only update your own workshops!", nil)
	}

	reqData, ok := c.Locals("validatedWorkshopUpdate").(*struct {
		Title        string                         `json:"title"`
		Description  string                         `json:"description"`
		Category     string                         `json:"category"`
		ThumbnailURL string                         `json:"thumbnail_url"`
		MaxStudents  *int                           `json:"max_students"`
		Sessions     []courseModels.WorkshopSession `json:"sessions"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Title != "" {
		workshop.Title = reqData.Title
	}
	if reqData.Description != "" {
		workshop.Description = reqData.Description
	}
	if reqData.Category != "" {
		workshop.Category = reqData.Category
	}
	if reqData.ThumbnailURL != "" {
		workshop.ThumbnailURL = reqData.ThumbnailURL
	}
	if reqData.MaxStudents != nil {
		workshop.MaxStudents = *reqData.MaxStudents
	}
	if reqData.Sessions != nil {
		sessions := reqData.Sessions
		for i := range sessions {
			if sessions[i].ID == "" {
				sessions[i].ID = uuid.NewString()
			}
		}
		workshop.Sessions = datatypes.NewJSONSlice(sessions)
	}

	if err := database.Database.Db.Save(&workshop).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update workshop!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Workshop updated successfully!", workshop)
}

// DeleteWorkshop soft deletes a workshop
func DeleteWorkshop(c *fiber.Ctx) error {
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
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only delete your own workshops!", nil)
	}

	if err := database.Database.Db.Model(&courseModels.Workshop{}).Where("id = ?", workshop.ID).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete workshop!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Workshop deleted successfully!", nil)
}

// EnrollInWorkshop adds the calling student to a workshop, enforcing
// capacity
func EnrollInWorkshop(c *fiber.Ctx) error {
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

	if workshop.HasStudent(userID) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this workshop!", nil)
	}
	if workshop.IsFull() {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Workshop is full!", nil)
	}

	workshop.EnrolledStudents = append(workshop.EnrolledStudents, userID)
	if err := database.Database.Db.Save(&workshop).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in workshop!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in workshop successfully!", workshop)
}

// UpdateSessionLiveStatus turns a session's live flag on or off. Going
// live with a stream URL probes the URL first and rejects dead links.
func UpdateSessionLiveStatus(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(string)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	workshopID := c.Locals("workshopID").(string)
	sessionID := c.Locals("sessionID").(string)

	var workshop courseModels.Workshop
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", workshopID, false).First(&workshop).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Workshop not found!", nil)
	}

	if workshop.InstructorID != user.ID && user.Role != models.RoleAdmin {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only manage your own workshops!", nil)
	}

	reqData, ok := c.Locals("validatedLiveStatus").(*struct {
		IsLive       bool   `json:"is_live"`
		VimeoLiveURL string `json:"vimeo_live_url"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.IsLive && reqData.VimeoLiveURL != "" && !probeLiveURL(reqData.VimeoLiveURL) {
		return middleware.JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Live stream URL is not reachable!", nil)
	}

	sessions := []courseModels.WorkshopSession(workshop.Sessions)
	found := false
	for i := range sessions {
		if sessions[i].ID != sessionID {
			continue
		}
		sessions[i].IsLive = reqData.IsLive
		if reqData.VimeoLiveURL != "" {
			sessions[i].VimeoLiveURL = reqData.VimeoLiveURL
		}
		found = true
		break
	}
	if !found {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not found!", nil)
	}

	workshop.Sessions = datatypes.NewJSONSlice(sessions)
	if err := database.Database.Db.Save(&workshop).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session live status updated!", workshop)
}

// probeLiveURL checks that a live stream URL answers before students get
// pointed at it
func probeLiveURL(url string) bool {
	client := resty.New().
		SetTimeout(time.Duration(config.AppConfig.LiveProbeTimeout) * time.Second)

	resp, err := client.R().Head(url)
	if err != nil {
		return false
	}
	return resp.StatusCode() < 400
}
