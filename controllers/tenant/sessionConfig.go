package tenantController

import (
	"aptivo/database"
	"aptivo/middleware"
	"aptivo/models"

	"github.com/gofiber/fiber/v2"
)

// CreateSessionConfig creates a session-limit override for a university,
// optionally narrowed to one institution, scoped to a topic or a subtopic
func CreateSessionConfig(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSessionConfig").(*struct {
		UniversityID  uint  `json:"university_id"`
		InstitutionID *uint `json:"institution_id"`
		TopicID       *uint `json:"topic_id"`
		SubtopicID    *uint `json:"subtopic_id"`
		SessionLimit  int   `json:"session_limit"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var university models.University
	if err := db.Where("id = ? AND is_deleted = ?", reqData.UniversityID, false).First(&university).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "University not found!", nil)
	}

	if reqData.InstitutionID != nil {
		var institution models.Institution
		if err := db.Where("id = ? AND university_id = ? AND is_deleted = ?", *reqData.InstitutionID, reqData.UniversityID, false).First(&institution).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Institution not found under this university!", nil)
		}
	}

	if reqData.TopicID != nil {
		var topic models.Topic
		if err := db.Where("id = ? AND is_deleted = ?", *reqData.TopicID, false).First(&topic).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Topic not found!", nil)
		}
	} else {
		var subtopic models.Subtopic
		if err := db.Where("id = ? AND is_deleted = ?", *reqData.SubtopicID, false).First(&subtopic).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subtopic not found!", nil)
		}
	}

	// One row per (university, institution, scope); update in place when it
	// already exists.
	query := db.Where("university_id = ? AND is_deleted = ?", reqData.UniversityID, false)
	if reqData.InstitutionID != nil {
		query = query.Where("institution_id = ?", *reqData.InstitutionID)
	} else {
		query = query.Where("institution_id IS NULL")
	}
	if reqData.TopicID != nil {
		query = query.Where("topic_id = ? AND subtopic_id IS NULL", *reqData.TopicID)
	} else {
		query = query.Where("subtopic_id = ? AND topic_id IS NULL", *reqData.SubtopicID)
	}

	var existing models.SessionConfig
	if err := query.First(&existing).Error; err == nil {
		existing.SessionLimit = reqData.SessionLimit
		if err := db.Save(&existing).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update session config!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Session config updated successfully!", existing)
	}

	sessionConfig := models.SessionConfig{
		UniversityID:  reqData.UniversityID,
		InstitutionID: reqData.InstitutionID,
		TopicID:       reqData.TopicID,
		SubtopicID:    reqData.SubtopicID,
		SessionLimit:  reqData.SessionLimit,
	}

	if err := db.Create(&sessionConfig).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create session config!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Session config created successfully!", sessionConfig)
}

// GetSessionConfigList lists session configs for a university
func GetSessionConfigList(c *fiber.Ctx) error {
	universityID := c.Locals("universityID").(int)

	var configs []models.SessionConfig
	if err := database.Database.Db.Where("university_id = ? AND is_deleted = ?", universityID, false).
		Order("id asc").Find(&configs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch session configs!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session configs fetched successfully!", configs)
}

// DeleteSessionConfig soft-deletes a session config row
func DeleteSessionConfig(c *fiber.Ctx) error {
	configID := c.Locals("configID").(int)

	var sessionConfig models.SessionConfig
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", configID, false).First(&sessionConfig).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session config not found!", nil)
	}

	sessionConfig.IsDeleted = true
	if err := database.Database.Db.Save(&sessionConfig).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete session config!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session config deleted successfully!", nil)
}
