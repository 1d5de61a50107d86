package contentController

import (
	"aptivo/database"
	"aptivo/middleware"
	"aptivo/models"

	"github.com/gofiber/fiber/v2"
)

// CreateSubject creates a new subject
func CreateSubject(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSubject").(*struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		OrderIndex  int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	subject := models.Subject{
		Name:        reqData.Name,
		Description: reqData.Description,
		OrderIndex:  reqData.OrderIndex,
	}

	if err := database.Database.Db.Create(&subject).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create subject!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Subject created successfully!", subject)
}

// GetSubjectList lists subjects with their topics
func GetSubjectList(c *fiber.Ctx) error {
	var subjects []models.Subject
	if err := database.Database.Db.Where("is_deleted = ?", false).
		Order("order_index asc").Find(&subjects).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch subjects!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subjects fetched successfully!", subjects)
}

// CreateTopic creates a topic under a subject
func CreateTopic(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedTopic").(*struct {
		SubjectID   uint   `json:"subject_id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		OrderIndex  int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var subject models.Subject
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.SubjectID, false).First(&subject).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subject not found!", nil)
	}

	topic := models.Topic{
		SubjectID:   reqData.SubjectID,
		Name:        reqData.Name,
		Description: reqData.Description,
		OrderIndex:  reqData.OrderIndex,
	}

	if err := database.Database.Db.Create(&topic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create topic!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Topic created successfully!", topic)
}

// GetTopicList lists topics for a subject
func GetTopicList(c *fiber.Ctx) error {
	subjectID := c.Locals("subjectID").(int)

	var topics []models.Topic
	if err := database.Database.Db.Where("subject_id = ? AND is_deleted = ?", subjectID, false).
		Order("order_index asc").Find(&topics).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch topics!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topics fetched successfully!", topics)
}

// CreateSubtopic creates a subtopic under a topic
func CreateSubtopic(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSubtopic").(*struct {
		TopicID     uint   `json:"topic_id"`
		Name        string `json:"name"`
		Description string `json:"description"`
		OrderIndex  int    `json:"order_index"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var topic models.Topic
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.TopicID, false).First(&topic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Topic not found!", nil)
	}

	subtopic := models.Subtopic{
		TopicID:     reqData.TopicID,
		Name:        reqData.Name,
		Description: reqData.Description,
		OrderIndex:  reqData.OrderIndex,
	}

	if err := database.Database.Db.Create(&subtopic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create subtopic!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Subtopic created successfully!", subtopic)
}

// GetSubtopicList lists subtopics for a topic
func GetSubtopicList(c *fiber.Ctx) error {
	topicID := c.Locals("topicID").(int)

	var subtopics []models.Subtopic
	if err := database.Database.Db.Where("topic_id = ? AND is_deleted = ?", topicID, false).
		Order("order_index asc").Find(&subtopics).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch subtopics!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subtopics fetched successfully!", subtopics)
}

// UpdateTopic updates name/description/order of a topic
func UpdateTopic(c *fiber.Ctx) error {
	topicID := c.Locals("topicID").(int)

	reqData := new(struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		OrderIndex  *int   `json:"order_index"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var topic models.Topic
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", topicID, false).First(&topic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Topic not found!", nil)
	}

	if reqData.Name != "" {
		topic.Name = reqData.Name
	}
	if reqData.Description != "" {
		topic.Description = reqData.Description
	}
	if reqData.OrderIndex != nil {
		topic.OrderIndex = *reqData.OrderIndex
	}

	if err := database.Database.Db.Save(&topic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update topic!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topic updated successfully!", topic)
}

// ArchiveTopic flips the active flag of a topic. Archived topics stay in
// the database but drop out of every practice candidate pool.
func ArchiveTopic(c *fiber.Ctx) error {
	topicID := c.Locals("topicID").(int)

	reqData := new(struct {
		IsActive *bool `json:"is_active"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.IsActive == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var topic models.Topic
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", topicID, false).First(&topic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Topic not found!", nil)
	}

	topic.IsActive = *reqData.IsActive
	if err := database.Database.Db.Save(&topic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update topic!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Topic updated successfully!", topic)
}

// ArchiveSubtopic flips the active flag of a subtopic
func ArchiveSubtopic(c *fiber.Ctx) error {
	subtopicID := c.Locals("subtopicID").(int)

	reqData := new(struct {
		IsActive *bool `json:"is_active"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.IsActive == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var subtopic models.Subtopic
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", subtopicID, false).First(&subtopic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subtopic not found!", nil)
	}

	subtopic.IsActive = *reqData.IsActive
	if err := database.Database.Db.Save(&subtopic).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update subtopic!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subtopic updated successfully!", subtopic)
}

// ArchiveSubject flips the active flag of a subject
func ArchiveSubject(c *fiber.Ctx) error {
	subjectID := c.Locals("subjectID").(int)

	reqData := new(struct {
		IsActive *bool `json:"is_active"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.IsActive == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var subject models.Subject
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", subjectID, false).First(&subject).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subject not found!", nil)
	}

	subject.IsActive = *reqData.IsActive
	if err := database.Database.Db.Save(&subject).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update subject!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subject updated successfully!", subject)
}
