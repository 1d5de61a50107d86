package questionController

import (
	"aptivo/database"
	"aptivo/middleware"
	"aptivo/models"

	"github.com/gofiber/fiber/v2"
)

// CreateQuestion creates a question under a subtopic or directly under a topic
func CreateQuestion(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedQuestion").(*struct {
		SubtopicID    *uint  `json:"subtopic_id"`
		TopicID       *uint  `json:"topic_id"`
		QuestionText  string `json:"question_text"`
		OptionA       string `json:"option_a"`
		OptionB       string `json:"option_b"`
		OptionC       string `json:"option_c"`
		OptionD       string `json:"option_d"`
		CorrectOption string `json:"correct_option"`
		Explanation   string `json:"explanation"`
		Difficulty    string `json:"difficulty"`
		PassageGroup  string `json:"passage_group"`
		PassageText   string `json:"passage_text"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if reqData.SubtopicID != nil {
		var subtopic models.Subtopic
		if err := db.Where("id = ? AND is_deleted = ?", *reqData.SubtopicID, false).First(&subtopic).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subtopic not found!", nil)
		}
	} else {
		var topic models.Topic
		if err := db.Where("id = ? AND is_deleted = ?", *reqData.TopicID, false).First(&topic).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Topic not found!", nil)
		}
	}

	difficulty := reqData.Difficulty
	if difficulty == "" {
		difficulty = "MEDIUM"
	}

	question := models.Question{
		SubtopicID:    reqData.SubtopicID,
		TopicID:       reqData.TopicID,
		QuestionText:  reqData.QuestionText,
		OptionA:       reqData.OptionA,
		OptionB:       reqData.OptionB,
		OptionC:       reqData.OptionC,
		OptionD:       reqData.OptionD,
		CorrectOption: reqData.CorrectOption,
		Explanation:   reqData.Explanation,
		Difficulty:    difficulty,
		PassageGroup:  reqData.PassageGroup,
		PassageText:   reqData.PassageText,
	}

	if err := db.Create(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Question created successfully!", question)
}

// GetQuestionList lists questions with filters and pagination
func GetQuestionList(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	query := database.Database.Db.Model(&models.Question{}).Where("is_deleted = ?", false)

	if subtopicID := c.QueryInt("subtopic_id"); subtopicID > 0 {
		query = query.Where("subtopic_id = ?", subtopicID)
	}
	if topicID := c.QueryInt("topic_id"); topicID > 0 {
		query = query.Where("topic_id = ?", topicID)
	}
	if difficulty := c.Query("difficulty"); difficulty != "" {
		query = query.Where("difficulty = ?", difficulty)
	}
	if passageGroup := c.Query("passage_group"); passageGroup != "" {
		query = query.Where("passage_group = ?", passageGroup)
	}

	var total int64
	query.Count(&total)

	offset := (*reqData.Page - 1) * (*reqData.Limit)

	var questions []models.Question
	if err := query.Order("id asc").Offset(offset).Limit(*reqData.Limit).Find(&questions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch questions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Questions fetched successfully!", fiber.Map{
		"questions": questions,
		"total":     total,
		"page":      *reqData.Page,
		"limit":     *reqData.Limit,
	})
}

// UpdateQuestion updates an existing question
func UpdateQuestion(c *fiber.Ctx) error {
	questionID := c.Locals("questionID").(int)

	var question models.Question
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	reqData := new(struct {
		QuestionText  string  `json:"question_text"`
		OptionA       string  `json:"option_a"`
		OptionB       string  `json:"option_b"`
		OptionC       string  `json:"option_c"`
		OptionD       string  `json:"option_d"`
		CorrectOption string  `json:"correct_option"`
		Explanation   string  `json:"explanation"`
		Difficulty    string  `json:"difficulty"`
		PassageGroup  *string `json:"passage_group"`
		PassageText   string  `json:"passage_text"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.QuestionText != "" {
		question.QuestionText = reqData.QuestionText
	}
	if reqData.OptionA != "" {
		question.OptionA = reqData.OptionA
	}
	if reqData.OptionB != "" {
		question.OptionB = reqData.OptionB
	}
	if reqData.OptionC != "" {
		question.OptionC = reqData.OptionC
	}
	if reqData.OptionD != "" {
		question.OptionD = reqData.OptionD
	}
	if reqData.CorrectOption != "" {
		question.CorrectOption = reqData.CorrectOption
	}
	if reqData.Explanation != "" {
		question.Explanation = reqData.Explanation
	}
	if reqData.Difficulty != "" {
		question.Difficulty = reqData.Difficulty
	}
	if reqData.PassageGroup != nil {
		question.PassageGroup = *reqData.PassageGroup
	}
	if reqData.PassageText != "" {
		question.PassageText = reqData.PassageText
	}

	if err := database.Database.Db.Save(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question updated successfully!", question)
}

// SetQuestionActive activates or deactivates a question
func SetQuestionActive(c *fiber.Ctx) error {
	questionID := c.Locals("questionID").(int)

	reqData := new(struct {
		IsActive *bool `json:"is_active"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.IsActive == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var question models.Question
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	question.IsActive = *reqData.IsActive
	if err := database.Database.Db.Save(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question updated successfully!", question)
}

// DeleteQuestion soft-deletes a question
func DeleteQuestion(c *fiber.Ctx) error {
	questionID := c.Locals("questionID").(int)

	var question models.Question
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", questionID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Question not found!", nil)
	}

	question.IsDeleted = true
	if err := database.Database.Db.Save(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Question deleted successfully!", nil)
}
