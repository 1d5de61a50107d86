package contentValidator

import (
	"aptivo/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateSubject validates the subject creation payload
func CreateSubject() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			OrderIndex  int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		} else if len(strings.TrimSpace(reqData.Name)) < 2 {
			errors["name"] = "Name must be at least 2 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubject", reqData)
		return c.Next()
	}
}

// CreateTopic validates the topic creation payload
func CreateTopic() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			SubjectID   uint   `json:"subject_id"`
			Name        string `json:"name"`
			Description string `json:"description"`
			OrderIndex  int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.SubjectID == 0 {
			errors["subject_id"] = "Subject is required!"
		}
		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTopic", reqData)
		return c.Next()
	}
}

// CreateSubtopic validates the subtopic creation payload
func CreateSubtopic() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			TopicID     uint   `json:"topic_id"`
			Name        string `json:"name"`
			Description string `json:"description"`
			OrderIndex  int    `json:"order_index"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.TopicID == 0 {
			errors["topic_id"] = "Topic is required!"
		}
		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubtopic", reqData)
		return c.Next()
	}
}

// SubjectIDParam validates the :subject_id path parameter
func SubjectIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		subjectID, err := strconv.Atoi(c.Params("subject_id"))
		if err != nil || subjectID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid subject ID!", nil)
		}

		c.Locals("subjectID", subjectID)
		return c.Next()
	}
}

// TopicIDParam validates the :topic_id path parameter
func TopicIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		topicID, err := strconv.Atoi(c.Params("topic_id"))
		if err != nil || topicID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid topic ID!", nil)
		}

		c.Locals("topicID", topicID)
		return c.Next()
	}
}

// SubtopicIDParam validates the :subtopic_id path parameter
func SubtopicIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		subtopicID, err := strconv.Atoi(c.Params("subtopic_id"))
		if err != nil || subtopicID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid subtopic ID!", nil)
		}

		c.Locals("subtopicID", subtopicID)
		return c.Next()
	}
}
