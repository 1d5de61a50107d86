package questionValidator

import (
	"aptivo/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var validDifficulties = map[string]bool{"EASY": true, "MEDIUM": true, "HARD": true}
var validOptions = map[string]bool{"A": true, "B": true, "C": true, "D": true}

// CreateQuestion validates the question creation payload
func CreateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
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

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// A question attaches to a subtopic or directly to a topic, never both
		if reqData.SubtopicID == nil && reqData.TopicID == nil {
			errors["scope"] = "Either subtopic_id or topic_id is required!"
		} else if reqData.SubtopicID != nil && reqData.TopicID != nil {
			errors["scope"] = "Provide subtopic_id or topic_id, not both!"
		}

		if strings.TrimSpace(reqData.QuestionText) == "" {
			errors["question_text"] = "Question text is required!"
		}

		if reqData.OptionA == "" || reqData.OptionB == "" || reqData.OptionC == "" || reqData.OptionD == "" {
			errors["options"] = "All four options are required!"
		}

		if !validOptions[reqData.CorrectOption] {
			errors["correct_option"] = "Correct option must be A, B, C or D!"
		}

		if reqData.Difficulty != "" && !validDifficulties[reqData.Difficulty] {
			errors["difficulty"] = "Difficulty must be EASY, MEDIUM or HARD!"
		}

		if reqData.PassageGroup != "" && strings.TrimSpace(reqData.PassageText) == "" {
			errors["passage_text"] = "Passage text is required for passage-grouped questions!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuestion", reqData)
		return c.Next()
	}
}

// QuestionList validates list pagination query params
func QuestionList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Page
		if reqData.Page == nil || *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}

		// Validate Limit
		if reqData.Limit == nil || *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}

// QuestionIDParam validates the :question_id path parameter
func QuestionIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		questionID, err := strconv.Atoi(c.Params("question_id"))
		if err != nil || questionID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid question ID!", nil)
		}

		c.Locals("questionID", questionID)
		return c.Next()
	}
}
