package practiceValidator

import (
	"aptivo/middleware"
	"aptivo/practice"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var validSelections = map[string]bool{"A": true, "B": true, "C": true, "D": true}

// StartSession validates the practice session request and resolves its content scope
func StartSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			TopicID    *uint `json:"topic_id"`
			SubtopicID *uint `json:"subtopic_id"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		var scope practice.ContentScope
		if reqData.TopicID == nil && reqData.SubtopicID == nil {
			errors["scope"] = "Either topic_id or subtopic_id is required!"
		} else if reqData.TopicID != nil && reqData.SubtopicID != nil {
			errors["scope"] = "Provide topic_id or subtopic_id, not both!"
		} else if reqData.TopicID != nil {
			if *reqData.TopicID == 0 {
				errors["topic_id"] = "Topic ID must be greater than 0!"
			} else {
				scope = practice.TopicScope(*reqData.TopicID)
			}
		} else {
			if *reqData.SubtopicID == 0 {
				errors["subtopic_id"] = "Subtopic ID must be greater than 0!"
			} else {
				scope = practice.SubtopicScope(*reqData.SubtopicID)
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedScope", scope)
		return c.Next()
	}
}

// SubmitSession validates the session submission payload
func SubmitSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ReferenceID string `json:"reference_id"`
			Answers     []struct {
				QuestionID     uint   `json:"question_id"`
				SelectedOption string `json:"selected_option"`
			} `json:"answers"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.ReferenceID) == "" {
			errors["reference_id"] = "Reference ID is required!"
		}

		if len(reqData.Answers) == 0 {
			errors["answers"] = "At least one answer is required!"
		}

		// One answer per question; duplicates would double-count in the
		// session aggregates.
		seen := make(map[uint]bool, len(reqData.Answers))
		for _, answer := range reqData.Answers {
			if answer.QuestionID == 0 {
				errors["answers"] = "Each answer requires a question ID!"
				break
			}
			if seen[answer.QuestionID] {
				errors["answers"] = "Duplicate answer for the same question!"
				break
			}
			seen[answer.QuestionID] = true
			if !validSelections[answer.SelectedOption] {
				errors["answers"] = "Selected option must be A, B, C or D!"
				break
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}
