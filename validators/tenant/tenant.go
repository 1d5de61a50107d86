package tenantValidator

import (
	"aptivo/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// CreateUniversity validates the university creation payload
func CreateUniversity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name  string `json:"name"`
			Code  string `json:"code"`
			City  string `json:"city"`
			State string `json:"state"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if len(strings.TrimSpace(reqData.Name)) < 3 {
			errors["name"] = "Name must be at least 3 characters long!"
		}

		if strings.TrimSpace(reqData.Code) == "" {
			errors["code"] = "Code is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUniversity", reqData)
		return c.Next()
	}
}

// CreateInstitution validates the institution creation payload
func CreateInstitution() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UniversityID uint   `json:"university_id"`
			Name         string `json:"name"`
			Code         string `json:"code"`
			City         string `json:"city"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UniversityID == 0 {
			errors["university_id"] = "University ID is required!"
		}

		if len(strings.TrimSpace(reqData.Name)) < 3 {
			errors["name"] = "Name must be at least 3 characters long!"
		}

		if strings.TrimSpace(reqData.Code) == "" {
			errors["code"] = "Code is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedInstitution", reqData)
		return c.Next()
	}
}

// CreateSessionConfig validates the session limit configuration payload
func CreateSessionConfig() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UniversityID  uint  `json:"university_id"`
			InstitutionID *uint `json:"institution_id"`
			TopicID       *uint `json:"topic_id"`
			SubtopicID    *uint `json:"subtopic_id"`
			SessionLimit  int   `json:"session_limit"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.UniversityID == 0 {
			errors["university_id"] = "University ID is required!"
		}

		// A config targets a topic or a subtopic, never both
		if reqData.TopicID == nil && reqData.SubtopicID == nil {
			errors["scope"] = "Either topic_id or subtopic_id is required!"
		} else if reqData.TopicID != nil && reqData.SubtopicID != nil {
			errors["scope"] = "Provide topic_id or subtopic_id, not both!"
		}

		if reqData.SessionLimit < 1 {
			errors["session_limit"] = "Session limit must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSessionConfig", reqData)
		return c.Next()
	}
}

// UniversityIDParam validates the :university_id path parameter
func UniversityIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		universityID, err := strconv.Atoi(c.Params("university_id"))
		if err != nil || universityID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid university ID!", nil)
		}

		c.Locals("universityID", universityID)
		return c.Next()
	}
}

// ConfigIDParam validates the :config_id path parameter
func ConfigIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		configID, err := strconv.Atoi(c.Params("config_id"))
		if err != nil || configID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid config ID!", nil)
		}

		c.Locals("configID", configID)
		return c.Next()
	}
}
