package tenantController

import (
	"aptivo/database"
	"aptivo/middleware"
	"aptivo/models"

	"github.com/gofiber/fiber/v2"
)

// CreateUniversity registers a new university tenant
func CreateUniversity(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedUniversity").(*struct {
		Name  string `json:"name"`
		Code  string `json:"code"`
		City  string `json:"city"`
		State string `json:"state"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if err := database.Database.Db.Where("code = ? AND is_deleted = ?", reqData.Code, false).First(&models.University{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "University code already exists!", nil)
	}

	university := models.University{
		Name:  reqData.Name,
		Code:  reqData.Code,
		City:  reqData.City,
		State: reqData.State,
	}

	if err := database.Database.Db.Create(&university).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create university!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "University created successfully!", university)
}

// GetUniversityList lists all universities
func GetUniversityList(c *fiber.Ctx) error {
	var universities []models.University
	if err := database.Database.Db.Where("is_deleted = ?", false).
		Order("name asc").Find(&universities).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch universities!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Universities fetched successfully!", universities)
}

// CreateInstitution registers an institution under a university
func CreateInstitution(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedInstitution").(*struct {
		UniversityID uint   `json:"university_id"`
		Name         string `json:"name"`
		Code         string `json:"code"`
		City         string `json:"city"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var university models.University
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.UniversityID, false).First(&university).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "University not found!", nil)
	}

	institution := models.Institution{
		UniversityID: reqData.UniversityID,
		Name:         reqData.Name,
		Code:         reqData.Code,
		City:         reqData.City,
	}

	if err := database.Database.Db.Create(&institution).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create institution!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Institution created successfully!", institution)
}

// GetInstitutionList lists institutions of a university
func GetInstitutionList(c *fiber.Ctx) error {
	universityID := c.Locals("universityID").(int)

	var institutions []models.Institution
	if err := database.Database.Db.Where("university_id = ? AND is_deleted = ?", universityID, false).
		Order("name asc").Find(&institutions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch institutions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Institutions fetched successfully!", institutions)
}
