package tenantRoutes

import (
	controllers "aptivo/controllers/tenant"
	"aptivo/middleware"
	validators "aptivo/validators/tenant"

	"github.com/gofiber/fiber/v2"
)

// SetupTenantRoutes sets up university, institution and session config routes
func SetupTenantRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/tenant")

	adminGroup.Post("/university", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-tenants"), validators.CreateUniversity(), controllers.CreateUniversity)
	adminGroup.Get("/university/list", middleware.JWTMiddleware, controllers.GetUniversityList)
	adminGroup.Post("/institution", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-tenants"), validators.CreateInstitution(), controllers.CreateInstitution)
	adminGroup.Get("/university/:university_id/institutions", middleware.JWTMiddleware, validators.UniversityIDParam(), controllers.GetInstitutionList)

	configGroup := app.Group("/admin/session-config")

	configGroup.Post("/create", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-session-config"), validators.CreateSessionConfig(), controllers.CreateSessionConfig)
	configGroup.Get("/university/:university_id", middleware.JWTMiddleware, validators.UniversityIDParam(), controllers.GetSessionConfigList)
	configGroup.Delete("/:config_id", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-session-config"), validators.ConfigIDParam(), controllers.DeleteSessionConfig)
}
