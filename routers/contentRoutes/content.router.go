package contentRoutes

import (
	controllers "aptivo/controllers/content"
	"aptivo/middleware"
	validators "aptivo/validators/content"

	"github.com/gofiber/fiber/v2"
)

// SetupContentRoutes sets up the admin content hierarchy routes
func SetupContentRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/content")

	// Subjects
	adminGroup.Post("/subject", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-content"), validators.CreateSubject(), controllers.CreateSubject)
	adminGroup.Get("/subject/list", middleware.JWTMiddleware, controllers.GetSubjectList)
	adminGroup.Patch("/subject/:subject_id/active", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-content"), validators.SubjectIDParam(), controllers.ArchiveSubject)

	// Topics
	adminGroup.Post("/topic", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-content"), validators.CreateTopic(), controllers.CreateTopic)
	adminGroup.Get("/subject/:subject_id/topics", middleware.JWTMiddleware, validators.SubjectIDParam(), controllers.GetTopicList)
	adminGroup.Put("/topic/:topic_id", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-content"), validators.TopicIDParam(), controllers.UpdateTopic)
	adminGroup.Patch("/topic/:topic_id/active", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-content"), validators.TopicIDParam(), controllers.ArchiveTopic)

	// Subtopics
	adminGroup.Post("/subtopic", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-content"), validators.CreateSubtopic(), controllers.CreateSubtopic)
	adminGroup.Get("/topic/:topic_id/subtopics", middleware.JWTMiddleware, validators.TopicIDParam(), controllers.GetSubtopicList)
	adminGroup.Patch("/subtopic/:subtopic_id/active", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-content"), validators.SubtopicIDParam(), controllers.ArchiveSubtopic)
}
