package questionRoutes

import (
	controllers "aptivo/controllers/question"
	"aptivo/middleware"
	validators "aptivo/validators/question"

	"github.com/gofiber/fiber/v2"
)

// SetupQuestionRoutes sets up the admin question bank routes
func SetupQuestionRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/question")

	adminGroup.Post("/create", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-questions"), validators.CreateQuestion(), controllers.CreateQuestion)
	adminGroup.Get("/list", middleware.JWTMiddleware, validators.QuestionList(), controllers.GetQuestionList)
	adminGroup.Put("/:question_id", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-questions"), validators.QuestionIDParam(), controllers.UpdateQuestion)
	adminGroup.Patch("/:question_id/active", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-questions"), validators.QuestionIDParam(), controllers.SetQuestionActive)
	adminGroup.Delete("/:question_id", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("manage-questions"), validators.QuestionIDParam(), controllers.DeleteQuestion)
}
