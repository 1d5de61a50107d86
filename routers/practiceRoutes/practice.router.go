package practiceRoutes

import (
	controllers "aptivo/controllers/practice"
	"aptivo/middleware"
	validators "aptivo/validators/practice"

	"github.com/gofiber/fiber/v2"
)

// SetupPracticeRoutes sets up the student-facing practice session routes
func SetupPracticeRoutes(app *fiber.App) {
	practiceGroup := app.Group("/practice")

	practiceGroup.Post("/session/start", middleware.JWTMiddleware, middleware.CheckPermissionMiddleware("start-practice"), validators.StartSession(), controllers.StartPracticeSession)
	practiceGroup.Post("/session/submit", middleware.JWTMiddleware, validators.SubmitSession(), controllers.SubmitPracticeSession)
	practiceGroup.Get("/session/history", middleware.JWTMiddleware, controllers.GetPracticeHistory)
}
