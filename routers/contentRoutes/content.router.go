package contentRoutes

import (
	controllers "afapi/controllers/content"
	"afapi/middleware"
	validators "afapi/validators/content"

	"github.com/gofiber/fiber/v2"
)

// SetupContentRoutes sets up the secondary content representation and its
// quiz questions
func SetupContentRoutes(app *fiber.App) {
	contentGroup := app.Group("/api/content")

	contentGroup.Post("/", middleware.JWTMiddleware, validators.CreateContent(), controllers.CreateContent)
	contentGroup.Get("/section/:id", middleware.JWTMiddleware, validators.SectionID(), controllers.GetContentBySection)
	contentGroup.Put("/:id", middleware.JWTMiddleware, validators.UpdateContent(), controllers.UpdateContent)
	contentGroup.Delete("/:id", middleware.JWTMiddleware, validators.ContentID(), controllers.DeleteContent)

	contentGroup.Post("/:contentId/quiz", middleware.JWTMiddleware, validators.CreateQuiz(), controllers.CreateQuiz)

	quizGroup := app.Group("/api/quiz")
	quizGroup.Put("/:id", middleware.JWTMiddleware, validators.UpdateQuiz(), controllers.UpdateQuiz)
	quizGroup.Delete("/:id", middleware.JWTMiddleware, validators.QuizID(), controllers.DeleteQuiz)
}
