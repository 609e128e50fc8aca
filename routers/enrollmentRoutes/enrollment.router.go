package enrollmentRoutes

import (
	enrollmentControllers "afapi/controllers/enrollment"
	progressControllers "afapi/controllers/progress"
	"afapi/middleware"
	validators "afapi/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

func SetupEnrollmentRoutes(app *fiber.App) {
	enrollmentGroup := app.Group("/api/enrollments")

	enrollmentGroup.Get("/", middleware.JWTMiddleware, enrollmentControllers.GetUserEnrollments)
	enrollmentGroup.Post("/", middleware.JWTMiddleware, validators.Enroll(), enrollmentControllers.EnrollInCourse)

	progressGroup := app.Group("/api/lesson_progress")
	progressGroup.Get("/", middleware.JWTMiddleware, progressControllers.GetUserProgress)
	progressGroup.Post("/", middleware.JWTMiddleware, validators.MarkProgress(), progressControllers.MarkLessonComplete)
}
