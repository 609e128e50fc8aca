package studentRoutes

import (
	controllers "afapi/controllers/student"
	"afapi/middleware"
	validators "afapi/validators/student"

	"github.com/gofiber/fiber/v2"
)

func SetupStudentRoutes(app *fiber.App) {
	studentGroup := app.Group("/api/students")

	studentGroup.Post("/", middleware.JWTMiddleware, validators.CreateStudent(), controllers.CreateStudent)
	studentGroup.Get("/", middleware.JWTMiddleware, controllers.GetAllStudents)
	studentGroup.Put("/:id", middleware.JWTMiddleware, validators.UpdateStudent(), controllers.UpdateStudent)
}
