package courseRoutes

import (
	controllers "afapi/controllers/course"
	"afapi/middleware"
	validators "afapi/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the course authoring routes. Reads are public;
// mutations require an authenticated admin.
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses")

	courseGroup.Get("/", controllers.GetAllCourses)
	courseGroup.Post("/", middleware.JWTMiddleware, validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, validators.UpdateCourse(), controllers.UpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.DeleteCourse)
}
