package userRoutes

import (
	controllers "afapi/controllers/user"
	"afapi/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/api/users")

	userGroup.Get("/", middleware.JWTMiddleware, middleware.RequireRole("admin"), controllers.GetAllUsers)
	userGroup.Get("/me", middleware.JWTMiddleware, controllers.GetMe)
}
