package authRoutes

import (
	authController "afapi/controllers/auth"
	"afapi/middleware"
	authValidator "afapi/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/api/auth")

	// Registration is restricted to admins; login is open
	authGroup.Post("/register", middleware.JWTMiddleware, middleware.RequireRole("admin"), authValidator.Register(), authController.Register)
	authGroup.Post("/login", authValidator.Login(), authController.Login)
}
