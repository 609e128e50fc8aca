package paymentRoutes

import (
	controllers "afapi/controllers/payment"
	"afapi/middleware"
	validators "afapi/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/api/payments")

	paymentGroup.Get("/", middleware.JWTMiddleware, controllers.GetAllPayments)
	paymentGroup.Post("/", middleware.JWTMiddleware, validators.CreatePayment(), controllers.CreatePayment)
}
