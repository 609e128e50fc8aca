package main

import (
	"log"

	"afapi/config"
	"afapi/database"
	authRoutes "afapi/routers/authRoutes"
	contentRoutes "afapi/routers/contentRoutes"
	courseRoutes "afapi/routers/courseRoutes"
	enrollmentRoutes "afapi/routers/enrollmentRoutes"
	paymentRoutes "afapi/routers/paymentRoutes"
	studentRoutes "afapi/routers/studentRoutes"
	userRoutes "afapi/routers/userRoutes"
	"afapi/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	contentRoutes.SetupContentRoutes(app)
	studentRoutes.SetupStudentRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)
	enrollmentRoutes.SetupEnrollmentRoutes(app)
	userRoutes.SetupUserRoutes(app)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "OK", "message": "LMS Backend is running"})
	})

	utils.InitializeReminderScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
