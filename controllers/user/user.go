package controllers

import (
	"log"

	"afapi/database"
	"afapi/middleware"
	"afapi/models"

	"github.com/gofiber/fiber/v2"
)

// GetAllUsers lists every login account. Admin only.
func GetAllUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.
		Select("id", "first_name", "last_name", "email", "role", "created_at").
		Where("is_deleted = ?", false).
		Find(&users).Error; err != nil {
		log.Printf("Error fetching users: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", users)
}

// GetMe returns the caller's own profile
func GetMe(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.
		Select("id", "first_name", "last_name", "email", "role", "created_at").
		Where("id = ? AND is_deleted = ?", userId, false).
		First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", user)
}
