package controllers

import (
	"errors"
	"log"
	"time"

	"afapi/database"
	"afapi/middleware"
	"afapi/models"
	enrollmentValidator "afapi/validators/enrollment"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetUserProgress lists the caller's lesson completion records
func GetUserProgress(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var progress []models.LessonProgress
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = ?", userId, false).
		Find(&progress).Error; err != nil {
		log.Printf("Error fetching progress for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", progress)
}

// MarkLessonComplete records a lesson completion. Completing the same
// lesson again refreshes the completion timestamp.
func MarkLessonComplete(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProgress").(*enrollmentValidator.ProgressPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var progress models.LessonProgress
	err := db.Where("user_id = ? AND lesson_id = ? AND is_deleted = ?", userId, reqData.LessonID, false).
		First(&progress).Error
	switch {
	case err == nil:
		progress.CompletedAt = time.Now()
		if err := db.Save(&progress).Error; err != nil {
			log.Printf("Error updating progress for user %d: %v", userId, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record progress!", nil)
		}
	case err == gorm.ErrRecordNotFound:
		progress = models.LessonProgress{
			UserID:      userId,
			CourseID:    reqData.CourseID,
			SectionID:   reqData.SectionID,
			LessonID:    reqData.LessonID,
			CompletedAt: time.Now(),
		}
		if err := db.Create(&progress).Error; err != nil {
			// A concurrent completion won the insert on the unique
			// (user, lesson) index; refresh that row instead.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				if err := db.Where("user_id = ? AND lesson_id = ? AND is_deleted = ?", userId, reqData.LessonID, false).
					First(&progress).Error; err != nil {
					log.Printf("Error reloading progress for user %d: %v", userId, err)
					return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record progress!", nil)
				}
				progress.CompletedAt = time.Now()
				if err := db.Save(&progress).Error; err != nil {
					log.Printf("Error updating progress for user %d: %v", userId, err)
					return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record progress!", nil)
				}
				break
			}
			log.Printf("Error recording progress for user %d: %v", userId, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record progress!", nil)
		}
	default:
		log.Printf("Error looking up progress for user %d: %v", userId, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson marked as complete", progress)
}
