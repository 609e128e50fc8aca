package controllers

import (
	"encoding/json"
	"log"

	"afapi/database"
	"afapi/middleware"
	"afapi/models"
	contentValidator "afapi/validators/content"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreateContent adds a content block to a section
func CreateContent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedContent").(*contentValidator.ContentPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	content := models.CourseContent{
		SectionID:  reqData.SectionID,
		Title:      reqData.Title,
		Content:    reqData.Content,
		Type:       reqData.Type,
		OrderIndex: reqData.OrderIndex,
	}
	if content.Type == "" {
		content.Type = "text"
	}

	if err := database.Database.Db.Create(&content).Error; err != nil {
		log.Printf("Error creating content: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Content created successfully!", content)
}

// GetContentBySection lists a section's content blocks in display order
func GetContentBySection(c *fiber.Ctx) error {
	sectionID := c.Locals("sectionID").(int)

	var contents []models.CourseContent
	if err := database.Database.Db.
		Where("section_id = ? AND is_deleted = ?", sectionID, false).
		Order("order_index ASC").
		Find(&contents).Error; err != nil {
		log.Printf("Error fetching content for section %d: %v", sectionID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content fetched successfully!", contents)
}

// UpdateContent updates a content block in place
func UpdateContent(c *fiber.Ctx) error {
	contentID := c.Locals("contentID").(int)

	reqData, ok := c.Locals("validatedContent").(*contentValidator.ContentPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var content models.CourseContent
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", contentID, false).First(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	content.Title = reqData.Title
	content.Content = reqData.Content
	if reqData.Type != "" {
		content.Type = reqData.Type
	}
	content.OrderIndex = reqData.OrderIndex

	if err := database.Database.Db.Save(&content).Error; err != nil {
		log.Printf("Error updating content %d: %v", contentID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content updated successfully!", content)
}

// DeleteContent removes a content block along with its quiz questions
func DeleteContent(c *fiber.Ctx) error {
	contentID := c.Locals("contentID").(int)

	db := database.Database.Db

	var content models.CourseContent
	if err := db.Where("id = ? AND is_deleted = ?", contentID, false).First(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.QuizQuestion{}).
			Where("content_id = ?", content.ID).
			Update("is_deleted", true).Error; err != nil {
			return err
		}

		content.IsDeleted = true
		return tx.Save(&content).Error
	})
	if err != nil {
		log.Printf("Error deleting content %d: %v", contentID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete content!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Content deleted successfully!", nil)
}

// CreateQuiz attaches a quiz question to a content block
func CreateQuiz(c *fiber.Ctx) error {
	contentID := c.Locals("contentID").(int)

	reqData, ok := c.Locals("validatedQuiz").(*contentValidator.QuizPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var content models.CourseContent
	if err := db.Where("id = ? AND is_deleted = ?", contentID, false).First(&content).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Content not found!", nil)
	}

	options, err := json.Marshal(reqData.Options)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid options!", nil)
	}

	question := models.QuizQuestion{
		ContentID:     content.ID,
		Question:      reqData.Question,
		Options:       datatypes.JSON(options),
		CorrectAnswer: reqData.CorrectAnswer,
	}

	if err := db.Create(&question).Error; err != nil {
		log.Printf("Error creating quiz question: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create quiz question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Quiz question created successfully!", question)
}

// UpdateQuiz rewrites a quiz question
func UpdateQuiz(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(int)

	reqData, ok := c.Locals("validatedQuiz").(*contentValidator.QuizPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var question models.QuizQuestion
	if err := db.Where("id = ? AND is_deleted = ?", quizID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz question not found!", nil)
	}

	options, err := json.Marshal(reqData.Options)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid options!", nil)
	}

	question.Question = reqData.Question
	question.Options = datatypes.JSON(options)
	question.CorrectAnswer = reqData.CorrectAnswer

	if err := db.Save(&question).Error; err != nil {
		log.Printf("Error updating quiz question %d: %v", quizID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update quiz question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz question updated successfully!", question)
}

// DeleteQuiz removes a quiz question
func DeleteQuiz(c *fiber.Ctx) error {
	quizID := c.Locals("quizID").(int)

	db := database.Database.Db

	var question models.QuizQuestion
	if err := db.Where("id = ? AND is_deleted = ?", quizID, false).First(&question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz question not found!", nil)
	}

	question.IsDeleted = true
	if err := db.Save(&question).Error; err != nil {
		log.Printf("Error deleting quiz question %d: %v", quizID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete quiz question!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz question deleted successfully!", nil)
}
