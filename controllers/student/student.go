package controllers

import (
	"log"

	"afapi/database"
	"afapi/middleware"
	"afapi/models"
	studentValidator "afapi/validators/student"

	"github.com/gofiber/fiber/v2"
)

// CreateStudent registers a front-office student record
func CreateStudent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedStudent").(*studentValidator.StudentPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	student := models.Student{
		Name:              reqData.Name,
		Email:             reqData.Email,
		Phone:             reqData.Phone,
		ParentsName:       reqData.ParentsName,
		ParentsOccupation: reqData.ParentsOccupation,
		Profession:        reqData.Profession,
		Course:            reqData.Course,
		CourseDuration:    reqData.CourseDuration,
		Fees:              reqData.Fees,
		Advance:           reqData.Advance,
		Balance:           reqData.Balance,
	}

	if err := database.Database.Db.Create(&student).Error; err != nil {
		log.Printf("Error creating student: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create student!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Student created successfully!", student)
}

// GetAllStudents lists every student record
func GetAllStudents(c *fiber.Ctx) error {
	var students []models.Student
	if err := database.Database.Db.
		Where("is_deleted = ?", false).
		Find(&students).Error; err != nil {
		log.Printf("Error fetching students: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully!", students)
}

// UpdateStudent replaces a student record's fields
func UpdateStudent(c *fiber.Ctx) error {
	studentID := c.Locals("studentID").(int)

	reqData, ok := c.Locals("validatedStudent").(*studentValidator.StudentPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var student models.Student
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", studentID, false).First(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	student.Name = reqData.Name
	student.Email = reqData.Email
	student.Phone = reqData.Phone
	student.ParentsName = reqData.ParentsName
	student.ParentsOccupation = reqData.ParentsOccupation
	student.Profession = reqData.Profession
	student.Course = reqData.Course
	student.CourseDuration = reqData.CourseDuration
	student.Fees = reqData.Fees
	student.Advance = reqData.Advance
	student.Balance = reqData.Balance

	if err := database.Database.Db.Save(&student).Error; err != nil {
		log.Printf("Error updating student %d: %v", studentID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update student!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student updated successfully!", student)
}
