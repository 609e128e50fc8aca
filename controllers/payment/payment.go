package controllers

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"afapi/database"
	"afapi/middleware"
	"afapi/models"
	paymentValidator "afapi/validators/payment"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllPayments lists every payment, newest date first
func GetAllPayments(c *fiber.Ctx) error {
	var payments []models.Payment
	if err := database.Database.Db.
		Where("is_deleted = ?", false).
		Order("date DESC").
		Find(&payments).Error; err != nil {
		log.Printf("Error fetching payments: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully!", payments)
}

// CreatePayment records a payment. When the caller does not supply an
// invoice number, one is generated server-side.
func CreatePayment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedPayment").(*paymentValidator.PaymentPayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	invoiceNumber := strings.TrimSpace(reqData.InvoiceNumber)
	if invoiceNumber == "" {
		invoiceNumber = generateInvoiceNumber()
	}

	payment := models.Payment{
		StudentID:     reqData.StudentID,
		StudentName:   reqData.StudentName,
		CourseName:    reqData.CourseName,
		Amount:        reqData.Amount,
		Status:        reqData.Status,
		Date:          reqData.Date,
		InvoiceNumber: invoiceNumber,
	}
	if payment.Status == "" {
		payment.Status = "PENDING"
	}

	if err := database.Database.Db.Create(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Invoice number already exists!", nil)
		}
		log.Printf("Error creating payment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create payment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Payment recorded successfully!", payment)
}

// generateInvoiceNumber produces a short unique invoice reference
func generateInvoiceNumber() string {
	id := uuid.New().String()
	return fmt.Sprintf("INV-%s", strings.ToUpper(id[:8]))
}
