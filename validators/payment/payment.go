package paymentValidator

import (
	"strings"

	"afapi/middleware"

	"github.com/gofiber/fiber/v2"
)

type PaymentPayload struct {
	StudentID     uint    `json:"studentId"`
	StudentName   string  `json:"studentName"`
	CourseName    string  `json:"courseName"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	Date          string  `json:"date"`
	InvoiceNumber string  `json:"invoiceNumber"`
}

func CreatePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(PaymentPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.StudentID == 0 {
			errors["studentId"] = "Student id is required!"
		}
		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be greater than 0!"
		}
		if strings.TrimSpace(reqData.Date) == "" {
			errors["date"] = "Date is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPayment", reqData)
		return c.Next()
	}
}
