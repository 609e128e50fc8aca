package studentValidator

import (
	"strconv"
	"strings"

	"afapi/middleware"

	"github.com/gofiber/fiber/v2"
)

type StudentPayload struct {
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	ParentsName       string  `json:"parentsName"`
	ParentsOccupation string  `json:"parentsOccupation"`
	Profession        string  `json:"profession"`
	Course            string  `json:"course"`
	CourseDuration    string  `json:"courseDuration"`
	Fees              float64 `json:"fees"`
	Advance           float64 `json:"advance"`
	Balance           float64 `json:"balance"`
}

func validateStudentPayload(reqData *StudentPayload) map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(reqData.Name) == "" {
		errors["name"] = "Name is required!"
	}
	if strings.TrimSpace(reqData.Phone) == "" {
		errors["phone"] = "Phone is required!"
	}
	if reqData.Fees < 0 || reqData.Advance < 0 || reqData.Balance < 0 {
		errors["fees"] = "Amounts cannot be negative!"
	}

	return errors
}

func CreateStudent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(StudentPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validateStudentPayload(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStudent", reqData)
		return c.Next()
	}
}

func UpdateStudent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		studentID, err := strconv.Atoi(c.Params("id"))
		if err != nil || studentID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student id!", nil)
		}

		reqData := new(StudentPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validateStudentPayload(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("studentID", studentID)
		c.Locals("validatedStudent", reqData)
		return c.Next()
	}
}
