package contentValidator

import (
	"strconv"
	"strings"

	"afapi/middleware"

	"github.com/gofiber/fiber/v2"
)

type ContentPayload struct {
	SectionID  uint   `json:"section_id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Type       string `json:"type"`
	OrderIndex int    `json:"order_index"`
}

type QuizPayload struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

func CreateContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ContentPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.SectionID == 0 {
			errors["section_id"] = "Section id is required!"
		}
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedContent", reqData)
		return c.Next()
	}
}

func UpdateContent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		contentID, err := strconv.Atoi(c.Params("id"))
		if err != nil || contentID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid content id!", nil)
		}

		reqData := new(ContentPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("contentID", contentID)
		c.Locals("validatedContent", reqData)
		return c.Next()
	}
}

func SectionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sectionID, err := strconv.Atoi(c.Params("id"))
		if err != nil || sectionID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid section id!", nil)
		}

		c.Locals("sectionID", sectionID)
		return c.Next()
	}
}

func ContentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		contentID, err := strconv.Atoi(c.Params("id"))
		if err != nil || contentID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid content id!", nil)
		}

		c.Locals("contentID", contentID)
		return c.Next()
	}
}

func CreateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		contentID, err := strconv.Atoi(c.Params("contentId"))
		if err != nil || contentID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid content id!", nil)
		}

		reqData := new(QuizPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validateQuizPayload(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("contentID", contentID)
		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

func UpdateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID, err := strconv.Atoi(c.Params("id"))
		if err != nil || quizID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
		}

		reqData := new(QuizPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validateQuizPayload(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("quizID", quizID)
		c.Locals("validatedQuiz", reqData)
		return c.Next()
	}
}

func QuizID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		quizID, err := strconv.Atoi(c.Params("id"))
		if err != nil || quizID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid quiz id!", nil)
		}

		c.Locals("quizID", quizID)
		return c.Next()
	}
}

func validateQuizPayload(reqData *QuizPayload) map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(reqData.Question) == "" {
		errors["question"] = "Question is required!"
	}
	if len(reqData.Options) < 2 {
		errors["options"] = "At least two options are required!"
	}
	if strings.TrimSpace(reqData.CorrectAnswer) == "" {
		errors["correct_answer"] = "Correct answer is required!"
	}

	return errors
}
