package courseValidator

import (
	"strconv"
	"strings"

	"afapi/middleware"

	"github.com/gofiber/fiber/v2"
)

// LessonPayload is a lesson as submitted by the authoring UI
type LessonPayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// SectionPayload carries its lessons in submission order; order_index is
// assigned from the array position, never taken from the payload
type SectionPayload struct {
	Title   string          `json:"title"`
	Lessons []LessonPayload `json:"lessons"`
}

type CoursePayload struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Sections    []SectionPayload `json:"sections"`
}

func validateCoursePayload(reqData *CoursePayload) map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(reqData.Title) == "" {
		errors["title"] = "Title is required!"
	} else if len(strings.TrimSpace(reqData.Title)) < 3 {
		errors["title"] = "Title must be at least 3 characters long!"
	}

	if strings.TrimSpace(reqData.Description) == "" {
		errors["description"] = "Description is required!"
	}

	for i, section := range reqData.Sections {
		if strings.TrimSpace(section.Title) == "" {
			errors["sections["+strconv.Itoa(i)+"].title"] = "Section title is required!"
		}
		for j, lesson := range section.Lessons {
			if strings.TrimSpace(lesson.Title) == "" {
				errors["sections["+strconv.Itoa(i)+"].lessons["+strconv.Itoa(j)+"].title"] = "Lesson title is required!"
			}
		}
	}

	return errors
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CoursePayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validateCoursePayload(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := strconv.Atoi(c.Params("id"))
		if err != nil || courseID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
		}

		reqData := new(CoursePayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if errors := validateCoursePayload(reqData); len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("courseID", courseID)
		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := strconv.Atoi(c.Params("id"))
		if err != nil || courseID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}
