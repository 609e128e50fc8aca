package enrollmentValidator

import (
	"afapi/middleware"

	"github.com/gofiber/fiber/v2"
)

type EnrollPayload struct {
	CourseID uint `json:"courseId"`
}

type ProgressPayload struct {
	CourseID  uint `json:"courseId"`
	SectionID uint `json:"sectionId"`
	LessonID  uint `json:"lessonId"`
}

func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.CourseID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"courseId": "Course id is required!",
			})
		}

		c.Locals("validatedEnroll", reqData)
		return c.Next()
	}
}

func MarkProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ProgressPayload)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if reqData.CourseID == 0 {
			errors["courseId"] = "Course id is required!"
		}
		if reqData.SectionID == 0 {
			errors["sectionId"] = "Section id is required!"
		}
		if reqData.LessonID == 0 {
			errors["lessonId"] = "Lesson id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
