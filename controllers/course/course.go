package controllers

import (
	"log"
	"time"

	"afapi/database"
	"afapi/middleware"
	"afapi/models"
	"afapi/utils"
	courseValidator "afapi/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// courseWithAuthor is a course row joined with its creator's display name,
// carrying the fully materialized section/lesson tree.
type courseWithAuthor struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	CreatedBy   uint             `json:"created_by"`
	CreatedAt   time.Time        `json:"created_at"`
	FirstName   string           `json:"first_name"`
	LastName    string           `json:"last_name"`
	Sections    []models.Section `json:"sections" gorm:"-"`
}

// GetAllCourses returns every course with its full section/lesson tree.
// Courses are ordered newest first, sections and lessons by order_index.
// No pagination; any query failure aborts the whole response.
func GetAllCourses(c *fiber.Ctx) error {
	db := database.Database.Db

	var courses []courseWithAuthor
	if err := db.Model(&models.Course{}).
		Select("courses.id, courses.title, courses.description, courses.created_by, courses.created_at, users.first_name, users.last_name").
		Joins("LEFT JOIN users ON users.id = courses.created_by").
		Where("courses.is_deleted = ?", false).
		Order("courses.created_at DESC").
		Find(&courses).Error; err != nil {
		log.Printf("Error fetching courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	for i := range courses {
		var sections []models.Section
		if err := db.
			Preload("Lessons", func(db *gorm.DB) *gorm.DB {
				return db.Where("is_deleted = ?", false).Order("lessons.order_index ASC")
			}).
			Where("course_id = ? AND is_deleted = ?", courses[i].ID, false).
			Order("order_index ASC").
			Find(&sections).Error; err != nil {
			log.Printf("Error fetching sections for course %d: %v", courses[i].ID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
		}

		for j := range sections {
			if sections[j].Lessons == nil {
				sections[j].Lessons = []models.Lesson{}
			}
		}
		if sections == nil {
			sections = []models.Section{}
		}
		courses[i].Sections = sections
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// CreateCourse inserts a course and its nested section/lesson tree in one
// transaction. A failure at any step rolls the whole write back.
func CreateCourse(c *fiber.Ctx) error {
	user, ok := requireAdmin(c)
	if !ok {
		return nil
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CoursePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var courseID uint
	err := database.Database.Db.Transaction(func(tx *gorm.DB) error {
		course := models.Course{
			Title:       reqData.Title,
			Description: reqData.Description,
			CreatedBy:   user.ID,
		}
		if err := tx.Create(&course).Error; err != nil {
			return err
		}
		courseID = course.ID

		return createCourseSections(tx, course.ID, reqData.Sections)
	})
	if err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully", fiber.Map{
		"courseId": courseID,
	})
}

// UpdateCourse updates title/description in place and replaces the whole
// section/lesson subtree from the payload. Every section and lesson gets a
// new id; progress rows pointing at the old tree are pruned in the same
// transaction. Writes to the same course are serialized.
func UpdateCourse(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CoursePayload)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	utils.CourseLocks.Lock(uint(courseID))
	defer utils.CourseLocks.Unlock(uint(courseID))

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&course).Updates(map[string]interface{}{
			"title":       reqData.Title,
			"description": reqData.Description,
		}).Error; err != nil {
			return err
		}

		if err := dropCourseSubtree(tx, course.ID); err != nil {
			return err
		}

		return createCourseSections(tx, course.ID, reqData.Sections)
	})
	if err != nil {
		log.Printf("Error updating course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully", nil)
}

// DeleteCourse removes a course with an explicit cascade: quiz questions,
// content, lessons, sections, enrollments and progress, then the course row,
// all in one transaction.
func DeleteCourse(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	courseID := c.Locals("courseID").(int)

	utils.CourseLocks.Lock(uint(courseID))
	defer utils.CourseLocks.Unlock(uint(courseID))

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var sectionIDs []uint
		if err := tx.Model(&models.Section{}).
			Where("course_id = ? AND is_deleted = ?", course.ID, false).
			Pluck("id", &sectionIDs).Error; err != nil {
			return err
		}

		if len(sectionIDs) > 0 {
			var contentIDs []uint
			if err := tx.Model(&models.CourseContent{}).
				Where("section_id IN ? AND is_deleted = ?", sectionIDs, false).
				Pluck("id", &contentIDs).Error; err != nil {
				return err
			}

			if len(contentIDs) > 0 {
				if err := tx.Model(&models.QuizQuestion{}).
					Where("content_id IN ?", contentIDs).
					Update("is_deleted", true).Error; err != nil {
					return err
				}
				if err := tx.Model(&models.CourseContent{}).
					Where("id IN ?", contentIDs).
					Update("is_deleted", true).Error; err != nil {
					return err
				}
			}

			if err := tx.Model(&models.Lesson{}).
				Where("section_id IN ?", sectionIDs).
				Update("is_deleted", true).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Section{}).
				Where("id IN ?", sectionIDs).
				Update("is_deleted", true).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&models.Enrollment{}).
			Where("course_id = ?", course.ID).
			Update("is_deleted", true).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().
			Where("course_id = ?", course.ID).
			Delete(&models.LessonProgress{}).Error; err != nil {
			return err
		}

		course.IsDeleted = true
		return tx.Save(&course).Error
	})
	if err != nil {
		log.Printf("Error deleting course %d: %v", course.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully", nil)
}

// createCourseSections inserts the submitted subtree under courseID. Order
// indexes come from array positions, 0-based and dense.
func createCourseSections(tx *gorm.DB, courseID uint, sections []courseValidator.SectionPayload) error {
	for i, sectionData := range sections {
		section := models.Section{
			CourseID:   courseID,
			Title:      sectionData.Title,
			OrderIndex: i,
		}
		if err := tx.Create(&section).Error; err != nil {
			return err
		}

		for j, lessonData := range sectionData.Lessons {
			lesson := models.Lesson{
				SectionID:  section.ID,
				Title:      lessonData.Title,
				Content:    lessonData.Content,
				OrderIndex: j,
			}
			if err := tx.Create(&lesson).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// dropCourseSubtree retires the current section/lesson tree of a course,
// lessons first, then sections, then the progress rows that referenced them.
func dropCourseSubtree(tx *gorm.DB, courseID uint) error {
	var sectionIDs []uint
	if err := tx.Model(&models.Section{}).
		Where("course_id = ? AND is_deleted = ?", courseID, false).
		Pluck("id", &sectionIDs).Error; err != nil {
		return err
	}

	if len(sectionIDs) > 0 {
		if err := tx.Model(&models.Lesson{}).
			Where("section_id IN ?", sectionIDs).
			Update("is_deleted", true).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Section{}).
			Where("id IN ?", sectionIDs).
			Update("is_deleted", true).Error; err != nil {
			return err
		}
	}

	// Lesson ids change on every replace, so completion records for the old
	// tree can never match again. They are removed outright rather than
	// flagged, otherwise a later prune would collide on the unique
	// (user, lesson) key.
	return tx.Unscoped().
		Where("course_id = ?", courseID).
		Delete(&models.LessonProgress{}).Error
}

// requireAdmin loads the calling user and checks the admin role. When the
// check fails the response has already been written and ok is false.
func requireAdmin(c *fiber.Ctx) (user models.User, ok bool) {
	userId, idOk := c.Locals("userId").(uint)
	if !idOk {
		middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		return user, false
	}

	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
		return user, false
	}

	if user.Role != "admin" {
		middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
		return user, false
	}

	return user, true
}
