package models

import (
	"time"

	"gorm.io/gorm"
)

// LessonProgress records a user completing a lesson. Section and lesson ids
// point at the tree as it existed when the lesson was completed; a course
// update regenerates that tree, and the matching rows are pruned with it.
type LessonProgress struct {
	gorm.Model
	UserID      uint      `json:"user_id" gorm:"uniqueIndex:idx_user_lesson;not null"`
	CourseID    uint      `json:"course_id" gorm:"index;not null"`
	SectionID   uint      `json:"section_id" gorm:"not null"`
	LessonID    uint      `json:"lesson_id" gorm:"index;uniqueIndex:idx_user_lesson;not null"`
	CompletedAt time.Time `json:"completed_at"`
	IsDeleted   bool      `json:"-" gorm:"uniqueIndex:idx_user_lesson;default:false"`
}
