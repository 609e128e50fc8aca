package models

import "gorm.io/gorm"

// Enrollment links a login account to a course. One live enrollment per
// (user, course); the soft-delete flag is part of the key so retired rows
// do not block the constraint.
type Enrollment struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"uniqueIndex:idx_user_course;not null"`
	CourseID  uint   `json:"course_id" gorm:"index;uniqueIndex:idx_user_course;not null"`
	Status    string `json:"status" gorm:"default:'ENROLLED'"`
	IsDeleted bool   `json:"-" gorm:"uniqueIndex:idx_user_course;default:false"`
	User      User   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Course    Course `json:"-" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
}
