package models

import "gorm.io/gorm"

// Course is the root of the authoring tree. Sections and lessons under it
// are replaced wholesale on every update, so their ids are not stable.
type Course struct {
	gorm.Model
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedBy   uint      `json:"created_by" gorm:"index"` // user id of the author
	Sections    []Section `json:"sections,omitempty" gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE"`
	IsDeleted   bool      `json:"-" gorm:"default:false"`
}

// Section groups lessons inside a course. OrderIndex is assigned from the
// array position of the request payload at write time, 0-based and dense.
type Section struct {
	gorm.Model
	CourseID   uint     `json:"course_id" gorm:"index;not null"`
	Title      string   `json:"title"`
	OrderIndex int      `json:"order_index" gorm:"default:0"`
	Lessons    []Lesson `json:"lessons" gorm:"foreignKey:SectionID;constraint:OnDelete:CASCADE"`
	IsDeleted  bool     `json:"-" gorm:"default:false"`
}

type Lesson struct {
	gorm.Model
	SectionID  uint   `json:"section_id" gorm:"index;not null"`
	Title      string `json:"title"`
	Content    string `json:"content" gorm:"type:text"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `json:"-" gorm:"default:false"`
}
