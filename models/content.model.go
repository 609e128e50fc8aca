package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CourseContent is the secondary content representation, keyed by section and
// maintained independently of the lesson tree.
type CourseContent struct {
	gorm.Model
	SectionID  uint   `json:"section_id" gorm:"index;not null"`
	Title      string `json:"title"`
	Content    string `json:"content" gorm:"type:text"`
	Type       string `json:"type" gorm:"default:'text'"` // text, video, quiz
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `json:"-" gorm:"default:false"`
}

type QuizQuestion struct {
	gorm.Model
	ContentID     uint           `json:"content_id" gorm:"index;not null"`
	Question      string         `json:"question" gorm:"type:text"`
	Options       datatypes.JSON `json:"options"` // JSON array of option strings
	CorrectAnswer string         `json:"correct_answer"`
	IsDeleted     bool           `json:"-" gorm:"default:false"`
}
