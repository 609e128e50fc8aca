package models

import "gorm.io/gorm"

// Student is the front-office record kept by the academy, separate from the
// login accounts in users.
type Student struct {
	gorm.Model
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	ParentsName       string  `json:"parentsName"`
	ParentsOccupation string  `json:"parentsOccupation"`
	Profession        string  `json:"profession"`
	Course            string  `json:"course"`
	CourseDuration    string  `json:"courseDuration"`
	Fees              float64 `json:"fees" gorm:"default:0"`
	Advance           float64 `json:"advance" gorm:"default:0"`
	Balance           float64 `json:"balance" gorm:"default:0"`
	IsDeleted         bool    `json:"-" gorm:"default:false"`
}
