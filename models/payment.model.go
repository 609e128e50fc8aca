package models

import "gorm.io/gorm"

type Payment struct {
	gorm.Model
	StudentID     uint    `json:"studentId" gorm:"index;not null"`
	StudentName   string  `json:"studentName"`
	CourseName    string  `json:"courseName"`
	Amount        float64 `json:"amount" gorm:"default:0"`
	Status        string  `json:"status" gorm:"default:'PENDING'"` // PENDING, PAID, PARTIAL
	Date          string  `json:"date"`                            // ISO date supplied by the caller
	InvoiceNumber string  `json:"invoiceNumber" gorm:"unique"`
	IsDeleted     bool    `json:"-" gorm:"default:false"`
}
