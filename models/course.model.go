package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Course is a purchasable course. Price is in major currency units.
type Course struct {
	gorm.Model
	CourseName        string          `gorm:"not null" json:"courseName"`
	CourseDescription string          `gorm:"type:text" json:"courseDescription"`
	Price             decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	StudentsEnrolled  []CourseStudent `gorm:"foreignKey:CourseID" json:"studentsEnrolled,omitempty"`
	IsDeleted         bool            `gorm:"default:false" json:"-"`
}
