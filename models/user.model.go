package models

import (
	"strings"

	"gorm.io/gorm"
)

const (
	RoleStudent    = "Student"
	RoleInstructor = "Instructor"
	RoleAdmin      = "Admin"
)

type User struct {
	gorm.Model
	FirstName      string           `gorm:"default:''" json:"firstName"`
	LastName       string           `gorm:"default:''" json:"lastName"`
	Email          string           `gorm:"unique;not null" json:"email"`
	Role           string           `gorm:"default:'Student'" json:"role"` // Student, Instructor, Admin
	Courses        []UserCourse     `gorm:"foreignKey:UserID" json:"courses,omitempty"`
	CourseProgress []CourseProgress `gorm:"foreignKey:UserID" json:"courseProgress,omitempty"`
	IsDeleted      bool             `gorm:"default:false" json:"-"`
}

// FullName joins first and last name, skipping whichever is empty.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
