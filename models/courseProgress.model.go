package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CourseProgress tracks the completed videos of one student in one course.
type CourseProgress struct {
	gorm.Model
	CourseID        uint                      `gorm:"not null;uniqueIndex:idx_course_progress_course_user" json:"courseId"`
	UserID          uint                      `gorm:"not null;uniqueIndex:idx_course_progress_course_user" json:"userId"`
	CompletedVideos datatypes.JSONSlice[uint] `json:"completedVideos"`
}

func (CourseProgress) TableName() string {
	return "course_progress"
}
