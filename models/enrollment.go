package models

import "time"

// CourseStudent is one member of a course's enrolled-student set. The
// composite key keeps a student from appearing twice in the same course.
type CourseStudent struct {
	CourseID  uint      `gorm:"primaryKey;autoIncrement:false" json:"courseId"`
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"userId"`
	CreatedAt time.Time `json:"enrolledAt"`
}

func (CourseStudent) TableName() string {
	return "course_students"
}

// UserCourse is an entry in a student's ordered course list, linked to the
// progress record created for that enrollment.
type UserCourse struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"not null;uniqueIndex:idx_user_courses_user_course" json:"userId"`
	CourseID         uint      `gorm:"not null;uniqueIndex:idx_user_courses_user_course" json:"courseId"`
	CourseProgressID uint      `gorm:"not null" json:"courseProgressId"`
	CreatedAt        time.Time `json:"createdAt"`
}

func (UserCourse) TableName() string {
	return "user_courses"
}
