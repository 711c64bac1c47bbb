package database

import (
	"testing"

	"studynotion/config"
	"studynotion/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := ConnectDb(&config.Config{DBDriver: "sqlite", DBName: ":memory:"}, zap.NewNop())
	require.NoError(t, err)
	return db
}

func TestConnectDbMigratesSchema(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"users", "courses", "course_students", "course_progress", "user_courses", "payment_transactions"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func TestCourseStudentKeyRejectsDuplicates(t *testing.T) {
	db := openTestDB(t)

	course := models.Course{CourseName: "Go", Price: decimal.NewFromInt(499)}
	require.NoError(t, db.Create(&course).Error)

	require.NoError(t, db.Create(&models.CourseStudent{CourseID: course.ID, UserID: 7}).Error)
	err := db.Create(&models.CourseStudent{CourseID: course.ID, UserID: 7}).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestCoursePriceRoundTrips(t *testing.T) {
	db := openTestDB(t)

	course := models.Course{CourseName: "Rust", Price: decimal.RequireFromString("499.99")}
	require.NoError(t, db.Create(&course).Error)

	var loaded models.Course
	require.NoError(t, db.First(&loaded, course.ID).Error)
	assert.True(t, loaded.Price.Equal(decimal.RequireFromString("499.99")), loaded.Price.String())
}
