package paymentService

import (
	"context"
	"errors"
	"fmt"

	"studynotion/models"
	"studynotion/utils"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EnrollmentOutcome is the result of enrolling in one course. Err is nil
// when the student was enrolled and a progress record created.
type EnrollmentOutcome struct {
	CourseID   uint  `json:"courseId"`
	ProgressID uint  `json:"progressId,omitempty"`
	Err        error `json:"-"`
}

// EnrollStudent enrolls the student in each course independently. A failed
// course is logged and recorded in its outcome; the remaining courses are
// still processed. The returned slice has one outcome per distinct course.
func (s *Service) EnrollStudent(ctx context.Context, userID uint, courseIDs []uint) ([]EnrollmentOutcome, error) {
	if userID == 0 || len(courseIDs) == 0 {
		return nil, newError(ErrInvalidInput, "Please provide Course IDs and User ID")
	}

	ids := uniqueIDs(courseIDs)
	outcomes := make([]EnrollmentOutcome, 0, len(ids))
	for _, courseID := range ids {
		outcome := s.enrollOne(ctx, userID, courseID)
		if outcome.Err != nil {
			s.logger.Error("Error enrolling student",
				zap.Uint("user_id", userID),
				zap.Uint("course_id", courseID),
				zap.Error(outcome.Err))
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}

func (s *Service) enrollOne(ctx context.Context, userID, courseID uint) EnrollmentOutcome {
	var (
		course   *models.Course
		user     *models.User
		progress models.CourseProgress
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if course, err = findCourse(tx, courseID); err != nil {
			return err
		}
		if user, err = findUser(tx, userID); err != nil {
			return err
		}

		enrolled, err := isEnrolled(tx, courseID, userID)
		if err != nil {
			return err
		}
		if enrolled {
			return newError(ErrAlreadyEnrolled, "Already enrolled in course: "+course.CourseName)
		}

		if err := tx.Create(&models.CourseStudent{CourseID: courseID, UserID: userID}).Error; err != nil {
			return enrollWriteError(course, err)
		}

		progress = models.CourseProgress{
			CourseID:        courseID,
			UserID:          userID,
			CompletedVideos: datatypes.JSONSlice[uint]{},
		}
		if err := tx.Create(&progress).Error; err != nil {
			return enrollWriteError(course, err)
		}

		link := models.UserCourse{UserID: userID, CourseID: courseID, CourseProgressID: progress.ID}
		if err := tx.Create(&link).Error; err != nil {
			return enrollWriteError(course, err)
		}
		return nil
	})
	if err != nil {
		return EnrollmentOutcome{CourseID: courseID, Err: err}
	}

	s.logger.Info("Enrolled student",
		zap.Uint("user_id", userID),
		zap.Uint("course_id", courseID),
		zap.Uint("progress_id", progress.ID))

	_ = s.notifier.Send(ctx, utils.Mail{
		To:      user.Email,
		Subject: "Successfully Enrolled into " + course.CourseName,
		HTML:    utils.CourseEnrollmentEmail(course.CourseName, user.FullName()),
	})

	return EnrollmentOutcome{CourseID: courseID, ProgressID: progress.ID}
}

// enrollWriteError maps a unique-key violation from a concurrent enrollment
// to ErrAlreadyEnrolled.
func enrollWriteError(course *models.Course, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return newError(ErrAlreadyEnrolled, "Already enrolled in course: "+course.CourseName)
	}
	return fmt.Errorf("failed to enroll in course %d: %w", course.ID, err)
}
