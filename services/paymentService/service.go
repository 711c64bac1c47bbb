package paymentService

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studynotion/config"
	"studynotion/models"
	"studynotion/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Gateway creates payment orders with the external payment provider.
type Gateway interface {
	CreateOrder(ctx context.Context, req utils.OrderRequest) (*utils.GatewayOrder, error)
}

// Notifier delivers emails. It never fails from the caller's side; the
// result only reports what happened.
type Notifier interface {
	Send(ctx context.Context, mail utils.Mail) utils.MailResult
}

// InvoiceRenderer turns invoice fields into a document.
type InvoiceRenderer interface {
	Render(data utils.InvoiceData) ([]byte, error)
}

// Service runs the order → verify → enroll → notify workflow.
type Service struct {
	db       *gorm.DB
	cfg      *config.Config
	gateway  Gateway
	notifier Notifier
	invoices InvoiceRenderer
	logger   *zap.Logger
	now      func() time.Time
}

func NewPaymentService(
	db *gorm.DB,
	cfg *config.Config,
	gateway Gateway,
	notifier Notifier,
	invoices InvoiceRenderer,
	logger *zap.Logger,
) *Service {
	return &Service{
		db:       db,
		cfg:      cfg,
		gateway:  gateway,
		notifier: notifier,
		invoices: invoices,
		logger:   logger,
		now:      time.Now,
	}
}

func findCourse(db *gorm.DB, courseID uint) (*models.Course, error) {
	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(ErrNotFound, fmt.Sprintf("Course not found: %d", courseID))
		}
		return nil, fmt.Errorf("failed to load course %d: %w", courseID, err)
	}
	return &course, nil
}

func findUser(db *gorm.DB, userID uint) (*models.User, error) {
	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, newError(ErrNotFound, "User not found")
		}
		return nil, fmt.Errorf("failed to load user %d: %w", userID, err)
	}
	return &user, nil
}

// isEnrolled tests membership of userID in the course's enrolled-student set.
func isEnrolled(db *gorm.DB, courseID, userID uint) (bool, error) {
	var count int64
	err := db.Model(&models.CourseStudent{}).
		Where("course_id = ? AND user_id = ?", courseID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check enrollment: %w", err)
	}
	return count > 0, nil
}

// uniqueIDs drops repeated ids, keeping first-seen order.
func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
