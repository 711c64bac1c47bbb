package paymentService

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"studynotion/models"
	"studynotion/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// CreateOrder validates the requested courses, prices them and opens a
// gateway order for the total. No gateway call is made unless every
// course exists and the student holds none of them yet.
func (s *Service) CreateOrder(ctx context.Context, userID uint, courseIDs []uint) (*utils.GatewayOrder, error) {
	if userID == 0 || len(courseIDs) == 0 {
		return nil, newError(ErrInvalidInput, "Please provide course IDs")
	}
	courseIDs = uniqueIDs(courseIDs)

	db := s.db.WithContext(ctx)
	total := decimal.Zero

	for _, courseID := range courseIDs {
		course, err := findCourse(db, courseID)
		if err != nil {
			return nil, err
		}

		enrolled, err := isEnrolled(db, course.ID, userID)
		if err != nil {
			return nil, err
		}
		if enrolled {
			return nil, newError(ErrAlreadyEnrolled, "Already enrolled in course: "+course.CourseName)
		}

		total = total.Add(course.Price)
	}

	courses, err := json.Marshal(courseIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode course ids: %w", err)
	}

	req := utils.OrderRequest{
		Amount:   utils.ToMinorUnits(total),
		Currency: s.cfg.Currency,
		Receipt:  fmt.Sprintf("receipt_%d", s.now().UnixMilli()),
		Notes: map[string]string{
			"userId":  strconv.FormatUint(uint64(userID), 10),
			"courses": string(courses),
		},
	}

	order, err := s.gateway.CreateOrder(ctx, req)
	if err != nil {
		s.logger.Error("Error creating Razorpay order", zap.Uint("user_id", userID), zap.Error(err))
		return nil, wrapError(ErrGateway, "Could not initiate payment", err)
	}

	txn := models.PaymentTransaction{
		UserID:          userID,
		PaymentGateway:  "razorpay",
		PaymentOrderID:  order.ID,
		Amount:          req.Amount,
		Currency:        req.Currency,
		Receipt:         req.Receipt,
		Courses:         courses,
		Status:          models.PaymentStatusCreated,
		TransactionDate: s.now(),
	}
	if err := db.Create(&txn).Error; err != nil {
		// the gateway order exists either way
		s.logger.Warn("Failed to record payment order", zap.String("order_id", order.ID), zap.Error(err))
	}

	s.logger.Info("Order created",
		zap.String("order_id", order.ID),
		zap.Uint("user_id", userID),
		zap.Int64("amount", req.Amount),
		zap.String("currency", req.Currency))

	return order, nil
}
