package paymentService

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"studynotion/models"

	"go.uber.org/zap"
)

// VerifyRequest is a gateway payment callback relayed by the client.
type VerifyRequest struct {
	OrderID   string
	PaymentID string
	Signature string
	CourseIDs []uint
	UserID    uint
}

// Signature computes the gateway callback signature:
// hex(HMAC_SHA256(secret, orderID + "|" + paymentID)).
func Signature(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature reports whether signature authenticates the order and
// payment pair. The comparison is constant-time.
func VerifySignature(secret, orderID, paymentID, signature string) bool {
	expected := Signature(secret, orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifyPayment authenticates a payment callback and, when it is genuine,
// enrolls the student in every listed course before returning. A forged
// callback has no side effects.
func (s *Service) VerifyPayment(ctx context.Context, req VerifyRequest) ([]EnrollmentOutcome, error) {
	if req.OrderID == "" || req.PaymentID == "" || req.Signature == "" || len(req.CourseIDs) == 0 || req.UserID == 0 {
		return nil, newError(ErrInvalidInput, "Payment Failed")
	}

	if !VerifySignature(s.cfg.RazorpaySecret, req.OrderID, req.PaymentID, req.Signature) {
		s.logger.Warn("Payment signature mismatch",
			zap.String("order_id", req.OrderID),
			zap.String("payment_id", req.PaymentID),
			zap.Uint("user_id", req.UserID))
		return nil, newError(ErrUnauthenticated, "Payment Failed")
	}

	s.markPaid(ctx, req)

	outcomes, err := s.EnrollStudent(ctx, req.UserID, req.CourseIDs)
	if err != nil {
		return nil, err
	}

	enrolled := 0
	for _, o := range outcomes {
		if o.Err == nil {
			enrolled++
		}
	}
	s.logger.Info("Payment verified",
		zap.String("order_id", req.OrderID),
		zap.String("payment_id", req.PaymentID),
		zap.Uint("user_id", req.UserID),
		zap.Int("courses", len(outcomes)),
		zap.Int("enrolled", enrolled))

	return outcomes, nil
}

// markPaid records the verified payment against the local order mirror,
// creating the row if the order was raised elsewhere.
func (s *Service) markPaid(ctx context.Context, req VerifyRequest) {
	db := s.db.WithContext(ctx)
	paidAt := s.now()

	result := db.Model(&models.PaymentTransaction{}).
		Where("payment_order_id = ?", req.OrderID).
		Updates(map[string]interface{}{
			"payment_id":        req.PaymentID,
			"payment_signature": req.Signature,
			"status":            models.PaymentStatusPaid,
			"paid_at":           paidAt,
		})
	if result.Error != nil {
		s.logger.Warn("Failed to mark payment as paid", zap.String("order_id", req.OrderID), zap.Error(result.Error))
		return
	}
	if result.RowsAffected > 0 {
		return
	}

	courses, _ := json.Marshal(uniqueIDs(req.CourseIDs))
	txn := models.PaymentTransaction{
		UserID:           req.UserID,
		PaymentGateway:   "razorpay",
		PaymentOrderID:   req.OrderID,
		PaymentID:        req.PaymentID,
		PaymentSignature: req.Signature,
		Currency:         s.cfg.Currency,
		Courses:          courses,
		Status:           models.PaymentStatusPaid,
		TransactionDate:  paidAt,
		PaidAt:           &paidAt,
	}
	if err := db.Create(&txn).Error; err != nil {
		s.logger.Warn("Failed to record verified payment", zap.String("order_id", req.OrderID), zap.Error(err))
	}
}
