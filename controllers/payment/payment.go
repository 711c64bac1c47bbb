package paymentController

import (
	"context"
	"errors"

	"studynotion/middleware"
	"studynotion/services/paymentService"
	"studynotion/utils"
	paymentValidator "studynotion/validators/payment"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PaymentService is the part of the payment workflow the HTTP layer drives.
type PaymentService interface {
	CreateOrder(ctx context.Context, userID uint, courseIDs []uint) (*utils.GatewayOrder, error)
	VerifyPayment(ctx context.Context, req paymentService.VerifyRequest) ([]paymentService.EnrollmentOutcome, error)
	SendPaymentSuccessEmail(ctx context.Context, userID uint, orderID, paymentID string, amount int64) error
	PaymentStats(ctx context.Context) (*paymentService.PaymentStats, error)
}

type PaymentController struct {
	service PaymentService
	logger  *zap.Logger
}

func NewPaymentController(service PaymentService, logger *zap.Logger) *PaymentController {
	return &PaymentController{service: service, logger: logger}
}

// CapturePayment opens a gateway order for the requested courses
func (pc *PaymentController) CapturePayment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	reqData := c.Locals("validatedCapturePayment").(*paymentValidator.CapturePaymentRequest)

	order, err := pc.service.CreateOrder(c.UserContext(), userID, reqData.Courses)
	if err != nil {
		status := fiber.StatusInternalServerError
		switch {
		case errors.Is(err, paymentService.ErrInvalidInput), errors.Is(err, paymentService.ErrAlreadyEnrolled):
			status = fiber.StatusBadRequest
		case errors.Is(err, paymentService.ErrNotFound):
			status = fiber.StatusNotFound
		}
		return middleware.JsonResponse(c, status, false, paymentService.Message(err, "Could not initiate order"), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Order created successfully", order)
}

// VerifyPayment checks the gateway signature and enrolls the student. The
// response is a success once every course was attempted, even if some
// enrollments failed.
func (pc *PaymentController) VerifyPayment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	reqData := c.Locals("validatedVerifyPayment").(*paymentValidator.VerifyPaymentRequest)

	outcomes, err := pc.service.VerifyPayment(c.UserContext(), paymentService.VerifyRequest{
		OrderID:   reqData.OrderID,
		PaymentID: reqData.PaymentID,
		Signature: reqData.Signature,
		CourseIDs: reqData.Courses,
		UserID:    userID,
	})
	if err != nil {
		if errors.Is(err, paymentService.ErrInvalidInput) || errors.Is(err, paymentService.ErrUnauthenticated) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Payment Failed", nil)
		}
		pc.logger.Error("Error verifying payment", zap.String("order_id", reqData.OrderID), zap.Error(err))
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Payment Failed", nil)
	}

	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		pc.logger.Warn("Payment verified with failed enrollments",
			zap.String("order_id", reqData.OrderID),
			zap.Int("failed", failed),
			zap.Int("courses", len(outcomes)))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment Verified", nil)
}

// SendPaymentSuccessEmail emails the invoice for a completed payment
func (pc *PaymentController) SendPaymentSuccessEmail(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}
	reqData := c.Locals("validatedPaymentSuccessEmail").(*paymentValidator.PaymentSuccessEmailRequest)

	err := pc.service.SendPaymentSuccessEmail(c.UserContext(), userID, reqData.OrderID, reqData.PaymentID, reqData.Amount)
	if err != nil {
		switch {
		case errors.Is(err, paymentService.ErrInvalidInput):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, paymentService.Message(err, ""), nil)
		case errors.Is(err, paymentService.ErrNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, paymentService.Message(err, ""), nil)
		}
		pc.logger.Error("Error sending payment success email", zap.String("order_id", reqData.OrderID), zap.Error(err))
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Could not send email", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment success email sent", nil)
}

// PaymentStats reports verified payments for today and this month
func (pc *PaymentController) PaymentStats(c *fiber.Ctx) error {
	stats, err := pc.service.PaymentStats(c.UserContext())
	if err != nil {
		pc.logger.Error("Error fetching payment stats", zap.Error(err))
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payment stats!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment stats fetched successfully!", stats)
}
