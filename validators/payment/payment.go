package paymentValidator

import (
	"errors"
	"reflect"
	"strings"

	"studynotion/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their JSON names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type CapturePaymentRequest struct {
	Courses []uint `json:"courses" validate:"required,min=1,dive,gt=0"`
}

type VerifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id" validate:"required"`
	PaymentID string `json:"razorpay_payment_id" validate:"required"`
	Signature string `json:"razorpay_signature" validate:"required"`
	Courses   []uint `json:"courses" validate:"required,min=1,dive,gt=0"`
}

type PaymentSuccessEmailRequest struct {
	OrderID   string `json:"orderId" validate:"required"`
	PaymentID string `json:"paymentId" validate:"required"`
	Amount    int64  `json:"amount" validate:"required,gt=0"`
}

// CapturePayment validates an order request
func CapturePayment() fiber.Handler {
	return bodyValidator(func() interface{} { return new(CapturePaymentRequest) }, "validatedCapturePayment", "Please provide course IDs")
}

// VerifyPayment validates a gateway callback. Any problem is reported as a
// failed payment.
func VerifyPayment() fiber.Handler {
	return bodyValidator(func() interface{} { return new(VerifyPaymentRequest) }, "validatedVerifyPayment", "Payment Failed")
}

// SendPaymentSuccessEmail validates a receipt request
func SendPaymentSuccessEmail() fiber.Handler {
	return bodyValidator(func() interface{} { return new(PaymentSuccessEmailRequest) }, "validatedPaymentSuccessEmail", "Please provide all the fields")
}

func bodyValidator(newReq func() interface{}, localsKey, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := newReq()
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if fieldErrors := validationErrors(validate.Struct(reqData)); len(fieldErrors) > 0 {
			return middleware.ValidationErrorResponse(c, message, fieldErrors)
		}

		c.Locals(localsKey, reqData)
		return c.Next()
	}
}

func validationErrors(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs["body"] = err.Error()
		return errs
	}

	for _, fe := range fieldErrs {
		field := strings.SplitN(fe.Field(), "[", 2)[0]
		switch fe.Tag() {
		case "required", "min":
			errs[field] = field + " is required!"
		case "gt":
			errs[field] = field + " must be greater than 0!"
		default:
			errs[field] = field + " is invalid!"
		}
	}
	return errs
}
