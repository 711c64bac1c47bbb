package paymentRoutes

import (
	paymentController "studynotion/controllers/payment"
	"studynotion/middleware"
	"studynotion/models"
	validators "studynotion/validators/payment"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupPaymentRoutes mounts the payment API under /api/v1/payment
func SetupPaymentRoutes(app *fiber.App, pc *paymentController.PaymentController, db *gorm.DB, jwtSecret string) {
	auth := middleware.JWTMiddleware(jwtSecret)
	paymentGroup := app.Group("/api/v1/payment")

	paymentGroup.Post("/capturePayment", auth, validators.CapturePayment(), pc.CapturePayment)
	paymentGroup.Post("/verifyPayment", auth, validators.VerifyPayment(), pc.VerifyPayment)
	paymentGroup.Post("/sendPaymentSuccessEmail", auth, validators.SendPaymentSuccessEmail(), pc.SendPaymentSuccessEmail)

	// Admin
	paymentGroup.Get("/admin/stats", auth, middleware.RequireRole(db, models.RoleAdmin), pc.PaymentStats)
}
