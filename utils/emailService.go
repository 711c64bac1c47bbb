package utils

import (
	"fmt"
	"html"

	"github.com/shopspring/decimal"
)

// HTML wrapper shared by all transactional emails
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #000814; padding: 30px; text-align: center; }
			.header h1 { color: #FFD60A; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #161D29; line-height: 1.6; }
			.content h2 { color: #161D29; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #FFD60A; color: #000000; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
			.info-box { background: #F1F2FF; padding: 15px; border-radius: 4px; border-left: 4px solid #FFD60A; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>STUDYNOTION</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				If you have any questions, reach out to us at info@studynotion.in.<br>
				&copy; 2026 StudyNotion. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// CourseEnrollmentEmail is sent once per course after a successful enrollment.
func CourseEnrollmentEmail(courseName, name string) string {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have successfully registered for the course <strong>%s</strong>. We are excited to have you as a participant!</p>
		<p>Please log in to your learning dashboard to access the course materials and start your learning journey.</p>
		<a href="https://studynotion.in/dashboard" class="btn">Go to Dashboard</a>
	`, html.EscapeString(name), html.EscapeString(courseName))

	return getEmailTemplate("Course Registration Confirmation", body)
}

// PaymentSuccessEmail accompanies the invoice after a verified payment.
func PaymentSuccessEmail(name string, amount decimal.Decimal, currency, orderID, paymentID string) string {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We have received a payment of <strong>%s %s</strong>.</p>
		<div class="info-box">
			<strong>Order ID:</strong> %s<br>
			<strong>Payment ID:</strong> %s
		</div>
		<p>Your invoice is attached to this email.</p>
	`, html.EscapeString(name), currency, amount.StringFixed(2), html.EscapeString(orderID), html.EscapeString(paymentID))

	return getEmailTemplate("Payment Confirmation", body)
}
