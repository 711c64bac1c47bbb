package paymentService

import (
	"context"

	"studynotion/utils"

	"go.uber.org/zap"
)

// SendPaymentSuccessEmail renders an invoice for a payment and emails it to
// the student. amount is in minor units. Delivery failures are not
// reported; rendering failures are.
func (s *Service) SendPaymentSuccessEmail(ctx context.Context, userID uint, orderID, paymentID string, amount int64) error {
	if userID == 0 || orderID == "" || paymentID == "" || amount <= 0 {
		return newError(ErrInvalidInput, "Please provide all the fields")
	}

	user, err := findUser(s.db.WithContext(ctx), userID)
	if err != nil {
		return err
	}

	paid := utils.FromMinorUnits(amount)
	invoice, err := s.invoices.Render(utils.InvoiceData{
		Name:      user.FirstName,
		Amount:    paid,
		OrderID:   orderID,
		PaymentID: paymentID,
		IssuedAt:  s.now(),
	})
	if err != nil {
		s.logger.Error("Error rendering invoice", zap.String("order_id", orderID), zap.Error(err))
		return err
	}

	_ = s.notifier.Send(ctx, utils.Mail{
		To:      user.Email,
		Subject: "Payment Received",
		HTML:    utils.PaymentSuccessEmail(user.FirstName, paid, s.cfg.Currency, orderID, paymentID),
		Attachments: []utils.Attachment{
			{Filename: "Invoice-" + orderID + ".pdf", Content: invoice},
		},
	})

	return nil
}
