package utils

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// InvoiceData is what goes on a payment invoice. Amount is in major units.
type InvoiceData struct {
	Name      string
	Amount    decimal.Decimal
	OrderID   string
	PaymentID string
	IssuedAt  time.Time
}

// InvoiceRenderer produces invoice PDFs.
type InvoiceRenderer struct {
	currency string
	compress bool
}

func NewInvoiceRenderer(currency string) *InvoiceRenderer {
	return &InvoiceRenderer{currency: currency, compress: true}
}

// InvoiceLines returns the body lines of the invoice, in print order.
func (r *InvoiceRenderer) InvoiceLines(data InvoiceData) []string {
	return []string{
		"Name: " + data.Name,
		fmt.Sprintf("Amount Paid: %s %s", r.currency, data.Amount.StringFixed(2)),
		"Order ID: " + data.OrderID,
		"Payment ID: " + data.PaymentID,
		"Date: " + data.IssuedAt.Format("02 Jan 2006, 15:04:05"),
	}
}

// Render lays out the invoice and returns the PDF bytes.
func (r *InvoiceRenderer) Render(data InvoiceData) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.SetCompression(r.compress)
	pdf.SetCreationDate(data.IssuedAt)
	pdf.SetTitle("Invoice "+data.OrderID, true)
	pdf.AddPage()

	// core fonts are cp1252
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "", 22)
	pdf.CellFormat(0, 12, "Invoice", "", 1, "C", false, 0, "")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 14)
	for _, line := range r.InvoiceLines(data) {
		pdf.CellFormat(0, 8, tr(line), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render invoice: %w", err)
	}
	return buf.Bytes(), nil
}

// FromMinorUnits converts an amount in paise (or cents) to major units.
func FromMinorUnits(amount int64) decimal.Decimal {
	return decimal.New(amount, -2)
}

// ToMinorUnits converts a major-unit amount to the smallest currency unit.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}
