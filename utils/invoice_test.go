package utils

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinorUnitConversion(t *testing.T) {
	assert.Equal(t, "499.00", FromMinorUnits(49900).StringFixed(2))
	assert.Equal(t, "0.99", FromMinorUnits(99).StringFixed(2))

	assert.Equal(t, int64(49900), ToMinorUnits(decimal.RequireFromString("499.00")))
	assert.Equal(t, int64(49999), ToMinorUnits(decimal.RequireFromString("499.99")))
	assert.Equal(t, int64(100050), ToMinorUnits(decimal.RequireFromString("499.25").Add(decimal.RequireFromString("501.25"))))
}

func TestInvoiceLines(t *testing.T) {
	r := NewInvoiceRenderer("INR")
	issued := time.Date(2026, 10, 19, 14, 30, 0, 0, time.UTC)

	lines := r.InvoiceLines(InvoiceData{
		Name:      "Asha",
		Amount:    FromMinorUnits(49900),
		OrderID:   "order_1",
		PaymentID: "pay_1",
		IssuedAt:  issued,
	})

	assert.Equal(t, []string{
		"Name: Asha",
		"Amount Paid: INR 499.00",
		"Order ID: order_1",
		"Payment ID: pay_1",
		"Date: 19 Oct 2026, 14:30:00",
	}, lines)
}

func TestRenderInvoice(t *testing.T) {
	r := NewInvoiceRenderer("INR")
	r.compress = false

	out, err := r.Render(InvoiceData{
		Name:      "Asha",
		Amount:    FromMinorUnits(49900),
		OrderID:   "order_1",
		PaymentID: "pay_1",
		IssuedAt:  time.Date(2026, 10, 19, 14, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.True(t, bytes.Contains(out, []byte("Amount Paid: INR 499.00")))
	assert.True(t, bytes.Contains(out, []byte("Order ID: order_1")))
	assert.True(t, bytes.Contains(out, []byte("Payment ID: pay_1")))
}

func TestRenderInvoiceCompressed(t *testing.T) {
	out, err := NewInvoiceRenderer("INR").Render(InvoiceData{
		Name:      "Zoë",
		Amount:    decimal.NewFromInt(10),
		OrderID:   "order_2",
		PaymentID: "pay_2",
		IssuedAt:  time.Now(),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}
