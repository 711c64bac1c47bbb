package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PaymentStatus defines the status of a locally tracked gateway order
type PaymentStatus string

const (
	PaymentStatusCreated PaymentStatus = "CREATED"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
	PaymentStatusExpired PaymentStatus = "EXPIRED"
)

// PaymentTransaction is the local bookkeeping record of a gateway order.
// The gateway owns the order lifecycle; this row only mirrors what we saw.
type PaymentTransaction struct {
	gorm.Model
	UserID uint `gorm:"not null;index" json:"userId"`

	PaymentGateway   string `gorm:"type:varchar(50);default:'razorpay'" json:"paymentGateway"`
	PaymentOrderID   string `gorm:"type:varchar(100);not null;uniqueIndex" json:"paymentOrderId"` // Order ID from gateway
	PaymentID        string `gorm:"type:varchar(100);index" json:"paymentId"`                     // Payment ID from gateway
	PaymentSignature string `gorm:"type:varchar(255)" json:"-"`

	Amount   int64  `gorm:"not null;default:0" json:"amount"` // minor units (paise)
	Currency string `gorm:"type:varchar(10);default:'INR'" json:"currency"`
	Receipt  string `gorm:"type:varchar(100)" json:"receipt"`

	// Course ids the order was raised for, as a JSON array
	Courses datatypes.JSON `json:"courses"`

	Status          PaymentStatus `gorm:"type:varchar(20);default:'CREATED';index" json:"status"`
	TransactionDate time.Time     `gorm:"not null" json:"transactionDate"`
	PaidAt          *time.Time    `json:"paidAt"`
}

func (PaymentTransaction) TableName() string {
	return "payment_transactions"
}
