package utils

import (
	"testing"
	"time"

	"studynotion/config"
	"studynotion/database"
	"studynotion/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestExpireStaleOrders(t *testing.T) {
	db, err := database.ConnectDb(&config.Config{DBDriver: "sqlite", DBName: ":memory:"}, zap.NewNop())
	require.NoError(t, err)

	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	rows := []models.PaymentTransaction{
		{UserID: 1, PaymentOrderID: "order_old", Status: models.PaymentStatusCreated, TransactionDate: now.Add(-48 * time.Hour)},
		{UserID: 1, PaymentOrderID: "order_new", Status: models.PaymentStatusCreated, TransactionDate: now.Add(-time.Hour)},
		{UserID: 1, PaymentOrderID: "order_paid", Status: models.PaymentStatusPaid, TransactionDate: now.Add(-72 * time.Hour)},
	}
	require.NoError(t, db.Create(&rows).Error)

	expired, err := ExpireStaleOrders(db, 24*time.Hour, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), expired)

	statusOf := func(orderID string) models.PaymentStatus {
		var txn models.PaymentTransaction
		require.NoError(t, db.Where("payment_order_id = ?", orderID).First(&txn).Error)
		return txn.Status
	}
	assert.Equal(t, models.PaymentStatusExpired, statusOf("order_old"))
	assert.Equal(t, models.PaymentStatusCreated, statusOf("order_new"))
	assert.Equal(t, models.PaymentStatusPaid, statusOf("order_paid"))
}

func TestInitializeOrderScheduler(t *testing.T) {
	db, err := database.ConnectDb(&config.Config{DBDriver: "sqlite", DBName: ":memory:"}, zap.NewNop())
	require.NoError(t, err)

	c, err := InitializeOrderScheduler(db, &config.Config{OrderSweepInterval: time.Hour, OrderTTL: time.Hour}, zap.NewNop())
	require.NoError(t, err)
	defer c.Stop()

	assert.Len(t, c.Entries(), 1)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug")
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = NewLogger("loud")
	assert.Error(t, err)
}
