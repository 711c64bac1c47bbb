package utils

import (
	"fmt"
	"time"

	"studynotion/config"
	"studynotion/models"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// InitializeOrderScheduler starts the job that expires orders which were
// created but never verified. The returned cron must be stopped on shutdown.
func InitializeOrderScheduler(db *gorm.DB, cfg *config.Config, logger *zap.Logger) (*cron.Cron, error) {
	logger.Info("Initializing order scheduler...", zap.Duration("interval", cfg.OrderSweepInterval), zap.Duration("ttl", cfg.OrderTTL))

	c := cron.New()

	_, err := c.AddFunc("@every "+cfg.OrderSweepInterval.String(), func() {
		expired, err := ExpireStaleOrders(db, cfg.OrderTTL, time.Now())
		if err != nil {
			logger.Error("Error expiring stale orders", zap.Error(err))
			return
		}
		if expired > 0 {
			logger.Info("Expired stale orders", zap.Int64("count", expired))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule order sweep: %w", err)
	}

	c.Start()
	logger.Info("Order scheduler started")
	return c, nil
}

// ExpireStaleOrders marks CREATED orders older than ttl as EXPIRED. Only the
// local record changes; the gateway is not contacted.
func ExpireStaleOrders(db *gorm.DB, ttl time.Duration, now time.Time) (int64, error) {
	result := db.Model(&models.PaymentTransaction{}).
		Where("status = ? AND transaction_date < ?", models.PaymentStatusCreated, now.Add(-ttl)).
		Update("status", models.PaymentStatusExpired)

	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
