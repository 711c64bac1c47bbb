package paymentService

import (
	"context"
	"fmt"
	"time"

	"studynotion/models"
	"studynotion/utils"

	"github.com/jinzhu/now"
)

// PeriodStats sums verified payments over a period. Amount is in major units.
type PeriodStats struct {
	Count  int64  `json:"count"`
	Amount string `json:"amount"`
}

type PaymentStats struct {
	Currency string      `json:"currency"`
	Today    PeriodStats `json:"today"`
	Month    PeriodStats `json:"month"`
}

func (s *Service) PaymentStats(ctx context.Context) (*PaymentStats, error) {
	at := now.With(s.now())

	today, err := s.paidSince(ctx, at.BeginningOfDay())
	if err != nil {
		return nil, err
	}
	month, err := s.paidSince(ctx, at.BeginningOfMonth())
	if err != nil {
		return nil, err
	}

	return &PaymentStats{Currency: s.cfg.Currency, Today: today, Month: month}, nil
}

func (s *Service) paidSince(ctx context.Context, from time.Time) (PeriodStats, error) {
	var row struct {
		Count  int64
		Amount int64
	}

	err := s.db.WithContext(ctx).Model(&models.PaymentTransaction{}).
		Select("COUNT(*) AS count, COALESCE(SUM(amount), 0) AS amount").
		Where("status = ? AND paid_at >= ?", models.PaymentStatusPaid, from).
		Scan(&row).Error
	if err != nil {
		return PeriodStats{}, fmt.Errorf("failed to aggregate payments: %w", err)
	}

	return PeriodStats{Count: row.Count, Amount: utils.FromMinorUnits(row.Amount).StringFixed(2)}, nil
}
