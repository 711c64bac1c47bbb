package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"studynotion/config"

	"github.com/go-resty/resty/v2"
)

// OrderRequest is the body of a Razorpay "create order" call.
// Amount is in the smallest currency unit.
type OrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

// GatewayOrder is the order handle returned by Razorpay. It is passed back
// to the client as-is.
type GatewayOrder struct {
	ID         string          `json:"id"`
	Entity     string          `json:"entity"`
	Amount     int64           `json:"amount"`
	AmountPaid int64           `json:"amount_paid"`
	AmountDue  int64           `json:"amount_due"`
	Currency   string          `json:"currency"`
	Receipt    string          `json:"receipt"`
	OfferID    *string         `json:"offer_id"`
	Status     string          `json:"status"`
	Attempts   int             `json:"attempts"`
	Notes      json.RawMessage `json:"notes"` // object, or [] when empty
	CreatedAt  int64           `json:"created_at"`
}

// razorpayErrorResponse represents an error body from the Razorpay API
type razorpayErrorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
		Field       string `json:"field"`
	} `json:"error"`
}

// RazorpayClient talks to the Razorpay orders API.
type RazorpayClient struct {
	client *resty.Client
}

func NewRazorpayClient(cfg *config.Config) *RazorpayClient {
	client := resty.New().
		SetBaseURL(cfg.RazorpayAPIURL).
		SetBasicAuth(cfg.RazorpayKey, cfg.RazorpaySecret).
		SetTimeout(cfg.GatewayTimeout).
		SetHeader("Content-Type", "application/json")

	return &RazorpayClient{client: client}
}

// CreateOrder creates a gateway order for the given amount.
func (r *RazorpayClient) CreateOrder(ctx context.Context, req OrderRequest) (*GatewayOrder, error) {
	if req.Amount <= 0 {
		return nil, errors.New("order amount must be greater than 0")
	}

	var order GatewayOrder
	var apiErr razorpayErrorResponse

	resp, err := r.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&order).
		SetError(&apiErr).
		Post("/orders")
	if err != nil {
		return nil, fmt.Errorf("failed to create razorpay order: %w", err)
	}

	if resp.IsError() {
		if apiErr.Error.Description != "" {
			return nil, fmt.Errorf("razorpay API error (%d): %s", resp.StatusCode(), apiErr.Error.Description)
		}
		return nil, fmt.Errorf("razorpay API error (%d): %s", resp.StatusCode(), resp.String())
	}

	if order.ID == "" {
		return nil, errors.New("razorpay returned an order without id")
	}

	return &order, nil
}
