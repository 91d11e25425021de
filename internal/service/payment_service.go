package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sakura-sushi/backend/internal/models"
)

var (
	ErrInvalidAmount = errors.New("amount must be positive")
)

const defaultCurrency = "EUR"

const transactionAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// PaymentService fabricates payment receipts. Every simulated payment
// succeeds; no payment provider is involved.
type PaymentService struct{}

// NewPaymentService creates a new payment service.
func NewPaymentService() *PaymentService {
	return &PaymentService{}
}

// Simulate returns a fabricated transaction receipt for the given amount.
func (s *PaymentService) Simulate(ctx context.Context, req models.PaymentRequest) (*models.Transaction, error) {
	if req.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	now := time.Now().UTC()

	return &models.Transaction{
		ID:        fmt.Sprintf("TXN_%d_%s", now.UnixMilli(), randomString(9, transactionAlphabet)),
		Amount:    req.Amount,
		Currency:  currency,
		Status:    "succeeded",
		Timestamp: now,
		Note:      "This is a test transaction. No real money was charged.",
	}, nil
}
