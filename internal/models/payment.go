package models

import "time"

// PaymentRequest is the body of POST /api/payment/simulate.
type PaymentRequest struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency,omitempty"`
}

// Transaction is a fabricated payment receipt. Simulated payments always
// succeed; no real money moves.
type Transaction struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note"`
}
