package models

import "time"

// Receipt is the result of a successful charge.
type Receipt struct {
	ReceiptID   string    `json:"receipt_id"`
	AccountID   string    `json:"account_id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Balance     float64   `json:"balance"` // balance after the debit
	CreatedAt   time.Time `json:"created_at"`
}

// PaymentRequest is the payload accepted by the payment endpoint.
type PaymentRequest struct {
	Card        CardDetails `json:"card"`
	AccountID   string      `json:"account_id"`
	Amount      float64     `json:"amount"`
	Description string      `json:"description"`
}
