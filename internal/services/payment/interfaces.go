package payment

import (
	"context"

	"paycore/internal/models"
)

// Service defines the payment service interface.
type Service interface {
	// Pay validates the card and, if it passes, charges the account.
	Pay(ctx context.Context, card models.CardDetails, accountID string, amount float64, description string) (*models.Receipt, error)

	// Charge debits the account without card validation. Used by flows
	// that already hold a validated instrument.
	Charge(ctx context.Context, accountID string, amount float64, description string) (*models.Receipt, error)
}

// Publisher receives a payment event after each successful charge.
type Publisher interface {
	Publish(event string)
}
