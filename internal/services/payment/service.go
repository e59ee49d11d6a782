// Package payment implements the debit operation against client
// accounts: a charge succeeds only when the balance covers the amount,
// and a successful charge fans out an event to registered listeners.
package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"paycore/internal/models"
	"paycore/internal/repositories"
	"paycore/internal/services/card"
)

type service struct {
	accounts repositories.AccountRepository
	hub      Publisher
	now      func() time.Time
}

// NewService creates a new payment service. The publisher may be nil,
// in which case successful charges fire no notifications.
func NewService(accounts repositories.AccountRepository, hub Publisher) Service {
	if accounts == nil {
		panic("account repository is required")
	}
	return &service{
		accounts: accounts,
		hub:      hub,
		now:      time.Now,
	}
}

func (s *service) Pay(ctx context.Context, cardDetails models.CardDetails, accountID string, amount float64, description string) (*models.Receipt, error) {
	if err := card.Validate(cardDetails, s.now()); err != nil {
		return nil, err
	}
	return s.Charge(ctx, accountID, amount, description)
}

func (s *service) Charge(ctx context.Context, accountID string, amount float64, description string) (*models.Receipt, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var balance float64
	err := s.accounts.Update(accountID, func(a *models.Account) error {
		// Check and debit inside the account lock so concurrent charges
		// can never drive the balance below zero.
		if amount > a.Balance {
			return ErrInsufficientFunds
		}
		a.Balance -= amount
		balance = a.Balance
		return nil
	})
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}

	receipt := &models.Receipt{
		ReceiptID:   uuid.NewString(),
		AccountID:   accountID,
		Amount:      amount,
		Description: description,
		Balance:     balance,
		CreatedAt:   s.now(),
	}

	if s.hub != nil {
		s.hub.Publish(fmt.Sprintf("Payment of %v for %s", amount, description))
	}

	return receipt, nil
}
