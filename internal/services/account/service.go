// Package account manages client accounts: opening, deposits and
// balance lookups.
package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"paycore/internal/models"
	"paycore/internal/repositories"
)

// Service defines the account service interface.
type Service interface {
	Open(ctx context.Context, ownerID string, typ models.AccountType, initialBalance float64) (*models.Account, error)
	Get(ctx context.Context, id string) (*models.Account, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Account, error)
	Deposit(ctx context.Context, id string, amount float64) (*models.Account, error)
	GetBalance(ctx context.Context, id string) (float64, error)
}

type service struct {
	repo repositories.AccountRepository
}

// NewService creates a new account service.
func NewService(repo repositories.AccountRepository) Service {
	if repo == nil {
		panic("account repository is required")
	}
	return &service{repo: repo}
}

// Open creates an account of the given type. Only checking and savings
// are supported.
func (s *service) Open(ctx context.Context, ownerID string, typ models.AccountType, initialBalance float64) (*models.Account, error) {
	switch typ {
	case models.AccountChecking, models.AccountSavings:
	default:
		return nil, ErrUnsupportedAccountType
	}
	if initialBalance < 0 {
		return nil, ErrInvalidInitialBalance
	}

	now := time.Now()
	acct := &models.Account{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Type:      typ,
		Balance:   initialBalance,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(acct); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return acct, nil
}

func (s *service) Get(ctx context.Context, id string) (*models.Account, error) {
	acct, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return acct, nil
}

func (s *service) ListByOwner(ctx context.Context, ownerID string) ([]models.Account, error) {
	accounts, err := s.repo.ListByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *service) Deposit(ctx context.Context, id string, amount float64) (*models.Account, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	err := s.repo.Update(id, func(a *models.Account) error {
		a.Balance += amount
		return nil
	})
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to deposit: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *service) GetBalance(ctx context.Context, id string) (float64, error) {
	acct, err := s.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	return acct.Balance, nil
}
