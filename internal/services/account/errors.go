package account

import "errors"

// Service errors
var (
	ErrUnsupportedAccountType = errors.New("unsupported account type")
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrInvalidInitialBalance  = errors.New("initial balance must not be negative")
	ErrAccountNotFound        = errors.New("account not found")
)
