package models

import "time"

// AccountType is the account variant, mirroring the checking/savings split.
type AccountType string

// Supported account types
const (
	AccountChecking AccountType = "checking"
	AccountSavings  AccountType = "savings"
)

// Account is a client account holding a balance. Balance never goes
// negative as a result of a charge; mutation is serialized by the store.
type Account struct {
	ID        string      `json:"id"`
	OwnerID   string      `json:"owner_id"`
	Type      AccountType `json:"type"`
	Balance   float64     `json:"balance"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
