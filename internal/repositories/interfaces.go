// Package repositories provides the data access layer. All stores are
// in-memory; state lives for the lifetime of the process only.
package repositories

import "paycore/internal/models"

// AccountRepository defines account storage operations.
type AccountRepository interface {
	Create(account *models.Account) error
	GetByID(id string) (*models.Account, error)
	ListByOwner(ownerID string) ([]models.Account, error)

	// Update runs fn on a working copy of the account while holding that
	// account's lock, making check-then-mutate sequences atomic per
	// account. The copy is committed only when fn returns nil; on error
	// the stored account is unchanged.
	Update(id string, fn func(*models.Account) error) error
}

// UserRepository defines user storage operations.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	List() ([]models.User, error)
	Update(user *models.User) error
	Delete(id string) error
}
