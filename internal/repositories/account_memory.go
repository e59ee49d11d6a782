package repositories

import (
	"sync"
	"time"

	"paycore/internal/models"
)

type accountEntry struct {
	mu      sync.Mutex
	account models.Account
}

type memoryAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*accountEntry
}

// NewMemoryAccountRepository creates an empty in-memory account store.
func NewMemoryAccountRepository() AccountRepository {
	return &memoryAccountRepository{
		accounts: make(map[string]*accountEntry),
	}
}

func (r *memoryAccountRepository) Create(account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[account.ID] = &accountEntry{account: *account}
	return nil
}

func (r *memoryAccountRepository) GetByID(id string) (*models.Account, error) {
	r.mu.RLock()
	entry, ok := r.accounts[id]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrAccountNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	copied := entry.account
	return &copied, nil
}

func (r *memoryAccountRepository) ListByOwner(ownerID string) ([]models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var accounts []models.Account
	for _, entry := range r.accounts {
		entry.mu.Lock()
		if entry.account.OwnerID == ownerID {
			accounts = append(accounts, entry.account)
		}
		entry.mu.Unlock()
	}
	return accounts, nil
}

func (r *memoryAccountRepository) Update(id string, fn func(*models.Account) error) error {
	r.mu.RLock()
	entry, ok := r.accounts[id]
	r.mu.RUnlock()
	if !ok {
		return ErrAccountNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	working := entry.account
	if err := fn(&working); err != nil {
		return err
	}
	working.UpdatedAt = time.Now()
	entry.account = working
	return nil
}
