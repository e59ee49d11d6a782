package repositories

import (
	"errors"
	"sync"
	"testing"

	"paycore/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryAccountRepository_UpdateRollsBackOnError(t *testing.T) {
	repo := NewMemoryAccountRepository()
	require.NoError(t, repo.Create(&models.Account{ID: "a1", Balance: 100}))

	boom := errors.New("boom")
	err := repo.Update("a1", func(a *models.Account) error {
		a.Balance = -999 // mutate, then fail
		return boom
	})
	assert.ErrorIs(t, err, boom)

	acct, err := repo.GetByID("a1")
	require.NoError(t, err)
	assert.Equal(t, 100.0, acct.Balance, "failed update must not be committed")
}

func TestMemoryAccountRepository_UpdateMissing(t *testing.T) {
	repo := NewMemoryAccountRepository()
	err := repo.Update("nope", func(a *models.Account) error { return nil })
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestMemoryAccountRepository_GetReturnsCopy(t *testing.T) {
	repo := NewMemoryAccountRepository()
	require.NoError(t, repo.Create(&models.Account{ID: "a1", Balance: 100}))

	acct, err := repo.GetByID("a1")
	require.NoError(t, err)
	acct.Balance = 0

	again, err := repo.GetByID("a1")
	require.NoError(t, err)
	assert.Equal(t, 100.0, again.Balance)
}

func TestMemoryAccountRepository_ConcurrentUpdates(t *testing.T) {
	repo := NewMemoryAccountRepository()
	require.NoError(t, repo.Create(&models.Account{ID: "a1", Balance: 0}))

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = repo.Update("a1", func(a *models.Account) error {
				a.Balance++
				return nil
			})
		}()
	}
	wg.Wait()

	acct, err := repo.GetByID("a1")
	require.NoError(t, err)
	assert.Equal(t, 100.0, acct.Balance)
}
