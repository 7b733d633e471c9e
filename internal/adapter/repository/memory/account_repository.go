package memory

import (
	"context"
	"sync"

	"github.com/albina-astr/bank-account-api/internal/domain"
)

// AccountRepository keeps the ledger in process memory. accounts holds
// value copies keyed by account number; locks is the parallel map of
// per-account mutexes so the Account record itself stays a plain value.
// Both maps are guarded by mu.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[int64]domain.Account
	locks    map[int64]*sync.Mutex
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[int64]domain.Account),
		locks:    make(map[int64]*sync.Mutex),
	}
}

func (r *AccountRepository) Save(_ context.Context, account domain.Account) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.accounts[account.Number] = account
	if _, ok := r.locks[account.Number]; !ok {
		r.locks[account.Number] = &sync.Mutex{}
	}

	return r.accounts[account.Number], nil
}

// SaveNew inserts the account only if its number is unclaimed. Check and
// insert happen under the same write lock, so two concurrent creations
// cannot end up sharing a number.
func (r *AccountRepository) SaveNew(_ context.Context, account domain.Account) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.Number]; ok {
		return domain.Account{}, domain.ErrRecordExists
	}

	r.accounts[account.Number] = account
	r.locks[account.Number] = &sync.Mutex{}

	return account, nil
}

func (r *AccountRepository) FindByNumber(_ context.Context, number int64) (domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[number]
	if !ok {
		return domain.Account{}, domain.ErrRecordNotFound
	}

	return account, nil
}

func (r *AccountRepository) FindAll(_ context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		out = append(out, account)
	}

	return out, nil
}

func (r *AccountRepository) AllAccountNumbers(_ context.Context) (map[int64]struct{}, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[int64]struct{}, len(r.accounts))
	for number := range r.accounts {
		out[number] = struct{}{}
	}

	return out, nil
}

// LockFor hands out the mutex for one account, creating it on demand so
// callers can lock before the first Save. Accounts are never deleted, so
// a lock stays valid for the process lifetime.
func (r *AccountRepository) LockFor(number int64) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	lock, ok := r.locks[number]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[number] = lock
	}

	return lock
}
