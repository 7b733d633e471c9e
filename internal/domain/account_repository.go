package domain

import (
	"context"
	"sync"
)

// AccountRepository is the store contract the ledger service depends on.
// Structural operations are individually atomic; cross-call atomicity is
// the caller's job via LockFor.
type AccountRepository interface {
	// Save upserts and returns the stored value.
	Save(ctx context.Context, account Account) (Account, error)
	// SaveNew inserts only if the account number is free, reserving the
	// number atomically. Returns ErrRecordExists on collision.
	SaveNew(ctx context.Context, account Account) (Account, error)
	// FindByNumber returns ErrRecordNotFound when the number is absent.
	FindByNumber(ctx context.Context, number int64) (Account, error)
	// FindAll returns a weakly consistent snapshot of all accounts.
	FindAll(ctx context.Context) ([]Account, error)
	// AllAccountNumbers returns a snapshot of the key set.
	AllAccountNumbers(ctx context.Context) (map[int64]struct{}, error)
	// LockFor returns the mutex serializing mutations of one account.
	// Any read-mutate-write span on a single account must hold it.
	LockFor(number int64) *sync.Mutex
}
