package domain

import "github.com/shopspring/decimal"

// Account is a plain value record. The store owns the current version of
// each account; mutated copies must be saved back to become visible.
// Locking lives in the store, not here.
type Account struct {
	Number   int64
	Owner    string
	Balance  decimal.Decimal
	Disabled bool
}

// WriteOff debits the balance. Validation order is part of the observable
// contract: disabled check first, then insufficient funds, then amount.
func (a *Account) WriteOff(amount decimal.Decimal) error {
	if a.Disabled {
		return newError(KindDisabledAccount, "Could not execute write off from disabled account %d", a.Number)
	}
	if a.Balance.LessThan(amount) {
		return newError(KindInsufficientFunds, "Not sufficient funds for write off on account %d", a.Number)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return newError(KindInvalidAmount, "Write off amount cannot be zero or negative. Account %d", a.Number)
	}

	a.Balance = a.Balance.Sub(amount)
	return nil
}

// TopUp credits the balance.
func (a *Account) TopUp(amount decimal.Decimal) error {
	if a.Disabled {
		return newError(KindDisabledAccount, "Could not execute top up on disabled account %d", a.Number)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return newError(KindInvalidAmount, "Top up amount cannot be zero or negative. Account %d", a.Number)
	}

	a.Balance = a.Balance.Add(amount)
	return nil
}
