package domain

import (
	"errors"
	"fmt"
)

// Kind classifies ledger failures so the transport layer can pick a
// status code without parsing message text. A Kind is itself an error,
// which makes errors.Is(err, domain.KindNotFound) work through Unwrap.
type Kind string

const (
	KindInvalidArgument   Kind = "invalid argument"
	KindNotFound          Kind = "not found"
	KindDisabledAccount   Kind = "disabled account"
	KindInsufficientFunds Kind = "insufficient funds"
	KindInvalidAmount     Kind = "invalid amount"
	KindAlreadyDisabled   Kind = "already disabled"
)

func (k Kind) Error() string { return string(k) }

// Error carries the exact client-facing message. The texts are part of
// the observable contract and must not be reworded.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Store-level sentinels. The service translates ErrRecordNotFound into
// a KindNotFound Error; ErrRecordExists makes the number generator draw
// again.
var ErrRecordNotFound = errors.New("Record not found")
var ErrRecordExists = errors.New("Record already exists")

func ErrNullAccountNumber() error {
	// Typo is in the original message and is preserved verbatim.
	return newError(KindInvalidArgument, "Null account number is not supported fot this operation")
}

func ErrNullOwner() error {
	return newError(KindInvalidArgument, "Cannot create account for null owner")
}

func ErrNegativeBalance() error {
	return newError(KindInvalidArgument, "Balance cannot be negative")
}

func ErrNoAccount(number int64) error {
	return newError(KindNotFound, "No account found with number %d", number)
}

func ErrUpdateMissingAccount(number int64) error {
	return newError(KindNotFound, "Cannot update non existing account %d", number)
}

func ErrAlreadyDisabled(number int64) error {
	return newError(KindAlreadyDisabled, "Cannot disable disabled account %d", number)
}
