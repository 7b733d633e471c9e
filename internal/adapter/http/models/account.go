package models

import (
	"github.com/shopspring/decimal"

	"github.com/albina-astr/bank-account-api/internal/domain"
)

// AccountResponse mirrors the wire shape of an account. Balance is
// rendered as a decimal string.
type AccountResponse struct {
	Number   int64           `json:"number"`
	Owner    string          `json:"owner"`
	Balance  decimal.Decimal `json:"balance"`
	Disabled bool            `json:"disabled"`
}

func AccountFromDomain(account domain.Account) AccountResponse {
	return AccountResponse{
		Number:   account.Number,
		Owner:    account.Owner,
		Balance:  account.Balance,
		Disabled: account.Disabled,
	}
}

func AccountsFromDomain(accounts []domain.Account) []AccountResponse {
	out := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, AccountFromDomain(account))
	}

	return out
}

// UpdateAccountRequest is a full replacement of the stored record, not a
// patch: omitted fields overwrite with their zero values. Number is a
// pointer so an absent field is distinguishable from zero.
type UpdateAccountRequest struct {
	Number   *int64          `json:"number"`
	Owner    string          `json:"owner"`
	Balance  decimal.Decimal `json:"balance"`
	Disabled bool            `json:"disabled"`
}

type TopUpRequest struct {
	AccountNumber *int64          `json:"accountNumber"`
	Amount        decimal.Decimal `json:"amount"`
}

type TransferRequest struct {
	AccountNumberFrom *int64          `json:"accountNumberFrom"`
	AccountNumberTo   *int64          `json:"accountNumberTo"`
	Amount            decimal.Decimal `json:"amount"`
}
