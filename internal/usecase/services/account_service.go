package services

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/albina-astr/bank-account-api/internal/adapter/http/models"
	"github.com/albina-astr/bank-account-api/internal/domain"
	"github.com/albina-astr/bank-account-api/internal/logger"
)

// AccountService is the single authority for account mutation. It owns
// no state of its own; records live in the repository and every
// read-mutate-write span on one account runs under that account's lock.
type AccountService struct {
	accountRepo domain.AccountRepository
}

func NewAccountService(accountRepo domain.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

func (s *AccountService) CreateAccount(ctx context.Context, owner string) (domain.Account, error) {
	if strings.TrimSpace(owner) == "" {
		return domain.Account{}, domain.ErrNullOwner()
	}

	for {
		number, err := s.generateAccountNumber(ctx)
		if err != nil {
			return domain.Account{}, err
		}

		account := domain.Account{
			Number:   number,
			Owner:    owner,
			Balance:  decimal.Zero,
			Disabled: false,
		}

		created, err := s.accountRepo.SaveNew(ctx, account)
		if errors.Is(err, domain.ErrRecordExists) {
			// Lost the reservation race to a concurrent creation.
			continue
		}
		if err != nil {
			return domain.Account{}, err
		}

		logger.Info("account service created account", logger.Fields{
			"accountNumber": created.Number,
			"owner":         created.Owner,
		})
		return created, nil
	}
}

func (s *AccountService) GetInfo(ctx context.Context, accountNumber *int64) (domain.Account, error) {
	if accountNumber == nil {
		return domain.Account{}, domain.ErrNullAccountNumber()
	}

	account, err := s.accountRepo.FindByNumber(ctx, *accountNumber)
	if errors.Is(err, domain.ErrRecordNotFound) {
		return domain.Account{}, domain.ErrNoAccount(*accountNumber)
	}
	if err != nil {
		return domain.Account{}, err
	}

	return account, nil
}

func (s *AccountService) GetAllAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepo.FindAll(ctx)
}

// UpdateAccount replaces the stored record wholesale with the supplied
// one. Fields omitted by the caller overwrite the prior values.
func (s *AccountService) UpdateAccount(ctx context.Context, req models.UpdateAccountRequest) (domain.Account, error) {
	if req.Number == nil {
		return domain.Account{}, domain.ErrNullAccountNumber()
	}
	if req.Balance.IsNegative() {
		return domain.Account{}, domain.ErrNegativeBalance()
	}

	number := *req.Number
	if _, err := s.accountRepo.FindByNumber(ctx, number); errors.Is(err, domain.ErrRecordNotFound) {
		return domain.Account{}, domain.ErrUpdateMissingAccount(number)
	} else if err != nil {
		return domain.Account{}, err
	}

	lock := s.accountRepo.LockFor(number)
	lock.Lock()
	defer lock.Unlock()

	updated, err := s.accountRepo.Save(ctx, domain.Account{
		Number:   number,
		Owner:    req.Owner,
		Balance:  req.Balance,
		Disabled: req.Disabled,
	})
	if err != nil {
		return domain.Account{}, err
	}

	logger.Info("account service updated account", logger.Fields{
		"accountNumber": updated.Number,
	})
	return updated, nil
}

func (s *AccountService) TopUp(ctx context.Context, req models.TopUpRequest) (domain.Account, error) {
	if req.AccountNumber == nil {
		return domain.Account{}, domain.ErrNullAccountNumber()
	}

	number := *req.AccountNumber
	if _, err := s.accountRepo.FindByNumber(ctx, number); errors.Is(err, domain.ErrRecordNotFound) {
		return domain.Account{}, domain.ErrNoAccount(number)
	} else if err != nil {
		return domain.Account{}, err
	}

	lock := s.accountRepo.LockFor(number)
	lock.Lock()
	defer lock.Unlock()

	// Re-read under the lock so the mutation applies to the current
	// record, not the pre-lock snapshot.
	account, err := s.accountRepo.FindByNumber(ctx, number)
	if err != nil {
		return domain.Account{}, err
	}
	if err := account.TopUp(req.Amount); err != nil {
		return domain.Account{}, err
	}

	saved, err := s.accountRepo.Save(ctx, account)
	if err != nil {
		return domain.Account{}, err
	}

	logger.Info("account service topped up account", logger.Fields{
		"accountNumber": saved.Number,
		"amount":        req.Amount,
	})
	return saved, nil
}

// DeleteAccount disables the account, keeping its record. Disabling is
// one-way; there is no re-enable.
func (s *AccountService) DeleteAccount(ctx context.Context, accountNumber *int64) (domain.Account, error) {
	if accountNumber == nil {
		return domain.Account{}, domain.ErrNullAccountNumber()
	}

	number := *accountNumber
	if _, err := s.accountRepo.FindByNumber(ctx, number); errors.Is(err, domain.ErrRecordNotFound) {
		return domain.Account{}, domain.ErrNoAccount(number)
	} else if err != nil {
		return domain.Account{}, err
	}

	lock := s.accountRepo.LockFor(number)
	lock.Lock()
	defer lock.Unlock()

	account, err := s.accountRepo.FindByNumber(ctx, number)
	if err != nil {
		return domain.Account{}, err
	}
	if account.Disabled {
		return domain.Account{}, domain.ErrAlreadyDisabled(account.Number)
	}

	account.Disabled = true
	saved, err := s.accountRepo.Save(ctx, account)
	if err != nil {
		return domain.Account{}, err
	}

	logger.Info("account service disabled account", logger.Fields{
		"accountNumber": saved.Number,
	})
	return saved, nil
}

// Transfer moves funds between two accounts atomically. Locks are taken
// in ascending account-number order regardless of transfer direction, so
// two opposite transfers over the same pair cannot deadlock. Both
// mutations run on local copies and are written back only after both
// validate, so a failed top-up never leaves a committed write-off.
func (s *AccountService) Transfer(ctx context.Context, req models.TransferRequest) error {
	if req.AccountNumberFrom == nil || req.AccountNumberTo == nil {
		return domain.ErrNullAccountNumber()
	}

	from := *req.AccountNumberFrom
	to := *req.AccountNumberTo
	if _, err := s.accountRepo.FindByNumber(ctx, from); errors.Is(err, domain.ErrRecordNotFound) {
		return domain.ErrNoAccount(from)
	} else if err != nil {
		return err
	}
	if _, err := s.accountRepo.FindByNumber(ctx, to); errors.Is(err, domain.ErrRecordNotFound) {
		return domain.ErrNoAccount(to)
	} else if err != nil {
		return err
	}

	first, second := from, to
	if second < first {
		first, second = second, first
	}

	firstLock := s.accountRepo.LockFor(first)
	firstLock.Lock()
	defer firstLock.Unlock()
	if second != first {
		secondLock := s.accountRepo.LockFor(second)
		secondLock.Lock()
		defer secondLock.Unlock()
	}

	if from == to {
		// sync.Mutex is not reentrant, so the self-transfer runs on the
		// one record under the one lock taken above.
		account, err := s.accountRepo.FindByNumber(ctx, from)
		if err != nil {
			return err
		}
		if err := account.WriteOff(req.Amount); err != nil {
			return err
		}
		if err := account.TopUp(req.Amount); err != nil {
			return err
		}
		_, err = s.accountRepo.Save(ctx, account)
		return err
	}

	source, err := s.accountRepo.FindByNumber(ctx, from)
	if err != nil {
		return err
	}
	destination, err := s.accountRepo.FindByNumber(ctx, to)
	if err != nil {
		return err
	}

	if err := source.WriteOff(req.Amount); err != nil {
		return err
	}
	if err := destination.TopUp(req.Amount); err != nil {
		return err
	}

	if _, err := s.accountRepo.Save(ctx, source); err != nil {
		return err
	}
	if _, err := s.accountRepo.Save(ctx, destination); err != nil {
		return err
	}

	logger.Info("account service transferred funds", logger.Fields{
		"accountNumberFrom": from,
		"accountNumberTo":   to,
		"amount":            req.Amount,
	})
	return nil
}

// generateAccountNumber draws random positive numbers until one is free.
// The snapshot check only thins out collisions; the authoritative
// reservation happens in SaveNew during CreateAccount.
func (s *AccountService) generateAccountNumber(ctx context.Context) (int64, error) {
	numbers, err := s.accountRepo.AllAccountNumbers(ctx)
	if err != nil {
		return 0, err
	}

	for {
		candidate := rand.Int64()
		if candidate == 0 {
			continue
		}
		if _, taken := numbers[candidate]; taken {
			continue
		}
		return candidate, nil
	}
}
