package controller_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/albina-astr/bank-account-api/internal/adapter/http/controller"
	"github.com/albina-astr/bank-account-api/internal/adapter/http/middleware"
	"github.com/albina-astr/bank-account-api/internal/adapter/http/models"
	"github.com/albina-astr/bank-account-api/internal/adapter/http/router"
	"github.com/albina-astr/bank-account-api/internal/adapter/repository/memory"
	"github.com/albina-astr/bank-account-api/internal/domain"
	"github.com/albina-astr/bank-account-api/internal/usecase/services"
)

func newTestMux(t *testing.T) (*http.ServeMux, *memory.AccountRepository) {
	t.Helper()
	repo := memory.NewAccountRepository()
	seed := []domain.Account{
		{Number: 1, Owner: "Harry Potter", Balance: decimal.NewFromInt(1000)},
		{Number: 2, Owner: "Voldemort", Balance: decimal.NewFromInt(1000)},
	}
	for _, account := range seed {
		if _, err := repo.Save(context.Background(), account); err != nil {
			t.Fatalf("seed account %d: %v", account.Number, err)
		}
	}

	svc := services.NewAccountService(repo)
	mux := router.New(
		controller.NewAccountController(svc),
		controller.NewTransferController(svc),
		middleware.RequestID,
	)
	return mux, repo
}

func do(mux *http.ServeMux, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeAccount(t *testing.T, rec *httptest.ResponseRecorder) models.AccountResponse {
	t.Helper()
	var account models.AccountResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &account); err != nil {
		t.Fatalf("decode account response: %v (%s)", err, rec.Body.String())
	}
	return account
}

func TestCreateAccountRoute(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := do(mux, http.MethodPost, "/accounts/create/Hermione", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (%s)", rec.Code, rec.Body.String())
	}

	account := decodeAccount(t, rec)
	if account.Owner != "Hermione" || account.Number <= 0 || account.Disabled {
		t.Fatalf("account = %+v", account)
	}
	if !account.Balance.Equal(decimal.Zero) {
		t.Fatalf("balance = %s, want 0", account.Balance)
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatal("missing X-Request-Id header")
	}
}

func TestFindAllRoute(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := do(mux, http.MethodGet, "/accounts", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var accounts []models.AccountResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &accounts); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("len = %d, want 2", len(accounts))
	}
}

func TestGetByNumberRoute(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := do(mux, http.MethodGet, "/accounts/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if account := decodeAccount(t, rec); account.Owner != "Harry Potter" {
		t.Fatalf("account = %+v", account)
	}
}

func TestGetByNumberRouteNotFound(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := do(mux, http.MethodGet, "/accounts/99", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if got, want := rec.Body.String(), "No account found with number 99"; got != want {
		t.Fatalf("body = %q, want %q", got, want)
	}
}

func TestGetByNumberRouteBadNumber(t *testing.T) {
	mux, _ := newTestMux(t)

	if rec := do(mux, http.MethodGet, "/accounts/abc", ""); rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestUpdateRoute(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := do(mux, http.MethodPut, "/accounts/update", `{"number":1,"owner":"Harry J. Potter","balance":750,"disabled":false}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}

	account := decodeAccount(t, rec)
	if account.Owner != "Harry J. Potter" || !account.Balance.Equal(decimal.NewFromInt(750)) {
		t.Fatalf("account = %+v", account)
	}
}

func TestUpdateRouteMissingNumber(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := do(mux, http.MethodPut, "/accounts/update", `{"owner":"x","balance":10}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got, want := rec.Body.String(), "Null account number is not supported fot this operation"; got != want {
		t.Fatalf("body = %q, want %q", got, want)
	}
}

func TestTopUpRoute(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := do(mux, http.MethodPost, "/accounts/top_up", `{"accountNumber":1,"amount":250}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}
	if account := decodeAccount(t, rec); !account.Balance.Equal(decimal.NewFromInt(1250)) {
		t.Fatalf("balance = %s, want 1250", account.Balance)
	}
}

func TestTopUpRouteInvalidAmount(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := do(mux, http.MethodPost, "/accounts/top_up", `{"accountNumber":1,"amount":-5}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got, want := rec.Body.String(), "Top up amount cannot be zero or negative. Account 1"; got != want {
		t.Fatalf("body = %q, want %q", got, want)
	}
}

func TestTopUpRouteMalformedBody(t *testing.T) {
	mux, _ := newTestMux(t)

	if rec := do(mux, http.MethodPost, "/accounts/top_up", `{`); rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestDeleteRoute(t *testing.T) {
	mux, repo := newTestMux(t)

	rec := do(mux, http.MethodDelete, "/accounts/delete/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
	}
	if account := decodeAccount(t, rec); !account.Disabled {
		t.Fatalf("account = %+v, want disabled", account)
	}

	stored, err := repo.FindByNumber(context.Background(), 1)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if !stored.Disabled {
		t.Fatal("disable not persisted")
	}

	rec = do(mux, http.MethodDelete, "/accounts/delete/1", "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("second delete status = %d, want 409", rec.Code)
	}
	if got, want := rec.Body.String(), "Cannot disable disabled account 1"; got != want {
		t.Fatalf("body = %q, want %q", got, want)
	}
}

func TestTransferRoute(t *testing.T) {
	mux, repo := newTestMux(t)

	rec := do(mux, http.MethodPost, "/accounts/transfer", `{"accountNumberFrom":1,"accountNumberTo":2,"amount":500}`)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204 (%s)", rec.Code, rec.Body.String())
	}

	from, _ := repo.FindByNumber(context.Background(), 1)
	to, _ := repo.FindByNumber(context.Background(), 2)
	if !from.Balance.Equal(decimal.NewFromInt(500)) || !to.Balance.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("balances = %s / %s, want 500 / 1500", from.Balance, to.Balance)
	}
}

func TestTransferRouteInsufficientFunds(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := do(mux, http.MethodPost, "/accounts/transfer", `{"accountNumberFrom":1,"accountNumberTo":2,"amount":1500}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	if got, want := rec.Body.String(), "Not sufficient funds for write off on account 1"; got != want {
		t.Fatalf("body = %q, want %q", got, want)
	}
}

func TestTransferRouteMissingAccount(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := do(mux, http.MethodPost, "/accounts/transfer", `{"accountNumberFrom":77,"accountNumberTo":2,"amount":10}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
