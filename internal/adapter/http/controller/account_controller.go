package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/albina-astr/bank-account-api/internal/adapter/http/models"
	"github.com/albina-astr/bank-account-api/internal/domain"
)

type AccountService interface {
	CreateAccount(ctx context.Context, owner string) (domain.Account, error)
	GetInfo(ctx context.Context, accountNumber *int64) (domain.Account, error)
	GetAllAccounts(ctx context.Context) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, req models.UpdateAccountRequest) (domain.Account, error)
	TopUp(ctx context.Context, req models.TopUpRequest) (domain.Account, error)
	DeleteAccount(ctx context.Context, accountNumber *int64) (domain.Account, error)
}

type AccountController struct {
	service AccountService
}

func NewAccountController(service AccountService) *AccountController {
	return &AccountController{service: service}
}

func (c *AccountController) RegisterRoutes(mux *http.ServeMux, middleware func(http.Handler) http.Handler) {
	wrap := func(h http.HandlerFunc) http.Handler {
		if middleware != nil {
			return middleware(h)
		}
		return h
	}

	mux.Handle("POST /accounts/create/{owner}", wrap(c.create))
	mux.Handle("GET /accounts", wrap(c.findAll))
	mux.Handle("GET /accounts/{accountNumber}", wrap(c.getByNumber))
	mux.Handle("PUT /accounts/update", wrap(c.update))
	mux.Handle("POST /accounts/top_up", wrap(c.topUp))
	mux.Handle("DELETE /accounts/delete/{accountNumber}", wrap(c.delete))
}

func (c *AccountController) create(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	owner := r.PathValue("owner")
	logRequest(r, nil)

	account, err := c.service.CreateAccount(r.Context(), owner)
	if err != nil {
		writeError(w, r, err, start)
		return
	}

	response := models.AccountFromDomain(account)
	writeJSON(w, http.StatusCreated, response)
	logResponse(r, http.StatusCreated, response, start)
}

func (c *AccountController) findAll(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	accounts, err := c.service.GetAllAccounts(r.Context())
	if err != nil {
		writeError(w, r, err, start)
		return
	}

	response := models.AccountsFromDomain(accounts)
	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *AccountController) getByNumber(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	number, ok := pathAccountNumber(w, r, start)
	if !ok {
		return
	}

	account, err := c.service.GetInfo(r.Context(), &number)
	if err != nil {
		writeError(w, r, err, start)
		return
	}

	response := models.AccountFromDomain(account)
	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *AccountController) update(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePlain(w, http.StatusBadRequest, "invalid request body")
		logError(r, err, nil)
		logResponse(r, http.StatusBadRequest, nil, start)
		return
	}
	logRequest(r, req)

	account, err := c.service.UpdateAccount(r.Context(), req)
	if err != nil {
		writeError(w, r, err, start)
		return
	}

	response := models.AccountFromDomain(account)
	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *AccountController) topUp(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.TopUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePlain(w, http.StatusBadRequest, "invalid request body")
		logError(r, err, nil)
		logResponse(r, http.StatusBadRequest, nil, start)
		return
	}
	logRequest(r, req)

	account, err := c.service.TopUp(r.Context(), req)
	if err != nil {
		writeError(w, r, err, start)
		return
	}

	response := models.AccountFromDomain(account)
	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func (c *AccountController) delete(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logRequest(r, nil)

	number, ok := pathAccountNumber(w, r, start)
	if !ok {
		return
	}

	account, err := c.service.DeleteAccount(r.Context(), &number)
	if err != nil {
		writeError(w, r, err, start)
		return
	}

	response := models.AccountFromDomain(account)
	writeJSON(w, http.StatusOK, response)
	logResponse(r, http.StatusOK, response, start)
}

func pathAccountNumber(w http.ResponseWriter, r *http.Request, start time.Time) (int64, bool) {
	number, err := strconv.ParseInt(r.PathValue("accountNumber"), 10, 64)
	if err != nil {
		writePlain(w, http.StatusBadRequest, "accountNumber must be an integer")
		logError(r, err, nil)
		logResponse(r, http.StatusBadRequest, nil, start)
		return 0, false
	}
	return number, true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writePlain(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(message))
}

// writeError maps domain error kinds to status codes and writes the
// domain message verbatim as plain text.
func writeError(w http.ResponseWriter, r *http.Request, err error, start time.Time) {
	status := statusForError(err)
	writePlain(w, status, err.Error())
	logError(r, err, nil)
	logResponse(r, status, err.Error(), start)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.KindInvalidArgument), errors.Is(err, domain.KindInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.KindNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.KindDisabledAccount), errors.Is(err, domain.KindAlreadyDisabled):
		return http.StatusConflict
	case errors.Is(err, domain.KindInsufficientFunds):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
