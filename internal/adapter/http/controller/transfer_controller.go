package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/albina-astr/bank-account-api/internal/adapter/http/models"
)

type TransferService interface {
	Transfer(ctx context.Context, req models.TransferRequest) error
}

type TransferController struct {
	service TransferService
}

func NewTransferController(service TransferService) *TransferController {
	return &TransferController{service: service}
}

func (c *TransferController) RegisterRoutes(mux *http.ServeMux, middleware func(http.Handler) http.Handler) {
	handler := http.Handler(http.HandlerFunc(c.transfer))
	if middleware != nil {
		handler = middleware(handler)
	}

	mux.Handle("POST /accounts/transfer", handler)
}

func (c *TransferController) transfer(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writePlain(w, http.StatusBadRequest, "invalid request body")
		logError(r, err, nil)
		logResponse(r, http.StatusBadRequest, nil, start)
		return
	}
	logRequest(r, req)

	if err := c.service.Transfer(r.Context(), req); err != nil {
		writeError(w, r, err, start)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	logResponse(r, http.StatusNoContent, nil, start)
}
