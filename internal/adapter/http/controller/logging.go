package controller

import (
	"net/http"
	"time"

	"github.com/albina-astr/bank-account-api/internal/adapter/http/middleware"
	"github.com/albina-astr/bank-account-api/internal/logger"
)

func logRequest(r *http.Request, payload any) {
	logger.Info("http request", logger.Fields{
		"requestId": middleware.RequestIDFrom(r.Context()),
		"method":    r.Method,
		"path":      r.URL.Path,
		"payload":   payload,
	})
}

func logResponse(r *http.Request, status int, payload any, start time.Time) {
	logger.Info("http response", logger.Fields{
		"requestId":  middleware.RequestIDFrom(r.Context()),
		"method":     r.Method,
		"path":       r.URL.Path,
		"status":     status,
		"durationMs": time.Since(start).Milliseconds(),
		"response":   payload,
	})
}

func logError(r *http.Request, err error, extra logger.Fields) {
	fields := logger.Fields{
		"requestId": middleware.RequestIDFrom(r.Context()),
		"method":    r.Method,
		"path":      r.URL.Path,
	}
	for k, v := range extra {
		fields[k] = v
	}
	logger.Error("http handler error", err, fields)
}
