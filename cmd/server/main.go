package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/albina-astr/bank-account-api/internal/adapter/http/controller"
	"github.com/albina-astr/bank-account-api/internal/adapter/http/middleware"
	"github.com/albina-astr/bank-account-api/internal/adapter/http/router"
	"github.com/albina-astr/bank-account-api/internal/adapter/repository/memory"
	"github.com/albina-astr/bank-account-api/internal/config"
	"github.com/albina-astr/bank-account-api/internal/logger"
	"github.com/albina-astr/bank-account-api/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// One store and one service for the whole process lifetime; the
	// transport layer receives them explicitly.
	accountRepo := memory.NewAccountRepository()
	accountService := services.NewAccountService(accountRepo)

	mux := router.New(
		controller.NewAccountController(accountService),
		controller.NewTransferController(accountService),
		middleware.RequestID,
	)

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info("server listening", logger.Fields{"addr": cfg.ListenAddr})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Fatalf("server: %v", err)
	}
	logger.Info("server stopped", nil)
}
