package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/cashpoint/internal/config"
	"github.com/mamadbah2/cashpoint/internal/domain/models"
	"github.com/mamadbah2/cashpoint/internal/repository/statefile"
	"github.com/mamadbah2/cashpoint/internal/scheduler"
	"github.com/mamadbah2/cashpoint/internal/server/handlers"
	"github.com/mamadbah2/cashpoint/internal/server/router"
	"github.com/mamadbah2/cashpoint/internal/service/vault"
	"github.com/mamadbah2/cashpoint/pkg/clients/alert"
	"github.com/mamadbah2/cashpoint/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Logging.File))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	denoms, err := models.ParseDenominationSet(cfg.Vault.Denominations)
	if err != nil {
		baseLogger.Fatal("invalid denomination configuration", zap.Error(err))
	}

	stateRepo := statefile.NewFileRepository(cfg.Vault.StateFile, denoms)

	vaultSvc, err := vault.NewService(denoms, cfg.Vault, stateRepo, baseLogger.Named("svc.vault"))
	if err != nil {
		baseLogger.Fatal("failed to init vault service", zap.Error(err))
	}

	vaultHandler := handlers.NewVaultHandler(vaultSvc, baseLogger.Named("handlers.vault"))
	engine := router.New(vaultHandler, baseLogger.Named("router"))

	alertClient := alert.NewClient(cfg.Alert)
	sched := scheduler.NewScheduler(cfg.Alert, vaultSvc, alertClient, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
