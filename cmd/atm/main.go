package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/mamadbah2/cashpoint/internal/config"
	"github.com/mamadbah2/cashpoint/internal/domain/models"
	"github.com/mamadbah2/cashpoint/internal/repository/statefile"
	"github.com/mamadbah2/cashpoint/internal/service/vault"
	"github.com/mamadbah2/cashpoint/internal/shell"
	"github.com/mamadbah2/cashpoint/pkg/logger"
)

const defaultLogFile = "atm_transactions.log"

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	// The console owns stdout, so logs always go to a file here.
	logFile := cfg.Logging.File
	if logFile == "" {
		logFile = defaultLogFile
	}

	baseLogger := logger.Must(logger.New(logFile))
	defer func() { _ = baseLogger.Sync() }()

	denoms, err := models.ParseDenominationSet(cfg.Vault.Denominations)
	if err != nil {
		baseLogger.Fatal("invalid denomination configuration", zap.Error(err))
	}

	stateRepo := statefile.NewFileRepository(cfg.Vault.StateFile, denoms)

	vaultSvc, err := vault.NewService(denoms, cfg.Vault, stateRepo, baseLogger.Named("svc.vault"))
	if err != nil {
		baseLogger.Fatal("failed to init vault service", zap.Error(err))
	}

	shell.New(vaultSvc, os.Stdin, os.Stdout, baseLogger.Named("shell")).Run()
}
