package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/cashpoint/internal/config"
	"github.com/mamadbah2/cashpoint/internal/domain/models"
	"github.com/mamadbah2/cashpoint/internal/service/vault"
	"github.com/mamadbah2/cashpoint/pkg/clients/alert"
)

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron        *cron.Cron
	vaultSvc    vault.CashService
	alertClient alert.Client
	cfg         config.AlertConfig
	logger      *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.AlertConfig, vaultSvc vault.CashService, alertClient alert.Client, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:        cron.New(),
		vaultSvc:    vaultSvc,
		alertClient: alertClient,
		cfg:         cfg,
		logger:      logger,
	}
}

// Start registers the reserve check on the configured cron schedule and
// starts the scheduler. Without a webhook URL there is nothing to notify, so
// the scheduler stays idle.
func (s *Scheduler) Start() {
	if s.cfg.WebhookURL == "" {
		s.logger.Info("no alert webhook configured, reserve monitoring disabled")
		return
	}

	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.CronSchedule))

	_, err := s.cron.AddFunc(s.cfg.CronSchedule, s.checkReserves)
	if err != nil {
		s.logger.Error("failed to schedule reserve check", zap.Error(err))
		return
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) checkReserves() {
	total := s.vaultSvc.TotalValue()
	if total >= s.cfg.LowCashThreshold {
		s.logger.Debug("reserves above threshold",
			zap.Int("total_value", total), zap.Int("threshold", s.cfg.LowCashThreshold))
		return
	}

	s.logger.Warn("reserves below threshold, notifying operator",
		zap.Int("total_value", total), zap.Int("threshold", s.cfg.LowCashThreshold))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	report := s.vaultSvc.StatusReport()
	breakdown := make(map[string]int, len(report.Rows))
	for _, row := range report.Rows {
		breakdown[row.Denomination.String()] = row.Count
	}

	payload := models.ReserveAlert{
		TotalValue: total,
		Threshold:  s.cfg.LowCashThreshold,
		Breakdown:  breakdown,
		OccurredAt: time.Now().UTC(),
	}

	if err := s.alertClient.SendReserveAlert(ctx, payload); err != nil {
		s.logger.Error("failed to send reserve alert", zap.Error(err))
	} else {
		s.logger.Info("reserve alert sent")
	}
}
