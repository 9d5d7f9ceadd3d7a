package vault

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/mamadbah2/cashpoint/internal/config"
	"github.com/mamadbah2/cashpoint/internal/domain/models"
	"github.com/mamadbah2/cashpoint/internal/repository/statefile"
)

// CashService describes the operations the shell and HTTP layers can perform.
type CashService interface {
	Withdraw(amount int) (models.WithdrawalPlan, error)
	AddCash(denomination models.Denomination, count int) error
	TotalValue() int
	StatusReport() models.StatusReport
}

// Service owns the authoritative note inventory and its durable state. Every
// mutation is flushed to the repository before the operation completes. The
// mutex serializes the read-modify-persist sequences, since both the console
// shell and the HTTP surface can reach the same instance.
type Service struct {
	mu        sync.Mutex
	denoms    models.DenominationSet
	inventory models.Inventory
	repo      statefile.Repository
	logger    *zap.Logger
}

// NewService loads the persisted inventory, or bootstraps the default one
// when no state file exists yet. A corrupt state file resets the inventory to
// the default and persists it, unless cfg.ResetOnCorruption is disabled, in
// which case construction fails so the corruption cannot be masked.
func NewService(denoms models.DenominationSet, cfg config.VaultConfig, repo statefile.Repository, logger *zap.Logger) (*Service, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	svc := &Service{
		denoms: denoms,
		repo:   repo,
		logger: logger,
	}

	inventory, err := repo.Load()
	switch {
	case err == nil:
		svc.inventory = inventory

	case errors.Is(err, os.ErrNotExist):
		svc.inventory = models.NewInventory(denoms, cfg.DefaultNoteCount)
		if saveErr := repo.Save(svc.inventory); saveErr != nil {
			return nil, saveErr
		}
		logger.Info("no state file found, wrote default inventory",
			zap.Int("default_note_count", cfg.DefaultNoteCount))

	case errors.Is(err, statefile.ErrCorruptState):
		if !cfg.ResetOnCorruption {
			logger.Error("corrupt state file and reset-on-corruption is disabled", zap.Error(err))
			return nil, err
		}
		logger.Error("corrupt state file, resetting inventory to defaults", zap.Error(err))
		svc.inventory = models.NewInventory(denoms, cfg.DefaultNoteCount)
		if saveErr := repo.Save(svc.inventory); saveErr != nil {
			return nil, saveErr
		}

	default:
		// Plain I/O failure on load: run on the in-memory default without
		// overwriting whatever is on disk.
		logger.Error("failed to load state file, continuing with default inventory", zap.Error(err))
		svc.inventory = models.NewInventory(denoms, cfg.DefaultNoteCount)
	}

	return svc, nil
}

// Withdraw validates the amount, computes a note breakdown against the
// current inventory, applies it and persists the new state. The decrement and
// the persist form one logical transaction: when the persist fails the
// in-memory inventory already reflects the withdrawal, the plan is still
// returned, and the error tells the caller that disk may be behind.
func (s *Service) Withdraw(amount int) (models.WithdrawalPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if amount <= 0 {
		err := fmt.Errorf("%w: amount must be positive", models.ErrInvalidAmount)
		s.logger.Warn("withdrawal rejected", zap.Int("amount", amount), zap.Error(err))
		return nil, err
	}

	step := int(s.denoms.Smallest())
	if amount%step != 0 {
		err := fmt.Errorf("%w: amount must be a multiple of %d", models.ErrInvalidAmount, step)
		s.logger.Warn("withdrawal rejected", zap.Int("amount", amount), zap.Error(err))
		return nil, err
	}

	if amount > s.inventory.TotalValue() {
		err := fmt.Errorf("%w: cash reserves below requested amount", models.ErrInsufficientFunds)
		s.logger.Warn("withdrawal rejected", zap.Int("amount", amount), zap.Error(err))
		return nil, err
	}

	plan, ok := breakdown(amount, s.denoms, s.inventory)
	if !ok {
		err := fmt.Errorf("%w: cannot dispense with available denominations", models.ErrInsufficientFunds)
		s.logger.Warn("withdrawal rejected", zap.Int("amount", amount), zap.Error(err))
		return nil, err
	}

	for denom, count := range plan {
		s.inventory[denom] -= count
	}

	if err := s.repo.Save(s.inventory); err != nil {
		s.logger.Error("failed to persist state after withdrawal, disk may be behind in-memory inventory",
			zap.Int("amount", amount), zap.Error(err))
		return plan, err
	}

	s.logger.Info("withdrawal dispensed",
		zap.Int("amount", amount),
		zap.Any("breakdown", planFields(plan)))
	return plan, nil
}

// AddCash loads count additional notes of the given denomination into the
// vault and persists the new state.
func (s *Service) AddCash(denomination models.Denomination, count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.denoms.Contains(denomination) {
		err := fmt.Errorf("%w: unsupported denomination %d", models.ErrInvalidAmount, denomination)
		s.logger.Warn("cash load rejected", zap.Int("denomination", int(denomination)), zap.Error(err))
		return err
	}

	if count < 0 {
		err := fmt.Errorf("%w: note count must not be negative", models.ErrInvalidAmount)
		s.logger.Warn("cash load rejected",
			zap.Int("denomination", int(denomination)), zap.Int("count", count), zap.Error(err))
		return err
	}

	s.inventory[denomination] += count

	if err := s.repo.Save(s.inventory); err != nil {
		s.logger.Error("failed to persist state after cash load, disk may be behind in-memory inventory",
			zap.Int("denomination", int(denomination)), zap.Int("count", count), zap.Error(err))
		return err
	}

	s.logger.Info("admin loaded cash",
		zap.Int("denomination", int(denomination)),
		zap.Int("count", count),
		zap.Int("total_value", s.inventory.TotalValue()))
	return nil
}

// TotalValue returns the aggregate face value of all notes currently held.
func (s *Service) TotalValue() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inventory.TotalValue()
}

// StatusReport summarizes counts and values per denomination, ordered
// descending by face value.
func (s *Service) StatusReport() models.StatusReport {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := models.StatusReport{Rows: make([]models.DenominationStatus, 0, len(s.denoms))}
	for _, denom := range s.denoms {
		count := s.inventory[denom]
		value := int(denom) * count
		report.Rows = append(report.Rows, models.DenominationStatus{
			Denomination: denom,
			Count:        count,
			Value:        value,
		})
		report.Total += value
	}
	return report
}

func planFields(plan models.WithdrawalPlan) map[string]int {
	out := make(map[string]int, len(plan))
	for denom, count := range plan {
		out[denom.String()] = count
	}
	return out
}
