package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/cashpoint/internal/domain/models"
	"github.com/mamadbah2/cashpoint/internal/service/vault"
)

// VaultHandler exposes the vault operations over HTTP.
type VaultHandler struct {
	svc    vault.CashService
	logger *zap.Logger
}

// NewVaultHandler constructs the HTTP handler adapter.
func NewVaultHandler(svc vault.CashService, logger *zap.Logger) *VaultHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VaultHandler{svc: svc, logger: logger}
}

// Withdraw dispenses notes for the requested amount.
func (h *VaultHandler) Withdraw(c *gin.Context) {
	var req models.WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid withdrawal payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	plan, err := h.svc.Withdraw(req.Amount)
	if err != nil {
		status := statusForError(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("withdrawal failed", zap.Int("amount", req.Amount), zap.Error(err))
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	notes := make(map[string]int, len(plan))
	for denom, count := range plan {
		notes[denom.String()] = count
	}

	c.JSON(http.StatusOK, models.WithdrawalResponse{Amount: req.Amount, Notes: notes})
}

// AddCash loads additional notes into the vault.
func (h *VaultHandler) AddCash(c *gin.Context) {
	var req models.AddCashRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid cash load payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.svc.AddCash(models.Denomination(req.Denomination), req.Count); err != nil {
		status := statusForError(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("cash load failed", zap.Int("denomination", req.Denomination), zap.Error(err))
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.svc.StatusReport())
}

// Status reports per-denomination counts and the grand total.
func (h *VaultHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.StatusReport())
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrInsufficientFunds):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
