// Package handlers implements HTTP handlers for the card API.
package handlers

import (
	"log/slog"

	"github.com/mariocampos1028/bankinc/internal/service"
)

// Handler serves every endpoint of the card API
type Handler struct {
	cardService        service.CardLifecycle
	transactionService service.TransactionLedger
	healthChecker      service.HealthChecker
	logger             *slog.Logger
}

// NewHandler creates a new Handler with injected service dependencies.
func NewHandler(
	cardService service.CardLifecycle,
	transactionService service.TransactionLedger,
	healthChecker service.HealthChecker,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		cardService:        cardService,
		transactionService: transactionService,
		healthChecker:      healthChecker,
		logger:             logger,
	}
}
