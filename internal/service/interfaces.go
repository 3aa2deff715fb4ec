package service

import (
	"context"

	"github.com/mariocampos1028/bankinc/internal/models"
	"github.com/shopspring/decimal"
)

// HealthChecker validates system health.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}

// CardLifecycle handles card issuance and state transitions
type CardLifecycle interface {
	Issue(ctx context.Context, productID, firstName, lastName string) (*models.Card, error)
	Activate(ctx context.Context, cardID string) (*models.Card, error)
	Block(ctx context.Context, cardID string) (*models.Card, error)
	TopUp(ctx context.Context, cardID string, amount decimal.Decimal) (*models.Card, error)
	GetBalance(ctx context.Context, cardID string) (*models.Card, error)
}

// TransactionLedger handles purchases and voids against a card
type TransactionLedger interface {
	Purchase(ctx context.Context, cardID string, price decimal.Decimal) (*models.Transaction, error)
	GetTransaction(ctx context.Context, id int64) (*models.Transaction, error)
	Void(ctx context.Context, cardID string, transactionID int64) (*models.Transaction, error)
	ListByCard(ctx context.Context, cardID string) ([]models.Transaction, error)
}

// Ensure concrete types implement interfaces
var (
	_ CardLifecycle     = (*CardService)(nil)
	_ TransactionLedger = (*TransactionService)(nil)
)
