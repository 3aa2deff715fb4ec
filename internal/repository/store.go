// Package repository provides data access layer implementations for the card API.
package repository

import (
	"context"

	"github.com/mariocampos1028/bankinc/internal/models"
)

// CardRepository defines the interface for card data access
type CardRepository interface {
	FindByID(ctx context.Context, id string) (*models.Card, error)
	FindByProductAndHolder(ctx context.Context, productID, holderName string) (*models.Card, error)
	Save(ctx context.Context, card *models.Card) error
}

// TransactionRepository defines the interface for transaction data access
type TransactionRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Transaction, error)
	FindByIDAndCard(ctx context.Context, id int64, cardID string) (*models.Transaction, error)
	ListByCard(ctx context.Context, cardID string) ([]models.Transaction, error)
	// Save upserts: it inserts and assigns txn.ID when the ID is zero,
	// and updates the existing row otherwise.
	Save(ctx context.Context, txn *models.Transaction) error
}

// Store bundles both repositories and provides a transactional boundary.
// WithinTx runs fn against repositories bound to a single database
// transaction: either every write inside fn commits or none do.
type Store interface {
	Cards() CardRepository
	Transactions() TransactionRepository
	WithinTx(ctx context.Context, fn func(cards CardRepository, txns TransactionRepository) error) error
}
