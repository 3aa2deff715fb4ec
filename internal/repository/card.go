package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mariocampos1028/bankinc/internal/db"
	"github.com/mariocampos1028/bankinc/internal/models"
)

// cardRepository implements CardRepository against Postgres
type cardRepository struct {
	exec db.Executor
}

// NewCardRepository creates a new CardRepository bound to the given executor
func NewCardRepository(exec db.Executor) CardRepository {
	return &cardRepository{exec: exec}
}

const cardColumns = `id, product_id, holder_name, expiration_date, active, blocked, balance, created_at, updated_at`

// FindByID retrieves a card by its 16-digit number
func (r *cardRepository) FindByID(ctx context.Context, id string) (*models.Card, error) {
	query := `
		SELECT ` + cardColumns + `
		FROM cards
		WHERE id = $1
	`

	return r.scanCard(r.exec.QueryRowContext(ctx, query, id))
}

// FindByProductAndHolder retrieves a card by its (product, holder) pair
func (r *cardRepository) FindByProductAndHolder(ctx context.Context, productID, holderName string) (*models.Card, error) {
	query := `
		SELECT ` + cardColumns + `
		FROM cards
		WHERE product_id = $1 AND holder_name = $2
	`

	return r.scanCard(r.exec.QueryRowContext(ctx, query, productID, holderName))
}

// Save upserts a card by its ID
func (r *cardRepository) Save(ctx context.Context, card *models.Card) error {
	query := `
		INSERT INTO cards (id, product_id, holder_name, expiration_date, active, blocked, balance)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE
		SET active = EXCLUDED.active,
		    blocked = EXCLUDED.blocked,
		    balance = EXCLUDED.balance,
		    updated_at = NOW()
	`

	_, err := r.exec.ExecContext(ctx, query,
		card.ID,
		card.ProductID,
		card.HolderName,
		card.ExpirationDate,
		card.Active,
		card.Blocked,
		card.Balance,
	)
	if err != nil {
		return fmt.Errorf("failed to save card: %w", err)
	}

	return nil
}

func (r *cardRepository) scanCard(row *sql.Row) (*models.Card, error) {
	var card models.Card
	err := row.Scan(
		&card.ID,
		&card.ProductID,
		&card.HolderName,
		&card.ExpirationDate,
		&card.Active,
		&card.Blocked,
		&card.Balance,
		&card.CreatedAt,
		&card.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("card: %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan card: %w", err)
	}

	return &card, nil
}
