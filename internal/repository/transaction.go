package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mariocampos1028/bankinc/internal/db"
	"github.com/mariocampos1028/bankinc/internal/models"
)

// transactionRepository implements TransactionRepository against Postgres
type transactionRepository struct {
	exec db.Executor
}

// NewTransactionRepository creates a new TransactionRepository bound to the given executor
func NewTransactionRepository(exec db.Executor) TransactionRepository {
	return &transactionRepository{exec: exec}
}

// FindByID retrieves a transaction by its identifier
func (r *transactionRepository) FindByID(ctx context.Context, id int64) (*models.Transaction, error) {
	query := `
		SELECT id, card_id, amount, created_at, voided
		FROM transactions
		WHERE id = $1
	`

	return r.scanTransaction(r.exec.QueryRowContext(ctx, query, id))
}

// FindByIDAndCard retrieves a transaction only when it belongs to the given card
func (r *transactionRepository) FindByIDAndCard(ctx context.Context, id int64, cardID string) (*models.Transaction, error) {
	query := `
		SELECT id, card_id, amount, created_at, voided
		FROM transactions
		WHERE id = $1 AND card_id = $2
	`

	return r.scanTransaction(r.exec.QueryRowContext(ctx, query, id, cardID))
}

// ListByCard retrieves all transactions for a card in insertion order
func (r *transactionRepository) ListByCard(ctx context.Context, cardID string) ([]models.Transaction, error) {
	query := `
		SELECT id, card_id, amount, created_at, voided
		FROM transactions
		WHERE card_id = $1
		ORDER BY id
	`

	rows, err := r.exec.QueryContext(ctx, query, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close() //nolint:errcheck // close error is not actionable after reads

	var txns []models.Transaction
	for rows.Next() {
		var txn models.Transaction
		if err := rows.Scan(&txn.ID, &txn.CardID, &txn.Amount, &txn.Timestamp, &txn.Voided); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return txns, nil
}

// Save inserts a new transaction (assigning its sequential ID) or updates
// an existing one. Only the voided flag is mutable after creation.
func (r *transactionRepository) Save(ctx context.Context, txn *models.Transaction) error {
	if txn.ID == 0 {
		query := `
			INSERT INTO transactions (card_id, amount, created_at, voided)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`

		err := r.exec.QueryRowContext(ctx, query, txn.CardID, txn.Amount, txn.Timestamp, txn.Voided).Scan(&txn.ID)
		if err != nil {
			return fmt.Errorf("failed to insert transaction: %w", err)
		}
		return nil
	}

	query := `
		UPDATE transactions
		SET voided = $2
		WHERE id = $1
	`

	result, err := r.exec.ExecContext(ctx, query, txn.ID, txn.Voided)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("transaction: %w", models.ErrNotFound)
	}

	return nil
}

func (r *transactionRepository) scanTransaction(row *sql.Row) (*models.Transaction, error) {
	var txn models.Transaction
	err := row.Scan(&txn.ID, &txn.CardID, &txn.Amount, &txn.Timestamp, &txn.Voided)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("transaction: %w", models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan transaction: %w", err)
	}

	return &txn, nil
}
