package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mariocampos1028/bankinc/internal/db"
)

// postgresStore implements Store on top of the shared connection pool
type postgresStore struct {
	db *db.DB
}

// NewPostgresStore creates a Store backed by Postgres
func NewPostgresStore(database *db.DB) Store {
	return &postgresStore{db: database}
}

func (s *postgresStore) Cards() CardRepository {
	return NewCardRepository(s.db)
}

func (s *postgresStore) Transactions() TransactionRepository {
	return NewTransactionRepository(s.db)
}

// WithinTx runs fn against repositories bound to a single SQL transaction
func (s *postgresStore) WithinTx(ctx context.Context, fn func(cards CardRepository, txns TransactionRepository) error) error {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback() //nolint:errcheck // rollback error is not critical in defer
	}()

	if err := fn(NewCardRepository(tx), NewTransactionRepository(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
