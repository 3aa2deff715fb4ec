// Package memory provides in-memory repository implementations for tests
// and local development. It mirrors the Postgres store's observable
// behavior: sequential transaction IDs, insertion-order listing, and
// not-found sentinels.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/mariocampos1028/bankinc/internal/models"
	"github.com/mariocampos1028/bankinc/internal/repository"
)

// Store is a mutex-guarded in-memory implementation of repository.Store.
type Store struct {
	mu     sync.Mutex
	cards  map[string]models.Card
	txns   map[int64]models.Transaction
	order  map[string][]int64
	nextID int64
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		cards: make(map[string]models.Card),
		txns:  make(map[int64]models.Transaction),
		order: make(map[string][]int64),
	}
}

func (s *Store) Cards() repository.CardRepository {
	return &cardRepo{store: s}
}

func (s *Store) Transactions() repository.TransactionRepository {
	return &transactionRepo{store: s}
}

// WithinTx runs fn against this store's repositories. The fake does not
// implement rollback; callers relying on partial-write recovery need the
// Postgres store.
func (s *Store) WithinTx(_ context.Context, fn func(cards repository.CardRepository, txns repository.TransactionRepository) error) error {
	return fn(s.Cards(), s.Transactions())
}

type cardRepo struct {
	store *Store
}

func (r *cardRepo) FindByID(_ context.Context, id string) (*models.Card, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	card, ok := r.store.cards[id]
	if !ok {
		return nil, fmt.Errorf("card: %w", models.ErrNotFound)
	}
	return &card, nil
}

func (r *cardRepo) FindByProductAndHolder(_ context.Context, productID, holderName string) (*models.Card, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, card := range r.store.cards {
		if card.ProductID == productID && card.HolderName == holderName {
			c := card
			return &c, nil
		}
	}
	return nil, fmt.Errorf("card: %w", models.ErrNotFound)
}

func (r *cardRepo) Save(_ context.Context, card *models.Card) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.cards[card.ID] = *card
	return nil
}

type transactionRepo struct {
	store *Store
}

func (r *transactionRepo) FindByID(_ context.Context, id int64) (*models.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	txn, ok := r.store.txns[id]
	if !ok {
		return nil, fmt.Errorf("transaction: %w", models.ErrNotFound)
	}
	return &txn, nil
}

func (r *transactionRepo) FindByIDAndCard(_ context.Context, id int64, cardID string) (*models.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	txn, ok := r.store.txns[id]
	if !ok || txn.CardID != cardID {
		return nil, fmt.Errorf("transaction: %w", models.ErrNotFound)
	}
	return &txn, nil
}

func (r *transactionRepo) ListByCard(_ context.Context, cardID string) ([]models.Transaction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var txns []models.Transaction
	for _, id := range r.store.order[cardID] {
		txns = append(txns, r.store.txns[id])
	}
	return txns, nil
}

func (r *transactionRepo) Save(_ context.Context, txn *models.Transaction) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if txn.ID == 0 {
		r.store.nextID++
		txn.ID = r.store.nextID
		r.store.order[txn.CardID] = append(r.store.order[txn.CardID], txn.ID)
	} else if _, ok := r.store.txns[txn.ID]; !ok {
		return fmt.Errorf("transaction: %w", models.ErrNotFound)
	}

	r.store.txns[txn.ID] = *txn
	return nil
}
