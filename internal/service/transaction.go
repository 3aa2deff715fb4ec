package service

import (
	"context"
	"errors"
	"time"

	"github.com/mariocampos1028/bankinc/internal/models"
	"github.com/mariocampos1028/bankinc/internal/repository"
	"github.com/shopspring/decimal"
)

// TransactionService handles the transaction ledger: purchases against a
// card's balance and their reversal within the void window
type TransactionService struct {
	store      repository.Store
	locks      *KeyedMutex
	now        func() time.Time
	voidWindow time.Duration
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(
	store repository.Store,
	locks *KeyedMutex,
	voidWindow time.Duration,
) *TransactionService {
	return &TransactionService{
		store:      store,
		locks:      locks,
		now:        time.Now,
		voidWindow: voidWindow,
	}
}

// Purchase debits price from the card and records the transaction. The
// debit and the transaction insert commit as one unit. Check order is
// part of the contract: missing card, blocked, inactive, expired card,
// insufficient funds.
func (s *TransactionService) Purchase(ctx context.Context, cardID string, price decimal.Decimal) (*models.Transaction, error) {
	unlock := s.locks.Lock(cardID)
	defer unlock()

	var txn *models.Transaction
	err := s.store.WithinTx(ctx, func(cards repository.CardRepository, txns repository.TransactionRepository) error {
		var err error
		txn, err = s.performPurchase(ctx, cards, txns, cardID, price)
		return err
	})
	if err != nil {
		return nil, err
	}

	return txn, nil
}

// performPurchase contains the core purchase business logic
func (s *TransactionService) performPurchase(
	ctx context.Context,
	cards repository.CardRepository,
	txns repository.TransactionRepository,
	cardID string,
	price decimal.Decimal,
) (*models.Transaction, error) {
	card, err := findCard(ctx, cards, cardID)
	if err != nil {
		return nil, err
	}

	if err := requireNotBlocked(card); err != nil {
		return nil, err
	}
	if err := requireActive(card); err != nil {
		return nil, err
	}

	now := s.now()

	expired, err := IsExpired(card.ExpirationDate, now)
	if err != nil {
		return nil, &ServiceError{
			Kind:    KindInternal,
			Message: "failed to read card expiration",
			Err:     err,
		}
	}
	if expired {
		return nil, &ServiceError{
			Kind:    KindState,
			Message: "card is expired",
		}
	}

	if card.Balance.LessThan(price) {
		return nil, &ServiceError{
			Kind:    KindInsufficientFunds,
			Message: "insufficient funds",
		}
	}

	card.Balance = card.Balance.Sub(price)
	if err := cards.Save(ctx, card); err != nil {
		return nil, &ServiceError{
			Kind:    KindInternal,
			Message: "failed to debit card",
			Err:     err,
		}
	}

	txn := &models.Transaction{
		CardID:    cardID,
		Amount:    price,
		Timestamp: now,
		Voided:    false,
	}

	if err := txns.Save(ctx, txn); err != nil {
		return nil, &ServiceError{
			Kind:    KindInternal,
			Message: "failed to save transaction",
			Err:     err,
		}
	}

	return txn, nil
}

// GetTransaction retrieves a transaction by ID
func (s *TransactionService) GetTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	txn, err := s.store.Transactions().FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, &ServiceError{
				Kind:    KindNotFound,
				Message: "transaction not found",
			}
		}
		return nil, &ServiceError{
			Kind:    KindInternal,
			Message: "failed to load transaction",
			Err:     err,
		}
	}

	return txn, nil
}

// Void reverses a purchase: marks the transaction voided and credits the
// amount back to the card, both in one unit. Void checks only that the
// card is not blocked, never that it is active, so purchases can still be
// reversed onto a card that was merely deactivated.
func (s *TransactionService) Void(ctx context.Context, cardID string, transactionID int64) (*models.Transaction, error) {
	unlock := s.locks.Lock(cardID)
	defer unlock()

	var txn *models.Transaction
	err := s.store.WithinTx(ctx, func(cards repository.CardRepository, txns repository.TransactionRepository) error {
		var err error
		txn, err = s.performVoid(ctx, cards, txns, cardID, transactionID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return txn, nil
}

// performVoid contains the core void business logic
func (s *TransactionService) performVoid(
	ctx context.Context,
	cards repository.CardRepository,
	txns repository.TransactionRepository,
	cardID string,
	transactionID int64,
) (*models.Transaction, error) {
	card, err := findCard(ctx, cards, cardID)
	if err != nil {
		return nil, err
	}

	if err := requireNotBlocked(card); err != nil {
		return nil, err
	}

	// A transaction ID that exists but belongs to another card is
	// reported as not found, not as a mismatch.
	txn, err := txns.FindByIDAndCard(ctx, transactionID, cardID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, &ServiceError{
				Kind:    KindNotFound,
				Message: "transaction not found for the given card",
			}
		}
		return nil, &ServiceError{
			Kind:    KindInternal,
			Message: "failed to load transaction",
			Err:     err,
		}
	}

	if txn.Voided {
		return nil, &ServiceError{
			Kind:    KindConflict,
			Message: "transaction already voided",
		}
	}

	if s.now().After(txn.Timestamp.Add(s.voidWindow)) {
		return nil, &ServiceError{
			Kind:    KindState,
			Message: "transaction is too old to void",
		}
	}

	txn.Voided = true
	if err := txns.Save(ctx, txn); err != nil {
		return nil, &ServiceError{
			Kind:    KindInternal,
			Message: "failed to save transaction",
			Err:     err,
		}
	}

	card.Balance = card.Balance.Add(txn.Amount)
	if err := cards.Save(ctx, card); err != nil {
		return nil, &ServiceError{
			Kind:    KindInternal,
			Message: "failed to credit card",
			Err:     err,
		}
	}

	return txn, nil
}

// ListByCard returns all transactions for a card. A card with no
// transactions is a distinct business-level error, not an empty list.
func (s *TransactionService) ListByCard(ctx context.Context, cardID string) ([]models.Transaction, error) {
	if _, err := findCard(ctx, s.store.Cards(), cardID); err != nil {
		return nil, err
	}

	txns, err := s.store.Transactions().ListByCard(ctx, cardID)
	if err != nil {
		return nil, &ServiceError{
			Kind:    KindInternal,
			Message: "failed to list transactions",
			Err:     err,
		}
	}

	if len(txns) == 0 {
		return nil, &ServiceError{
			Kind:    KindNotFound,
			Message: "no transactions found for this card",
		}
	}

	return txns, nil
}
