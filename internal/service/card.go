package service

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/mariocampos1028/bankinc/internal/models"
	"github.com/mariocampos1028/bankinc/internal/repository"
	"github.com/shopspring/decimal"
)

// CardService handles the card lifecycle: issuance, activation, blocking,
// top-up, and balance inquiry
type CardService struct {
	store         repository.Store
	locks         *KeyedMutex
	rng           DigitSource
	now           func() time.Time
	rngMu         sync.Mutex
	lifetimeYears int
}

// NewCardService creates a new CardService
func NewCardService(
	store repository.Store,
	locks *KeyedMutex,
	lifetimeYears int,
) *CardService {
	return &CardService{
		store:         store,
		locks:         locks,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // card numbers are identifiers, not secrets
		now:           time.Now,
		lifetimeYears: lifetimeYears,
	}
}

// Issue creates a new card for the given product and holder. The card
// starts inactive, unblocked, with a zero balance, and expires
// lifetimeYears after creation.
func (s *CardService) Issue(ctx context.Context, productID, firstName, lastName string) (*models.Card, error) {
	if err := ValidateProductID(productID); err != nil {
		return nil, &ServiceError{
			Kind:    KindValidation,
			Message: err.Error(),
		}
	}

	holderName := firstName + " " + lastName

	var card *models.Card
	err := s.store.WithinTx(ctx, func(cards repository.CardRepository, _ repository.TransactionRepository) error {
		var err error
		card, err = s.performIssue(ctx, cards, productID, holderName)
		return err
	})
	if err != nil {
		return nil, err
	}

	return card, nil
}

// performIssue contains the core issuance business logic
func (s *CardService) performIssue(
	ctx context.Context,
	cards repository.CardRepository,
	productID, holderName string,
) (*models.Card, error) {
	existing, err := cards.FindByProductAndHolder(ctx, productID, holderName)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return nil, &ServiceError{
			Kind:    KindInternal,
			Message: "failed to check existing card",
			Err:     err,
		}
	}
	if existing != nil {
		return nil, &ServiceError{
			Kind:    KindConflict,
			Message: "card already exists for this product and holder",
		}
	}

	createdAt := s.now()

	card := &models.Card{
		ID:             s.nextCardNumber(productID),
		ProductID:      productID,
		HolderName:     holderName,
		ExpirationDate: FormatExpiration(createdAt, s.lifetimeYears),
		Active:         false,
		Blocked:        false,
		Balance:        decimal.Zero,
		CreatedAt:      createdAt,
		UpdatedAt:      createdAt,
	}

	if err := cards.Save(ctx, card); err != nil {
		return nil, &ServiceError{
			Kind:    KindInternal,
			Message: "failed to save card",
			Err:     err,
		}
	}

	return card, nil
}

// Activate enables a card for use. Activating an already-active card is
// rejected rather than treated as a no-op.
func (s *CardService) Activate(ctx context.Context, cardID string) (*models.Card, error) {
	unlock := s.locks.Lock(cardID)
	defer unlock()

	var card *models.Card
	err := s.store.WithinTx(ctx, func(cards repository.CardRepository, _ repository.TransactionRepository) error {
		found, err := findCard(ctx, cards, cardID)
		if err != nil {
			return err
		}

		if found.Active {
			return &ServiceError{
				Kind:    KindConflict,
				Message: "card is already active",
			}
		}

		found.Active = true
		found.Blocked = false

		if err := cards.Save(ctx, found); err != nil {
			return &ServiceError{
				Kind:    KindInternal,
				Message: "failed to save card",
				Err:     err,
			}
		}

		card = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	return card, nil
}

// Block disables a card. Blocking an already-blocked card is rejected.
func (s *CardService) Block(ctx context.Context, cardID string) (*models.Card, error) {
	unlock := s.locks.Lock(cardID)
	defer unlock()

	var card *models.Card
	err := s.store.WithinTx(ctx, func(cards repository.CardRepository, _ repository.TransactionRepository) error {
		found, err := findCard(ctx, cards, cardID)
		if err != nil {
			return err
		}

		if found.Blocked {
			return &ServiceError{
				Kind:    KindConflict,
				Message: "card is already blocked",
			}
		}

		found.Active = false
		found.Blocked = true

		if err := cards.Save(ctx, found); err != nil {
			return &ServiceError{
				Kind:    KindInternal,
				Message: "failed to save card",
				Err:     err,
			}
		}

		card = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	return card, nil
}

// TopUp credits amount to a card's balance. Check order is part of the
// contract: missing card, then non-positive amount, then blocked, then
// inactive.
func (s *CardService) TopUp(ctx context.Context, cardID string, amount decimal.Decimal) (*models.Card, error) {
	unlock := s.locks.Lock(cardID)
	defer unlock()

	var card *models.Card
	err := s.store.WithinTx(ctx, func(cards repository.CardRepository, _ repository.TransactionRepository) error {
		found, err := findCard(ctx, cards, cardID)
		if err != nil {
			return err
		}

		if err := ValidateAmount(amount); err != nil {
			return &ServiceError{
				Kind:    KindValidation,
				Message: err.Error(),
			}
		}

		if err := requireNotBlocked(found); err != nil {
			return err
		}
		if err := requireActive(found); err != nil {
			return err
		}

		found.Balance = found.Balance.Add(amount)

		if err := cards.Save(ctx, found); err != nil {
			return &ServiceError{
				Kind:    KindInternal,
				Message: "failed to save card",
				Err:     err,
			}
		}

		card = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	return card, nil
}

// GetBalance returns the card with its current balance. Read-only: no
// persistence write and no per-card lock.
func (s *CardService) GetBalance(ctx context.Context, cardID string) (*models.Card, error) {
	card, err := findCard(ctx, s.store.Cards(), cardID)
	if err != nil {
		return nil, err
	}

	if err := requireNotBlocked(card); err != nil {
		return nil, err
	}
	if err := requireActive(card); err != nil {
		return nil, err
	}

	return card, nil
}

// nextCardNumber draws a card number from the service's random source.
// The source is shared across requests and is not concurrency-safe.
func (s *CardService) nextCardNumber(productID string) string {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return generateCardNumber(productID, s.rng)
}

func findCard(ctx context.Context, cards repository.CardRepository, cardID string) (*models.Card, error) {
	card, err := cards.FindByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, &ServiceError{
				Kind:    KindNotFound,
				Message: "card not found",
			}
		}
		return nil, &ServiceError{
			Kind:    KindInternal,
			Message: "failed to load card",
			Err:     err,
		}
	}

	return card, nil
}

func requireNotBlocked(card *models.Card) error {
	if card.Blocked {
		return &ServiceError{
			Kind:    KindState,
			Message: "card is blocked",
		}
	}
	return nil
}

func requireActive(card *models.Card) error {
	if !card.Active {
		return &ServiceError{
			Kind:    KindState,
			Message: "card is not active",
		}
	}
	return nil
}
