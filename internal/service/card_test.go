package service

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/mariocampos1028/bankinc/internal/models"
	"github.com/mariocampos1028/bankinc/internal/repository/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)

func newTestCardService() (*CardService, *memory.Store) {
	store := memory.New()
	svc := NewCardService(store, NewKeyedMutex(), 3)
	svc.rng = rand.New(rand.NewSource(1))
	svc.now = func() time.Time { return testNow }
	return svc, store
}

func seedCard(t *testing.T, store *memory.Store, card models.Card) {
	t.Helper()
	require.NoError(t, store.Cards().Save(context.Background(), &card))
}

func assertServiceError(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	var svcErr *ServiceError
	if assert.ErrorAs(t, err, &svcErr) {
		assert.Equal(t, kind, svcErr.Kind)
	}
}

func TestCardService_Issue(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a card with the product prefix", func(t *testing.T) {
		svc, _ := newTestCardService()

		card, err := svc.Issue(ctx, "123456", "Juan", "Perez")

		require.NoError(t, err)
		assert.Len(t, card.ID, 16)
		assert.Equal(t, "123456", card.ID[:6])
		assert.Equal(t, "123456", card.ProductID)
		assert.Equal(t, "Juan Perez", card.HolderName)
		assert.Equal(t, "09/2029", card.ExpirationDate)
		assert.False(t, card.Active)
		assert.False(t, card.Blocked)
		assert.True(t, card.Balance.IsZero())
	})

	t.Run("rejects productId of wrong length", func(t *testing.T) {
		svc, _ := newTestCardService()

		card, err := svc.Issue(ctx, "12345", "Juan", "Perez")

		assert.Nil(t, card)
		assertServiceError(t, err, KindValidation)
	})

	t.Run("rejects a second card for the same product and holder", func(t *testing.T) {
		svc, _ := newTestCardService()

		_, err := svc.Issue(ctx, "123456", "Juan", "Perez")
		require.NoError(t, err)

		card, err := svc.Issue(ctx, "123456", "Juan", "Perez")

		assert.Nil(t, card)
		assertServiceError(t, err, KindConflict)
	})

	t.Run("different holders may share a product", func(t *testing.T) {
		svc, _ := newTestCardService()

		_, err := svc.Issue(ctx, "123456", "Juan", "Perez")
		require.NoError(t, err)

		card, err := svc.Issue(ctx, "123456", "Maria", "Gomez")

		require.NoError(t, err)
		assert.Equal(t, "Maria Gomez", card.HolderName)
	})
}

func TestCardService_Activate(t *testing.T) {
	ctx := context.Background()

	t.Run("activates an issued card", func(t *testing.T) {
		svc, store := newTestCardService()
		seedCard(t, store, models.Card{ID: "1234560000000001", ProductID: "123456"})

		card, err := svc.Activate(ctx, "1234560000000001")

		require.NoError(t, err)
		assert.True(t, card.Active)
		assert.False(t, card.Blocked)
	})

	t.Run("activation clears a previous block", func(t *testing.T) {
		svc, store := newTestCardService()
		seedCard(t, store, models.Card{ID: "1234560000000001", Blocked: true})

		card, err := svc.Activate(ctx, "1234560000000001")

		require.NoError(t, err)
		assert.True(t, card.Active)
		assert.False(t, card.Blocked)
	})

	t.Run("card not found", func(t *testing.T) {
		svc, _ := newTestCardService()

		card, err := svc.Activate(ctx, "1234560000000001")

		assert.Nil(t, card)
		assertServiceError(t, err, KindNotFound)
	})

	t.Run("rejects activating an already active card", func(t *testing.T) {
		svc, store := newTestCardService()
		seedCard(t, store, models.Card{ID: "1234560000000001", Active: true})

		card, err := svc.Activate(ctx, "1234560000000001")

		assert.Nil(t, card)
		assertServiceError(t, err, KindConflict)
	})
}

func TestCardService_Block(t *testing.T) {
	ctx := context.Background()

	t.Run("blocks an active card", func(t *testing.T) {
		svc, store := newTestCardService()
		seedCard(t, store, models.Card{ID: "1234560000000001", Active: true})

		card, err := svc.Block(ctx, "1234560000000001")

		require.NoError(t, err)
		assert.True(t, card.Blocked)
		assert.False(t, card.Active)
	})

	t.Run("card not found", func(t *testing.T) {
		svc, _ := newTestCardService()

		card, err := svc.Block(ctx, "1234560000000001")

		assert.Nil(t, card)
		assertServiceError(t, err, KindNotFound)
	})

	t.Run("rejects blocking an already blocked card", func(t *testing.T) {
		svc, store := newTestCardService()
		seedCard(t, store, models.Card{ID: "1234560000000001", Blocked: true})

		card, err := svc.Block(ctx, "1234560000000001")

		assert.Nil(t, card)
		assertServiceError(t, err, KindConflict)
	})
}

func TestCardService_TopUp(t *testing.T) {
	ctx := context.Background()

	t.Run("adds the amount to the balance", func(t *testing.T) {
		svc, store := newTestCardService()
		seedCard(t, store, models.Card{
			ID:      "1234560000000001",
			Active:  true,
			Balance: decimal.RequireFromString("25.50"),
		})

		card, err := svc.TopUp(ctx, "1234560000000001", decimal.RequireFromString("100.00"))

		require.NoError(t, err)
		assert.True(t, card.Balance.Equal(decimal.RequireFromString("125.50")),
			"balance is %s", card.Balance)
	})

	t.Run("missing card is reported before the invalid amount", func(t *testing.T) {
		svc, _ := newTestCardService()

		_, err := svc.TopUp(ctx, "1234560000000001", decimal.Zero)

		assertServiceError(t, err, KindNotFound)
	})

	t.Run("invalid amount is reported before the blocked state", func(t *testing.T) {
		svc, store := newTestCardService()
		seedCard(t, store, models.Card{ID: "1234560000000001", Blocked: true})

		_, err := svc.TopUp(ctx, "1234560000000001", decimal.Zero)

		assertServiceError(t, err, KindValidation)
	})

	t.Run("rejects a blocked card", func(t *testing.T) {
		svc, store := newTestCardService()
		seedCard(t, store, models.Card{ID: "1234560000000001", Blocked: true})

		_, err := svc.TopUp(ctx, "1234560000000001", decimal.NewFromInt(10))

		assertServiceError(t, err, KindState)
	})

	t.Run("rejects an inactive card", func(t *testing.T) {
		svc, store := newTestCardService()
		seedCard(t, store, models.Card{ID: "1234560000000001"})

		_, err := svc.TopUp(ctx, "1234560000000001", decimal.NewFromInt(10))

		assertServiceError(t, err, KindState)
	})
}

func TestCardService_GetBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the card unchanged", func(t *testing.T) {
		svc, store := newTestCardService()
		seedCard(t, store, models.Card{
			ID:      "1234560000000001",
			Active:  true,
			Balance: decimal.RequireFromString("70.00"),
		})

		card, err := svc.GetBalance(ctx, "1234560000000001")

		require.NoError(t, err)
		assert.True(t, card.Balance.Equal(decimal.RequireFromString("70.00")))
	})

	t.Run("card not found", func(t *testing.T) {
		svc, _ := newTestCardService()

		_, err := svc.GetBalance(ctx, "1234560000000001")

		assertServiceError(t, err, KindNotFound)
	})

	t.Run("blocked card is rejected regardless of active flag", func(t *testing.T) {
		svc, store := newTestCardService()
		seedCard(t, store, models.Card{ID: "1234560000000001", Active: true, Blocked: true})

		_, err := svc.GetBalance(ctx, "1234560000000001")

		assertServiceError(t, err, KindState)
	})

	t.Run("inactive card is rejected", func(t *testing.T) {
		svc, store := newTestCardService()
		seedCard(t, store, models.Card{ID: "1234560000000001"})

		_, err := svc.GetBalance(ctx, "1234560000000001")

		assertServiceError(t, err, KindState)
	})
}
