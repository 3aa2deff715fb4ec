package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Balances and prices serialize as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// CardNumberLength is the full length of a card identifier.
const CardNumberLength = 16

// ProductIDLength is the length of the product prefix embedded in a card number.
const ProductIDLength = 6

// Card represents a prepaid card with its balance and lifecycle state.
//
// The ID is a 16-digit number whose first 6 digits equal ProductID.
// ExpirationDate is stored as MM/YYYY.
type Card struct {
	CreatedAt      time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time       `json:"updatedAt" db:"updated_at"`
	Balance        decimal.Decimal `json:"balance" db:"balance"`
	ID             string          `json:"id" db:"id"`
	ProductID      string          `json:"productId" db:"product_id"`
	HolderName     string          `json:"holderName" db:"holder_name"`
	ExpirationDate string          `json:"expirationDate" db:"expiration_date"`
	Active         bool            `json:"active" db:"active"`
	Blocked        bool            `json:"blocked" db:"blocked"`
}

// Usable reports whether the card can move money: activated and not blocked.
func (c *Card) Usable() bool {
	return c.Active && !c.Blocked
}
