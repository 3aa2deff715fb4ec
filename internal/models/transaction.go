package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a purchase debited against a card.
//
// A transaction is immutable after creation except for the Voided flag,
// which may flip to true exactly once.
type Transaction struct {
	Timestamp time.Time       `json:"transactionDate" db:"created_at"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	CardID    string          `json:"cardId" db:"card_id"`
	ID        int64           `json:"id" db:"id"`
	Voided    bool            `json:"voided" db:"voided"`
}
