package service

import (
	"fmt"
	"time"

	"github.com/mariocampos1028/bankinc/internal/models"
	"github.com/shopspring/decimal"
)

// expirationLayout is the wire and storage format for card expiration dates.
const expirationLayout = "01/2006"

// ValidateProductID checks that a product identifier has the exact length
// required to prefix a card number
func ValidateProductID(productID string) error {
	if len(productID) != models.ProductIDLength {
		return fmt.Errorf("productId must be exactly %d characters", models.ProductIDLength)
	}

	return nil
}

// ValidateAmount checks that a monetary amount is positive
func ValidateAmount(amount decimal.Decimal) error {
	if amount.Sign() <= 0 {
		return fmt.Errorf("amount must be greater than zero")
	}

	return nil
}

// FormatExpiration returns the MM/YYYY expiration for a card created at
// the given instant with the given lifetime
func FormatExpiration(createdAt time.Time, lifetimeYears int) string {
	return createdAt.AddDate(lifetimeYears, 0, 0).Format(expirationLayout)
}

// IsExpired reports whether an MM/YYYY expiration date lies before the
// current month. A card expiring this month is still valid.
func IsExpired(expiration string, now time.Time) (bool, error) {
	exp, err := time.Parse(expirationLayout, expiration)
	if err != nil {
		return false, fmt.Errorf("invalid expiration date %q: %w", expiration, err)
	}

	if exp.Year() < now.Year() {
		return true, nil
	}
	if exp.Year() == now.Year() && exp.Month() < now.Month() {
		return true, nil
	}

	return false, nil
}
