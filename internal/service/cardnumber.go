package service

import (
	"strings"

	"github.com/mariocampos1028/bankinc/internal/models"
)

// DigitSource yields random digits for card number generation.
// *math/rand.Rand satisfies it; tests inject a seeded source.
type DigitSource interface {
	Intn(n int) int
}

// generateCardNumber builds a 16-digit card number: the 6-digit product
// prefix followed by 10 independently drawn decimal digits. No uniqueness
// probe is made against the store; collisions are accepted as negligible
// at this keyspace (10^10 per product).
func generateCardNumber(productID string, digits DigitSource) string {
	var b strings.Builder
	b.Grow(models.CardNumberLength)
	b.WriteString(productID)

	for b.Len() < models.CardNumberLength {
		b.WriteByte('0' + byte(digits.Intn(10)))
	}

	return b.String()
}
