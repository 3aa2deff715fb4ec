package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCardNumber(t *testing.T) {
	t.Run("number is 16 digits prefixed by the product", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))

		for _, productID := range []string{"123456", "999999", "000001"} {
			number := generateCardNumber(productID, rng)

			assert.Len(t, number, 16)
			assert.Equal(t, productID, number[:6])
			for _, r := range number {
				assert.True(t, r >= '0' && r <= '9', "non-digit %q in %s", r, number)
			}
		}
	})

	t.Run("same seed yields same number", func(t *testing.T) {
		first := generateCardNumber("123456", rand.New(rand.NewSource(7)))
		second := generateCardNumber("123456", rand.New(rand.NewSource(7)))

		assert.Equal(t, first, second)
	})
}
