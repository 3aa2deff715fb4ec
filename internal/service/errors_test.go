package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceError(t *testing.T) {
	t.Run("message only", func(t *testing.T) {
		err := &ServiceError{Kind: KindNotFound, Message: "card not found"}

		assert.Equal(t, "card not found", err.Error())
	})

	t.Run("wraps an underlying error", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := &ServiceError{Kind: KindInternal, Message: "failed to load card", Err: cause}

		assert.Equal(t, "failed to load card: connection refused", err.Error())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("errors.As finds it through wrapping", func(t *testing.T) {
		err := fmt.Errorf("operation failed: %w", &ServiceError{Kind: KindConflict, Message: "card is already active"})

		var svcErr *ServiceError
		if assert.ErrorAs(t, err, &svcErr) {
			assert.Equal(t, KindConflict, svcErr.Kind)
		}
	})
}
