package hoist_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hoistdb/hoist"
)

func TestUnknownTypeError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := hoist.NewUnknownTypeError("Publisher")
		assert.Equal(t, `hoist: unknown entity type "Publisher"`, err.Error())
	})

	t.Run("Is", func(t *testing.T) {
		err := hoist.NewUnknownTypeError("Publisher")
		assert.True(t, errors.Is(err, hoist.ErrUnknownType))
	})

	t.Run("Type", func(t *testing.T) {
		err := hoist.NewUnknownTypeError("Publisher")
		assert.Equal(t, "Publisher", err.Type())
	})

	t.Run("IsUnknownType", func(t *testing.T) {
		err := hoist.NewUnknownTypeError("Publisher")
		assert.True(t, hoist.IsUnknownType(err))

		// Wrapped error
		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, hoist.IsUnknownType(wrapped))

		// Sentinel error
		assert.True(t, hoist.IsUnknownType(hoist.ErrUnknownType))

		// Non-matching error
		assert.False(t, hoist.IsUnknownType(errors.New("other error")))
		assert.False(t, hoist.IsUnknownType(nil))
	})
}

func TestDepthExceededError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := hoist.NewDepthExceededError("Books.Reviews", 1)
		assert.Equal(t, `hoist: path "Books.Reviews" exceeds max depth 1`, err.Error())
	})

	t.Run("Is", func(t *testing.T) {
		err := hoist.NewDepthExceededError("Books.Reviews", 1)
		assert.True(t, errors.Is(err, hoist.ErrDepthExceeded))
	})

	t.Run("Fields", func(t *testing.T) {
		err := hoist.NewDepthExceededError("Books.Tags", 2)
		assert.Equal(t, "Books.Tags", err.Path)
		assert.Equal(t, 2, err.Limit)
	})

	t.Run("IsDepthExceeded", func(t *testing.T) {
		err := hoist.NewDepthExceededError("Books", 0)
		assert.True(t, hoist.IsDepthExceeded(err))

		// Wrapped error
		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, hoist.IsDepthExceeded(wrapped))

		// Sentinel error
		assert.True(t, hoist.IsDepthExceeded(hoist.ErrDepthExceeded))

		// Non-matching error
		assert.False(t, hoist.IsDepthExceeded(errors.New("other error")))
		assert.False(t, hoist.IsDepthExceeded(nil))
	})
}

func TestSchemaError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := hoist.NewSchemaError("Book", "Tags", "ref target missing", nil)
		assert.Equal(t, "hoist: schema error on type Book navigation Tags: ref target missing", err.Error())
	})

	t.Run("ErrorMinimal", func(t *testing.T) {
		err := hoist.NewSchemaError("", "", "empty graph", nil)
		assert.Equal(t, "hoist: schema error: empty graph", err.Error())
	})

	t.Run("Unwrap", func(t *testing.T) {
		cause := errors.New("boom")
		err := hoist.NewSchemaError("Book", "", "", cause)
		assert.Equal(t, cause, errors.Unwrap(err))
	})

	t.Run("Is", func(t *testing.T) {
		err := hoist.NewSchemaError("Book", "Tags", "duplicate navigation", nil)
		assert.True(t, errors.Is(err, hoist.ErrInvalidSchema))
		assert.True(t, hoist.IsSchemaError(err))
		assert.False(t, hoist.IsSchemaError(nil))
	})
}

func TestRelString(t *testing.T) {
	assert.Equal(t, "O2O", hoist.O2O.String())
	assert.Equal(t, "O2M", hoist.O2M.String())
	assert.Equal(t, "M2M", hoist.M2M.String())
	assert.Equal(t, "Unknown", hoist.Unk.String())
}
