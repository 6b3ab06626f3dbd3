package store_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jmallory/roster-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	assert.True(t, store.IsNotFoundError(store.ErrRecordNotFound))
	assert.True(t, store.IsNotFoundError(fmt.Errorf("get: %w", store.ErrRecordNotFound)))
	assert.False(t, store.IsNotFoundError(store.ErrEmailExists))

	assert.True(t, store.IsDuplicateError(store.ErrEmailExists))
	assert.False(t, store.IsDuplicateError(store.ErrRecordNotFound))
	assert.False(t, store.IsDuplicateError(errors.New("boom")))
}

func TestStoreError(t *testing.T) {
	inner := store.ErrInvalidPage
	err := store.NewStoreError("record", "list", "limit must be positive", inner)

	assert.ErrorIs(t, err, store.ErrInvalidPage)
	assert.Contains(t, err.Error(), "list operation on record failed")
	assert.Contains(t, err.Error(), "limit must be positive")

	var storeErr *store.StoreError
	assert.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "record", storeErr.Entity)

	// Without a wrapped error the message still names the operation.
	bare := store.NewStoreError("record", "delete", "index out of sync", nil)
	assert.Contains(t, bare.Error(), "delete operation on record failed: index out of sync")
}
