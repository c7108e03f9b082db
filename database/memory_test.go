package database

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"storefront-service/models"
)

func sampleLines() []models.CartLine {
	return []models.CartLine{
		{ProductID: 1, Name: "Buddy the Bear", UnitPrice: decimal.RequireFromString("89.99"), Quantity: 1},
		{ProductID: 2, Name: "Smart Elephant", UnitPrice: decimal.RequireFromString("69.99"), Quantity: 2},
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	got, err := store.Get(ctx, "s1")
	assert.NoError(t, err)
	assert.Nil(t, got)

	assert.NoError(t, store.Save(ctx, "s1", sampleLines()))

	got, err = store.Get(ctx, "s1")
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ProductID)

	// Sessions are isolated.
	other, err := store.Get(ctx, "s2")
	assert.NoError(t, err)
	assert.Nil(t, other)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	assert.NoError(t, store.Save(ctx, "s1", sampleLines()))
	assert.NoError(t, store.Delete(ctx, "s1"))

	got, err := store.Get(ctx, "s1")
	assert.NoError(t, err)
	assert.Nil(t, got)

	// Deleting an absent session is a no-op.
	assert.NoError(t, store.Delete(ctx, "s1"))
}

func TestMemoryStoreTTL(t *testing.T) {
	store := NewMemoryStore(10 * time.Millisecond)
	ctx := context.Background()

	assert.NoError(t, store.Save(ctx, "s1", sampleLines()))
	time.Sleep(25 * time.Millisecond)

	got, err := store.Get(ctx, "s1")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreCopiesLines(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	lines := sampleLines()
	assert.NoError(t, store.Save(ctx, "s1", lines))

	// Mutating the caller's slice must not leak into the store.
	lines[0].Quantity = 99

	got, _ := store.Get(ctx, "s1")
	assert.Equal(t, 1, got[0].Quantity)
}
