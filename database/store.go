package database

import (
	"context"

	"storefront-service/models"
)

// CartStore holds the line items of a session cart between requests.
// The pricing engine itself stays in memory per request; stores only
// persist plain line records. A missing session resolves to nil lines,
// not an error.
type CartStore interface {
	Get(ctx context.Context, sessionID string) ([]models.CartLine, error)
	Save(ctx context.Context, sessionID string, lines []models.CartLine) error
	Delete(ctx context.Context, sessionID string) error
}
