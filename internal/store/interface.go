package store

import (
	"context"

	"github.com/cchiddy480/PokePort/internal/model"
)

// CardStore handles card persistence.
type CardStore interface {
	// Init idempotently ensures the backing table exists. Safe to call on
	// every start; never alters existing data.
	Init(ctx context.Context) error

	// Create inserts a new card and returns its assigned id.
	Create(ctx context.Context, card *model.Card) (int64, error)

	// Get returns the card with the given id, or a not-found error.
	Get(ctx context.Context, id int64) (*model.Card, error)

	// List returns every card in insertion order. Empty store yields an
	// empty slice, not an error.
	List(ctx context.Context) ([]*model.Card, error)

	// Update overwrites all non-id fields of the matching row. The card
	// must be persisted (have an id); a missing row is a no-op.
	Update(ctx context.Context, card *model.Card) error

	// Delete removes the matching row; a missing row is a no-op.
	Delete(ctx context.Context, id int64) error

	// Close releases the underlying database handle.
	Close() error
}
