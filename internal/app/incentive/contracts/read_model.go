package contracts

import (
	"context"

	"github.com/light-bringer/incentive-tracker/internal/app/incentive/domain"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/memdb"
)

// Snapshot is a consistent read of both record lists.
type Snapshot struct {
	Brands   []domain.Brand
	Programs []domain.Program
}

// EventFilter narrows the change log. Zero values disable each filter.
type EventFilter struct {
	EventType   string
	AggregateID string
	Limit       int
}

// ReadModel defines the read side of the record store. Every method returns
// copies in store order.
type ReadModel interface {
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	ListPrograms(ctx context.Context) ([]domain.Program, error)

	// Snapshot reads brands and programs together.
	Snapshot(ctx context.Context) (*Snapshot, error)

	// ListEvents returns change events, most recent first.
	ListEvents(ctx context.Context, filter *EventFilter) ([]memdb.ChangeEvent, error)
}
