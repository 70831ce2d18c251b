package list_events

import (
	"context"

	"github.com/light-bringer/incentive-tracker/internal/app/incentive/contracts"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/memdb"
)

// Default and maximum page sizes.
const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Request contains the change-log filters. Empty strings match everything.
type Request struct {
	EventType   string // e.g. "program.created"
	AggregateID string // brand or program id
	Limit       int    // default DefaultLimit
}

// Query handles the list events query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list events query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves change events, most recent first.
func (q *Query) Execute(ctx context.Context, req *Request) ([]memdb.ChangeEvent, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return q.readModel.ListEvents(ctx, &contracts.EventFilter{
		EventType:   req.EventType,
		AggregateID: req.AggregateID,
		Limit:       limit,
	})
}
