package repo

import (
	"context"
	"fmt"

	"github.com/light-bringer/incentive-tracker/internal/app/incentive/contracts"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/domain"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/memdb"
	"github.com/light-bringer/incentive-tracker/internal/pkg/query"
)

// ReadModel implements the ReadModel interface over the in-memory tables.
type ReadModel struct {
	db *memdb.DB
}

// NewReadModel creates a new ReadModel.
func NewReadModel(db *memdb.DB) contracts.ReadModel {
	return &ReadModel{db: db}
}

// ListBrands returns every brand in creation order.
func (r *ReadModel) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	snap, err := r.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Brands, nil
}

// ListPrograms returns every program in creation order.
func (r *ReadModel) ListPrograms(ctx context.Context) ([]domain.Program, error) {
	snap, err := r.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Programs, nil
}

// Snapshot reads both lists under one lock acquisition.
func (r *ReadModel) Snapshot(ctx context.Context) (*contracts.Snapshot, error) {
	tables, err := r.db.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read record store: %w", err)
	}
	return &contracts.Snapshot{
		Brands:   tables.Brands,
		Programs: tables.Programs,
	}, nil
}

// ListEvents returns change events, most recent first.
func (r *ReadModel) ListEvents(ctx context.Context, filter *contracts.EventFilter) ([]memdb.ChangeEvent, error) {
	tables, err := r.db.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read change log: %w", err)
	}

	// The log is append-only, so reversing it yields newest first even when
	// two events share a timestamp.
	events := make([]memdb.ChangeEvent, 0, len(tables.Events))
	for i := len(tables.Events) - 1; i >= 0; i-- {
		events = append(events, tables.Events[i])
	}

	q := query.From(events)
	if filter != nil {
		if filter.EventType != "" {
			q = q.Where(query.Eq("event_type", func(e memdb.ChangeEvent) string { return e.EventType }, filter.EventType))
		}
		if filter.AggregateID != "" {
			q = q.Where(query.Eq("aggregate_id", func(e memdb.ChangeEvent) string { return e.AggregateID }, filter.AggregateID))
		}
		if filter.Limit > 0 {
			q = q.Limit(filter.Limit)
		}
	}
	return q.List(), nil
}
