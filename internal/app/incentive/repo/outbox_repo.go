package repo

import (
	"encoding/json"
	"fmt"

	"github.com/light-bringer/incentive-tracker/internal/app/incentive/contracts"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/domain"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/memdb"
	"github.com/light-bringer/incentive-tracker/internal/pkg/idgen"
)

// OutboxRepo implements OutboxRepository over the change-log table.
type OutboxRepo struct {
	ids idgen.Generator
}

// NewOutboxRepo creates a new OutboxRepo. Event ids come from ids.
func NewOutboxRepo(ids idgen.Generator) contracts.OutboxRepository {
	return &OutboxRepo{ids: ids}
}

// InsertMut creates a mutation for appending a change event.
func (r *OutboxRepo) InsertMut(event *memdb.ChangeEvent) *memdb.Mutation {
	if event == nil {
		return nil
	}
	ev := *event
	return &memdb.Mutation{
		Name: "event.insert",
		Apply: func(t *memdb.Tables) error {
			t.Events = append(t.Events, ev)
			return nil
		},
	}
}

// EnrichEvent converts a domain event to a change-log record with metadata.
func (r *OutboxRepo) EnrichEvent(event domain.DomainEvent) (*memdb.ChangeEvent, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize event %s: %w", event.EventType(), err)
	}

	return &memdb.ChangeEvent{
		EventID:     r.ids.NewID(),
		EventType:   event.EventType(),
		AggregateID: event.AggregateID(),
		Title:       event.Title(),
		Message:     event.Message(),
		Payload:     string(payload),
		CreatedAt:   event.OccurredAt(),
	}, nil
}
