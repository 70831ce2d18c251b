package contracts

import (
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/domain"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/memdb"
)

// OutboxRepository appends change events in the same plan as the change.
type OutboxRepository interface {
	// InsertMut creates a mutation that appends an event to the change log.
	InsertMut(event *memdb.ChangeEvent) *memdb.Mutation

	// EnrichEvent converts a domain event to a change-log record with metadata.
	EnrichEvent(event domain.DomainEvent) (*memdb.ChangeEvent, error)
}
