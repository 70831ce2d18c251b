package domain

import (
	"fmt"
	"time"
)

// DomainEvent is the base interface for all change events.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	// Title and Message are the short notice shown after a change.
	Title() string
	Message() string
	OccurredAt() time.Time
}

// BrandCreatedEvent is emitted when a brand is created.
type BrandCreatedEvent struct {
	BrandID   string    `json:"brandId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

func (e *BrandCreatedEvent) EventType() string     { return "brand.created" }
func (e *BrandCreatedEvent) AggregateID() string   { return e.BrandID }
func (e *BrandCreatedEvent) Title() string         { return "Brand Created" }
func (e *BrandCreatedEvent) Message() string       { return fmt.Sprintf("%s has been created.", e.Name) }
func (e *BrandCreatedEvent) OccurredAt() time.Time { return e.CreatedAt }

// BrandUpdatedEvent is emitted when a brand is renamed.
type BrandUpdatedEvent struct {
	BrandID   string    `json:"brandId"`
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (e *BrandUpdatedEvent) EventType() string     { return "brand.updated" }
func (e *BrandUpdatedEvent) AggregateID() string   { return e.BrandID }
func (e *BrandUpdatedEvent) Title() string         { return "Brand Updated" }
func (e *BrandUpdatedEvent) Message() string       { return fmt.Sprintf("%s has been updated.", e.Name) }
func (e *BrandUpdatedEvent) OccurredAt() time.Time { return e.UpdatedAt }

// BrandDeletedEvent is emitted when a brand is deleted. OrphanedPrograms
// lists programs left pointing at the deleted brand; CascadedPrograms lists
// programs deleted along with it.
type BrandDeletedEvent struct {
	BrandID          string    `json:"brandId"`
	Name             string    `json:"name"`
	OrphanedPrograms []string  `json:"orphanedPrograms,omitempty"`
	CascadedPrograms []string  `json:"cascadedPrograms,omitempty"`
	DeletedAt        time.Time `json:"deletedAt"`
}

func (e *BrandDeletedEvent) EventType() string   { return "brand.deleted" }
func (e *BrandDeletedEvent) AggregateID() string { return e.BrandID }
func (e *BrandDeletedEvent) Title() string       { return "Brand Deleted" }
func (e *BrandDeletedEvent) Message() string {
	switch {
	case len(e.OrphanedPrograms) > 0:
		return fmt.Sprintf("%s has been deleted; %d program(s) no longer have a brand.", e.Name, len(e.OrphanedPrograms))
	case len(e.CascadedPrograms) > 0:
		return fmt.Sprintf("%s and %d program(s) have been deleted.", e.Name, len(e.CascadedPrograms))
	default:
		return "The brand has been successfully deleted."
	}
}
func (e *BrandDeletedEvent) OccurredAt() time.Time { return e.DeletedAt }

// ProgramCreatedEvent is emitted when a program is created.
type ProgramCreatedEvent struct {
	ProgramID string    `json:"programId"`
	BrandID   string    `json:"brandId"`
	Type      string    `json:"typeProgram"`
	CreatedAt time.Time `json:"createdAt"`
}

func (e *ProgramCreatedEvent) EventType() string     { return "program.created" }
func (e *ProgramCreatedEvent) AggregateID() string   { return e.ProgramID }
func (e *ProgramCreatedEvent) Title() string         { return "Program Created" }
func (e *ProgramCreatedEvent) Message() string       { return fmt.Sprintf("Program %s has been created.", e.ProgramID) }
func (e *ProgramCreatedEvent) OccurredAt() time.Time { return e.CreatedAt }

// ProgramUpdatedEvent is emitted when a program is replaced by an edited copy.
type ProgramUpdatedEvent struct {
	ProgramID string    `json:"programId"`
	BrandID   string    `json:"brandId"`
	Status    string    `json:"programStatus"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (e *ProgramUpdatedEvent) EventType() string     { return "program.updated" }
func (e *ProgramUpdatedEvent) AggregateID() string   { return e.ProgramID }
func (e *ProgramUpdatedEvent) Title() string         { return "Program Updated" }
func (e *ProgramUpdatedEvent) Message() string       { return fmt.Sprintf("Program %s has been updated.", e.ProgramID) }
func (e *ProgramUpdatedEvent) OccurredAt() time.Time { return e.UpdatedAt }

// ProgramDeletedEvent is emitted when a program is deleted.
type ProgramDeletedEvent struct {
	ProgramID string    `json:"programId"`
	BrandID   string    `json:"brandId"`
	DeletedAt time.Time `json:"deletedAt"`
}

func (e *ProgramDeletedEvent) EventType() string     { return "program.deleted" }
func (e *ProgramDeletedEvent) AggregateID() string   { return e.ProgramID }
func (e *ProgramDeletedEvent) Title() string         { return "Program Deleted" }
func (e *ProgramDeletedEvent) Message() string       { return "The program has been successfully deleted." }
func (e *ProgramDeletedEvent) OccurredAt() time.Time { return e.DeletedAt }
