// Package editflow drives the add/edit form of a record type as a finite
// state machine: Closed, CreatingNew and EditingExisting(id).
//
// A submitted candidate is validated before anything reaches the store. A
// rejected candidate keeps the flow in its current state so the caller can
// show the field errors and resubmit.
package editflow

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// State is the phase of an edit flow.
type State int

const (
	// Closed means no form is open.
	Closed State = iota
	// CreatingNew means the form is open for a new record.
	CreatingNew
	// EditingExisting means the form is open for an existing record.
	EditingExisting
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case CreatingNew:
		return "creating"
	case EditingExisting:
		return "editing"
	default:
		return "unknown"
	}
}

var (
	// ErrFlowBusy is returned by Add and Edit while a form is already open.
	ErrFlowBusy = errors.New("edit flow is already open")
	// ErrFlowClosed is returned by Submit when no form is open.
	ErrFlowClosed = errors.New("edit flow is closed")
)

// Handler binds a flow to one record type.
type Handler[T any] interface {
	// Load returns the stored record used to prefill an edit form.
	Load(ctx context.Context, id string) (T, error)
	// Validate checks a candidate without touching the store.
	Validate(candidate T) error
	// Create stores a new record and returns it as stored.
	Create(ctx context.Context, candidate T) (T, error)
	// Update replaces the record with id and returns it as stored.
	Update(ctx context.Context, id string, candidate T) (T, error)
}

// Flow is the edit state machine for records of type T. It is not safe for
// concurrent use; each form owns its flow.
type Flow[T any] struct {
	handler Handler[T]
	logger  *zap.Logger
	state   State
	id      string
}

// New creates a closed flow.
func New[T any](handler Handler[T], logger *zap.Logger) *Flow[T] {
	return &Flow[T]{handler: handler, logger: logger, state: Closed}
}

func (f *Flow[T]) State() State { return f.state }

// EditingID returns the id of the record being edited, or "" when the flow is
// not in EditingExisting.
func (f *Flow[T]) EditingID() string { return f.id }

// Add opens the form for a new record.
func (f *Flow[T]) Add() error {
	if f.state != Closed {
		return ErrFlowBusy
	}
	f.state = CreatingNew
	f.logger.Debug("edit flow opened", zap.Stringer("state", f.state))
	return nil
}

// Edit opens the form for the record with id and returns it for prefilling.
// An unknown id leaves the flow closed.
func (f *Flow[T]) Edit(ctx context.Context, id string) (T, error) {
	var zero T
	if f.state != Closed {
		return zero, ErrFlowBusy
	}

	record, err := f.handler.Load(ctx, id)
	if err != nil {
		return zero, err
	}

	f.state = EditingExisting
	f.id = id
	f.logger.Debug("edit flow opened", zap.Stringer("state", f.state), zap.String("id", id))
	return record, nil
}

// Cancel closes the form from any state, discarding the candidate.
func (f *Flow[T]) Cancel() {
	f.close()
}

// Submit validates candidate and, when it passes, creates or updates the
// record and closes the flow. On any error the state is unchanged.
func (f *Flow[T]) Submit(ctx context.Context, candidate T) (T, error) {
	var zero T

	if f.state == Closed {
		return zero, ErrFlowClosed
	}
	if err := f.handler.Validate(candidate); err != nil {
		return zero, err
	}

	var (
		stored T
		err    error
	)
	switch f.state {
	case CreatingNew:
		stored, err = f.handler.Create(ctx, candidate)
	case EditingExisting:
		stored, err = f.handler.Update(ctx, f.id, candidate)
	}
	if err != nil {
		return zero, err
	}

	f.close()
	return stored, nil
}

func (f *Flow[T]) close() {
	f.state = Closed
	f.id = ""
}
