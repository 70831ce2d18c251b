// Package committer implements the mutation-plan pattern for the in-memory
// record store.
//
// Usecases never write to the store directly:
//
//	// 1. Validate the candidate record
//	if err := brand.Validate(); err != nil {
//	    return nil, err
//	}
//
//	// 2. Repositories return mutations (they don't apply them)
//	plan := committer.NewPlan[repo.Tables]()
//	plan.Add(brandRepo.InsertMut(brand))
//
//	// 3. Change events go into the same plan
//	plan.Add(eventLog.AppendMut(event))
//
//	// 4. Apply everything atomically
//	return comm.Apply(ctx, plan)
//
// A plan either applies completely or not at all: mutations run against a
// working copy of the tables, and the copy replaces the live tables only when
// every mutation succeeded.
package committer

import (
	"context"
	"fmt"
)

// Mutation is a single write against the tables of type T. Mutations may
// reject the write by returning an error, which aborts the whole plan.
type Mutation[T any] struct {
	Name  string
	Apply func(tables *T) error
}

// Plan collects mutations to be applied atomically.
type Plan[T any] struct {
	mutations []*Mutation[T]
}

// NewPlan creates a new empty Plan.
func NewPlan[T any]() *Plan[T] {
	return &Plan[T]{mutations: make([]*Mutation[T], 0)}
}

// Add adds a mutation to the plan.
// Nil mutations are silently ignored for convenience.
func (p *Plan[T]) Add(mut *Mutation[T]) {
	if mut != nil {
		p.mutations = append(p.mutations, mut)
	}
}

// AddMultiple adds multiple mutations to the plan.
func (p *Plan[T]) AddMultiple(muts []*Mutation[T]) {
	for _, mut := range muts {
		p.Add(mut)
	}
}

// Mutations returns all collected mutations in insertion order.
func (p *Plan[T]) Mutations() []*Mutation[T] {
	return p.mutations
}

// IsEmpty returns true if the plan has no mutations.
func (p *Plan[T]) IsEmpty() bool {
	return len(p.mutations) == 0
}

// Count returns the number of mutations in the plan.
func (p *Plan[T]) Count() int {
	return len(p.mutations)
}

// Store is the write side of a table set. Update runs fn against a private
// working copy and publishes it only when fn returns nil.
type Store[T any] interface {
	Update(ctx context.Context, fn func(tables *T) error) error
}

// Committer applies plans to a Store.
type Committer[T any] struct {
	store Store[T]
}

// NewCommitter creates a new Committer.
func NewCommitter[T any](store Store[T]) *Committer[T] {
	return &Committer[T]{store: store}
}

// Apply executes the plan atomically.
func (c *Committer[T]) Apply(ctx context.Context, plan *Plan[T]) error {
	if plan.IsEmpty() {
		return nil
	}

	err := c.store.Update(ctx, func(tables *T) error {
		for i, mut := range plan.Mutations() {
			if err := mut.Apply(tables); err != nil {
				return fmt.Errorf("mutation %d (%s): %w", i, mut.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to apply commit plan: %w", err)
	}

	return nil
}
