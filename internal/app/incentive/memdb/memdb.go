// Package memdb is the in-memory record store: the authoritative brand,
// program and change-log tables behind a single-writer lock.
//
// Readers get copies. Writers go through Update, which runs against a working
// copy and publishes it only when the whole write succeeded.
package memdb

import (
	"context"
	"sync"
	"time"

	"github.com/light-bringer/incentive-tracker/internal/app/incentive/domain"
	"github.com/light-bringer/incentive-tracker/internal/pkg/committer"
)

// Tables is the full record set.
type Tables struct {
	Brands   []domain.Brand
	Programs []domain.Program
	Events   []ChangeEvent
}

// ChangeEvent is a committed domain event as stored in the change log.
type ChangeEvent struct {
	EventID     string    `json:"eventId"`
	EventType   string    `json:"eventType"`
	AggregateID string    `json:"aggregateId"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	Payload     string    `json:"payload"` // JSON
	CreatedAt   time.Time `json:"createdAt"`
}

// Mutation is a write against Tables.
type Mutation = committer.Mutation[Tables]

// Plan is a commit plan over Tables.
type Plan = committer.Plan[Tables]

// NewPlan creates an empty commit plan over Tables.
func NewPlan() *Plan {
	return committer.NewPlan[Tables]()
}

// Committer applies plans over Tables.
type Committer = committer.Committer[Tables]

// NewCommitter creates a committer that applies plans to db.
func NewCommitter(db *DB) *Committer {
	return committer.NewCommitter[Tables](db)
}

// Clone returns a deep copy of the tables.
func (t Tables) Clone() Tables {
	return Tables{
		Brands:   append(make([]domain.Brand, 0, len(t.Brands)), t.Brands...),
		Programs: append(make([]domain.Program, 0, len(t.Programs)), t.Programs...),
		Events:   append(make([]ChangeEvent, 0, len(t.Events)), t.Events...),
	}
}

// DB owns the live tables.
type DB struct {
	mu     sync.RWMutex
	tables Tables
}

// New creates a DB holding a copy of initial.
func New(initial Tables) *DB {
	return &DB{tables: initial.Clone()}
}

// Update runs fn against a working copy of the tables and swaps it in when fn
// returns nil. Writers are serialized; readers never observe a partial write.
func (db *DB) Update(ctx context.Context, fn func(tables *Tables) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	work := db.tables.Clone()
	if err := fn(&work); err != nil {
		return err
	}
	db.tables = work
	return nil
}

// Snapshot returns a copy of the current tables.
func (db *DB) Snapshot(ctx context.Context) (Tables, error) {
	if err := ctx.Err(); err != nil {
		return Tables{}, err
	}

	db.mu.RLock()
	defer db.mu.RUnlock()

	return db.tables.Clone(), nil
}

// FindBrand returns the index of the brand with id, or -1.
func (t *Tables) FindBrand(id string) int {
	for i, b := range t.Brands {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// FindProgram returns the index of the program with id, or -1.
func (t *Tables) FindProgram(id string) int {
	for i, p := range t.Programs {
		if p.ID == id {
			return i
		}
	}
	return -1
}
