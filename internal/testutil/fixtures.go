package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/light-bringer/incentive-tracker/internal/app/incentive/contracts"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/memdb"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/repo"
	"github.com/light-bringer/incentive-tracker/internal/pkg/clock"
	"github.com/light-bringer/incentive-tracker/internal/pkg/idgen"
)

// Store bundles an in-memory record store with its repositories and the
// deterministic collaborators the interactors need.
type Store struct {
	DB        *memdb.DB
	Brands    contracts.BrandRepository
	Programs  contracts.ProgramRepository
	Outbox    contracts.OutboxRepository
	ReadModel contracts.ReadModel
	Committer *memdb.Committer
	Clock     *clock.FixedClock
	IDs       *idgen.Sequence
	Logger    *zap.Logger
	Logs      *observer.ObservedLogs
}

// NewStore creates a Store over tables. New records get ids NEW0001,
// NEW0002, ...; change events get EVT0001, ...
func NewStore(t *testing.T, tables memdb.Tables) *Store {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	db := memdb.New(tables)

	return &Store{
		DB:        db,
		Brands:    repo.NewBrandRepo(db),
		Programs:  repo.NewProgramRepo(db),
		Outbox:    repo.NewOutboxRepo(idgen.NewSequence("EVT")),
		ReadModel: repo.NewReadModel(db),
		Committer: memdb.NewCommitter(db),
		Clock:     NewFixedClock(),
		IDs:       idgen.NewSequence("NEW"),
		Logger:    zap.New(core),
		Logs:      logs,
	}
}

// NewSeededStore creates a Store loaded with the default seed: brands 1..3
// and programs PROG001..PROG005.
func NewSeededStore(t *testing.T) *Store {
	t.Helper()

	tables, err := repo.DefaultSeed()
	require.NoError(t, err, "failed to load default seed")
	return NewStore(t, tables)
}

// Events returns the change log, most recent first.
func (s *Store) Events(t *testing.T) []memdb.ChangeEvent {
	t.Helper()

	events, err := s.ReadModel.ListEvents(context.Background(), nil)
	require.NoError(t, err)
	return events
}

// AssertEvent verifies that the most recent change event has the given type
// and aggregate id.
func (s *Store) AssertEvent(t *testing.T, eventType, aggregateID string) memdb.ChangeEvent {
	t.Helper()

	events := s.Events(t)
	require.NotEmpty(t, events, "change log is empty")
	require.Equal(t, eventType, events[0].EventType)
	require.Equal(t, aggregateID, events[0].AggregateID)
	return events[0]
}

// Snapshot returns the current brand and program lists.
func (s *Store) Snapshot(t *testing.T) *contracts.Snapshot {
	t.Helper()

	snap, err := s.ReadModel.Snapshot(context.Background())
	require.NoError(t, err)
	return snap
}
