package memdb

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"

	"github.com/light-bringer/incentive-tracker/internal/app/incentive/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func seedTables() Tables {
	return Tables{
		Brands:   []domain.Brand{{ID: "1", Name: "INFINIX"}},
		Programs: []domain.Program{{ID: "P1", BrandID: "1"}},
	}
}

func TestDB_SnapshotIsCopy(t *testing.T) {
	ctx := context.Background()
	initial := seedTables()
	db := New(initial)

	initial.Brands[0].Name = "changed after New"

	snap, err := db.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "INFINIX", snap.Brands[0].Name)

	snap.Brands[0].Name = "changed snapshot"
	again, err := db.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "INFINIX", again.Brands[0].Name)
}

func TestDB_UpdatePublishesOnSuccess(t *testing.T) {
	ctx := context.Background()
	db := New(seedTables())

	err := db.Update(ctx, func(tbl *Tables) error {
		tbl.Brands = append(tbl.Brands, domain.Brand{ID: "2", Name: "IPHONE"})
		return nil
	})
	require.NoError(t, err)

	snap, _ := db.Snapshot(ctx)
	assert.Len(t, snap.Brands, 2)
}

func TestDB_UpdateDiscardsOnError(t *testing.T) {
	ctx := context.Background()
	db := New(seedTables())
	boom := errors.New("boom")

	err := db.Update(ctx, func(tbl *Tables) error {
		tbl.Brands[0].Name = "half written"
		tbl.Programs = nil
		return boom
	})
	assert.ErrorIs(t, err, boom)

	snap, _ := db.Snapshot(ctx)
	assert.Equal(t, "INFINIX", snap.Brands[0].Name)
	assert.Len(t, snap.Programs, 1)
}

func TestDB_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	db := New(seedTables())

	_, err := db.Snapshot(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	called := false
	err = db.Update(ctx, func(*Tables) error { called = true; return nil })
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestDB_SerializedWriters(t *testing.T) {
	ctx := context.Background()
	db := New(Tables{})

	const writers = 50
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < writers; i++ {
		g.Go(func() error {
			return db.Update(gctx, func(tbl *Tables) error {
				tbl.Events = append(tbl.Events, ChangeEvent{EventType: "x"})
				return nil
			})
		})
		g.Go(func() error {
			snap, err := db.Snapshot(gctx)
			if err != nil {
				return err
			}
			snap.Events = append(snap.Events, ChangeEvent{EventType: "local"})
			return nil
		})
	}
	require.NoError(t, g.Wait())

	snap, _ := db.Snapshot(ctx)
	assert.Len(t, snap.Events, writers)
}

func TestTables_Find(t *testing.T) {
	tbl := seedTables()
	assert.Equal(t, 0, tbl.FindBrand("1"))
	assert.Equal(t, -1, tbl.FindBrand("2"))
	assert.Equal(t, 0, tbl.FindProgram("P1"))
	assert.Equal(t, -1, tbl.FindProgram("P2"))
}
