package repo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/incentive-tracker/internal/app/incentive/contracts"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/domain"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/memdb"
	"github.com/light-bringer/incentive-tracker/internal/pkg/committer"
	"github.com/light-bringer/incentive-tracker/internal/pkg/idgen"
)

func newTestDB(t *testing.T) *memdb.DB {
	t.Helper()
	tables, err := DefaultSeed()
	require.NoError(t, err)
	return memdb.New(tables)
}

func apply(t *testing.T, db *memdb.DB, muts ...*memdb.Mutation) error {
	t.Helper()
	plan := memdb.NewPlan()
	plan.AddMultiple(muts)
	return committer.NewCommitter[memdb.Tables](db).Apply(context.Background(), plan)
}

func TestBrandRepo_InsertUpdateDelete(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	brands := NewBrandRepo(db)

	created := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, apply(t, db, brands.InsertMut(domain.Brand{ID: "4", Name: "TECNO", CreatedAt: created})))

	got, err := brands.GetByID(ctx, "4")
	require.NoError(t, err)
	assert.Equal(t, "TECNO", got.Name)

	// update keeps the original creation time
	require.NoError(t, apply(t, db, brands.UpdateMut(domain.Brand{ID: "4", Name: "TECNO MOBILE"})))
	got, err = brands.GetByID(ctx, "4")
	require.NoError(t, err)
	assert.Equal(t, "TECNO MOBILE", got.Name)
	assert.Equal(t, created, got.CreatedAt)

	require.NoError(t, apply(t, db, brands.DeleteMut("4")))
	_, err = brands.GetByID(ctx, "4")
	assert.ErrorIs(t, err, domain.ErrBrandNotFound)
}

func TestBrandRepo_Conflicts(t *testing.T) {
	db := newTestDB(t)
	brands := NewBrandRepo(db)

	assert.ErrorIs(t, apply(t, db, brands.InsertMut(domain.Brand{ID: "1", Name: "DUP"})), domain.ErrBrandExists)
	assert.ErrorIs(t, apply(t, db, brands.InsertMut(domain.Brand{Name: "NO ID"})), domain.ErrMissingID)
	assert.ErrorIs(t, apply(t, db, brands.UpdateMut(domain.Brand{ID: "99", Name: "X"})), domain.ErrBrandNotFound)
	assert.ErrorIs(t, apply(t, db, brands.DeleteMut("99")), domain.ErrBrandNotFound)
}

func TestBrandRepo_UpdateKeepsPosition(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	require.NoError(t, apply(t, db, NewBrandRepo(db).UpdateMut(domain.Brand{ID: "2", Name: "APPLE"})))

	list, err := NewReadModel(db).ListBrands(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"INFINIX", "APPLE", "ITEL"}, []string{list[0].Name, list[1].Name, list[2].Name})
}

func TestProgramRepo_Mutations(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	programs := NewProgramRepo(db)

	p, err := programs.GetByID(ctx, "PROG004")
	require.NoError(t, err)
	p.Status = domain.StatusActive
	require.NoError(t, apply(t, db, programs.UpdateMut(p)))

	p, err = programs.GetByID(ctx, "PROG004")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, p.Status)

	assert.ErrorIs(t, apply(t, db, programs.InsertMut(p)), domain.ErrProgramExists)
	assert.ErrorIs(t, apply(t, db, programs.UpdateMut(domain.Program{ID: "nope"})), domain.ErrProgramNotFound)

	require.NoError(t, apply(t, db, programs.DeleteMut("PROG004")))
	_, err = programs.GetByID(ctx, "PROG004")
	assert.ErrorIs(t, err, domain.ErrProgramNotFound)
	assert.ErrorIs(t, apply(t, db, programs.DeleteMut("PROG004")), domain.ErrProgramNotFound)
}

func TestProgramRepo_BrandReferences(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	programs := NewProgramRepo(db)

	byBrand, err := programs.ListByBrand(ctx, "1")
	require.NoError(t, err)
	assert.Len(t, byBrand, 2)

	assert.ErrorIs(t, apply(t, db, programs.NoReferencesMut("1")), domain.ErrBrandInUse)
	assert.NoError(t, apply(t, db, programs.NoReferencesMut("99")))

	require.NoError(t, apply(t, db, programs.DeleteByBrandMut("1")))
	all, err := NewReadModel(db).ListPrograms(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	for _, p := range all {
		assert.NotEqual(t, "1", p.BrandID)
	}
}

func TestPlan_GuardFailureRollsBackEarlierMutations(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	brands, programs := NewBrandRepo(db), NewProgramRepo(db)

	err := apply(t, db,
		brands.InsertMut(domain.Brand{ID: "9", Name: "NEW"}),
		programs.NoReferencesMut("1"),
		brands.DeleteMut("1"),
	)
	require.ErrorIs(t, err, domain.ErrBrandInUse)

	list, err := NewReadModel(db).ListBrands(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)
	_, err = brands.GetByID(ctx, "9")
	assert.ErrorIs(t, err, domain.ErrBrandNotFound)
}

func TestOutboxRepo_EnrichAndInsert(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	outbox := NewOutboxRepo(idgen.NewSequence("EVT"))

	at := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	ev, err := outbox.EnrichEvent(&domain.BrandCreatedEvent{BrandID: "4", Name: "TECNO", CreatedAt: at})
	require.NoError(t, err)

	assert.Equal(t, "EVT0001", ev.EventID)
	assert.Equal(t, "brand.created", ev.EventType)
	assert.Equal(t, "4", ev.AggregateID)
	assert.Equal(t, "Brand Created", ev.Title)
	assert.Equal(t, "TECNO has been created.", ev.Message)
	assert.JSONEq(t, `{"brandId":"4","name":"TECNO","createdAt":"2024-06-01T12:00:00Z"}`, ev.Payload)
	assert.Equal(t, at, ev.CreatedAt)

	assert.Nil(t, outbox.InsertMut(nil))
	require.NoError(t, apply(t, db, outbox.InsertMut(ev)))

	events, err := NewReadModel(db).ListEvents(ctx, nil)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, *ev, events[0])
}

func TestReadModel_ListEvents(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	outbox := NewOutboxRepo(idgen.NewSequence("EVT"))

	var muts []*memdb.Mutation
	for _, de := range []domain.DomainEvent{
		&domain.BrandCreatedEvent{BrandID: "4", Name: "TECNO"},
		&domain.ProgramCreatedEvent{ProgramID: "PROG006", BrandID: "4"},
		&domain.ProgramUpdatedEvent{ProgramID: "PROG006", BrandID: "4"},
	} {
		ev, err := outbox.EnrichEvent(de)
		require.NoError(t, err)
		muts = append(muts, outbox.InsertMut(ev))
	}
	require.NoError(t, apply(t, db, muts...))

	rm := NewReadModel(db)

	all, err := rm.ListEvents(ctx, &contracts.EventFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "program.updated", all[0].EventType)
	assert.Equal(t, "brand.created", all[2].EventType)

	byAggregate, err := rm.ListEvents(ctx, &contracts.EventFilter{AggregateID: "PROG006"})
	require.NoError(t, err)
	assert.Len(t, byAggregate, 2)

	byType, err := rm.ListEvents(ctx, &contracts.EventFilter{EventType: "brand.created"})
	require.NoError(t, err)
	assert.Len(t, byType, 1)

	limited, err := rm.ListEvents(ctx, &contracts.EventFilter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "EVT0003", limited[0].EventID)
}

func TestReadModel_SnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	rm := NewReadModel(db)

	snap, err := rm.Snapshot(ctx)
	require.NoError(t, err)
	snap.Brands[0].Name = "MUTATED"
	snap.Programs = snap.Programs[:1]

	again, err := rm.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "INFINIX", again.Brands[0].Name)
	assert.Len(t, again.Programs, 5)
}
