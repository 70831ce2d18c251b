package delete_brand

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/light-bringer/incentive-tracker/internal/app/incentive/domain"
	"github.com/light-bringer/incentive-tracker/internal/testutil"
)

func newInteractor(s *testutil.Store, policy domain.DeletePolicy) *Interactor {
	return NewInteractor(s.Brands, s.Programs, s.Outbox, s.ReadModel, s.Committer, s.Clock, policy, s.Logger)
}

func TestDeleteBrand_Orphan(t *testing.T) {
	s := testutil.NewSeededStore(t)

	resp, err := newInteractor(s, domain.DeleteOrphan).Execute(context.Background(), &Request{BrandID: "1"})
	require.NoError(t, err)

	assert.Len(t, resp.Brands, 2)
	assert.Len(t, resp.Programs, 5)
	assert.Equal(t, []string{"PROG001", "PROG003"}, resp.Orphaned)
	assert.Empty(t, resp.Cascaded)

	// orphaned programs resolve to the sentinel brand name
	joined := domain.WithBrandName(resp.Programs, resp.Brands)
	assert.Equal(t, domain.UnknownBrandName, joined[0].BrandName)
	assert.Equal(t, "IPHONE", joined[1].BrandName)

	ev := s.AssertEvent(t, "brand.deleted", "1")
	assert.Equal(t, "INFINIX has been deleted; 2 program(s) no longer have a brand.", ev.Message)

	warnings := s.Logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warnings, 1)
	assert.Equal(t, "programs left without a brand", warnings[0].Message)
}

func TestDeleteBrand_DefaultPolicyIsOrphan(t *testing.T) {
	s := testutil.NewSeededStore(t)

	resp, err := newInteractor(s, "").Execute(context.Background(), &Request{BrandID: "1"})
	require.NoError(t, err)
	assert.Len(t, resp.Orphaned, 2)
}

func TestDeleteBrand_Reject(t *testing.T) {
	t.Run("brand in use", func(t *testing.T) {
		s := testutil.NewSeededStore(t)

		_, err := newInteractor(s, domain.DeleteReject).Execute(context.Background(), &Request{BrandID: "2"})
		assert.ErrorIs(t, err, domain.ErrBrandInUse)

		assert.Len(t, s.Snapshot(t).Brands, 3)
		assert.Empty(t, s.Events(t))
	})

	t.Run("brand without programs", func(t *testing.T) {
		s := testutil.NewSeededStore(t)
		delProgram := func(id string) {
			require.NoError(t, s.Committer.Apply(context.Background(), planOf(s.Programs.DeleteMut(id))))
		}
		delProgram("PROG004")

		resp, err := newInteractor(s, domain.DeleteReject).Execute(context.Background(), &Request{BrandID: "3"})
		require.NoError(t, err)
		assert.Len(t, resp.Brands, 2)
		assert.Len(t, resp.Programs, 4)
	})
}

func TestDeleteBrand_Cascade(t *testing.T) {
	s := testutil.NewSeededStore(t)

	resp, err := newInteractor(s, domain.DeleteCascade).Execute(context.Background(), &Request{BrandID: "1"})
	require.NoError(t, err)

	assert.Len(t, resp.Brands, 2)
	require.Len(t, resp.Programs, 3)
	for _, p := range resp.Programs {
		assert.NotEqual(t, "1", p.BrandID)
	}
	assert.Equal(t, []string{"PROG001", "PROG003"}, resp.Cascaded)

	events := s.Events(t)
	require.Len(t, events, 3)
	assert.Equal(t, "program.deleted", events[0].EventType)
	assert.Equal(t, "PROG003", events[0].AggregateID)
	assert.Equal(t, "program.deleted", events[1].EventType)
	assert.Equal(t, "brand.deleted", events[2].EventType)
	assert.Equal(t, "INFINIX and 2 program(s) have been deleted.", events[2].Message)
}

func TestDeleteBrand_NotFound(t *testing.T) {
	s := testutil.NewSeededStore(t)

	_, err := newInteractor(s, domain.DeleteOrphan).Execute(context.Background(), &Request{BrandID: "99"})
	assert.ErrorIs(t, err, domain.ErrBrandNotFound)
}
