package create_brand

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/incentive-tracker/internal/app/incentive/domain"
	"github.com/light-bringer/incentive-tracker/internal/testutil"
)

func newInteractor(s *testutil.Store) *Interactor {
	return NewInteractor(s.Brands, s.Outbox, s.ReadModel, s.Committer, s.Clock, s.IDs, s.Logger)
}

func TestCreateBrand(t *testing.T) {
	s := testutil.NewSeededStore(t)

	resp, err := newInteractor(s).Execute(context.Background(), &Request{Name: "  TECNO "})
	require.NoError(t, err)

	assert.Equal(t, domain.Brand{ID: "NEW0001", Name: "TECNO", CreatedAt: testutil.Now}, resp.Brand)
	require.Len(t, resp.Brands, 4)
	assert.Equal(t, resp.Brand, resp.Brands[3])

	ev := s.AssertEvent(t, "brand.created", "NEW0001")
	assert.Equal(t, "TECNO has been created.", ev.Message)
}

func TestCreateBrand_ValidationFailure(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{"empty", "", "Brand name is required."},
		{"whitespace only", "   ", "Brand name is required."},
		{"too short", " X ", "Brand name must be at least 2 characters."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testutil.NewSeededStore(t)

			resp, err := newInteractor(s).Execute(context.Background(), &Request{Name: tt.input})
			require.Error(t, err)
			assert.Nil(t, resp)

			ve, ok := domain.AsValidationErrors(err)
			require.True(t, ok)
			msg, _ := ve.Field(domain.FieldBrandName)
			assert.Equal(t, tt.message, msg)

			assert.Len(t, s.Snapshot(t).Brands, 3)
			assert.Empty(t, s.Events(t))
		})
	}
}

func TestCreateBrand_SuccessiveCreatesGetDistinctIDs(t *testing.T) {
	s := testutil.NewSeededStore(t)
	uc := newInteractor(s)

	first, err := uc.Execute(context.Background(), &Request{Name: "TECNO"})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), &Request{Name: "TECNO"})
	require.NoError(t, err)

	assert.NotEqual(t, first.Brand.ID, second.Brand.ID)
	assert.Len(t, second.Brands, 5)
}
