package list_programs

import (
	"context"

	"github.com/light-bringer/incentive-tracker/internal/app/incentive/contracts"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/domain"
)

// Request contains the program filters. An empty BrandID or domain.AllBrands
// matches every brand.
type Request struct {
	BrandID string
	Search  string
}

// Query handles the list programs query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list programs query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves the matching programs with their brand names resolved.
func (q *Query) Execute(ctx context.Context, req *Request) ([]domain.ProgramWithBrand, error) {
	snap, err := q.readModel.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	filtered := domain.FilterPrograms(snap.Programs, domain.ProgramFilter{
		BrandID:    req.BrandID,
		SearchText: req.Search,
	})
	return domain.WithBrandName(filtered, snap.Brands), nil
}
