package list_brands

import (
	"context"

	"github.com/light-bringer/incentive-tracker/internal/app/incentive/contracts"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/domain"
)

// Request contains the brand-name search text.
type Request struct {
	Search string
}

// Response holds the matching brands and the number of programs per brand id.
type Response struct {
	Brands        []domain.Brand
	ProgramCounts map[string]int
}

// Query handles the list brands query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list brands query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves the brands whose name contains the search text.
func (q *Query) Execute(ctx context.Context, req *Request) (*Response, error) {
	snap, err := q.readModel.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return &Response{
		Brands:        domain.FilterBrands(snap.Brands, req.Search),
		ProgramCounts: domain.CountByBrand(snap.Brands, snap.Programs),
	}, nil
}
