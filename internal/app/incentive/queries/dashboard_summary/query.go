package dashboard_summary

import (
	"context"

	"github.com/light-bringer/incentive-tracker/internal/app/incentive/contracts"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/domain"
)

// Summary is the dashboard headline: per-brand reward totals plus portfolio
// counts.
type Summary struct {
	PerBrandTotals []domain.BrandTotal
	domain.Totals
}

// Query handles the dashboard summary query use case.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new dashboard summary query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute computes the summary over the current record set.
func (q *Query) Execute(ctx context.Context) (*Summary, error) {
	snap, err := q.readModel.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return &Summary{
		PerBrandTotals: domain.AggregateByBrand(snap.Brands, snap.Programs),
		Totals:         domain.PortfolioTotals(snap.Programs),
	}, nil
}
