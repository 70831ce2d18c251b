package program_board

import (
	"context"

	"github.com/light-bringer/incentive-tracker/internal/app/incentive/contracts"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/domain"
	"github.com/light-bringer/incentive-tracker/internal/pkg/clock"
)

// Request contains the program filters applied before grouping.
type Request struct {
	BrandID string
	Search  string
}

// Card is one program on the board.
type Card struct {
	domain.ProgramWithBrand
	Metrics domain.ProgramMetrics
}

// Column holds the cards of one status, in record order.
type Column struct {
	Status domain.ProgramStatus
	Cards  []Card
}

// Query handles the program board query use case.
type Query struct {
	readModel contracts.ReadModel
	clock     clock.Clock
}

// NewQuery creates a new program board query.
func NewQuery(readModel contracts.ReadModel, clock clock.Clock) *Query {
	return &Query{
		readModel: readModel,
		clock:     clock,
	}
}

// Execute returns one column per status in Pending, Active, Ended order.
// Columns are always present, possibly empty.
func (q *Query) Execute(ctx context.Context, req *Request) ([]Column, error) {
	snap, err := q.readModel.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	filtered := domain.FilterPrograms(snap.Programs, domain.ProgramFilter{
		BrandID:    req.BrandID,
		SearchText: req.Search,
	})

	groups := domain.GroupByStatus(filtered).Ordered()
	columns := make([]Column, 0, len(groups))
	for _, g := range groups {
		cards := make([]Card, 0, len(g.Programs))
		for _, p := range domain.WithBrandName(g.Programs, snap.Brands) {
			cards = append(cards, Card{ProgramWithBrand: p, Metrics: p.Metrics(now)})
		}
		columns = append(columns, Column{Status: g.Status, Cards: cards})
	}
	return columns, nil
}
