package program_detail

import (
	"context"
	"fmt"

	"github.com/light-bringer/incentive-tracker/internal/app/incentive/contracts"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/domain"
	"github.com/light-bringer/incentive-tracker/internal/pkg/clock"
)

// Request contains the program ID to retrieve.
type Request struct {
	ProgramID string
}

// Detail is a program with its brand name and derived metrics.
type Detail struct {
	domain.ProgramWithBrand
	Metrics domain.ProgramMetrics
}

// Query handles the program detail query use case.
type Query struct {
	readModel contracts.ReadModel
	clock     clock.Clock
}

// NewQuery creates a new program detail query.
func NewQuery(readModel contracts.ReadModel, clock clock.Clock) *Query {
	return &Query{
		readModel: readModel,
		clock:     clock,
	}
}

// Execute retrieves a single program.
func (q *Query) Execute(ctx context.Context, req *Request) (*Detail, error) {
	snap, err := q.readModel.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range snap.Programs {
		if p.ID != req.ProgramID {
			continue
		}
		joined := domain.WithBrandName([]domain.Program{p}, snap.Brands)[0]
		return &Detail{ProgramWithBrand: joined, Metrics: p.Metrics(q.clock.Now())}, nil
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrProgramNotFound, req.ProgramID)
}
