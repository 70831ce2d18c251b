package update_brand

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/light-bringer/incentive-tracker/internal/app/incentive/contracts"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/domain"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/memdb"
	"github.com/light-bringer/incentive-tracker/internal/pkg/clock"
)

// Request carries the full edited brand. CreatedAt is ignored; the stored
// value is kept.
type Request struct {
	Brand domain.Brand
}

// Response holds the stored brand and the updated brand list.
type Response struct {
	Brand  domain.Brand
	Brands []domain.Brand
}

// Interactor handles the update brand use case.
type Interactor struct {
	repo       contracts.BrandRepository
	outboxRepo contracts.OutboxRepository
	readModel  contracts.ReadModel
	committer  *memdb.Committer
	clock      clock.Clock
	logger     *zap.Logger
}

// NewInteractor creates a new update brand interactor.
func NewInteractor(
	repo contracts.BrandRepository,
	outboxRepo contracts.OutboxRepository,
	readModel contracts.ReadModel,
	committer *memdb.Committer,
	clock clock.Clock,
	logger *zap.Logger,
) *Interactor {
	return &Interactor{
		repo:       repo,
		outboxRepo: outboxRepo,
		readModel:  readModel,
		committer:  committer,
		clock:      clock,
		logger:     logger,
	}
}

// Execute replaces a brand following the Golden Mutation Pattern.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Load aggregate
	existing, err := i.repo.GetByID(ctx, req.Brand.ID)
	if err != nil {
		return nil, err
	}

	// 2. Validate candidate
	brand := req.Brand.Normalize()
	if err := brand.Validate(); err != nil {
		return nil, err
	}
	brand.CreatedAt = existing.CreatedAt

	// 3. Create commit plan
	plan := memdb.NewPlan()
	plan.Add(i.repo.UpdateMut(brand))

	// 4. Add change-log event
	event, err := i.outboxRepo.EnrichEvent(&domain.BrandUpdatedEvent{
		BrandID:   brand.ID,
		Name:      brand.Name,
		UpdatedAt: i.clock.Now(),
	})
	if err != nil {
		return nil, err
	}
	plan.Add(i.outboxRepo.InsertMut(event))

	// 5. Apply plan
	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	i.logger.Info("brand updated", zap.String("brand_id", brand.ID), zap.String("name", brand.Name))

	brands, err := i.readModel.ListBrands(ctx)
	if err != nil {
		return nil, err
	}
	return &Response{Brand: brand, Brands: brands}, nil
}
