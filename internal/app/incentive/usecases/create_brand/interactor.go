package create_brand

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/light-bringer/incentive-tracker/internal/app/incentive/contracts"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/domain"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/memdb"
	"github.com/light-bringer/incentive-tracker/internal/pkg/clock"
	"github.com/light-bringer/incentive-tracker/internal/pkg/idgen"
)

// Request contains the data needed to create a brand.
type Request struct {
	Name string
}

// Response holds the created brand and the updated brand list.
type Response struct {
	Brand  domain.Brand
	Brands []domain.Brand
}

// Interactor handles the create brand use case.
type Interactor struct {
	repo       contracts.BrandRepository
	outboxRepo contracts.OutboxRepository
	readModel  contracts.ReadModel
	committer  *memdb.Committer
	clock      clock.Clock
	ids        idgen.Generator
	logger     *zap.Logger
}

// NewInteractor creates a new create brand interactor.
func NewInteractor(
	repo contracts.BrandRepository,
	outboxRepo contracts.OutboxRepository,
	readModel contracts.ReadModel,
	committer *memdb.Committer,
	clock clock.Clock,
	ids idgen.Generator,
	logger *zap.Logger,
) *Interactor {
	return &Interactor{
		repo:       repo,
		outboxRepo: outboxRepo,
		readModel:  readModel,
		committer:  committer,
		clock:      clock,
		ids:        ids,
		logger:     logger,
	}
}

// Execute creates a new brand following the Golden Mutation Pattern.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Validate candidate
	brand := domain.Brand{Name: req.Name}.Normalize()
	if err := brand.Validate(); err != nil {
		return nil, err
	}

	// 2. Assign identity and creation time
	brand.ID = i.ids.NewID()
	brand.CreatedAt = i.clock.Now()

	// 3. Create commit plan with the record mutation
	plan := memdb.NewPlan()
	plan.Add(i.repo.InsertMut(brand))

	// 4. Add change-log event
	event, err := i.outboxRepo.EnrichEvent(&domain.BrandCreatedEvent{
		BrandID:   brand.ID,
		Name:      brand.Name,
		CreatedAt: brand.CreatedAt,
	})
	if err != nil {
		return nil, err
	}
	plan.Add(i.outboxRepo.InsertMut(event))

	// 5. Apply plan
	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	i.logger.Info("brand created", zap.String("brand_id", brand.ID), zap.String("name", brand.Name))

	brands, err := i.readModel.ListBrands(ctx)
	if err != nil {
		return nil, err
	}
	return &Response{Brand: brand, Brands: brands}, nil
}
