package create_program

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/light-bringer/incentive-tracker/internal/app/incentive/contracts"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/domain"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/memdb"
	"github.com/light-bringer/incentive-tracker/internal/pkg/clock"
	"github.com/light-bringer/incentive-tracker/internal/pkg/idgen"
)

// Request carries the candidate program. Its ID is ignored; a new one is
// assigned. Empty statuses default to Pending and Unpaid.
type Request struct {
	Program domain.Program
}

// Response holds the created program and the updated program list.
type Response struct {
	Program  domain.Program
	Programs []domain.Program
}

// Interactor handles the create program use case.
type Interactor struct {
	repo       contracts.ProgramRepository
	brandRepo  contracts.BrandRepository
	outboxRepo contracts.OutboxRepository
	readModel  contracts.ReadModel
	committer  *memdb.Committer
	clock      clock.Clock
	ids        idgen.Generator
	logger     *zap.Logger
}

// NewInteractor creates a new create program interactor.
func NewInteractor(
	repo contracts.ProgramRepository,
	brandRepo contracts.BrandRepository,
	outboxRepo contracts.OutboxRepository,
	readModel contracts.ReadModel,
	committer *memdb.Committer,
	clock clock.Clock,
	ids idgen.Generator,
	logger *zap.Logger,
) *Interactor {
	return &Interactor{
		repo:       repo,
		brandRepo:  brandRepo,
		outboxRepo: outboxRepo,
		readModel:  readModel,
		committer:  committer,
		clock:      clock,
		ids:        ids,
		logger:     logger,
	}
}

// Execute creates a new program following the Golden Mutation Pattern.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Validate candidate
	program := req.Program.WithDefaults()
	if err := program.Validate(); err != nil {
		return nil, err
	}

	// Brand references are not enforced.
	if _, err := i.brandRepo.GetByID(ctx, program.BrandID); errors.Is(err, domain.ErrBrandNotFound) {
		i.logger.Warn("program references unknown brand", zap.String("brand_id", program.BrandID))
	} else if err != nil {
		return nil, err
	}

	// 2. Assign identity
	program.ID = i.ids.NewID()

	// 3. Create commit plan
	plan := memdb.NewPlan()
	plan.Add(i.repo.InsertMut(program))

	// 4. Add change-log event
	event, err := i.outboxRepo.EnrichEvent(&domain.ProgramCreatedEvent{
		ProgramID: program.ID,
		BrandID:   program.BrandID,
		Type:      string(program.Type),
		CreatedAt: i.clock.Now(),
	})
	if err != nil {
		return nil, err
	}
	plan.Add(i.outboxRepo.InsertMut(event))

	// 5. Apply plan
	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	i.logger.Info("program created",
		zap.String("program_id", program.ID),
		zap.String("brand_id", program.BrandID),
		zap.String("type", string(program.Type)),
	)

	programs, err := i.readModel.ListPrograms(ctx)
	if err != nil {
		return nil, err
	}
	return &Response{Program: program, Programs: programs}, nil
}
