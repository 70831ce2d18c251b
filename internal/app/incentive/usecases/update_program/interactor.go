package update_program

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/light-bringer/incentive-tracker/internal/app/incentive/contracts"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/domain"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/memdb"
	"github.com/light-bringer/incentive-tracker/internal/pkg/clock"
)

// Request carries the full edited program; it replaces the stored record.
type Request struct {
	Program domain.Program
}

// Response holds the stored program and the updated program list.
type Response struct {
	Program  domain.Program
	Programs []domain.Program
}

// Interactor handles the update program use case.
type Interactor struct {
	repo       contracts.ProgramRepository
	brandRepo  contracts.BrandRepository
	outboxRepo contracts.OutboxRepository
	readModel  contracts.ReadModel
	committer  *memdb.Committer
	clock      clock.Clock
	logger     *zap.Logger
}

// NewInteractor creates a new update program interactor.
func NewInteractor(
	repo contracts.ProgramRepository,
	brandRepo contracts.BrandRepository,
	outboxRepo contracts.OutboxRepository,
	readModel contracts.ReadModel,
	committer *memdb.Committer,
	clock clock.Clock,
	logger *zap.Logger,
) *Interactor {
	return &Interactor{
		repo:       repo,
		brandRepo:  brandRepo,
		outboxRepo: outboxRepo,
		readModel:  readModel,
		committer:  committer,
		clock:      clock,
		logger:     logger,
	}
}

// Execute replaces a program following the Golden Mutation Pattern.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Load aggregate
	if _, err := i.repo.GetByID(ctx, req.Program.ID); err != nil {
		return nil, err
	}

	// 2. Validate candidate
	program := req.Program.WithDefaults()
	if err := program.Validate(); err != nil {
		return nil, err
	}

	if _, err := i.brandRepo.GetByID(ctx, program.BrandID); errors.Is(err, domain.ErrBrandNotFound) {
		i.logger.Warn("program references unknown brand",
			zap.String("program_id", program.ID),
			zap.String("brand_id", program.BrandID),
		)
	} else if err != nil {
		return nil, err
	}

	// 3. Create commit plan
	plan := memdb.NewPlan()
	plan.Add(i.repo.UpdateMut(program))

	// 4. Add change-log event
	event, err := i.outboxRepo.EnrichEvent(&domain.ProgramUpdatedEvent{
		ProgramID: program.ID,
		BrandID:   program.BrandID,
		Status:    string(program.Status),
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
	i.logger.Info("program updated",
		zap.String("program_id", program.ID),
		zap.String("status", string(program.Status)),
	)

	programs, err := i.readModel.ListPrograms(ctx)
	if err != nil {
		return nil, err
	}
	return &Response{Program: program, Programs: programs}, nil
}
