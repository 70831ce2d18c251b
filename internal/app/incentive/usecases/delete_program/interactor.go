package delete_program

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/light-bringer/incentive-tracker/internal/app/incentive/contracts"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/domain"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/memdb"
	"github.com/light-bringer/incentive-tracker/internal/pkg/clock"
)

// Request identifies the program to delete.
type Request struct {
	ProgramID string
}

// Interactor handles the delete program use case.
type Interactor struct {
	repo       contracts.ProgramRepository
	outboxRepo contracts.OutboxRepository
	readModel  contracts.ReadModel
	committer  *memdb.Committer
	clock      clock.Clock
	logger     *zap.Logger
}

// NewInteractor creates a new delete program interactor.
func NewInteractor(
	repo contracts.ProgramRepository,
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

// Execute deletes a program and returns the remaining programs.
func (i *Interactor) Execute(ctx context.Context, req *Request) ([]domain.Program, error) {
	program, err := i.repo.GetByID(ctx, req.ProgramID)
	if err != nil {
		return nil, err
	}

	plan := memdb.NewPlan()
	plan.Add(i.repo.DeleteMut(program.ID))

	event, err := i.outboxRepo.EnrichEvent(&domain.ProgramDeletedEvent{
		ProgramID: program.ID,
		BrandID:   program.BrandID,
		DeletedAt: i.clock.Now(),
	})
	if err != nil {
		return nil, err
	}
	plan.Add(i.outboxRepo.InsertMut(event))

	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	i.logger.Info("program deleted", zap.String("program_id", program.ID))

	return i.readModel.ListPrograms(ctx)
}
