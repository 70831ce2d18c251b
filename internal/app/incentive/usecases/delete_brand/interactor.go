package delete_brand

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/light-bringer/incentive-tracker/internal/app/incentive/contracts"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/domain"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/memdb"
	"github.com/light-bringer/incentive-tracker/internal/pkg/clock"
)

// Request identifies the brand to delete.
type Request struct {
	BrandID string
}

// Response holds the updated lists and the programs affected by the delete.
type Response struct {
	Brands   []domain.Brand
	Programs []domain.Program
	// Orphaned lists programs that still reference the deleted brand.
	Orphaned []string
	// Cascaded lists programs deleted along with the brand.
	Cascaded []string
}

// Interactor handles the delete brand use case.
type Interactor struct {
	repo        contracts.BrandRepository
	programRepo contracts.ProgramRepository
	outboxRepo  contracts.OutboxRepository
	readModel   contracts.ReadModel
	committer   *memdb.Committer
	clock       clock.Clock
	policy      domain.DeletePolicy
	logger      *zap.Logger
}

// NewInteractor creates a new delete brand interactor. An empty policy
// behaves as domain.DeleteOrphan.
func NewInteractor(
	repo contracts.BrandRepository,
	programRepo contracts.ProgramRepository,
	outboxRepo contracts.OutboxRepository,
	readModel contracts.ReadModel,
	committer *memdb.Committer,
	clock clock.Clock,
	policy domain.DeletePolicy,
	logger *zap.Logger,
) *Interactor {
	if policy == "" {
		policy = domain.DeleteOrphan
	}
	return &Interactor{
		repo:        repo,
		programRepo: programRepo,
		outboxRepo:  outboxRepo,
		readModel:   readModel,
		committer:   committer,
		clock:       clock,
		policy:      policy,
		logger:      logger,
	}
}

// Execute deletes a brand following the Golden Mutation Pattern. What happens
// to the brand's programs depends on the configured DeletePolicy.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Load aggregate and its references
	brand, err := i.repo.GetByID(ctx, req.BrandID)
	if err != nil {
		return nil, err
	}
	refs, err := i.programRepo.ListByBrand(ctx, brand.ID)
	if err != nil {
		return nil, err
	}
	refIDs := make([]string, 0, len(refs))
	for _, p := range refs {
		refIDs = append(refIDs, p.ID)
	}

	now := i.clock.Now()
	deleted := &domain.BrandDeletedEvent{BrandID: brand.ID, Name: brand.Name, DeletedAt: now}
	events := []domain.DomainEvent{deleted}

	// 2. Create commit plan according to the policy
	plan := memdb.NewPlan()
	resp := &Response{}
	switch i.policy {
	case domain.DeleteReject:
		// The guard runs inside the plan so a program added after the check
		// above still blocks the delete.
		plan.Add(i.programRepo.NoReferencesMut(brand.ID))
	case domain.DeleteCascade:
		plan.Add(i.programRepo.DeleteByBrandMut(brand.ID))
		for _, p := range refs {
			events = append(events, &domain.ProgramDeletedEvent{ProgramID: p.ID, BrandID: p.BrandID, DeletedAt: now})
		}
		deleted.CascadedPrograms = refIDs
		resp.Cascaded = refIDs
	case domain.DeleteOrphan:
		deleted.OrphanedPrograms = refIDs
		resp.Orphaned = refIDs
	default:
		return nil, fmt.Errorf("unknown delete policy %q", i.policy)
	}
	plan.Add(i.repo.DeleteMut(brand.ID))

	// 3. Add change-log events
	for _, de := range events {
		event, err := i.outboxRepo.EnrichEvent(de)
		if err != nil {
			return nil, err
		}
		plan.Add(i.outboxRepo.InsertMut(event))
	}

	// 4. Apply plan
	if err := i.committer.Apply(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	i.logger.Info("brand deleted",
		zap.String("brand_id", brand.ID),
		zap.String("policy", string(i.policy)),
		zap.Strings("cascaded_programs", resp.Cascaded),
	)
	if len(resp.Orphaned) > 0 {
		i.logger.Warn("programs left without a brand",
			zap.String("brand_id", brand.ID),
			zap.Strings("program_ids", resp.Orphaned),
		)
	}

	snap, err := i.readModel.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	resp.Brands = snap.Brands
	resp.Programs = snap.Programs
	return resp, nil
}
