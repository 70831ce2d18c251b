package repo

import (
	"context"
	"fmt"

	"github.com/light-bringer/incentive-tracker/internal/app/incentive/contracts"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/domain"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/memdb"
	"github.com/light-bringer/incentive-tracker/internal/pkg/query"
)

// ProgramRepo implements ProgramRepository over the in-memory tables.
type ProgramRepo struct {
	db *memdb.DB
}

// NewProgramRepo creates a new ProgramRepo.
func NewProgramRepo(db *memdb.DB) contracts.ProgramRepository {
	return &ProgramRepo{db: db}
}

func byBrand(brandID string) query.Condition[domain.Program] {
	return query.Eq("brand_id", func(p domain.Program) string { return p.BrandID }, brandID)
}

// InsertMut creates a mutation for inserting a new program.
func (r *ProgramRepo) InsertMut(program domain.Program) *memdb.Mutation {
	return &memdb.Mutation{
		Name: "program.insert",
		Apply: func(t *memdb.Tables) error {
			if program.ID == "" {
				return domain.ErrMissingID
			}
			if t.FindProgram(program.ID) >= 0 {
				return fmt.Errorf("%w: %s", domain.ErrProgramExists, program.ID)
			}
			t.Programs = append(t.Programs, program)
			return nil
		},
	}
}

// UpdateMut creates a mutation that replaces a program in place.
func (r *ProgramRepo) UpdateMut(program domain.Program) *memdb.Mutation {
	return &memdb.Mutation{
		Name: "program.update",
		Apply: func(t *memdb.Tables) error {
			i := t.FindProgram(program.ID)
			if i < 0 {
				return fmt.Errorf("%w: %s", domain.ErrProgramNotFound, program.ID)
			}
			t.Programs[i] = program
			return nil
		},
	}
}

// DeleteMut creates a mutation for deleting a program.
func (r *ProgramRepo) DeleteMut(programID string) *memdb.Mutation {
	return &memdb.Mutation{
		Name: "program.delete",
		Apply: func(t *memdb.Tables) error {
			i := t.FindProgram(programID)
			if i < 0 {
				return fmt.Errorf("%w: %s", domain.ErrProgramNotFound, programID)
			}
			t.Programs = append(t.Programs[:i], t.Programs[i+1:]...)
			return nil
		},
	}
}

// DeleteByBrandMut creates a mutation that deletes every program of a brand.
func (r *ProgramRepo) DeleteByBrandMut(brandID string) *memdb.Mutation {
	keep := query.Func("brand_id != "+brandID, func(p domain.Program) bool { return p.BrandID != brandID })
	return &memdb.Mutation{
		Name: "program.delete_by_brand",
		Apply: func(t *memdb.Tables) error {
			t.Programs = query.From(t.Programs).Where(keep).List()
			return nil
		},
	}
}

// NoReferencesMut creates a guard that aborts the plan while any program
// references the brand.
func (r *ProgramRepo) NoReferencesMut(brandID string) *memdb.Mutation {
	return &memdb.Mutation{
		Name: "program.no_references",
		Apply: func(t *memdb.Tables) error {
			if n := query.From(t.Programs).Where(byBrand(brandID)).Count(); n > 0 {
				return fmt.Errorf("%w: %s has %d program(s)", domain.ErrBrandInUse, brandID, n)
			}
			return nil
		},
	}
}

// GetByID retrieves a program by id.
func (r *ProgramRepo) GetByID(ctx context.Context, programID string) (domain.Program, error) {
	snap, err := r.db.Snapshot(ctx)
	if err != nil {
		return domain.Program{}, fmt.Errorf("failed to read programs: %w", err)
	}
	i := snap.FindProgram(programID)
	if i < 0 {
		return domain.Program{}, fmt.Errorf("%w: %s", domain.ErrProgramNotFound, programID)
	}
	return snap.Programs[i], nil
}

// ListByBrand returns the programs referencing brandID.
func (r *ProgramRepo) ListByBrand(ctx context.Context, brandID string) ([]domain.Program, error) {
	snap, err := r.db.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read programs: %w", err)
	}
	return query.From(snap.Programs).Where(byBrand(brandID)).List(), nil
}
