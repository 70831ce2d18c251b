package contracts

import (
	"context"

	"github.com/light-bringer/incentive-tracker/internal/app/incentive/domain"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/memdb"
)

// ProgramRepository defines the interface for program persistence.
type ProgramRepository interface {
	// InsertMut creates a mutation that appends a new program.
	InsertMut(program domain.Program) *memdb.Mutation

	// UpdateMut creates a mutation that replaces the program with the same id.
	UpdateMut(program domain.Program) *memdb.Mutation

	// DeleteMut creates a mutation that removes the program.
	DeleteMut(programID string) *memdb.Mutation

	// DeleteByBrandMut creates a mutation that removes every program of a brand.
	DeleteByBrandMut(brandID string) *memdb.Mutation

	// NoReferencesMut creates a guard mutation that fails with ErrBrandInUse
	// if any program references the brand at commit time.
	NoReferencesMut(brandID string) *memdb.Mutation

	// GetByID retrieves a program by id.
	GetByID(ctx context.Context, programID string) (domain.Program, error)

	// ListByBrand returns the programs referencing a brand, in store order.
	ListByBrand(ctx context.Context, brandID string) ([]domain.Program, error)
}
