package contracts

import (
	"context"

	"github.com/light-bringer/incentive-tracker/internal/app/incentive/domain"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/memdb"
)

// BrandRepository defines the interface for brand persistence.
// Repositories return mutations, they don't apply them.
type BrandRepository interface {
	// InsertMut creates a mutation that appends a new brand.
	// The mutation fails with ErrBrandExists if the id is taken.
	InsertMut(brand domain.Brand) *memdb.Mutation

	// UpdateMut creates a mutation that replaces the brand with the same id.
	// The mutation fails with ErrBrandNotFound if it no longer exists.
	UpdateMut(brand domain.Brand) *memdb.Mutation

	// DeleteMut creates a mutation that removes the brand.
	DeleteMut(brandID string) *memdb.Mutation

	// GetByID retrieves a brand by id.
	GetByID(ctx context.Context, brandID string) (domain.Brand, error)
}
