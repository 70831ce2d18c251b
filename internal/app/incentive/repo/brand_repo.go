package repo

import (
	"context"
	"fmt"

	"github.com/light-bringer/incentive-tracker/internal/app/incentive/contracts"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/domain"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/memdb"
)

// BrandRepo implements BrandRepository over the in-memory tables.
type BrandRepo struct {
	db *memdb.DB
}

// NewBrandRepo creates a new BrandRepo.
func NewBrandRepo(db *memdb.DB) contracts.BrandRepository {
	return &BrandRepo{db: db}
}

// InsertMut creates a mutation for inserting a new brand.
func (r *BrandRepo) InsertMut(brand domain.Brand) *memdb.Mutation {
	return &memdb.Mutation{
		Name: "brand.insert",
		Apply: func(t *memdb.Tables) error {
			if brand.ID == "" {
				return domain.ErrMissingID
			}
			if t.FindBrand(brand.ID) >= 0 {
				return fmt.Errorf("%w: %s", domain.ErrBrandExists, brand.ID)
			}
			t.Brands = append(t.Brands, brand)
			return nil
		},
	}
}

// UpdateMut creates a mutation that replaces a brand in place, keeping its
// position and creation time.
func (r *BrandRepo) UpdateMut(brand domain.Brand) *memdb.Mutation {
	return &memdb.Mutation{
		Name: "brand.update",
		Apply: func(t *memdb.Tables) error {
			i := t.FindBrand(brand.ID)
			if i < 0 {
				return fmt.Errorf("%w: %s", domain.ErrBrandNotFound, brand.ID)
			}
			brand.CreatedAt = t.Brands[i].CreatedAt
			t.Brands[i] = brand
			return nil
		},
	}
}

// DeleteMut creates a mutation for deleting a brand. Programs are untouched.
func (r *BrandRepo) DeleteMut(brandID string) *memdb.Mutation {
	return &memdb.Mutation{
		Name: "brand.delete",
		Apply: func(t *memdb.Tables) error {
			i := t.FindBrand(brandID)
			if i < 0 {
				return fmt.Errorf("%w: %s", domain.ErrBrandNotFound, brandID)
			}
			t.Brands = append(t.Brands[:i], t.Brands[i+1:]...)
			return nil
		},
	}
}

// GetByID retrieves a brand by id.
func (r *BrandRepo) GetByID(ctx context.Context, brandID string) (domain.Brand, error) {
	snap, err := r.db.Snapshot(ctx)
	if err != nil {
		return domain.Brand{}, fmt.Errorf("failed to read brands: %w", err)
	}
	i := snap.FindBrand(brandID)
	if i < 0 {
		return domain.Brand{}, fmt.Errorf("%w: %s", domain.ErrBrandNotFound, brandID)
	}
	return snap.Brands[i], nil
}
