package editflow

import (
	"context"

	"github.com/light-bringer/incentive-tracker/internal/app/incentive/contracts"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/domain"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/usecases/create_brand"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/usecases/create_program"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/usecases/update_brand"
	"github.com/light-bringer/incentive-tracker/internal/app/incentive/usecases/update_program"
)

var (
	_ Handler[domain.Brand]   = (*BrandHandler)(nil)
	_ Handler[domain.Program] = (*ProgramHandler)(nil)
)

// BrandHandler connects a brand flow to the brand usecases.
type BrandHandler struct {
	repo   contracts.BrandRepository
	create *create_brand.Interactor
	update *update_brand.Interactor
}

// NewBrandHandler creates a new BrandHandler.
func NewBrandHandler(
	repo contracts.BrandRepository,
	create *create_brand.Interactor,
	update *update_brand.Interactor,
) *BrandHandler {
	return &BrandHandler{repo: repo, create: create, update: update}
}

func (h *BrandHandler) Load(ctx context.Context, id string) (domain.Brand, error) {
	return h.repo.GetByID(ctx, id)
}

func (h *BrandHandler) Validate(candidate domain.Brand) error {
	return candidate.Validate()
}

func (h *BrandHandler) Create(ctx context.Context, candidate domain.Brand) (domain.Brand, error) {
	resp, err := h.create.Execute(ctx, &create_brand.Request{Name: candidate.Name})
	if err != nil {
		return domain.Brand{}, err
	}
	return resp.Brand, nil
}

func (h *BrandHandler) Update(ctx context.Context, id string, candidate domain.Brand) (domain.Brand, error) {
	candidate.ID = id
	resp, err := h.update.Execute(ctx, &update_brand.Request{Brand: candidate})
	if err != nil {
		return domain.Brand{}, err
	}
	return resp.Brand, nil
}

// ProgramHandler connects a program flow to the program usecases.
type ProgramHandler struct {
	repo   contracts.ProgramRepository
	create *create_program.Interactor
	update *update_program.Interactor
}

// NewProgramHandler creates a new ProgramHandler.
func NewProgramHandler(
	repo contracts.ProgramRepository,
	create *create_program.Interactor,
	update *update_program.Interactor,
) *ProgramHandler {
	return &ProgramHandler{repo: repo, create: create, update: update}
}

func (h *ProgramHandler) Load(ctx context.Context, id string) (domain.Program, error) {
	return h.repo.GetByID(ctx, id)
}

// Validate applies the new-record defaults first so an empty status is not
// reported as an error.
func (h *ProgramHandler) Validate(candidate domain.Program) error {
	return candidate.WithDefaults().Validate()
}

func (h *ProgramHandler) Create(ctx context.Context, candidate domain.Program) (domain.Program, error) {
	resp, err := h.create.Execute(ctx, &create_program.Request{Program: candidate})
	if err != nil {
		return domain.Program{}, err
	}
	return resp.Program, nil
}

func (h *ProgramHandler) Update(ctx context.Context, id string, candidate domain.Program) (domain.Program, error) {
	candidate.ID = id
	resp, err := h.update.Execute(ctx, &update_program.Request{Program: candidate})
	if err != nil {
		return domain.Program{}, err
	}
	return resp.Program, nil
}
