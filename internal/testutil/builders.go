package testutil

import (
	"time"

	"github.com/light-bringer/incentive-tracker/internal/app/incentive/domain"
	"github.com/light-bringer/incentive-tracker/internal/pkg/clock"
)

// ProgramBuilder helps create programs for tests with a fluent interface
type ProgramBuilder struct {
	p domain.Program
}

// NewProgramBuilder creates a new builder with a valid default program
func NewProgramBuilder() *ProgramBuilder {
	return &ProgramBuilder{p: domain.Program{
		ID:            "P1",
		BrandID:       "1",
		Type:          domain.TypeSellOut,
		Description:   "Quarterly sell out campaign.",
		PeriodStart:   clock.Date(2024, time.January, 1),
		PeriodEnd:     clock.Date(2024, time.March, 31),
		Target:        50000,
		Achievement:   45000,
		Reward:        0.5,
		Status:        domain.StatusActive,
		PaymentStatus: domain.PaymentUnpaid,
	}}
}

// WithID sets the program id
func (b *ProgramBuilder) WithID(id string) *ProgramBuilder {
	b.p.ID = id
	return b
}

// WithBrand sets the brand reference
func (b *ProgramBuilder) WithBrand(brandID string) *ProgramBuilder {
	b.p.BrandID = brandID
	return b
}

// WithType sets the program type
func (b *ProgramBuilder) WithType(t domain.ProgramType) *ProgramBuilder {
	b.p.Type = t
	return b
}

// WithDescription sets the description
func (b *ProgramBuilder) WithDescription(d string) *ProgramBuilder {
	b.p.Description = d
	return b
}

// WithPeriod sets the program period
func (b *ProgramBuilder) WithPeriod(start, end time.Time) *ProgramBuilder {
	b.p.PeriodStart, b.p.PeriodEnd = start, end
	return b
}

// WithFigures sets target, achievement and per-unit reward
func (b *ProgramBuilder) WithFigures(target, achievement, reward float64) *ProgramBuilder {
	b.p.Target, b.p.Achievement, b.p.Reward = target, achievement, reward
	return b
}

// WithStatus sets the program status
func (b *ProgramBuilder) WithStatus(s domain.ProgramStatus) *ProgramBuilder {
	b.p.Status = s
	return b
}

// WithPayment sets the payment status
func (b *ProgramBuilder) WithPayment(s domain.PaymentStatus) *ProgramBuilder {
	b.p.PaymentStatus = s
	return b
}

// Build returns the program
func (b *ProgramBuilder) Build() domain.Program {
	return b.p
}
