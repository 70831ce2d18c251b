package domain

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Field names reported in program validation errors.
const (
	FieldBrandID       = "brandId"
	FieldTypeProgram   = "typeProgram"
	FieldDescription   = "description"
	FieldPeriodStart   = "periodStart"
	FieldPeriodEnd     = "periodEnd"
	FieldTarget        = "target"
	FieldAchievement   = "achievement"
	FieldReward        = "reward"
	FieldProgramStatus = "programStatus"
	FieldPaymentStatus = "paymentStatus"
)

// MinDescriptionLength is the shortest accepted program description.
const MinDescriptionLength = 10

// ProgramType is the kind of incentive a program pays out.
type ProgramType string

const (
	TypeSellIn   ProgramType = "Sell In"
	TypeSellOut  ProgramType = "Sell Out"
	TypeCashback ProgramType = "Cashback"
)

// ProgramTypes lists every program type in form order.
var ProgramTypes = []ProgramType{TypeSellIn, TypeSellOut, TypeCashback}

// ProgramStatus represents the lifecycle stage of a program.
type ProgramStatus string

const (
	StatusActive  ProgramStatus = "Active"
	StatusPending ProgramStatus = "Pending"
	StatusEnded   ProgramStatus = "Ended"
)

// BoardStatuses lists program statuses in board column order.
var BoardStatuses = []ProgramStatus{StatusPending, StatusActive, StatusEnded}

// PaymentStatus represents how much of the earned reward has been paid.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentUnpaid  PaymentStatus = "Unpaid"
	PaymentPartial PaymentStatus = "Partial"
)

// PaymentStatuses lists payment statuses in form order.
var PaymentStatuses = []PaymentStatus{PaymentPaid, PaymentUnpaid, PaymentPartial}

// Program is a time-bounded incentive campaign tied to one brand.
// Reward is a per-unit multiplier applied to Achievement.
type Program struct {
	ID            string        `json:"id" yaml:"id"`
	BrandID       string        `json:"brandId" yaml:"brandId"`
	Type          ProgramType   `json:"typeProgram" yaml:"typeProgram"`
	Description   string        `json:"description" yaml:"description"`
	PeriodStart   time.Time     `json:"periodStart" yaml:"periodStart"`
	PeriodEnd     time.Time     `json:"periodEnd" yaml:"periodEnd"`
	Target        float64       `json:"target" yaml:"target"`
	Achievement   float64       `json:"achievement" yaml:"achievement"`
	Reward        float64       `json:"reward" yaml:"reward"`
	Status        ProgramStatus `json:"programStatus" yaml:"programStatus"`
	PaymentStatus PaymentStatus `json:"paymentStatus" yaml:"paymentStatus"`
}

// ProgramWithBrand is a program annotated with its brand's display name.
// It is recomputed on every read and never stored.
type ProgramWithBrand struct {
	Program
	BrandName string `json:"brandName" yaml:"brandName"`
}

// IsActive returns true if the program is running.
func (p Program) IsActive() bool {
	return p.Status == StatusActive
}

// WithDefaults fills the status fields a new program starts with when the
// caller leaves them empty.
func (p Program) WithDefaults() Program {
	if p.Status == "" {
		p.Status = StatusPending
	}
	if p.PaymentStatus == "" {
		p.PaymentStatus = PaymentUnpaid
	}
	return p
}

// Validate checks every field constraint of a candidate program and reports
// all failures at once.
func (p Program) Validate() error {
	var ve ValidationErrors

	if strings.TrimSpace(p.BrandID) == "" {
		ve.add(FieldBrandID, "Brand is required.")
	}
	if !p.Type.Valid() {
		ve.add(FieldTypeProgram, fmt.Sprintf("Program type must be one of %s.", joinValues(ProgramTypes)))
	}
	if len([]rune(strings.TrimSpace(p.Description))) < MinDescriptionLength {
		ve.add(FieldDescription, "Description must be at least 10 characters.")
	}

	if p.PeriodStart.IsZero() {
		ve.add(FieldPeriodStart, "Period start is required.")
	}
	switch {
	case p.PeriodEnd.IsZero():
		ve.add(FieldPeriodEnd, "Period end is required.")
	case !p.PeriodStart.IsZero() && p.PeriodEnd.Before(p.PeriodStart):
		ve.add(FieldPeriodEnd, "End date cannot be before start date.")
	}

	checkAmount(&ve, FieldTarget, "Target", p.Target)
	checkAmount(&ve, FieldAchievement, "Achievement", p.Achievement)
	checkAmount(&ve, FieldReward, "Reward", p.Reward)

	if !p.Status.Valid() {
		ve.add(FieldProgramStatus, fmt.Sprintf("Program status must be one of %s.", joinValues(BoardStatuses)))
	}
	if !p.PaymentStatus.Valid() {
		ve.add(FieldPaymentStatus, fmt.Sprintf("Payment status must be one of %s.", joinValues(PaymentStatuses)))
	}

	return ve.orNil()
}

func checkAmount(ve *ValidationErrors, field, label string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		ve.add(field, label+" must be a number.")
		return
	}
	if v < 0 {
		ve.add(field, label+" must be a positive number.")
	}
}

func joinValues[S ~string](values []S) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, string(v))
	}
	return strings.Join(parts, ", ")
}

// Valid reports whether t is a known program type.
func (t ProgramType) Valid() bool {
	return t == TypeSellIn || t == TypeSellOut || t == TypeCashback
}

// Valid reports whether s is a known program status.
func (s ProgramStatus) Valid() bool {
	return s == StatusActive || s == StatusPending || s == StatusEnded
}

// Valid reports whether s is a known payment status.
func (s PaymentStatus) Valid() bool {
	return s == PaymentPaid || s == PaymentUnpaid || s == PaymentPartial
}

// canonical folds a value for lenient matching: "Sell In", "sell_in",
// "SELL-IN" and "SellIn" all fold to "sellin".
func canonical(s string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(s) {
		switch r {
		case ' ', '_', '-':
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func parseEnum[S ~string](raw string, values []S) (S, bool) {
	key := canonical(raw)
	for _, v := range values {
		if canonical(string(v)) == key {
			return v, true
		}
	}
	return "", false
}

// ParseProgramType accepts the display form ("Sell In") or a compact form
// ("SellIn", "sell_in") in any case.
func ParseProgramType(raw string) (ProgramType, error) {
	if v, ok := parseEnum(raw, ProgramTypes); ok {
		return v, nil
	}
	return "", fmt.Errorf("unknown program type %q", raw)
}

// ParseProgramStatus accepts a program status in any case.
func ParseProgramStatus(raw string) (ProgramStatus, error) {
	if v, ok := parseEnum(raw, BoardStatuses); ok {
		return v, nil
	}
	return "", fmt.Errorf("unknown program status %q", raw)
}

// ParsePaymentStatus accepts a payment status in any case.
func ParsePaymentStatus(raw string) (PaymentStatus, error) {
	if v, ok := parseEnum(raw, PaymentStatuses); ok {
		return v, nil
	}
	return "", fmt.Errorf("unknown payment status %q", raw)
}

// UnmarshalText canonicalizes known spellings and keeps anything else
// verbatim so Validate can report it as a field error.
func (t *ProgramType) UnmarshalText(text []byte) error {
	if v, err := ParseProgramType(string(text)); err == nil {
		*t = v
		return nil
	}
	*t = ProgramType(text)
	return nil
}

// UnmarshalText canonicalizes known spellings and keeps anything else verbatim.
func (s *ProgramStatus) UnmarshalText(text []byte) error {
	if v, err := ParseProgramStatus(string(text)); err == nil {
		*s = v
		return nil
	}
	*s = ProgramStatus(text)
	return nil
}

// UnmarshalText canonicalizes known spellings and keeps anything else verbatim.
func (s *PaymentStatus) UnmarshalText(text []byte) error {
	if v, err := ParsePaymentStatus(string(text)); err == nil {
		*s = v
		return nil
	}
	*s = PaymentStatus(text)
	return nil
}
