package domain

import (
	"github.com/light-bringer/incentive-tracker/internal/pkg/query"
)

// AllBrands is the brand filter value that disables brand filtering.
const AllBrands = "all"

// ProgramFilter narrows a program list. Zero values disable each filter.
type ProgramFilter struct {
	BrandID    string
	SearchText string
}

// Conditions returns the query conditions for the filter. Both filters
// combine with AND.
func (f ProgramFilter) Conditions() []query.Condition[Program] {
	var conds []query.Condition[Program]
	if f.BrandID != "" && f.BrandID != AllBrands {
		conds = append(conds, query.Eq("brand_id", func(p Program) string { return p.BrandID }, f.BrandID))
	}
	if f.SearchText != "" {
		conds = append(conds, query.ContainsFold("type_program", func(p Program) string { return string(p.Type) }, f.SearchText))
	}
	return conds
}

// FilterPrograms returns the programs matching f, in input order.
// An empty result is valid.
func FilterPrograms(programs []Program, f ProgramFilter) []Program {
	b := query.From(programs)
	for _, c := range f.Conditions() {
		b = b.Where(c)
	}
	return b.List()
}

// FilterBrands returns brands whose name contains search, ignoring case.
func FilterBrands(brands []Brand, search string) []Brand {
	return query.From(brands).
		Where(query.ContainsFold("name", func(b Brand) string { return b.Name }, search)).
		List()
}
