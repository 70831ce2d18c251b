package delete_brand

import "github.com/light-bringer/incentive-tracker/internal/app/incentive/memdb"

func planOf(muts ...*memdb.Mutation) *memdb.Plan {
	plan := memdb.NewPlan()
	plan.AddMultiple(muts)
	return plan
}
