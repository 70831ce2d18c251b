package domain

// BrandTotal is the reward earned across all programs of one brand.
type BrandTotal struct {
	BrandID     string  `json:"brandId"`
	BrandName   string  `json:"brandName"`
	TotalReward float64 `json:"totalReward"`
}

// Totals is an all-time snapshot over the current program set.
type Totals struct {
	TotalRewards   float64 `json:"totalRewards"`
	TotalPrograms  int     `json:"totalPrograms"`
	ActivePrograms int     `json:"activePrograms"`
}

// AggregateByBrand sums the estimated reward of each brand's programs.
// Every brand appears exactly once, in brand-list order, including brands
// without programs. Programs referencing unknown brands are not counted.
func AggregateByBrand(brands []Brand, programs []Program) []BrandTotal {
	rewards := make(map[string]float64, len(brands))
	for _, p := range programs {
		rewards[p.BrandID] += p.EstimatedReward()
	}

	out := make([]BrandTotal, 0, len(brands))
	for _, b := range brands {
		out = append(out, BrandTotal{
			BrandID:     b.ID,
			BrandName:   b.Name,
			TotalReward: rewards[b.ID],
		})
	}
	return out
}

// PortfolioTotals computes reward and count totals over all programs.
func PortfolioTotals(programs []Program) Totals {
	var t Totals
	for _, p := range programs {
		t.TotalRewards += p.EstimatedReward()
		if p.IsActive() {
			t.ActivePrograms++
		}
	}
	t.TotalPrograms = len(programs)
	return t
}

// CountByBrand returns the number of programs referencing each brand id.
// Every brand is present, possibly with a zero count.
func CountByBrand(brands []Brand, programs []Program) map[string]int {
	counts := make(map[string]int, len(brands))
	for _, b := range brands {
		counts[b.ID] = 0
	}
	for _, p := range programs {
		if _, ok := counts[p.BrandID]; ok {
			counts[p.BrandID]++
		}
	}
	return counts
}

// StatusGroups partitions programs by status. Pending, Active and Ended are
// always present as keys.
type StatusGroups map[ProgramStatus][]Program

// StatusGroup is one board column.
type StatusGroup struct {
	Status   ProgramStatus
	Programs []Program
}

// GroupByStatus partitions programs by status, preserving input order within
// each group. Programs with a status outside BoardStatuses are left out;
// validated records never carry one.
func GroupByStatus(programs []Program) StatusGroups {
	groups := make(StatusGroups, len(BoardStatuses))
	for _, s := range BoardStatuses {
		groups[s] = make([]Program, 0)
	}
	for _, p := range programs {
		if _, ok := groups[p.Status]; ok {
			groups[p.Status] = append(groups[p.Status], p)
		}
	}
	return groups
}

// Ordered returns the groups in board order: Pending, Active, Ended.
func (g StatusGroups) Ordered() []StatusGroup {
	out := make([]StatusGroup, 0, len(BoardStatuses))
	for _, s := range BoardStatuses {
		out = append(out, StatusGroup{Status: s, Programs: g[s]})
	}
	return out
}
