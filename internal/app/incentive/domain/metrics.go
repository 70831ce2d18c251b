package domain

import (
	"math"
	"time"
)

// AchievementRatio returns achievement as a percentage of target.
// A non-positive target yields 0. The result is not clamped: values above
// 100 mean the program over-performed.
func AchievementRatio(target, achievement float64) float64 {
	if target <= 0 {
		return 0
	}
	return achievement / target * 100
}

// ElapsedRatio returns the share of the period [start, end] that has passed
// at now, as a whole percentage in [0, 100]. A zero-length or inverted period
// counts as fully elapsed once now reaches its start.
func ElapsedRatio(start, end, now time.Time) float64 {
	if now.Before(start) {
		return 0
	}
	if now.After(end) {
		return 100
	}
	if !end.After(start) {
		return 100
	}

	elapsed := now.Sub(start)
	total := end.Sub(start)
	return math.Round(float64(elapsed) / float64(total) * 100)
}

// EstimatedReward returns achievement multiplied by the per-unit reward.
// No rounding is applied; display rounding belongs to the formatter.
func EstimatedReward(achievement, reward float64) float64 {
	return achievement * reward
}

// ProgramMetrics bundles the derived values shown on program cards and rows.
type ProgramMetrics struct {
	AchievementPct  float64 `json:"achievementPct"`
	ElapsedPct      float64 `json:"elapsedPct"`
	EstimatedReward float64 `json:"estimatedReward"`
}

// AchievementRatio returns the program's achievement percentage.
func (p Program) AchievementRatio() float64 {
	return AchievementRatio(p.Target, p.Achievement)
}

// ElapsedRatio returns how much of the program period has passed at now.
func (p Program) ElapsedRatio(now time.Time) float64 {
	return ElapsedRatio(p.PeriodStart, p.PeriodEnd, now)
}

// EstimatedReward returns the reward earned so far.
func (p Program) EstimatedReward() float64 {
	return EstimatedReward(p.Achievement, p.Reward)
}

// Metrics computes every derived value for the program at now.
func (p Program) Metrics(now time.Time) ProgramMetrics {
	return ProgramMetrics{
		AchievementPct:  p.AchievementRatio(),
		ElapsedPct:      p.ElapsedRatio(now),
		EstimatedReward: p.EstimatedReward(),
	}
}
