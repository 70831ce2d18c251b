package testutil

import (
	"time"

	"github.com/light-bringer/incentive-tracker/internal/pkg/clock"
)

// Now is the fixed instant test clocks start at. It falls inside PROG001's
// period in the default seed.
var Now = time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)

// NewFixedClock creates a clock fixed at Now.
func NewFixedClock() *clock.FixedClock {
	return clock.NewFixedClock(Now)
}
