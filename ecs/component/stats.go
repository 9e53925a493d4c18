package component

import "github.com/icmeyer/boing/physics"

// SimStats accumulates step reports for the debug overlay.
type SimStats struct {
	Tick            uint64
	Last            physics.StepReport
	TotalCollisions int
}

var SimStatsComponent = NewComponent[SimStats]()
