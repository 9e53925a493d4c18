package system

import (
	"github.com/icmeyer/boing/ecs"
	"github.com/icmeyer/boing/ecs/component"
	"github.com/icmeyer/boing/physics"
)

// StatsSystem folds step events into the SimStats component.
type StatsSystem struct{}

func NewStatsSystem() *StatsSystem {
	return &StatsSystem{}
}

func (s *StatsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	var reports []physics.StepReport
	for _, evt := range w.Events().Drain() {
		if evt.Type != ecs.StepEventType {
			continue
		}
		if r, ok := evt.Data.(physics.StepReport); ok {
			reports = append(reports, r)
		}
	}
	if len(reports) == 0 {
		return
	}

	ecs.ForEach(w, component.SimStatsComponent, func(_ ecs.Entity, stats *component.SimStats) {
		for _, r := range reports {
			stats.Tick++
			stats.Last = r
			stats.TotalCollisions += r.Collisions
		}
	})
}
