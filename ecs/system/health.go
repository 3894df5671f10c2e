package system

import (
	"github.com/milk9111/slimeboss/ecs"
	"github.com/milk9111/slimeboss/ecs/component"
)

// HealthSystem advances every recovery window.
type HealthSystem struct {
	dt float64
}

func NewHealthSystem(dt float64) *HealthSystem {
	return &HealthSystem{dt: dt}
}

func (s *HealthSystem) Update(w *ecs.World) {
	ecs.ForEach(w, component.HealthComponent.Kind(), func(_ ecs.Entity, h *component.Health) {
		h.Tick(s.dt)
	})
}
