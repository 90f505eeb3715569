package entity

import (
	"github.com/milk9111/ldplayground/ecs"
	"github.com/milk9111/ldplayground/ecs/component"
	"github.com/milk9111/ldplayground/levels"
	"github.com/milk9111/ldplayground/physics"
)

func trigger(space *physics.Space, b levels.Box) physics.ColliderID {
	return space.AddStatic(b.Center(), physics.ShapeDef{
		Width:    b.W,
		Height:   b.H,
		Trigger:  true,
		Material: b.Material,
	})
}

func NewHazard(w *ecs.World, space *physics.Space, b levels.Box) component.Hazard {
	return component.Hazard{
		Collider: trigger(space, b),
		Signals:  w.Signals("hazard"),
	}
}
