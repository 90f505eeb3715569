package entity

import (
	"github.com/milk9111/ldplayground/ecs"
	"github.com/milk9111/ldplayground/ecs/component"
	"github.com/milk9111/ldplayground/levels"
	"github.com/milk9111/ldplayground/physics"
)

func NewCollectable(w *ecs.World, space *physics.Space, b levels.Box) component.Collectable {
	return component.Collectable{
		Collider:          trigger(space, b),
		Active:            true,
		DisappearFinished: component.NewSensor(),
		Signals:           w.Signals("pickup"),
	}
}
