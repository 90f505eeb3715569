package system

import "github.com/milk9111/ldplayground/ecs"

// PhysicsSystem commits every velocity written this tick by stepping the
// rigid-body world once.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	if s == nil || w == nil || w.Physics == nil {
		return
	}
	w.Physics.Step(w.DeltaTime)
}
