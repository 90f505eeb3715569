package system

import "github.com/milk9111/ldplayground/ecs"

type ClockSystem struct{}

func NewClockSystem() *ClockSystem {
	return &ClockSystem{}
}

func (s *ClockSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	w.ElapsedSeconds += w.DeltaTime
}
