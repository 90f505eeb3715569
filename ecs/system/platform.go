package system

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ldplayground/common"
	"github.com/milk9111/ldplayground/ecs"
	"github.com/milk9111/ldplayground/ecs/component"
)

// EvaluatePlatformPosition maps progress along a platform's track to a
// world position. One unit of progress is one full cycle.
func EvaluatePlatformPosition(p *component.MovingPlatform, progress float64) mgl64.Vec3 {
	switch p.TrackType {
	case component.TrackCircular:
		theta := progress * 2 * math.Pi
		offset := mgl64.Vec3{math.Cos(theta), math.Sin(theta), 0}
		return p.Anchor.Add(offset.Mul(p.CircularRadius))
	case component.TrackPingPong:
		t := common.PingPong(progress*2, 1)
		return p.Waypoints[0].Add(p.Waypoints[1].Sub(p.Waypoints[0]).Mul(t))
	default:
		panic(fmt.Sprintf("platform: unknown track type %d", p.TrackType))
	}
}

// AdvancePlatform moves a platform dt seconds along its track and derives
// its velocity from the distance covered. The velocity is a finite
// difference and trails the true motion by one tick.
func AdvancePlatform(p *component.MovingPlatform, dt float64) {
	if p.CycleTime > 0 {
		p.Progress = common.Wrap01(p.Progress + dt/p.CycleTime)
	}
	next := EvaluatePlatformPosition(p, p.LoopOffset+p.Progress)
	if dt > 0 {
		delta := next.Sub(p.Position)
		p.LastKnownVelocity = cp.Vector{X: delta.X() / dt, Y: delta.Y() / dt}
	}
	p.Position = next

	if p.Body != nil {
		p.Body.SetPosition(cp.Vector{X: next.X(), Y: next.Y()})
		p.Body.SetVelocity(p.LastKnownVelocity)
	}
}

type PlatformSystem struct{}

func NewPlatformSystem() *PlatformSystem {
	return &PlatformSystem{}
}

func (s *PlatformSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	for i := range w.Platforms {
		AdvancePlatform(&w.Platforms[i], w.DeltaTime)
	}
}
