package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ldplayground/physics"
)

type TrackType uint8

const (
	TrackCircular TrackType = iota + 1
	TrackPingPong
)

func (t TrackType) String() string {
	switch t {
	case TrackCircular:
		return "circular"
	case TrackPingPong:
		return "pingpong"
	default:
		return "unknown"
	}
}

// MovingPlatform follows a closed track once per CycleTime seconds.
// Positions are 3D; z is draw depth and never reaches physics.
type MovingPlatform struct {
	Name      string
	TrackType TrackType

	Anchor         mgl64.Vec3
	CircularRadius float64
	Waypoints      [2]mgl64.Vec3

	CycleTime  float64
	Progress   float64
	LoopOffset float64

	Position          mgl64.Vec3
	LastKnownVelocity cp.Vector

	Collider physics.ColliderID
	Body     RigidBody
}
