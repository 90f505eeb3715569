package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ldplayground/physics"
)

// RigidBody is the externally integrated state of a pawn.
type RigidBody interface {
	Position() cp.Vector
	SetPosition(p cp.Vector)
	Velocity() cp.Vector
	SetVelocity(v cp.Vector)
	Mass() float64
	GravityScale() float64
	Simulated() bool
	SetSimulated(simulated bool)
	SetPassThrough(on bool)
}

// Markers are local vertical offsets of the pawn's skeleton points from its
// body origin.
type Markers struct {
	Top    float64
	Hips   float64
	Bottom float64
}

// Pawn is a moving character, player or enemy.
type Pawn struct {
	Body     RigidBody
	Collider physics.ColliderID
	Hitbox   physics.ColliderID
	Markers  Markers
	Params   *PawnKinematicsParams

	CharacterHeight float64
	HipsHeight      float64

	IsJumping    bool
	OnGroundPrev bool
	Killed       bool
	Valid        bool

	TimeSinceJumpTriggered float64
	TimeSinceGrounded      float64

	SpriteFacingLeft bool
	FlipX            bool

	SpawnFinished *Sensor
	DeathFinished *Sensor
	Footstep      *Sensor

	Signals SignalSink
}

func (p *Pawn) Position() cp.Vector {
	if p.Body == nil {
		return cp.Vector{}
	}
	return p.Body.Position()
}

func (p *Pawn) HipsPosition() cp.Vector {
	return p.Position().Add(cp.Vector{Y: p.Markers.Hips})
}

func (p *Pawn) BottomPosition() cp.Vector {
	return p.Position().Add(cp.Vector{Y: p.Markers.Bottom})
}

// Emit returns the pawn's signal sink, never nil.
func (p *Pawn) Emit() SignalSink {
	return SignalsOrNop(p.Signals)
}
