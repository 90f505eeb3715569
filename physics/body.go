package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Body wraps a chipmunk body with the per-pawn state the solver needs:
// a gravity scale and a simulated flag.
type Body struct {
	space        *Space
	body         *cp.Body
	shapes       []*cp.Shape
	filters      []cp.ShapeFilter
	collider     ColliderID
	gravityScale float64
	simulated    bool
	passThrough  bool
	driven       bool
}

func newBody(s *Space, b *cp.Body) *Body {
	pb := &Body{
		space:        s,
		body:         b,
		gravityScale: 1,
		simulated:    true,
	}
	b.UserData = pb
	b.SetVelocityUpdateFunc(pb.updateVelocity)
	b.SetPositionUpdateFunc(pb.updatePosition)
	return pb
}

func (b *Body) updateVelocity(body *cp.Body, gravity cp.Vector, damping, dt float64) {
	if !b.simulated {
		return
	}
	cp.BodyUpdateVelocity(body, gravity.Mult(b.gravityScale), damping, dt)
}

func (b *Body) updatePosition(body *cp.Body, dt float64) {
	if !b.simulated || b.driven {
		return
	}
	cp.BodyUpdatePosition(body, dt)
}

// Collider returns the id of the body's primary shape.
func (b *Body) Collider() ColliderID {
	return b.collider
}

func (b *Body) Position() cp.Vector {
	return b.body.Position()
}

func (b *Body) SetPosition(p cp.Vector) {
	b.body.SetPosition(p)
	for _, shape := range b.shapes {
		shape.CacheBB()
	}
}

func (b *Body) Velocity() cp.Vector {
	return b.body.Velocity()
}

func (b *Body) SetVelocity(v cp.Vector) {
	b.body.SetVelocityVector(v)
}

func (b *Body) Mass() float64 {
	m := b.body.Mass()
	if m <= 0 || math.IsInf(m, 0) {
		return 1
	}
	return m
}

func (b *Body) GravityScale() float64 {
	return b.gravityScale
}

func (b *Body) SetGravityScale(scale float64) {
	b.gravityScale = scale
}

func (b *Body) Simulated() bool {
	return b.simulated
}

// SetSimulated toggles whether the body integrates, collides and shows up
// in queries.
func (b *Body) SetSimulated(simulated bool) {
	if b.simulated == simulated {
		return
	}
	b.simulated = simulated
	for i, shape := range b.shapes {
		if simulated {
			shape.SetFilter(b.filters[i])
		} else {
			shape.SetFilter(cp.SHAPE_FILTER_NONE)
		}
	}
}

// SetPassThrough lets the body drop through one-way platforms.
func (b *Body) SetPassThrough(on bool) {
	b.passThrough = on
}

func (b *Body) PassThrough() bool {
	return b.passThrough
}
