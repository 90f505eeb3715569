package physics

import (
	"math"
	"sort"

	"github.com/jakecoffman/cp"
)

const (
	collisionTypeDefault cp.CollisionType = iota
	collisionTypePawn
	collisionTypeOneWay
)

// ShapeDef describes a box (or circle when Radius is set) collider relative
// to its body origin.
type ShapeDef struct {
	Width    float64
	Height   float64
	Radius   float64
	Offset   cp.Vector
	Layer    LayerMask
	Trigger  bool
	Material string
	Friction float64
}

type collider struct {
	shape    *cp.Shape
	body     *Body
	material string
}

// Space is the chipmunk-backed World.
type Space struct {
	space     *cp.Space
	colliders map[ColliderID]*collider
	nextID    ColliderID
	scratch   []RaycastHit
}

var _ World = (*Space)(nil)

func NewSpace(gravity cp.Vector) *Space {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(gravity)
	space.SetCollisionSlop(0.01)

	s := &Space{
		space:     space,
		colliders: make(map[ColliderID]*collider),
	}

	handler := space.NewCollisionHandler(collisionTypeOneWay, collisionTypePawn)
	handler.PreSolveFunc = s.oneWayPreSolve
	return s
}

// oneWayPreSolve lets pawns pass up through one-way platforms, and down
// through them while pass-through is requested.
func (s *Space) oneWayPreSolve(arb *cp.Arbiter, space *cp.Space, _ interface{}) bool {
	_, pawnShape := arb.Shapes()
	if pb, ok := pawnShape.Body().UserData.(*Body); ok && pb.passThrough {
		return arb.Ignore()
	}
	up := s.up()
	if arb.Normal().Dot(up) < 0 {
		return arb.Ignore()
	}
	return true
}

func (s *Space) up() cp.Vector {
	g := s.space.Gravity()
	if g.LengthSq() == 0 {
		return cp.Vector{Y: 1}
	}
	return g.Normalize().Neg()
}

func (s *Space) Gravity() cp.Vector {
	return s.space.Gravity()
}

func (s *Space) Step(dt float64) {
	if dt <= 0 {
		return
	}
	s.space.Step(dt)
}

// AddStatic adds level geometry at a world position.
func (s *Space) AddStatic(at cp.Vector, def ShapeDef) ColliderID {
	body := cp.NewStaticBody()
	body.SetPosition(at)
	s.space.AddBody(body)
	shape := s.newShape(body, def)
	id := s.register(shape, nil, def)
	s.space.AddShape(shape)
	return id
}

// AddBody adds a dynamic, fixed-rotation body with one collider.
func (s *Space) AddBody(at cp.Vector, mass float64, def ShapeDef) *Body {
	if mass <= 0 {
		mass = 1
	}
	cb := cp.NewBody(mass, math.Inf(1))
	cb.SetPosition(at)
	s.space.AddBody(cb)
	b := newBody(s, cb)
	b.collider = s.attach(b, def)
	return b
}

// AddKinematic adds a body whose position is driven by the caller. Its
// velocity is still reported to contacts.
func (s *Space) AddKinematic(at cp.Vector, def ShapeDef) *Body {
	cb := cp.NewKinematicBody()
	cb.SetPosition(at)
	s.space.AddBody(cb)
	b := newBody(s, cb)
	b.driven = true
	b.collider = s.attach(b, def)
	return b
}

// AttachShape adds another collider to an existing body.
func (s *Space) AttachShape(b *Body, def ShapeDef) ColliderID {
	return s.attach(b, def)
}

func (s *Space) attach(b *Body, def ShapeDef) ColliderID {
	shape := s.newShape(b.body, def)
	id := s.register(shape, b, def)
	b.shapes = append(b.shapes, shape)
	b.filters = append(b.filters, shape.Filter)
	if !b.simulated {
		shape.Filter = cp.SHAPE_FILTER_NONE
	}
	s.space.AddShape(shape)
	return id
}

// RemoveBody drops a body and all of its colliders.
func (s *Space) RemoveBody(b *Body) {
	if b == nil {
		return
	}
	for id, c := range s.colliders {
		if c.body == b {
			delete(s.colliders, id)
		}
	}
	for _, shape := range b.shapes {
		s.space.RemoveShape(shape)
	}
	s.space.RemoveBody(b.body)
	b.shapes = nil
	b.filters = nil
}

func (s *Space) newShape(body *cp.Body, def ShapeDef) *cp.Shape {
	var shape *cp.Shape
	if def.Radius > 0 {
		shape = cp.NewCircle(body, def.Radius, def.Offset)
	} else {
		hw, hh := def.Width/2, def.Height/2
		bb := cp.BB{L: def.Offset.X - hw, B: def.Offset.Y - hh, R: def.Offset.X + hw, T: def.Offset.Y + hh}
		shape = cp.NewBox2(body, bb, 0)
	}

	layer := def.Layer
	if layer == 0 {
		layer = LayerDefault
	}
	if def.Trigger {
		layer |= LayerTrigger
	}
	shape.SetSensor(def.Trigger)
	shape.Filter = cp.NewShapeFilter(cp.NO_GROUP, uint(layer), cp.ALL_CATEGORIES)
	shape.SetFriction(def.Friction)

	switch {
	case layer&LayerOneWay != 0:
		shape.SetCollisionType(collisionTypeOneWay)
	case layer&LayerPawn != 0 && !def.Trigger:
		shape.SetCollisionType(collisionTypePawn)
	default:
		shape.SetCollisionType(collisionTypeDefault)
	}
	return shape
}

func (s *Space) register(shape *cp.Shape, b *Body, def ShapeDef) ColliderID {
	s.nextID++
	id := s.nextID
	shape.UserData = id
	s.colliders[id] = &collider{shape: shape, body: b, material: def.Material}
	return id
}

// Raycast implements World.
func (s *Space) Raycast(origin, dir cp.Vector, maxDist float64, mask LayerMask, hits []RaycastHit) int {
	if len(hits) == 0 || maxDist <= 0 || dir.LengthSq() == 0 {
		return 0
	}
	end := origin.Add(dir.Normalize().Mult(maxDist))
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, uint(mask))

	s.scratch = s.scratch[:0]
	s.space.SegmentQuery(origin, end, 0, filter, func(shape *cp.Shape, point, normal cp.Vector, alpha float64, _ interface{}) {
		id, _ := shape.UserData.(ColliderID)
		hit := RaycastHit{
			Point:    point,
			Normal:   normal,
			Fraction: alpha,
			Distance: alpha * maxDist,
			Collider: id,
			Trigger:  shape.Sensor(),
		}
		if c, ok := s.colliders[id]; ok {
			hit.HasMaterial = c.material != ""
		}
		s.scratch = append(s.scratch, hit)
	}, nil)

	sort.SliceStable(s.scratch, func(i, j int) bool {
		return s.scratch[i].Fraction < s.scratch[j].Fraction
	})
	return copy(hits, s.scratch)
}

// Touching implements World.
func (s *Space) Touching(a, b ColliderID) bool {
	ca, ok := s.colliders[a]
	if !ok {
		return false
	}
	cb, ok := s.colliders[b]
	if !ok {
		return false
	}
	if (ca.body != nil && !ca.body.simulated) || (cb.body != nil && !cb.body.simulated) {
		return false
	}
	ca.shape.CacheBB()
	cb.shape.CacheBB()
	if !ca.shape.BB().Intersects(cb.shape.BB()) {
		return false
	}
	return cp.ShapesCollide(ca.shape, cb.shape).Count > 0
}
