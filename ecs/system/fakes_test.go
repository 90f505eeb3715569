package system

import (
	"math"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ldplayground/common"
	"github.com/milk9111/ldplayground/ecs"
	"github.com/milk9111/ldplayground/ecs/component"
	"github.com/milk9111/ldplayground/physics"
)

const testGravity = 10.0

// surface is a segment the fake world can hit.
type surface struct {
	a, b     cp.Vector
	normal   cp.Vector
	collider physics.ColliderID
	layer    physics.LayerMask
	trigger  bool
	material bool
}

func ground(x0, x1, y float64, id physics.ColliderID) surface {
	return surface{a: cp.Vector{X: x0, Y: y}, b: cp.Vector{X: x1, Y: y}, normal: cp.Vector{Y: 1}, collider: id}
}

func wall(x, y0, y1 float64, id physics.ColliderID) surface {
	return surface{a: cp.Vector{X: x, Y: y0}, b: cp.Vector{X: x, Y: y1}, normal: cp.Vector{X: -1}, collider: id}
}

type fakePhysics struct {
	gravity  cp.Vector
	surfaces []surface
	touching map[[2]physics.ColliderID]bool
	bodies   []*fakeBody
	casts    int
	steps    int
}

func newFakePhysics(surfaces ...surface) *fakePhysics {
	return &fakePhysics{
		gravity:  cp.Vector{Y: -testGravity},
		surfaces: surfaces,
		touching: make(map[[2]physics.ColliderID]bool),
	}
}

func (f *fakePhysics) Gravity() cp.Vector {
	return f.gravity
}

func (f *fakePhysics) Raycast(origin, dir cp.Vector, maxDist float64, mask physics.LayerMask, hits []physics.RaycastHit) int {
	f.casts++
	d := common.NormalizeSafe(dir)
	if d == (cp.Vector{}) || maxDist <= 0 {
		return 0
	}
	end := origin.Add(d.Mult(maxDist))

	var found []physics.RaycastHit
	for _, s := range f.surfaces {
		layer := s.layer
		if layer == 0 {
			layer = physics.LayerDefault
		}
		if layer&mask == 0 {
			continue
		}
		t, ok := intersect(origin, end, s.a, s.b)
		if !ok {
			continue
		}
		found = append(found, physics.RaycastHit{
			Point:       origin.Add(end.Sub(origin).Mult(t)),
			Normal:      s.normal,
			Fraction:    t,
			Distance:    t * maxDist,
			Collider:    s.collider,
			Trigger:     s.trigger,
			HasMaterial: s.material,
		})
	}
	sort.SliceStable(found, func(i, j int) bool { return found[i].Fraction < found[j].Fraction })
	return copy(hits, found)
}

func intersect(p, p2, q, q2 cp.Vector) (float64, bool) {
	r := p2.Sub(p)
	s := q2.Sub(q)
	denom := r.Cross(s)
	if math.Abs(denom) < 1e-12 {
		return 0, false
	}
	qp := q.Sub(p)
	t := qp.Cross(s) / denom
	u := qp.Cross(r) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return 0, false
	}
	return t, true
}

func (f *fakePhysics) touch(a, b physics.ColliderID) {
	f.touching[[2]physics.ColliderID{a, b}] = true
	f.touching[[2]physics.ColliderID{b, a}] = true
}

func (f *fakePhysics) untouch(a, b physics.ColliderID) {
	delete(f.touching, [2]physics.ColliderID{a, b})
	delete(f.touching, [2]physics.ColliderID{b, a})
}

func (f *fakePhysics) Touching(a, b physics.ColliderID) bool {
	return f.touching[[2]physics.ColliderID{a, b}]
}

// Step is a plain explicit integrator over the registered bodies.
func (f *fakePhysics) Step(dt float64) {
	f.steps++
	for _, b := range f.bodies {
		if !b.simulated {
			continue
		}
		b.vel = b.vel.Add(f.gravity.Mult(b.gravityScale * dt))
		b.pos = b.pos.Add(b.vel.Mult(dt))
	}
}

func (f *fakePhysics) body(at cp.Vector) *fakeBody {
	b := &fakeBody{pos: at, mass: 1, gravityScale: 1, simulated: true}
	f.bodies = append(f.bodies, b)
	return b
}

type fakeBody struct {
	pos, vel     cp.Vector
	mass         float64
	gravityScale float64
	simulated    bool
	passThrough  bool
}

func (b *fakeBody) Position() cp.Vector      { return b.pos }
func (b *fakeBody) SetPosition(p cp.Vector)  { b.pos = p }
func (b *fakeBody) Velocity() cp.Vector      { return b.vel }
func (b *fakeBody) SetVelocity(v cp.Vector)  { b.vel = v }
func (b *fakeBody) Mass() float64            { return b.mass }
func (b *fakeBody) GravityScale() float64    { return b.gravityScale }
func (b *fakeBody) Simulated() bool          { return b.simulated }
func (b *fakeBody) SetSimulated(on bool)     { b.simulated = on }
func (b *fakeBody) SetPassThrough(on bool)   { b.passThrough = on }

func testParams() *component.PawnKinematicsParams {
	p := component.DefaultKinematicsParams()
	p.DragAir = 0
	return &p
}

// restY is where a pawn's body sits when its hips are snapped above ground
// at groundY.
func restY(groundY float64) float64 {
	return groundY + 0.5*groundSnapFraction - 0.5
}

func newTestPawn(body component.RigidBody, collider physics.ColliderID) component.Pawn {
	p := component.Pawn{
		Body:          body,
		Collider:      collider,
		Hitbox:        collider + 1000,
		Markers:       component.Markers{Top: 1.6, Hips: 0.5, Bottom: 0},
		Params:        testParams(),
		SpawnFinished: component.NewSensor(),
		DeathFinished: component.NewSensor(),
		Footstep:      component.NewSensor(),
		Signals:       component.NewSignalRecorder(),
	}
	InitializePawn(&p)
	body.SetSimulated(true)
	return p
}

func recorder(p *component.Pawn) *component.SignalRecorder {
	return p.Signals.(*component.SignalRecorder)
}

func testContext(phys *fakePhysics, dt float64) KineticsContext {
	return KineticsContext{
		Physics:   phys,
		DeltaTime: dt,
		Hits:      make([]physics.RaycastHit, ecs.RaycastCapacity),
	}
}

// fakeSpawner hands out pre-built avatars.
type fakeSpawner struct {
	phys      *fakePhysics
	spawned   []cp.Vector
	despawned int
}

func (s *fakeSpawner) SpawnPlayer(at cp.Vector) component.PlayerAvatar {
	s.spawned = append(s.spawned, at)
	return component.PlayerAvatar{Pawn: newTestPawn(s.phys.body(at), 1)}
}

func (s *fakeSpawner) DespawnPlayer(p *component.Pawn) {
	s.despawned++
}

func newTestWorld(phys *fakePhysics) *ecs.World {
	w := ecs.NewWorld(phys)
	w.DeltaTime = 1.0 / 60
	return w
}
