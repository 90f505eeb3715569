package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ldplayground/ecs"
	"github.com/milk9111/ldplayground/ecs/component"
	"github.com/milk9111/ldplayground/physics"
	"github.com/milk9111/ldplayground/prefabs"
)

func shapeDef(s prefabs.ShapeSpec, layer physics.LayerMask, trigger bool) physics.ShapeDef {
	return physics.ShapeDef{
		Width:   s.Width,
		Height:  s.Height,
		Radius:  s.Radius,
		Offset:  cp.Vector{X: s.OffsetX, Y: s.OffsetY},
		Layer:   layer,
		Trigger: trigger,
	}
}

// newPawn creates the body, collider and hitbox for a pawn archetype. The
// pawn is not initialized.
func newPawn(w *ecs.World, space *physics.Space, spec *prefabs.PawnSpec, at cp.Vector, source string) component.Pawn {
	body := space.AddBody(at, spec.Mass, shapeDef(spec.Collider, physics.LayerPawn, false))
	body.SetGravityScale(spec.GravityScale)
	hitbox := body.Collider()
	if spec.Hitbox.Width > 0 || spec.Hitbox.Radius > 0 {
		hitbox = space.AttachShape(body, shapeDef(spec.Hitbox, physics.LayerPawn, true))
	}

	return component.Pawn{
		Body:             body,
		Collider:         body.Collider(),
		Hitbox:           hitbox,
		Markers:          spec.Markers.Markers(),
		Params:           &spec.Kinematics,
		SpriteFacingLeft: spec.SpriteFacingLeft,
		SpawnFinished:    component.NewSensor(),
		DeathFinished:    component.NewSensor(),
		Footstep:         component.NewSensor(),
		Signals:          w.Signals(source),
	}
}
