package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ldplayground/ecs"
	"github.com/milk9111/ldplayground/ecs/component"
	"github.com/milk9111/ldplayground/ecs/system"
	"github.com/milk9111/ldplayground/levels"
	"github.com/milk9111/ldplayground/physics"
)

func NewEnemy(w *ecs.World, space *physics.Space, arch *Archetypes, def levels.Enemy) (component.Enemy, error) {
	spec, ok := arch.Enemies[def.Prefab]
	if !ok {
		return component.Enemy{}, fmt.Errorf("enemy: archetype %q not loaded", def.Prefab)
	}

	en := component.Enemy{
		Pawn:        newPawn(w, space, &spec.PawnSpec, cp.Vector{X: def.X, Y: def.Y}, "enemy"),
		Params:      &spec.AI,
		MovingRight: def.MovingRight,
	}
	system.InitializeEnemy(&en)
	return en, nil
}
