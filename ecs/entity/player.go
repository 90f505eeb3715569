package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ldplayground/ecs"
	"github.com/milk9111/ldplayground/ecs/component"
	"github.com/milk9111/ldplayground/physics"
	"github.com/milk9111/ldplayground/prefabs"
)

// PlayerSpawner builds the player's body in the level's space.
type PlayerSpawner struct {
	World *ecs.World
	Space *physics.Space
	Spec  *prefabs.PlayerSpec
}

var _ ecs.Spawner = (*PlayerSpawner)(nil)

func (s *PlayerSpawner) SpawnPlayer(at cp.Vector) component.PlayerAvatar {
	return component.PlayerAvatar{
		Pawn: newPawn(s.World, s.Space, &s.Spec.PawnSpec, at, "player"),
	}
}

func (s *PlayerSpawner) DespawnPlayer(p *component.Pawn) {
	if b, ok := p.Body.(*physics.Body); ok {
		s.Space.RemoveBody(b)
	}
	p.Body = nil
}
