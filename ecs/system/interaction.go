package system

import "github.com/milk9111/ldplayground/ecs"

// InteractionSystem resolves what the living player touched after the
// physics step. Liveness is checked once, so every kind of interaction
// still resolves on the tick the player dies.
type InteractionSystem struct{}

func NewInteractionSystem() *InteractionSystem {
	return &InteractionSystem{}
}

func (s *InteractionSystem) Update(w *ecs.World) {
	if s == nil || w == nil || w.Physics == nil {
		return
	}
	pawn := &w.Player.Pawn
	if !pawn.Valid || pawn.Killed {
		return
	}

	collectPickups(w)
	touchHazards(w)
	touchCheckpoints(w)
	touchExits(w)
	checkKillFloor(w)
}
