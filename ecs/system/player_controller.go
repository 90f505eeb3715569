package system

import (
	"github.com/milk9111/ldplayground/ecs"
	"github.com/milk9111/ldplayground/ecs/component"
)

// PlayerSystem drives the player's pawn from the tick's input once its
// spawn animation has finished.
type PlayerSystem struct{}

func NewPlayerSystem() *PlayerSystem {
	return &PlayerSystem{}
}

func (s *PlayerSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	player := &w.Player
	pawn := &player.Pawn
	if !player.FinishedSpawning && pawn.SpawnFinished.Consume() {
		player.FinishedSpawning = true
	}
	if !pawn.Valid || !player.FinishedSpawning || pawn.Killed || pawn.Body == nil {
		return
	}

	params := pawn.Params
	if params == nil {
		defaults := component.DefaultKinematicsParams()
		params = &defaults
	}

	if w.DevMode {
		flyPawn(pawn, w.Input, params, w.DeltaTime)
		return
	}

	pawn.Body.SetPassThrough(w.Input.Fallthrough)
	res := SolvePawnKinetics(kineticsContext(w), pawn, w.Input, params)
	reportBounce(w, res)
}

// flyPawn moves the pawn straight along the input, outside of physics.
func flyPawn(pawn *component.Pawn, input component.PawnInput, params *component.PawnKinematicsParams, dt float64) {
	pawn.Body.SetSimulated(false)
	pawn.OnGroundPrev = false
	pawn.IsJumping = true
	step := input.MoveDir.Mult(dt * params.MaxRunSpeed)
	pawn.Body.SetPosition(pawn.Body.Position().Add(step))
}
