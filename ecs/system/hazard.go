package system

import (
	"github.com/milk9111/ldplayground/ecs"
	"github.com/milk9111/ldplayground/ecs/component"
	"go.uber.org/zap"
)

func touchHazards(w *ecs.World) {
	pawn := &w.Player.Pawn
	for i := range w.Hazards {
		h := &w.Hazards[i]
		if !w.Physics.Touching(pawn.Hitbox, h.Collider) {
			continue
		}
		component.SignalsOrNop(h.Signals).Play(component.CueHazardHit)
		if KillPawn(pawn) {
			w.Logger().Info("player killed", zap.String("cause", "hazard"), zap.Int("hazard", i))
			w.Emit(ecs.EventPlayerKilled, ecs.KillEvent{Enemy: -1, Cause: "hazard"})
		}
	}
}

func checkKillFloor(w *ecs.World) {
	pawn := &w.Player.Pawn
	if pawn.Position().Y >= w.KillFloorY {
		return
	}
	if KillPawn(pawn) {
		w.Logger().Info("player killed", zap.String("cause", "kill_floor"))
		w.Emit(ecs.EventPlayerKilled, ecs.KillEvent{Enemy: -1, Cause: "kill_floor"})
	}
}
