package system

import (
	"github.com/milk9111/ldplayground/ecs"
	"github.com/milk9111/ldplayground/ecs/component"
	"go.uber.org/zap"
)

// touchExits completes the level and pauses the simulation.
func touchExits(w *ecs.World) {
	if w.LevelComplete {
		return
	}
	hitbox := w.Player.Pawn.Hitbox
	for i := range w.Exits {
		exit := &w.Exits[i]
		if !w.Physics.Touching(hitbox, exit.Collider) {
			continue
		}
		if !w.LevelComplete {
			w.Logger().Info("level complete",
				zap.Int("exit", i),
				zap.Float64("elapsed", w.ElapsedSeconds),
				zap.Int("pickups", w.PickupCount),
			)
			w.Emit(ecs.EventLevelComplete, i)
		}
		w.LevelComplete = true
		w.Paused = true
		component.SignalsOrNop(exit.Signals).Play(component.CueExitActivate)
	}
}
