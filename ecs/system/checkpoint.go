package system

import (
	"github.com/milk9111/ldplayground/ecs"
	"github.com/milk9111/ldplayground/ecs/component"
	"go.uber.org/zap"
)

// touchCheckpoints activates the first touched checkpoint in index order,
// skipping the one already saved.
func touchCheckpoints(w *ecs.World) {
	hitbox := w.Player.Pawn.Hitbox
	for i := range w.Checkpoints {
		if i == w.SaveState.CheckpointIndex {
			continue
		}
		checkpoint := &w.Checkpoints[i]
		if !w.Physics.Touching(hitbox, checkpoint.Collider) {
			continue
		}

		checkpoint.Active = true
		signals := component.SignalsOrNop(checkpoint.Signals)
		signals.SetBool(component.ParamIsActive, true)
		signals.Play(component.CueCheckpointActivate)
		SaveLevelState(w, i)

		for j := range w.Checkpoints {
			if j == i {
				continue
			}
			w.Checkpoints[j].Active = false
			component.SignalsOrNop(w.Checkpoints[j].Signals).SetBool(component.ParamIsActive, false)
		}

		w.Logger().Info("checkpoint activated", zap.Int("checkpoint", i))
		w.Emit(ecs.EventCheckpointActivated, i)
		break
	}
}
