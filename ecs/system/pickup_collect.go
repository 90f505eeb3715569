package system

import (
	"github.com/milk9111/ldplayground/ecs"
	"github.com/milk9111/ldplayground/ecs/component"
	"go.uber.org/zap"
)

func collectPickups(w *ecs.World) {
	hitbox := w.Player.Pawn.Hitbox
	for i := range w.Collectables {
		c := &w.Collectables[i]
		if c.Collected || !w.Physics.Touching(hitbox, c.Collider) {
			continue
		}
		c.Collected = true
		signals := component.SignalsOrNop(c.Signals)
		signals.SetTrigger(component.ParamCollected)
		signals.Play(component.CueCollected)
		w.PickupCount++
		w.Logger().Debug("pickup collected", zap.Int("pickup", i), zap.Int("count", w.PickupCount))
		w.Emit(ecs.EventPickupCollected, i)
	}
}

// CollectableCleanupSystem deactivates collected pickups once their
// disappear animation has played.
type CollectableCleanupSystem struct{}

func NewCollectableCleanupSystem() *CollectableCleanupSystem {
	return &CollectableCleanupSystem{}
}

func (s *CollectableCleanupSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	for i := range w.Collectables {
		c := &w.Collectables[i]
		if c.Collected && c.Active && c.DisappearFinished.Peek() {
			c.Active = false
			c.DisappearFinished.Reset()
		}
	}
}
