package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ldplayground/ecs"
	"github.com/milk9111/ldplayground/ecs/component"
	"go.uber.org/zap"
)

// SaveLevelState snapshots enemies, pickups and platforms as the world's
// current save state, keyed by checkpoint.
func SaveLevelState(w *ecs.World, checkpoint int) component.LevelSaveState {
	s := component.LevelSaveState{
		Valid:            true,
		CheckpointIndex:  checkpoint,
		Enemies:          make([]component.Enemy, len(w.Enemies)),
		EnemyPositions:   make([]cp.Vector, len(w.Enemies)),
		EnemyVelocities:  make([]cp.Vector, len(w.Enemies)),
		ElapsedSeconds:   w.ElapsedSeconds,
		PickupCount:      w.PickupCount,
		PickupsCollected: make([]bool, len(w.Collectables)),
		Platforms:        make([]component.MovingPlatform, len(w.Platforms)),
	}

	copy(s.Enemies, w.Enemies)
	for e := range s.Enemies {
		en := &s.Enemies[e]
		if en.Valid && en.Pawn.Body != nil {
			s.EnemyPositions[e] = en.Pawn.Body.Position()
			s.EnemyVelocities[e] = en.Pawn.Body.Velocity()
		}
	}
	for p := range w.Collectables {
		s.PickupsCollected[p] = w.Collectables[p].Collected
	}
	copy(s.Platforms, w.Platforms)

	w.SaveState = s
	if w.History != nil {
		w.History.Record(s)
	}
	return s
}

// RecallLevelState puts the world back the way s recorded it. Elapsed time
// keeps running across respawns.
func RecallLevelState(w *ecs.World, s component.LevelSaveState) {
	if !s.Valid {
		return
	}

	copy(w.Enemies, s.Enemies)
	for e := range w.Enemies {
		en := &w.Enemies[e]
		if !en.Valid {
			continue
		}
		InitializeEnemy(en)
		if en.Pawn.Body != nil && e < len(s.EnemyPositions) {
			en.Pawn.Body.SetPosition(s.EnemyPositions[e])
			en.Pawn.Body.SetVelocity(s.EnemyVelocities[e])
		}
	}

	w.PickupCount = s.PickupCount
	for p := range w.Collectables {
		if p >= len(s.PickupsCollected) || s.PickupsCollected[p] {
			continue
		}
		c := &w.Collectables[p]
		c.Active = true
		c.Collected = false
		c.DisappearFinished.Reset()
	}

	copy(w.Platforms, s.Platforms)
	for i := range w.Platforms {
		plat := &w.Platforms[i]
		if plat.Body != nil {
			plat.Body.SetPosition(cp.Vector{X: plat.Position.X(), Y: plat.Position.Y()})
		}
	}

	w.Logger().Debug("level state restored", zap.Int("checkpoint", s.CheckpointIndex))
}

// SnapshotSystem records the level-start state on the first tick.
type SnapshotSystem struct{}

func NewSnapshotSystem() *SnapshotSystem {
	return &SnapshotSystem{}
}

func (s *SnapshotSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	first := !w.SimmedOnce
	w.SimmedOnce = true
	if first {
		SaveLevelState(w, component.LevelStartIndex)
	}
}
