package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ldplayground/ecs"
	"github.com/milk9111/ldplayground/ecs/component"
	"go.uber.org/zap"
)

// RespawnSystem brings the player back at the active checkpoint, or the
// level spawn, restoring the level to its saved state.
type RespawnSystem struct{}

func NewRespawnSystem() *RespawnSystem {
	return &RespawnSystem{}
}

func (s *RespawnSystem) Update(w *ecs.World) {
	if s == nil || w == nil || w.Player.Pawn.Valid {
		return
	}
	if w.Spawner == nil && w.Player.Pawn.Body == nil {
		return
	}

	spawn := SpawnPoint(w)
	RecallLevelState(w, w.SaveState)

	if w.Spawner != nil {
		w.Player = w.Spawner.SpawnPlayer(spawn)
	} else {
		w.Player.Pawn.Body.SetPosition(spawn)
		w.Player.Pawn.Body.SetVelocity(cp.Vector{})
		w.Player.Pawn.Killed = false
	}
	InitializePlayerAvatar(&w.Player)
	w.Player.Pawn.Emit().Play(component.CueSpawn)

	w.Logger().Info("player spawned",
		zap.Int("checkpoint", w.SaveState.CheckpointIndex),
		zap.Float64("x", spawn.X),
		zap.Float64("y", spawn.Y),
	)
	w.Emit(ecs.EventPlayerSpawned, spawn)
}

// SpawnPoint is where the player appears next.
func SpawnPoint(w *ecs.World) cp.Vector {
	idx := w.SaveState.CheckpointIndex
	if idx >= 0 && idx < len(w.Checkpoints) {
		return w.Checkpoints[idx].SpawnPoint
	}
	return w.PlayerSpawn
}

// PlayerDeathSystem removes the player once its death animation ends.
type PlayerDeathSystem struct{}

func NewPlayerDeathSystem() *PlayerDeathSystem {
	return &PlayerDeathSystem{}
}

func (s *PlayerDeathSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	pawn := &w.Player.Pawn
	if !pawn.Valid || !pawn.Killed || !pawn.DeathFinished.Peek() {
		return
	}
	pawn.Valid = false
	w.LastKnownPlayerPos = pawn.Position()
	if w.Spawner != nil {
		w.Spawner.DespawnPlayer(pawn)
	}
	w.Logger().Debug("player removed",
		zap.Float64("x", w.LastKnownPlayerPos.X),
		zap.Float64("y", w.LastKnownPlayerPos.Y),
	)
	w.Emit(ecs.EventPlayerRemoved, w.LastKnownPlayerPos)
}
