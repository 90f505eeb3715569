package ecs

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ldplayground/debugdraw"
	"github.com/milk9111/ldplayground/ecs/component"
	"github.com/milk9111/ldplayground/physics"
	"go.uber.org/zap"
)

// RaycastCapacity bounds the hits kept per cast.
const RaycastCapacity = 32

// Spawner creates and destroys the player's physical presence.
type Spawner interface {
	SpawnPlayer(at cp.Vector) component.PlayerAvatar
	DespawnPlayer(p *component.Pawn)
}

// World owns every simulation record. Collections are iterated in index
// order every tick and never reordered.
type World struct {
	Physics physics.World
	Spawner Spawner
	Debug   debugdraw.Sink
	Log     *zap.Logger

	Player       component.PlayerAvatar
	Enemies      []component.Enemy
	Platforms    []component.MovingPlatform
	Collectables []component.Collectable
	Hazards      []component.Hazard
	Checkpoints  []component.Checkpoint
	Exits        []component.LevelExit

	PlayerSpawn cp.Vector
	KillFloorY  float64

	SaveState component.LevelSaveState
	History   *component.SaveHistory

	// Per-tick inputs.
	DeltaTime float64
	Input     component.PawnInput

	DevMode       bool
	Paused        bool
	LevelComplete bool
	SimmedOnce    bool

	PickupCount        int
	ElapsedSeconds     float64
	LastKnownPlayerPos cp.Vector

	RaycastHits []physics.RaycastHit

	events EventQueue
}

// NewWorld creates an empty world over a physics collaborator.
func NewWorld(phys physics.World) *World {
	return &World{
		Physics:     phys,
		Debug:       debugdraw.Nop{},
		Log:         zap.NewNop(),
		History:     component.NewSaveHistory(),
		SaveState:   component.LevelSaveState{CheckpointIndex: component.LevelStartIndex},
		RaycastHits: make([]physics.RaycastHit, RaycastCapacity),
		KillFloorY:  math.Inf(-1),
	}
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Emit pushes an event onto the world queue.
func (w *World) Emit(kind string, data any) {
	if w == nil {
		return
	}
	w.events.Push(Event{Type: kind, Data: data})
}

// Logger never returns nil.
func (w *World) Logger() *zap.Logger {
	if w == nil || w.Log == nil {
		return zap.NewNop()
	}
	return w.Log
}

// DebugSink never returns nil.
func (w *World) DebugSink() debugdraw.Sink {
	if w == nil || w.Debug == nil {
		return debugdraw.Nop{}
	}
	return w.Debug
}
