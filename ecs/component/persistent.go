package component

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/jakecoffman/cp"
)

// LevelStartIndex is the checkpoint index of the snapshot taken on the
// first tick.
const LevelStartIndex = -1

// LevelSaveState is a snapshot of everything a respawn restores.
type LevelSaveState struct {
	Valid           bool
	CheckpointIndex int

	Enemies         []Enemy
	EnemyPositions  []cp.Vector
	EnemyVelocities []cp.Vector

	ElapsedSeconds float64

	PickupCount      int
	PickupsCollected []bool

	Platforms []MovingPlatform
}

// SaveHistory keeps the latest snapshot per checkpoint index in activation
// order.
type SaveHistory struct {
	states *orderedmap.OrderedMap[int, LevelSaveState]
}

func NewSaveHistory() *SaveHistory {
	return &SaveHistory{states: orderedmap.NewOrderedMap[int, LevelSaveState]()}
}

// Record stores s and moves its checkpoint to the end of the history.
func (h *SaveHistory) Record(s LevelSaveState) {
	h.states.Delete(s.CheckpointIndex)
	h.states.Set(s.CheckpointIndex, s)
}

func (h *SaveHistory) Get(checkpoint int) (LevelSaveState, bool) {
	return h.states.Get(checkpoint)
}

// Latest returns the most recently recorded snapshot.
func (h *SaveHistory) Latest() (LevelSaveState, bool) {
	back := h.states.Back()
	if back == nil {
		return LevelSaveState{}, false
	}
	return back.Value, true
}

func (h *SaveHistory) Len() int {
	return h.states.Len()
}

// Checkpoints returns the recorded indices, oldest first.
func (h *SaveHistory) Checkpoints() []int {
	return h.states.Keys()
}
