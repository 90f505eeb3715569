package component

import "github.com/milk9111/ldplayground/physics"

// LevelExit completes the level when the player touches it.
type LevelExit struct {
	Collider physics.ColliderID
	Signals  SignalSink
}
