package component

import "github.com/milk9111/ldplayground/physics"

// Hazard kills the player on any overlap with the player's hitbox.
type Hazard struct {
	Collider physics.ColliderID
	Signals  SignalSink
}
