package component

import "github.com/milk9111/ldplayground/physics"

// Collectable is collected on first touch and deactivated once its
// disappear animation reports completion.
type Collectable struct {
	Collider          physics.ColliderID
	Collected         bool
	Active            bool
	DisappearFinished *Sensor
	Signals           SignalSink
}
