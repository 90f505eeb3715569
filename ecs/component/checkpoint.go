package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ldplayground/physics"
)

type Checkpoint struct {
	Collider   physics.ColliderID
	SpawnPoint cp.Vector
	Active     bool
	Signals    SignalSink
}
