package physics

import "github.com/jakecoffman/cp"

// ColliderID identifies a collider for the lifetime of a Space. Zero is never
// assigned.
type ColliderID uint64

// LayerMask selects collider layers for queries.
type LayerMask uint

const (
	LayerDefault LayerMask = 1 << iota
	LayerOneWay
	LayerPawn
	LayerTrigger
)

const LayerAll = ^LayerMask(0)

// RaycastHit is one intersection along a cast, ordered by Fraction.
type RaycastHit struct {
	Point       cp.Vector
	Normal      cp.Vector
	Fraction    float64
	Distance    float64
	Collider    ColliderID
	Trigger     bool
	HasMaterial bool
}

// World is the rigid-body and query service the simulation runs against.
type World interface {
	Gravity() cp.Vector
	// Raycast writes hits ordered by distance into hits and returns how many
	// were written. Results never exceed len(hits).
	Raycast(origin, dir cp.Vector, maxDist float64, mask LayerMask, hits []RaycastHit) int
	// Touching reports whether two colliders overlap right now. Colliders on
	// unsimulated bodies never touch anything.
	Touching(a, b ColliderID) bool
	Step(dt float64)
}
