package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ldplayground/physics"
)

type GroundMaterial uint8

const (
	GroundDefault GroundMaterial = iota
	GroundWood
)

func (m GroundMaterial) String() string {
	if m == GroundWood {
		return "wood"
	}
	return "default"
}

// Foothold is a walkable contact found under a pawn. ForwardDistance is
// signed along the pawn's forward direction; negative is behind the hips.
type Foothold struct {
	Valid                     bool
	ForwardDistance           float64
	ForwardDistanceNormalized float64
	Position                  cp.Vector
	Normal                    cp.Vector
	Collider                  physics.ColliderID
	GroundMaterial            GroundMaterial
	RayHitDistance            float64
}
