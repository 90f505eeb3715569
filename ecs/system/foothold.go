package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ldplayground/common"
	"github.com/milk9111/ldplayground/debugdraw"
	"github.com/milk9111/ldplayground/ecs/component"
	"github.com/milk9111/ldplayground/physics"
)

// forwardFootholdMinDistance keeps the ray under the hips from counting as
// a forward foothold.
const forwardFootholdMinDistance = 0.01

// FootholdScan describes one sub-range of the downward ray fan.
type FootholdScan struct {
	Origin       cp.Vector
	Forward      cp.Vector
	GravityDir   cp.Vector
	RangeBehind  float64
	RangeAhead   float64
	SkipFirstRay bool
	Mask         physics.LayerMask
	Self         physics.ColliderID
	HipsHeight   float64
	MaxSlope     float64
	Resolution   float64
}

// ScanFootholds casts the fan described by scan and refines near and
// forward in place. hits is scratch space owned by the caller.
func ScanFootholds(phys physics.World, hits []physics.RaycastHit, debug debugdraw.Sink, scan FootholdScan, near, forward *component.Foothold) {
	width := scan.RangeAhead + scan.RangeBehind
	n := int(math.Ceil(width * scan.Resolution))
	if n < 0 {
		n = 0
	}
	spacing := 0.0
	if n > 0 {
		spacing = width / float64(n)
	}

	up := scan.GravityDir.Neg()
	rayLength := 2 * scan.HipsHeight
	minDot := 1 - scan.MaxSlope/180

	first := 0
	if scan.SkipFirstRay {
		first = 1
	}
	for r := first; r <= n; r++ {
		distance := -scan.RangeBehind + spacing*float64(r)
		if r == n {
			distance = scan.RangeAhead
		}
		start := scan.Origin.Add(scan.Forward.Mult(distance))

		debug.SetColor(debugdraw.Blue)
		debug.Ray(start, scan.GravityDir.Mult(rayLength))

		count := phys.Raycast(start, scan.GravityDir, rayLength, scan.Mask, hits)
		for _, hit := range hits[:count] {
			if hit.Trigger || hit.Collider == scan.Self || hit.Fraction <= 0 {
				continue
			}
			normal := common.NormalizeSafe(hit.Normal)
			if normal.Dot(up) <= minDot {
				continue
			}

			debug.SetColor(debugdraw.Coral)
			debug.Ray(start, scan.GravityDir.Mult(rayLength*hit.Fraction))

			normalized := 0.0
			if width > 0 {
				normalized = distance / width
			}
			found := component.Foothold{
				Valid:                     true,
				ForwardDistance:           distance,
				ForwardDistanceNormalized: normalized,
				Position:                  hit.Point,
				Normal:                    normal,
				Collider:                  hit.Collider,
				GroundMaterial:            groundMaterial(hit),
				RayHitDistance:            hit.Distance,
			}

			if !near.Valid || math.Abs(distance) < math.Abs(near.ForwardDistance) {
				*near = found
			}
			if distance > forwardFootholdMinDistance && (!forward.Valid || distance > forward.ForwardDistance) {
				*forward = found
			}
		}
	}
}

func groundMaterial(hit physics.RaycastHit) component.GroundMaterial {
	if hit.HasMaterial {
		return component.GroundWood
	}
	return component.GroundDefault
}
