package component

import "github.com/jakecoffman/cp"

// TransformEnergy accumulates one tick of contributions to a velocity.
// Force is divided by mass, Acceleration is not, Impulse skips deltaTime.
type TransformEnergy struct {
	Force        cp.Vector
	Acceleration cp.Vector
	Impulse      cp.Vector
}

// Integrate returns the velocity delta.
func (e TransformEnergy) Integrate(mass, dt float64) cp.Vector {
	return e.Force.Mult(1 / mass).Add(e.Acceleration).Mult(dt).Add(e.Impulse)
}
