// Package input produces per-tick input samples for the simulation.
package input

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ldplayground/ecs/component"
)

// Frame is one tick of input. General holds presses, not held state.
type Frame struct {
	Pawn    component.PawnInput
	General component.GeneralInput
}

type Source interface {
	Next(tick int, dt float64) (Frame, error)
}

// StaticSource repeats the same frame every tick.
type StaticSource struct {
	Frame Frame
}

func (s StaticSource) Next(int, float64) (Frame, error) {
	return s.Frame, nil
}

// Hold returns a source that keeps the stick at moveX.
func Hold(moveX float64) StaticSource {
	return StaticSource{Frame: Frame{Pawn: component.PawnInput{MoveDir: cp.Vector{X: moveX}}}}
}

// buttons is last tick's held state, used to turn holds into presses.
type buttons struct {
	jump, pause, devMode, fullScreen bool
}

func press(prev *bool, held bool) bool {
	pressed := held && !*prev
	*prev = held
	return pressed
}
