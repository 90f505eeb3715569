// Package debugdraw collects gizmo commands emitted while the simulation
// runs. Nothing in here renders; a host drains a Buffer and draws it.
package debugdraw

import "github.com/jakecoffman/cp"

var (
	Blue   = cp.FColor{R: 0, G: 0, B: 1, A: 1}
	Coral  = cp.FColor{R: 1, G: 0.5, B: 0.31, A: 1}
	Yellow = cp.FColor{R: 1, G: 0.92, B: 0.016, A: 1}
)

type Sink interface {
	SetColor(c cp.FColor)
	Ray(from, dir cp.Vector)
	WireCube(center cp.Vector, size float64)
	Cube(center cp.Vector, size float64)
}

// Nop discards everything.
type Nop struct{}

func (Nop) SetColor(cp.FColor)          {}
func (Nop) Ray(cp.Vector, cp.Vector)    {}
func (Nop) WireCube(cp.Vector, float64) {}
func (Nop) Cube(cp.Vector, float64)     {}

type Kind uint8

const (
	KindRay Kind = iota
	KindWireCube
	KindCube
)

type Command struct {
	Kind  Kind
	Color cp.FColor
	From  cp.Vector
	Dir   cp.Vector
	Size  float64
}

// Buffer records commands until Reset.
type Buffer struct {
	color    cp.FColor
	Commands []Command
}

func NewBuffer() *Buffer {
	return &Buffer{color: Blue}
}

func (b *Buffer) SetColor(c cp.FColor) {
	b.color = c
}

func (b *Buffer) Ray(from, dir cp.Vector) {
	b.Commands = append(b.Commands, Command{Kind: KindRay, Color: b.color, From: from, Dir: dir})
}

func (b *Buffer) WireCube(center cp.Vector, size float64) {
	b.Commands = append(b.Commands, Command{Kind: KindWireCube, Color: b.color, From: center, Size: size})
}

func (b *Buffer) Cube(center cp.Vector, size float64) {
	b.Commands = append(b.Commands, Command{Kind: KindCube, Color: b.color, From: center, Size: size})
}

func (b *Buffer) Reset() {
	b.Commands = b.Commands[:0]
}

// Count returns how many commands of kind k are buffered.
func (b *Buffer) Count(k Kind) int {
	n := 0
	for _, c := range b.Commands {
		if c.Kind == k {
			n++
		}
	}
	return n
}
