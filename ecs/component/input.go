package component

import "github.com/jakecoffman/cp"

// PawnInput is one tick of movement intent.
type PawnInput struct {
	MoveDir       cp.Vector
	JumpTriggered bool
	JumpHeld      bool
	Fallthrough   bool
}

// GeneralInput holds inputs that drive the simulation itself rather than
// a pawn.
type GeneralInput struct {
	Pause      bool
	FullScreen bool
	DevMode    bool
}
