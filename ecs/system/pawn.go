package system

import "github.com/milk9111/ldplayground/ecs/component"

// InitializePawn derives dimensions from the markers, resets animation
// sensors and parks the body until the solver first runs it.
func InitializePawn(p *component.Pawn) {
	p.CharacterHeight = p.Markers.Top - p.Markers.Bottom
	p.HipsHeight = p.Markers.Hips - p.Markers.Bottom

	p.SpawnFinished.Reset()
	p.DeathFinished.Reset()

	if p.Body != nil {
		p.Body.SetSimulated(false)
	}
	p.Valid = true
}

func InitializeEnemy(e *component.Enemy) {
	e.Valid = true
	InitializePawn(&e.Pawn)
}

func InitializePlayerAvatar(p *component.PlayerAvatar) {
	p.FinishedSpawning = false
	InitializePawn(&p.Pawn)
}

// KillPawn marks the pawn killed and stops its body. It reports false and
// does nothing if the pawn was already killed.
func KillPawn(p *component.Pawn) bool {
	if p.Killed {
		return false
	}
	p.Killed = true
	if p.Body != nil {
		p.Body.SetSimulated(false)
	}
	signals := p.Emit()
	signals.SetTrigger(component.ParamKilled)
	signals.Play(component.CueDeath)
	return true
}
