package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ldplayground/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerSystemWaitsForSpawn(t *testing.T) {
	phys := newFakePhysics(ground(-5, 5, 0, 10))
	w := newTestWorld(phys)
	w.Player.Pawn = newTestPlayer(phys, cp.Vector{Y: restY(0)})
	w.Input = component.PawnInput{MoveDir: cp.Vector{X: 1}}
	sys := NewPlayerSystem()

	sys.Update(w)
	require.False(t, w.Player.FinishedSpawning)
	assert.Equal(t, cp.Vector{}, w.Player.Pawn.Body.Velocity())

	w.Player.Pawn.SpawnFinished.Fire()
	sys.Update(w)

	assert.True(t, w.Player.FinishedSpawning)
	assert.False(t, w.Player.Pawn.SpawnFinished.Peek())
	assert.InDelta(t, 1.0, w.Player.Pawn.Body.Velocity().X, 1e-9)
}

func TestPlayerSystemSkipsDeadPlayer(t *testing.T) {
	phys := newFakePhysics(ground(-5, 5, 0, 10))
	w := newTestWorld(phys)
	w.Player = component.PlayerAvatar{Pawn: newTestPlayer(phys, cp.Vector{Y: restY(0)}), FinishedSpawning: true}
	w.Player.Pawn.Killed = true
	w.Input = component.PawnInput{MoveDir: cp.Vector{X: 1}}

	NewPlayerSystem().Update(w)

	assert.Equal(t, cp.Vector{}, w.Player.Pawn.Body.Velocity())
	assert.Zero(t, phys.casts)
}

func TestPlayerSystemDevMode(t *testing.T) {
	phys := newFakePhysics()
	w := newTestWorld(phys)
	w.Player = component.PlayerAvatar{Pawn: newTestPlayer(phys, cp.Vector{X: 1, Y: 1}), FinishedSpawning: true}
	w.DevMode = true
	w.DeltaTime = 0.5
	w.Input = component.PawnInput{MoveDir: cp.Vector{X: 1, Y: -1}}

	NewPlayerSystem().Update(w)

	pawn := &w.Player.Pawn
	speed := pawn.Params.MaxRunSpeed
	assert.Equal(t, cp.Vector{X: 1 + 0.5*speed, Y: 1 - 0.5*speed}, pawn.Body.Position())
	assert.False(t, pawn.Body.Simulated())
	assert.True(t, pawn.IsJumping)
	assert.Zero(t, phys.casts, "dev mode bypasses the solver")
}

func TestPlayerSystemFallthrough(t *testing.T) {
	phys := newFakePhysics(ground(-5, 5, 0, 10))
	w := newTestWorld(phys)
	w.Player = component.PlayerAvatar{Pawn: newTestPlayer(phys, cp.Vector{Y: restY(0)}), FinishedSpawning: true}
	body := w.Player.Pawn.Body.(*fakeBody)

	w.Input = component.PawnInput{Fallthrough: true}
	NewPlayerSystem().Update(w)
	assert.True(t, body.passThrough)

	w.Input = component.PawnInput{}
	NewPlayerSystem().Update(w)
	assert.False(t, body.passThrough)
}

func TestPlayerSystemBounceEvent(t *testing.T) {
	phys := newFakePhysics(ground(-5, 5, 0, enemyCollider))
	w := newTestWorld(phys)
	w.Player = component.PlayerAvatar{Pawn: newTestPlayer(phys, cp.Vector{Y: restY(0)}), FinishedSpawning: true}
	w.Enemies = []component.Enemy{newTestEnemy(phys, cp.Vector{Y: -2}, true)}

	NewPlayerSystem().Update(w)

	assert.True(t, w.Enemies[0].Pawn.Killed)
	events := w.Events().Drain()
	require.Len(t, events, 1)
	assert.Equal(t, "enemy_killed", events[0].Type)
}
