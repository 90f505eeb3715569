package sim

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ldplayground/debugdraw"
	"github.com/milk9111/ldplayground/ecs"
	"github.com/milk9111/ldplayground/ecs/component"
	"github.com/milk9111/ldplayground/ecs/entity"
	"github.com/milk9111/ldplayground/ecs/system"
	"github.com/milk9111/ldplayground/levels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = 1.0 / 60

const flatLevel = `
name: flat
gravity: {x: 0, y: -20}
player_spawn: {x: 0, y: 1}
kill_floor_y: -10
solids:
  - {x: 0, y: -0.5, w: 20, h: 1}
`

func newSim(t *testing.T, src string, opts ...Option) *Simulation {
	t.Helper()
	lvl, err := levels.Parse("test", []byte(src))
	require.NoError(t, err)
	arch, err := entity.LoadArchetypes(lvl)
	require.NoError(t, err)
	w, _, err := entity.BuildLevel(lvl, arch, nil)
	require.NoError(t, err)
	return New(w, opts...)
}

func run(s *Simulation, ticks int, in component.PawnInput) {
	for i := 0; i < ticks; i++ {
		s.Tick(dt, in, component.GeneralInput{})
	}
}

func countEvents(events []ecs.Event, kind string) int {
	n := 0
	for _, e := range events {
		if e.Type == kind {
			n++
		}
	}
	return n
}

func TestNewSchedulesAnimationStandIn(t *testing.T) {
	cases := []struct {
		name    string
		opts    []Option
		systems int
	}{
		{name: "default", systems: 11},
		{name: "custom timings", opts: []Option{WithAnimation(system.AnimationTimings{SpawnDuration: 0.1, DeathDuration: 0.1})}, systems: 11},
		{name: "external animator", opts: []Option{WithExternalAnimator()}, systems: 10},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := New(ecs.NewWorld(nil), c.opts...)
			assert.Len(t, s.Systems(), c.systems)
		})
	}
}

func TestTickSettlesOnGround(t *testing.T) {
	s := newSim(t, flatLevel)

	run(s, 120, component.PawnInput{})

	player := s.World.Player
	require.True(t, player.Pawn.Valid)
	assert.True(t, player.FinishedSpawning)
	assert.True(t, player.Pawn.OnGroundPrev)
	assert.InDelta(t, 0, player.Pawn.Position().Y, 0.1)
	assert.InDelta(t, 0, player.Pawn.Position().X, 0.05)
	assert.Equal(t, uint64(120), s.Ticks())
	assert.InDelta(t, 2, s.World.ElapsedSeconds, 1e-9)

	events := s.World.Events().Drain()
	assert.Equal(t, 1, countEvents(events, ecs.EventPlayerSpawned))
}

func TestTickRunsToExitAndStaysPaused(t *testing.T) {
	s := newSim(t, flatLevel+`
exits:
  - {x: 3, y: 1, w: 1, h: 2}
`)

	right := component.PawnInput{MoveDir: cp.Vector{X: 1}}
	for i := 0; i < 240 && !s.World.LevelComplete; i++ {
		s.Tick(dt, right, component.GeneralInput{})
	}
	require.True(t, s.World.LevelComplete)
	assert.True(t, s.World.Paused)

	at := s.World.Player.Pawn.Position()
	ticks := s.Ticks()
	assert.False(t, s.Tick(dt, right, component.GeneralInput{}))
	assert.False(t, s.Tick(dt, right, component.GeneralInput{Pause: true}), "pause cannot resume a completed level")
	assert.Equal(t, at, s.World.Player.Pawn.Position())
	assert.Equal(t, ticks, s.Ticks())

	events := s.World.Events().Drain()
	assert.Equal(t, 1, countEvents(events, ecs.EventLevelComplete))
}

func TestTickPauseToggle(t *testing.T) {
	s := newSim(t, flatLevel)
	run(s, 10, component.PawnInput{})
	elapsed := s.World.ElapsedSeconds

	assert.False(t, s.Tick(dt, component.PawnInput{}, component.GeneralInput{Pause: true}))
	assert.True(t, s.World.Paused)
	assert.False(t, s.Tick(dt, component.PawnInput{}, component.GeneralInput{}))
	assert.Equal(t, elapsed, s.World.ElapsedSeconds)

	assert.True(t, s.Tick(dt, component.PawnInput{}, component.GeneralInput{Pause: true}))
	assert.False(t, s.World.Paused)
	assert.InDelta(t, elapsed+dt, s.World.ElapsedSeconds, 1e-12)
}

func TestTickGeneralToggles(t *testing.T) {
	s := newSim(t, flatLevel)

	s.Tick(dt, component.PawnInput{}, component.GeneralInput{DevMode: true, FullScreen: true})
	assert.True(t, s.World.DevMode)
	assert.True(t, s.FullScreen)

	s.Tick(dt, component.PawnInput{}, component.GeneralInput{DevMode: true})
	assert.False(t, s.World.DevMode)
	assert.True(t, s.FullScreen)
}

func TestTickDevModeFlies(t *testing.T) {
	s := newSim(t, flatLevel)
	run(s, 60, component.PawnInput{})
	require.True(t, s.World.Player.FinishedSpawning)
	start := s.World.Player.Pawn.Position()

	s.Tick(dt, component.PawnInput{}, component.GeneralInput{DevMode: true})
	run(s, 30, component.PawnInput{MoveDir: cp.Vector{Y: 1}})

	speed := s.World.Player.Pawn.Params.MaxRunSpeed
	assert.InDelta(t, start.Y+30*dt*speed, s.World.Player.Pawn.Position().Y, 0.01)
	assert.False(t, s.World.Player.Pawn.Body.Simulated())
}

func TestTickHazardKillsAndRespawns(t *testing.T) {
	s := newSim(t, flatLevel+`
hazards:
  - {x: 2, y: 0.2, w: 1, h: 0.4}
`)

	right := component.PawnInput{MoveDir: cp.Vector{X: 1}}
	var events []ecs.Event
	for i := 0; i < 300; i++ {
		s.Tick(dt, right, component.GeneralInput{})
		events = append(events, s.World.Events().Drain()...)
	}

	assert.GreaterOrEqual(t, countEvents(events, ecs.EventPlayerKilled), 1)
	assert.GreaterOrEqual(t, countEvents(events, ecs.EventPlayerRemoved), 1)
	assert.GreaterOrEqual(t, countEvents(events, ecs.EventPlayerSpawned), 2)
	assert.Less(t, s.World.Player.Pawn.Position().X, 2.5)
}

func TestTickResetsDebugBuffer(t *testing.T) {
	s := newSim(t, flatLevel)
	buf := debugdraw.NewBuffer()
	s.World.Debug = buf

	run(s, 60, component.PawnInput{})
	rays := buf.Count(debugdraw.KindRay)
	require.NotZero(t, rays)

	run(s, 1, component.PawnInput{})
	assert.Equal(t, rays, buf.Count(debugdraw.KindRay))
}
