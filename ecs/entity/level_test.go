package entity

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ldplayground/ecs/component"
	"github.com/milk9111/ldplayground/levels"
	"github.com/milk9111/ldplayground/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadPlayground(t *testing.T) (*levels.Level, *Archetypes) {
	t.Helper()
	lvl, err := levels.Load("playground")
	require.NoError(t, err)
	arch, err := LoadArchetypes(lvl)
	require.NoError(t, err)
	return lvl, arch
}

func TestBuildPlayground(t *testing.T) {
	lvl, arch := loadPlayground(t)

	w, space, err := BuildLevel(lvl, arch, nil)
	require.NoError(t, err)
	require.NotNil(t, space)

	assert.Len(t, w.Platforms, len(lvl.Platforms))
	assert.Len(t, w.Enemies, len(lvl.Enemies))
	assert.Len(t, w.Collectables, len(lvl.Collectables))
	assert.Len(t, w.Hazards, len(lvl.Hazards))
	assert.Len(t, w.Checkpoints, len(lvl.Checkpoints))
	assert.Len(t, w.Exits, len(lvl.Exits))

	assert.Equal(t, cp.Vector{X: 0, Y: 1}, w.PlayerSpawn)
	assert.Equal(t, -10.0, w.KillFloorY)
	assert.Equal(t, cp.Vector{Y: -20}, space.Gravity())
	assert.False(t, w.Player.Pawn.Valid, "player spawns on the first tick")
	assert.NotNil(t, w.Spawner)

	for i, c := range w.Collectables {
		assert.True(t, c.Active, "collectable %d", i)
		assert.NotNil(t, c.DisappearFinished, "collectable %d", i)
	}
	assert.Equal(t, cp.Vector{X: 40, Y: 1}, w.Checkpoints[1].SpawnPoint)
}

func TestBuildEnemies(t *testing.T) {
	lvl, arch := loadPlayground(t)
	w, _, err := BuildLevel(lvl, arch, nil)
	require.NoError(t, err)

	en := w.Enemies[0]
	assert.True(t, en.Valid)
	assert.True(t, en.MovingRight)
	assert.False(t, w.Enemies[1].MovingRight)
	assert.True(t, en.Pawn.Valid)
	assert.NotZero(t, en.Pawn.Collider)
	assert.NotEqual(t, en.Pawn.Collider, en.Pawn.Hitbox)
	assert.InDelta(t, en.Pawn.Markers.Top-en.Pawn.Markers.Bottom, en.Pawn.CharacterHeight, 1e-9)
	assert.False(t, en.Pawn.Body.Simulated(), "solver enables the body on its first run")
	assert.Same(t, &arch.Enemies[""].Kinematics, en.Pawn.Params)
	assert.Same(t, &arch.Enemies[""].AI, en.Params)
}

func TestBuildPlatforms(t *testing.T) {
	lvl, arch := loadPlayground(t)
	w, _, err := BuildLevel(lvl, arch, nil)
	require.NoError(t, err)

	ferry := w.Platforms[0]
	assert.Equal(t, component.TrackPingPong, ferry.TrackType)
	assert.InDelta(t, 33, ferry.Position.X(), 1e-9)
	assert.InDelta(t, 33, ferry.Body.Position().X, 1e-9)

	wheel := w.Platforms[1]
	assert.Equal(t, component.TrackCircular, wheel.TrackType)
	assert.InDelta(t, 15.5, wheel.Position.X(), 1e-9)
	assert.InDelta(t, 4, wheel.Position.Y(), 1e-9)
	assert.InDelta(t, 1, wheel.Position.Z(), 1e-9)
}

func TestBuildLevelRaycastsHitGround(t *testing.T) {
	lvl, arch := loadPlayground(t)
	_, space, err := BuildLevel(lvl, arch, nil)
	require.NoError(t, err)

	hits := make([]physics.RaycastHit, 8)
	n := space.Raycast(cp.Vector{X: 0, Y: 1}, cp.Vector{Y: -1}, 2, physics.LayerDefault, hits)
	require.Equal(t, 1, n)
	assert.InDelta(t, 0, hits[0].Point.Y, 1e-6)

	n = space.Raycast(cp.Vector{X: 6, Y: 3}, cp.Vector{Y: -1}, 2, physics.LayerOneWay, hits)
	require.Equal(t, 1, n)
	assert.True(t, hits[0].HasMaterial)
}

func TestBuildLevelErrors(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{
			name: "player spawn in solid",
			yaml: "player_spawn: {x: 0, y: 0}\nsolids:\n  - {x: 0, y: 0, w: 4, h: 1}\n",
		},
		{
			name: "checkpoint spawn in solid",
			yaml: "player_spawn: {x: 0, y: 2}\nsolids:\n  - {x: 0, y: 0, w: 4, h: 1}\ncheckpoints:\n  - {x: 1, y: 2, w: 1, h: 1, spawn: {x: 1, y: 0}}\n",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lvl, err := levels.Parse(c.name, []byte(c.yaml))
			require.NoError(t, err)
			arch, err := LoadArchetypes(lvl)
			require.NoError(t, err)

			_, _, err = BuildLevel(lvl, arch, nil)
			assert.ErrorIs(t, err, ErrNoSpawn)
		})
	}
}

func TestBuildLevelMissingArchetype(t *testing.T) {
	lvl, arch := loadPlayground(t)
	lvl.Enemies = append(lvl.Enemies, levels.Enemy{X: 5, Y: 1, Prefab: "bat"})

	_, _, err := BuildLevel(lvl, arch, nil)
	assert.ErrorContains(t, err, `archetype "bat" not loaded`)
}

func TestPlayerSpawner(t *testing.T) {
	lvl, arch := loadPlayground(t)
	w, space, err := BuildLevel(lvl, arch, nil)
	require.NoError(t, err)

	avatar := w.Spawner.SpawnPlayer(cp.Vector{X: 2, Y: 1})
	require.NotNil(t, avatar.Pawn.Body)
	assert.Equal(t, cp.Vector{X: 2, Y: 1}, avatar.Pawn.Position())
	assert.Same(t, &arch.Player.Kinematics, avatar.Pawn.Params)
	assert.NotNil(t, avatar.Pawn.SpawnFinished)

	hitbox := avatar.Pawn.Hitbox
	w.Spawner.DespawnPlayer(&avatar.Pawn)
	assert.Nil(t, avatar.Pawn.Body)
	assert.False(t, space.Touching(hitbox, hitbox))
}

func TestArchetypesReloadKeepsPointers(t *testing.T) {
	_, arch := loadPlayground(t)
	params := &arch.Player.Kinematics
	params.MaxRunSpeed = 99
	arch.Enemies[""].AI.AggroLossDelay = 42

	require.NoError(t, arch.Reload())
	assert.Same(t, params, &arch.Player.Kinematics)
	assert.NotEqual(t, 99.0, params.MaxRunSpeed)
	assert.NotEqual(t, 42.0, arch.Enemies[""].AI.AggroLossDelay)
	assert.Len(t, arch.Enemies, 1, "both playground enemies share the default archetype")
}
