package entity

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ldplayground/ecs"
	"github.com/milk9111/ldplayground/ecs/component"
	"github.com/milk9111/ldplayground/ecs/system"
	"github.com/milk9111/ldplayground/levels"
	"github.com/milk9111/ldplayground/physics"
	"go.uber.org/zap"
)

// ErrNoSpawn is returned when a spawn point lies inside solid geometry.
var ErrNoSpawn = errors.New("entity: spawn point is inside a solid")

// BuildLevel creates the physics space for lvl and a world populated with
// its objects. The player is not spawned; the first tick does that.
func BuildLevel(lvl *levels.Level, arch *Archetypes, log *zap.Logger) (*ecs.World, *physics.Space, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := checkSpawns(lvl); err != nil {
		return nil, nil, err
	}

	space := physics.NewSpace(lvl.Gravity.Vector())
	w := ecs.NewWorld(space)
	w.Log = log
	w.PlayerSpawn = lvl.PlayerSpawn.Vector()
	w.KillFloorY = lvl.KillFloor()
	w.Spawner = &PlayerSpawner{World: w, Space: space, Spec: arch.Player}

	for _, b := range lvl.Solids {
		space.AddStatic(b.Center(), physics.ShapeDef{Width: b.W, Height: b.H, Material: b.Material})
	}
	for _, b := range lvl.OneWay {
		space.AddStatic(b.Center(), physics.ShapeDef{
			Width:    b.W,
			Height:   b.H,
			Layer:    physics.LayerOneWay,
			Material: b.Material,
		})
	}

	for _, def := range lvl.Platforms {
		p, err := NewPlatform(space, def)
		if err != nil {
			return nil, nil, err
		}
		w.Platforms = append(w.Platforms, p)
	}
	for i, def := range lvl.Enemies {
		en, err := NewEnemy(w, space, arch, def)
		if err != nil {
			return nil, nil, fmt.Errorf("enemy %d: %w", i, err)
		}
		w.Enemies = append(w.Enemies, en)
	}
	for _, b := range lvl.Collectables {
		w.Collectables = append(w.Collectables, NewCollectable(w, space, b))
	}
	for _, b := range lvl.Hazards {
		w.Hazards = append(w.Hazards, NewHazard(w, space, b))
	}
	for _, c := range lvl.Checkpoints {
		w.Checkpoints = append(w.Checkpoints, NewCheckpoint(w, space, c))
	}
	for _, b := range lvl.Exits {
		w.Exits = append(w.Exits, NewLevelExit(w, space, b))
	}

	log.Info("level built",
		zap.String("level", lvl.Name),
		zap.Int("solids", len(lvl.Solids)),
		zap.Int("platforms", len(w.Platforms)),
		zap.Int("enemies", len(w.Enemies)),
		zap.Int("collectables", len(w.Collectables)),
		zap.Int("checkpoints", len(w.Checkpoints)),
	)
	return w, space, nil
}

// NewPlatform places a kinematic platform at the start of its track.
func NewPlatform(space *physics.Space, def levels.Platform) (component.MovingPlatform, error) {
	track, err := def.TrackType()
	if err != nil {
		return component.MovingPlatform{}, fmt.Errorf("platform %q: %w", def.Name, err)
	}
	p := component.MovingPlatform{
		Name:           def.Name,
		TrackType:      track,
		Anchor:         def.Anchor.Vec3(),
		CircularRadius: def.Radius,
		CycleTime:      def.CycleTime,
		LoopOffset:     def.LoopOffset,
	}
	p.Waypoints[0] = def.From.Vec3()
	p.Waypoints[1] = def.To.Vec3()
	p.Position = system.EvaluatePlatformPosition(&p, p.LoopOffset)

	body := space.AddKinematic(cp.Vector{X: p.Position.X(), Y: p.Position.Y()}, physics.ShapeDef{
		Width:    def.Width,
		Height:   def.Height,
		Material: def.Material,
	})
	p.Body = body
	p.Collider = body.Collider()
	return p, nil
}

func checkSpawns(lvl *levels.Level) error {
	if inSolid(lvl, lvl.PlayerSpawn) {
		return fmt.Errorf("%w: player spawn (%v, %v)", ErrNoSpawn, lvl.PlayerSpawn.X, lvl.PlayerSpawn.Y)
	}
	for i, c := range lvl.Checkpoints {
		if inSolid(lvl, c.Spawn) {
			return fmt.Errorf("%w: checkpoint %d spawn (%v, %v)", ErrNoSpawn, i, c.Spawn.X, c.Spawn.Y)
		}
	}
	return nil
}

func inSolid(lvl *levels.Level, at levels.Vec2) bool {
	for _, b := range lvl.Solids {
		if math.Abs(at.X-b.X) < b.W/2 && math.Abs(at.Y-b.Y) < b.H/2 {
			return true
		}
	}
	return false
}
