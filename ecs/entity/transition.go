package entity

import (
	"github.com/milk9111/ldplayground/ecs"
	"github.com/milk9111/ldplayground/ecs/component"
	"github.com/milk9111/ldplayground/levels"
	"github.com/milk9111/ldplayground/physics"
)

func NewCheckpoint(w *ecs.World, space *physics.Space, c levels.Checkpoint) component.Checkpoint {
	return component.Checkpoint{
		Collider:   trigger(space, c.Box),
		SpawnPoint: c.Spawn.Vector(),
		Signals:    w.Signals("checkpoint"),
	}
}

func NewLevelExit(w *ecs.World, space *physics.Space, b levels.Box) component.LevelExit {
	return component.LevelExit{
		Collider: trigger(space, b),
		Signals:  w.Signals("exit"),
	}
}
