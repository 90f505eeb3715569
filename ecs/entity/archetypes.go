package entity

import (
	"fmt"

	"github.com/milk9111/ldplayground/levels"
	"github.com/milk9111/ldplayground/prefabs"
)

// Archetypes are the prefab specs a level is built from. Pawns point into
// these specs, so editing a spec in place retunes every pawn built from it.
type Archetypes struct {
	Player  *prefabs.PlayerSpec
	Enemies map[string]*prefabs.EnemySpec
}

// LoadArchetypes loads the player spec and every enemy variant lvl uses.
func LoadArchetypes(lvl *levels.Level) (*Archetypes, error) {
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, fmt.Errorf("entity: player archetype: %w", err)
	}
	arch := &Archetypes{
		Player:  player,
		Enemies: make(map[string]*prefabs.EnemySpec),
	}
	for _, e := range lvl.Enemies {
		if _, ok := arch.Enemies[e.Prefab]; ok {
			continue
		}
		spec, err := prefabs.LoadEnemyVariant(e.Prefab)
		if err != nil {
			return nil, fmt.Errorf("entity: enemy archetype %q: %w", e.Prefab, err)
		}
		arch.Enemies[e.Prefab] = spec
	}
	return arch, nil
}

// Reload re-reads the specs and copies their tuning over the loaded ones.
func (a *Archetypes) Reload() error {
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return fmt.Errorf("entity: reload player: %w", err)
	}
	a.Player.Kinematics = player.Kinematics
	for name, spec := range a.Enemies {
		fresh, err := prefabs.LoadEnemyVariant(name)
		if err != nil {
			return fmt.Errorf("entity: reload enemy %q: %w", name, err)
		}
		spec.Kinematics = fresh.Kinematics
		spec.AI = fresh.AI
	}
	return nil
}
