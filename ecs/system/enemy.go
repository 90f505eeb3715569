package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ldplayground/common"
	"github.com/milk9111/ldplayground/ecs"
	"github.com/milk9111/ldplayground/ecs/component"
	"github.com/milk9111/ldplayground/physics"
	"go.uber.org/zap"
)

// visionBand is the fraction of the enemy's height the player may be
// above or below it and still be seen.
const visionBand = 0.4

// EnemyDecision is the outcome of one perception pass.
type EnemyDecision struct {
	Input        component.PawnInput
	CanSeePlayer bool
	KilledPlayer bool
	AggroChanged bool
}

// DecideEnemy runs perception and the calm/aggro state machine for one
// enemy and returns the movement input to feed the solver.
func DecideEnemy(phys physics.World, hits []physics.RaycastHit, en *component.Enemy, player *component.Pawn, dt float64) EnemyDecision {
	var d EnemyDecision
	params := en.Params
	if params == nil {
		defaults := component.DefaultEnemyParams()
		params = &defaults
	}

	moveX := facing(en.MovingRight)
	var toPlayer cp.Vector
	if player != nil && player.Valid {
		if phys.Touching(en.Pawn.Collider, player.Collider) && KillPawn(player) {
			en.Pawn.Emit().Play(component.CueHitPlayer)
			d.KilledPlayer = true
		}

		toPlayer = player.Position().Sub(en.Pawn.Position())
		vision := params.VisionMaxDistCalm
		if en.IsAggro {
			vision = params.VisionMaxDistAggro
		}
		d.CanSeePlayer = toPlayer.Length() <= vision &&
			math.Abs(toPlayer.Y) <= en.Pawn.CharacterHeight*visionBand

		// A calm enemy only sees what is in front of it.
		if !en.IsAggro {
			d.CanSeePlayer = d.CanSeePlayer && common.Sign(toPlayer.X) == common.Sign(moveX)
		}
		if d.CanSeePlayer {
			d.CanSeePlayer = lineOfSight(phys, hits, &en.Pawn, player)
		}
	}

	if d.CanSeePlayer {
		en.TimeSinceSeenPlayer = 0
	} else {
		en.TimeSinceSeenPlayer += dt
	}

	switch {
	case !en.IsAggro && d.CanSeePlayer:
		en.IsAggro = true
		d.AggroChanged = true
	case en.IsAggro && en.TimeSinceSeenPlayer >= params.AggroLossDelay:
		en.IsAggro = false
		d.AggroChanged = true
	}
	if d.AggroChanged {
		en.Pawn.Emit().SetBool(component.ParamAngry, en.IsAggro)
	}

	if en.IsAggro && d.CanSeePlayer {
		en.MovingRight = toPlayer.X > 0
		moveX = facing(en.MovingRight)
	}

	if en.IsAggro {
		moveX *= params.SpeedScaleAggro
	} else {
		moveX *= params.SpeedScaleCalm
	}
	d.Input = component.PawnInput{MoveDir: cp.Vector{X: moveX}}
	return d
}

// lineOfSight casts from the enemy's hips to the player's. The first solid
// hit that is not the enemy itself must be the player.
func lineOfSight(phys physics.World, hits []physics.RaycastHit, self, player *component.Pawn) bool {
	from := self.HipsPosition()
	to := player.HipsPosition().Sub(from)
	dist := to.Length()
	if dist < common.Epsilon {
		return true
	}
	count := phys.Raycast(from, to, dist, physics.LayerAll, hits)
	for _, hit := range hits[:count] {
		if hit.Trigger || hit.Collider == self.Collider {
			continue
		}
		return hit.Collider == player.Collider
	}
	return true
}

func facing(right bool) float64 {
	if right {
		return 1
	}
	return -1
}

type EnemySystem struct{}

func NewEnemySystem() *EnemySystem {
	return &EnemySystem{}
}

func (s *EnemySystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	log := w.Logger()
	ctx := kineticsContext(w)

	for i := range w.Enemies {
		en := &w.Enemies[i]
		if !en.Valid {
			continue
		}

		if en.Pawn.Killed {
			if en.Pawn.DeathFinished.Peek() {
				en.Valid = false
				en.Pawn.Valid = false
				if en.Pawn.Body != nil {
					en.Pawn.Body.SetSimulated(false)
				}
				log.Debug("enemy removed", zap.Int("enemy", i))
				w.Emit(ecs.EventEnemyRemoved, i)
			}
			continue
		}

		d := DecideEnemy(w.Physics, w.RaycastHits, en, &w.Player.Pawn, w.DeltaTime)
		if d.KilledPlayer {
			log.Info("player killed", zap.String("cause", "enemy"), zap.Int("enemy", i))
			w.Emit(ecs.EventPlayerKilled, ecs.KillEvent{Enemy: i, Cause: "enemy"})
		}
		if d.AggroChanged {
			log.Debug("enemy aggro", zap.Int("enemy", i), zap.Bool("aggro", en.IsAggro))
		}

		params := en.Pawn.Params
		if params == nil {
			defaults := component.DefaultKinematicsParams()
			params = &defaults
		}
		res := SolvePawnKinetics(ctx, &en.Pawn, d.Input, params)
		reportBounce(w, res)

		// Turn around at ledges and walls.
		if !res.Forward.Valid || res.Forward.ForwardDistanceNormalized < 1 {
			en.MovingRight = !en.MovingRight
		}
	}
}

func kineticsContext(w *ecs.World) KineticsContext {
	return KineticsContext{
		Physics:   w.Physics,
		DeltaTime: w.DeltaTime,
		Platforms: w.Platforms,
		Enemies:   w.Enemies,
		Hits:      w.RaycastHits,
		Debug:     w.DebugSink(),
	}
}

func reportBounce(w *ecs.World, res KineticsResult) {
	if res.BouncedEnemy < 0 {
		return
	}
	w.Logger().Debug("enemy killed", zap.Int("enemy", res.BouncedEnemy), zap.String("cause", "bounce"))
	w.Emit(ecs.EventEnemyKilled, ecs.KillEvent{Enemy: res.BouncedEnemy, Cause: "bounce"})
}
