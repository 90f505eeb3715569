// Package sim runs the fixed per-tick order over an ecs.World.
package sim

import (
	"github.com/milk9111/ldplayground/debugdraw"
	"github.com/milk9111/ldplayground/ecs"
	"github.com/milk9111/ldplayground/ecs/component"
	"github.com/milk9111/ldplayground/ecs/system"
	"go.uber.org/zap"
)

type options struct {
	animate bool
	timings system.AnimationTimings
}

type Option func(*options)

// WithAnimation sets the clip lengths of the built-in animation stand-in.
func WithAnimation(timings system.AnimationTimings) Option {
	return func(o *options) {
		o.animate = true
		o.timings = timings
	}
}

// WithExternalAnimator drops the animation stand-in; the host fires the
// pawn and collectable sensors itself.
func WithExternalAnimator() Option {
	return func(o *options) {
		o.animate = false
	}
}

type Simulation struct {
	World *ecs.World

	// FullScreen only mirrors the toggle for hosts that render.
	FullScreen bool

	scheduler *ecs.Scheduler
	ticks     uint64
}

func New(w *ecs.World, opts ...Option) *Simulation {
	o := options{animate: true, timings: system.DefaultAnimationTimings()}
	for _, opt := range opts {
		opt(&o)
	}

	scheduler := ecs.NewScheduler()
	if o.animate {
		scheduler.Add(system.NewAnimationSystem(o.timings))
	}
	scheduler.Add(system.NewSnapshotSystem())
	scheduler.Add(system.NewRespawnSystem())
	scheduler.Add(system.NewPlatformSystem())
	scheduler.Add(system.NewEnemySystem())
	scheduler.Add(system.NewPlayerSystem())
	scheduler.Add(system.NewPhysicsSystem())
	scheduler.Add(system.NewInteractionSystem())
	scheduler.Add(system.NewCollectableCleanupSystem())
	scheduler.Add(system.NewPlayerDeathSystem())
	scheduler.Add(system.NewClockSystem())

	return &Simulation{World: w, scheduler: scheduler}
}

// Tick applies the general input and, unless paused, runs one step of dt
// seconds. It reports whether the step ran.
func (s *Simulation) Tick(dt float64, pawn component.PawnInput, general component.GeneralInput) bool {
	w := s.World
	if w == nil {
		return false
	}
	s.applyGeneral(general)
	if w.Paused {
		return false
	}

	if buf, ok := w.Debug.(*debugdraw.Buffer); ok {
		buf.Reset()
	}
	w.DeltaTime = dt
	w.Input = pawn
	s.scheduler.Update(w)
	s.ticks++
	return true
}

func (s *Simulation) applyGeneral(in component.GeneralInput) {
	w := s.World
	if in.Pause && !w.LevelComplete {
		w.Paused = !w.Paused
		w.Logger().Debug("pause toggled", zap.Bool("paused", w.Paused))
	}
	if in.DevMode {
		w.DevMode = !w.DevMode
		w.Logger().Info("dev mode toggled", zap.Bool("dev_mode", w.DevMode))
	}
	if in.FullScreen {
		s.FullScreen = !s.FullScreen
	}
}

// Ticks returns how many steps have run.
func (s *Simulation) Ticks() uint64 {
	return s.ticks
}

func (s *Simulation) Systems() []ecs.System {
	return s.scheduler.Systems()
}
