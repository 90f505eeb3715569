package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/milk9111/ldplayground/debugdraw"
	"github.com/milk9111/ldplayground/ecs"
	"github.com/milk9111/ldplayground/ecs/entity"
	"github.com/milk9111/ldplayground/ecs/system"
	"github.com/milk9111/ldplayground/input"
	"github.com/milk9111/ldplayground/levels"
	"github.com/milk9111/ldplayground/logging"
	"github.com/milk9111/ldplayground/prefabs"
	"github.com/milk9111/ldplayground/sim"
	"go.uber.org/zap"
)

type config struct {
	level    string
	ticks    int
	dt       float64
	script   string
	watch    bool
	dev      bool
	logLevel string
	debug    bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.level, "level", "playground", "level name in levels/ (basename, .yaml optional)")
	flag.IntVar(&cfg.ticks, "ticks", 600, "number of fixed ticks to run")
	flag.Float64Var(&cfg.dt, "dt", 1.0/60, "seconds per tick")
	flag.StringVar(&cfg.script, "script", "", "input script in prefabs/scripts (empty holds still)")
	flag.BoolVar(&cfg.watch, "watch", false, "reload prefab specs and the input script when they change")
	flag.BoolVar(&cfg.dev, "dev", false, "start in dev mode free-fly")
	flag.StringVar(&cfg.logLevel, "log-level", "info", "debug, info, warn or error")
	flag.BoolVar(&cfg.debug, "debug", false, "console logging and debug draw statistics")
	flag.Parse()

	log, err := logging.New(cfg.logLevel, cfg.debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ldpsim: logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("run failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, log *zap.Logger) error {
	if cfg.dt <= 0 {
		return fmt.Errorf("dt must be positive, got %v", cfg.dt)
	}

	lvl, err := levels.Load(cfg.level)
	if err != nil {
		return err
	}
	arch, err := entity.LoadArchetypes(lvl)
	if err != nil {
		return err
	}
	timings, err := prefabs.LoadAnimationSpec()
	if err != nil {
		return err
	}
	w, _, err := entity.BuildLevel(lvl, arch, log)
	if err != nil {
		return err
	}
	w.DevMode = cfg.dev

	var buf *debugdraw.Buffer
	if cfg.debug {
		buf = debugdraw.NewBuffer()
		w.Debug = buf
	}

	src, err := loadSource(cfg.script)
	if err != nil {
		return err
	}

	var watcher *prefabs.Watcher
	if cfg.watch {
		watcher, err = prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			return err
		}
		defer watcher.Close()
	}

	s := sim.New(w, sim.WithAnimation(system.AnimationTimings(*timings)))
	cues := make(map[string]int)
	events := make(map[string]int)
	debugRays := 0

	for tick := 0; tick < cfg.ticks; tick++ {
		if err := ctx.Err(); err != nil {
			log.Warn("interrupted", zap.Int("tick", tick))
			break
		}
		if watcher != nil {
			if next, ok := reload(watcher, arch, cfg.script, log); ok {
				src = next
			}
		}

		frame, err := nextFrame(ctx, src, tick, cfg.dt)
		if err != nil {
			return fmt.Errorf("input at tick %d: %w", tick, err)
		}
		s.Tick(cfg.dt, frame.Pawn, frame.General)
		if buf != nil {
			debugRays += buf.Count(debugdraw.KindRay)
		}

		for _, evt := range w.Events().Drain() {
			events[evt.Type]++
			if cue, ok := evt.Data.(ecs.CueEvent); ok {
				cues[string(cue.Cue)]++
			}
		}
		if w.LevelComplete {
			break
		}
	}

	pos := w.Player.Pawn.Position()
	if !w.Player.Pawn.Valid {
		pos = w.LastKnownPlayerPos
	}
	fields := []zap.Field{
		zap.String("level", lvl.Name),
		zap.Uint64("ticks", s.Ticks()),
		zap.Float64("elapsed", w.ElapsedSeconds),
		zap.Bool("complete", w.LevelComplete),
		zap.Int("pickups", w.PickupCount),
		zap.Int("checkpoint", w.SaveState.CheckpointIndex),
		zap.Float64("x", pos.X),
		zap.Float64("y", pos.Y),
		zap.Any("events", events),
		zap.Any("cues", cues),
	}
	if buf != nil {
		fields = append(fields, zap.Int("debug_rays", debugRays))
	}
	log.Info("simulation finished", fields...)
	return nil
}

func loadSource(script string) (input.Source, error) {
	if script == "" {
		return input.Hold(0), nil
	}
	data, err := prefabs.LoadScript(script)
	if err != nil {
		return nil, fmt.Errorf("load script %q: %w", script, err)
	}
	return input.NewScriptSource(data)
}

func nextFrame(ctx context.Context, src input.Source, tick int, dt float64) (input.Frame, error) {
	if s, ok := src.(*input.ScriptSource); ok {
		return s.NextContext(ctx, tick, dt)
	}
	return src.Next(tick, dt)
}

// reload drains pending changes. It returns a new input source when the
// running script changed and still compiles.
func reload(watcher *prefabs.Watcher, arch *entity.Archetypes, script string, log *zap.Logger) (input.Source, bool) {
	var next input.Source
	for {
		select {
		case change, ok := <-watcher.Events:
			if !ok {
				return next, next != nil
			}
			switch change.Kind {
			case prefabs.ChangeSpec:
				if err := arch.Reload(); err != nil {
					log.Warn("spec reload failed", zap.String("path", change.Path), zap.Error(err))
					continue
				}
				log.Info("specs reloaded", zap.String("path", change.Path))
			case prefabs.ChangeScript:
				if script == "" || prefabs.ScriptName(script) != change.Name() {
					continue
				}
				src, err := loadSource(script)
				if err != nil {
					log.Warn("script reload failed", zap.String("path", change.Path), zap.Error(err))
					continue
				}
				next = src
				log.Info("script reloaded", zap.String("path", change.Path))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return next, next != nil
			}
			if !errors.Is(err, os.ErrClosed) {
				log.Warn("watch error", zap.Error(err))
			}
		default:
			return next, next != nil
		}
	}
}
