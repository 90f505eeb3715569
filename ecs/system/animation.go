package system

import (
	"github.com/milk9111/ldplayground/ecs"
	"github.com/milk9111/ldplayground/ecs/component"
)

// AnimationTimings are the clip lengths the headless animator plays.
type AnimationTimings struct {
	SpawnDuration     float64
	DeathDuration     float64
	DisappearDuration float64
	FootstepInterval  float64
}

func DefaultAnimationTimings() AnimationTimings {
	return AnimationTimings{
		SpawnDuration:     0.5,
		DeathDuration:     0.75,
		DisappearDuration: 0.4,
		FootstepInterval:  0.3,
	}
}

type sensorTimer struct {
	elapsed float64
	tick    uint64
}

// AnimationSystem stands in for an animator when none is attached. It
// raises the spawn, death, disappear and footstep sensors after the
// configured durations.
type AnimationSystem struct {
	timings AnimationTimings
	timers  map[*component.Sensor]*sensorTimer
	tick    uint64
}

func NewAnimationSystem(timings AnimationTimings) *AnimationSystem {
	return &AnimationSystem{
		timings: timings,
		timers:  make(map[*component.Sensor]*sensorTimer),
	}
}

func (s *AnimationSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	s.tick++
	dt := w.DeltaTime

	player := &w.Player
	if player.Pawn.Valid && !player.FinishedSpawning {
		s.once(player.Pawn.SpawnFinished, s.timings.SpawnDuration, dt)
	}
	s.pawn(&player.Pawn, dt)

	for i := range w.Enemies {
		if w.Enemies[i].Valid {
			s.pawn(&w.Enemies[i].Pawn, dt)
		}
	}

	for i := range w.Collectables {
		c := &w.Collectables[i]
		if c.Collected && c.Active {
			s.once(c.DisappearFinished, s.timings.DisappearDuration, dt)
		}
	}

	for sensor, t := range s.timers {
		if t.tick != s.tick {
			delete(s.timers, sensor)
		}
	}
}

func (s *AnimationSystem) pawn(p *component.Pawn, dt float64) {
	if !p.Valid {
		return
	}
	if p.Killed {
		s.once(p.DeathFinished, s.timings.DeathDuration, dt)
		return
	}
	if s.timings.FootstepInterval > 0 {
		t := s.timer(p.Footstep)
		if t == nil {
			return
		}
		t.elapsed += dt
		if t.elapsed >= s.timings.FootstepInterval {
			t.elapsed -= s.timings.FootstepInterval
			p.Footstep.Fire()
		}
	}
}

// once fires sensor after duration seconds unless it is already raised.
func (s *AnimationSystem) once(sensor *component.Sensor, duration, dt float64) {
	if sensor.Peek() {
		return
	}
	t := s.timer(sensor)
	if t == nil {
		return
	}
	t.elapsed += dt
	if t.elapsed >= duration {
		sensor.Fire()
		delete(s.timers, sensor)
	}
}

func (s *AnimationSystem) timer(sensor *component.Sensor) *sensorTimer {
	if sensor == nil {
		return nil
	}
	t, ok := s.timers[sensor]
	if !ok {
		t = &sensorTimer{}
		s.timers[sensor] = t
	}
	t.tick = s.tick
	return t
}
