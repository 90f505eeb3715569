package ecs

import "github.com/milk9111/ldplayground/ecs/component"

// Event is a generic simulation event payload.
type Event struct {
	Type string
	Data any
}

const (
	EventPlayerSpawned       = "player_spawned"
	EventPlayerKilled        = "player_killed"
	EventPlayerRemoved       = "player_removed"
	EventEnemyKilled         = "enemy_killed"
	EventEnemyRemoved        = "enemy_removed"
	EventPickupCollected     = "pickup_collected"
	EventCheckpointActivated = "checkpoint_activated"
	EventLevelComplete       = "level_complete"
	EventCue                 = "cue"
)

// KillEvent carries why a pawn died.
type KillEvent struct {
	Enemy int // enemy involved, -1 when none
	Cause string
}

// CueEvent is emitted for every sound cue routed through the world.
type CueEvent struct {
	Source string
	Cue    component.Cue
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// queueSignals forwards sound cues onto the world queue. Animation
// parameters have no headless consumer and are dropped.
type queueSignals struct {
	w      *World
	source string
}

// Signals returns a SignalSink that reports cues as EventCue events.
func (w *World) Signals(source string) component.SignalSink {
	return &queueSignals{w: w, source: source}
}

func (s *queueSignals) SetBool(component.ParamID, bool)     {}
func (s *queueSignals) SetFloat(component.ParamID, float64) {}
func (s *queueSignals) SetTrigger(component.ParamID)        {}

func (s *queueSignals) Play(cue component.Cue) {
	s.w.Emit(EventCue, CueEvent{Source: s.source, Cue: cue})
}
