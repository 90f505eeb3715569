package ecs

import (
	"testing"

	"github.com/milk9111/ldplayground/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerRunsInOrder(t *testing.T) {
	var order []string
	record := func(name string) System {
		return SystemFunc(func(*World) { order = append(order, name) })
	}

	cases := []struct {
		name    string
		systems []System
		want    []string
	}{
		{"empty", nil, nil},
		{"three", []System{record("a"), record("b"), record("c")}, []string{"a", "b", "c"}},
		{"nil_skipped", []System{record("a"), nil, record("b")}, []string{"a", "b"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			order = nil
			s := NewScheduler(c.systems...)
			s.Update(NewWorld(nil))
			assert.Equal(t, c.want, order)
			assert.Len(t, s.Systems(), len(c.want))
		})
	}
}

func TestEventQueueDrain(t *testing.T) {
	w := NewWorld(nil)
	assert.Nil(t, w.Events().Drain())

	w.Emit(EventPlayerKilled, KillEvent{Enemy: -1, Cause: "hazard"})
	w.Emit(EventLevelComplete, nil)
	require.Equal(t, 2, w.Events().Len())

	events := w.Events().Drain()
	require.Len(t, events, 2)
	assert.Equal(t, EventPlayerKilled, events[0].Type)
	assert.Equal(t, "hazard", events[0].Data.(KillEvent).Cause)
	assert.Equal(t, 0, w.Events().Len())

	var q *EventQueue
	q.Push(Event{})
	assert.Nil(t, q.Drain())
}

func TestWorldSignalsForwardCues(t *testing.T) {
	w := NewWorld(nil)
	sink := w.Signals("player")
	sink.SetBool(component.ParamGrounded, true)
	sink.SetTrigger(component.ParamJumpStart)
	sink.Play(component.CueJump)

	events := w.Events().Drain()
	require.Len(t, events, 1)
	assert.Equal(t, EventCue, events[0].Type)
	assert.Equal(t, CueEvent{Source: "player", Cue: component.CueJump}, events[0].Data)
}

func TestNewWorldDefaults(t *testing.T) {
	w := NewWorld(nil)
	assert.Len(t, w.RaycastHits, RaycastCapacity)
	assert.Equal(t, component.LevelStartIndex, w.SaveState.CheckpointIndex)
	assert.NotNil(t, w.Logger())
	assert.NotNil(t, w.DebugSink())
	assert.Equal(t, 0, w.History.Len())
}
