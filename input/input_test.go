package input

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/ldplayground/ecs/component"
	"github.com/milk9111/ldplayground/prefabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = 1.0 / 60

func TestStaticSource(t *testing.T) {
	src := Hold(-0.5)
	for tick := 0; tick < 3; tick++ {
		f, err := src.Next(tick, dt)
		require.NoError(t, err)
		assert.Equal(t, cp.Vector{X: -0.5}, f.Pawn.MoveDir)
	}
}

func TestScriptSourceEdges(t *testing.T) {
	src, err := NewScriptSource([]byte(`
move_x = 2
jump = tick >= 1 && tick <= 2
pause = tick == 2
`))
	require.NoError(t, err)

	want := []struct {
		triggered, held, pause bool
	}{
		{false, false, false},
		{true, true, false},
		{false, true, true},
		{false, false, false},
	}
	for tick, w := range want {
		f, err := src.Next(tick, dt)
		require.NoError(t, err)
		assert.Equal(t, 1.0, f.Pawn.MoveDir.X, "axis is clamped")
		assert.Equal(t, w.triggered, f.Pawn.JumpTriggered, "tick %d", tick)
		assert.Equal(t, w.held, f.Pawn.JumpHeld, "tick %d", tick)
		assert.Equal(t, w.pause, f.General.Pause, "tick %d", tick)
	}
}

func TestScriptSourceResetsOutputs(t *testing.T) {
	src, err := NewScriptSource([]byte(`
if tick == 0 {
	fallthrough = true
	move_x = -1
}
`))
	require.NoError(t, err)

	f, err := src.Next(0, dt)
	require.NoError(t, err)
	assert.True(t, f.Pawn.Fallthrough)
	assert.Equal(t, -1.0, f.Pawn.MoveDir.X)

	f, err = src.Next(1, dt)
	require.NoError(t, err)
	assert.False(t, f.Pawn.Fallthrough)
	assert.Zero(t, f.Pawn.MoveDir.X)
}

func TestScriptSourceTime(t *testing.T) {
	src, err := NewScriptSource([]byte(`move_x = time > 0.06 ? 1 : 0`))
	require.NoError(t, err)

	var got []float64
	for tick := 0; tick < 5; tick++ {
		f, err := src.Next(tick, dt)
		require.NoError(t, err)
		got = append(got, f.Pawn.MoveDir.X)
	}
	assert.Equal(t, []float64{0, 0, 0, 0, 1}, got)
}

func TestScriptSourceErrors(t *testing.T) {
	t.Run("compile", func(t *testing.T) {
		_, err := NewScriptSource([]byte(`move_x = `))
		assert.Error(t, err)
	})

	t.Run("output type", func(t *testing.T) {
		src, err := NewScriptSource([]byte(`move_x = "left"`))
		require.NoError(t, err)
		_, err = src.Next(0, dt)
		assert.ErrorIs(t, err, ErrScriptOutput)
	})

	t.Run("runtime", func(t *testing.T) {
		src, err := NewScriptSource([]byte(`move_x = 1 / (tick - tick)`))
		require.NoError(t, err)
		_, err = src.Next(0, dt)
		assert.Error(t, err)
	})
}

func TestScriptSourceUnusedGlobals(t *testing.T) {
	src, err := NewScriptSource([]byte(`move_x = 0.5`))
	require.NoError(t, err)

	for tick := 0; tick < 3; tick++ {
		frame, err := src.Next(tick, dt)
		require.NoError(t, err)
		assert.Equal(t, cp.Vector{X: 0.5}, frame.Pawn.MoveDir)
		assert.False(t, frame.Pawn.JumpTriggered)
		assert.False(t, frame.Pawn.JumpHeld)
		assert.False(t, frame.Pawn.Fallthrough)
		assert.Equal(t, component.GeneralInput{}, frame.General)
	}
}

func TestEmbeddedScriptsCompile(t *testing.T) {
	for _, name := range []string{"idle", "run_right", "patrol"} {
		t.Run(name, func(t *testing.T) {
			data, err := prefabs.LoadScript(name)
			require.NoError(t, err)
			src, err := NewScriptSource(data)
			require.NoError(t, err)
			_, err = src.Next(0, dt)
			assert.NoError(t, err)
		})
	}
}
