package input

import (
	"context"
	"errors"
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ldplayground/common"
	"github.com/milk9111/ldplayground/ecs/component"
)

var ErrScriptOutput = errors.New("bad script output")

var scriptOutputs = map[string]any{
	"move_x":      0.0,
	"move_y":      0.0,
	"jump":        false,
	"fallthrough": false,
	"pause":       false,
	"dev_mode":    false,
	"full_screen": false,
}

// ScriptSource runs a tengo script once per tick. The script reads tick,
// time and dt and assigns any of move_x, move_y, jump, fallthrough, pause,
// dev_mode and full_screen. Buttons are held state; presses are derived.
type ScriptSource struct {
	compiled *tengo.Compiled
	elapsed  float64
	held     buttons
}

func NewScriptSource(src []byte) (*ScriptSource, error) {
	script := tengo.NewScript(src)
	for name, value := range map[string]any{"tick": 0, "time": 0.0, "dt": 0.0} {
		if err := script.Add(name, value); err != nil {
			return nil, fmt.Errorf("input: declare %s: %w", name, err)
		}
	}
	for name, value := range scriptOutputs {
		if err := script.Add(name, value); err != nil {
			return nil, fmt.Errorf("input: declare %s: %w", name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("input: compile script: %w", err)
	}
	return &ScriptSource{compiled: compiled}, nil
}

func (s *ScriptSource) Next(tick int, dt float64) (Frame, error) {
	return s.NextContext(context.Background(), tick, dt)
}

func (s *ScriptSource) NextContext(ctx context.Context, tick int, dt float64) (Frame, error) {
	c := s.compiled
	for name, value := range scriptOutputs {
		if err := set(c, name, value); err != nil {
			return Frame{}, fmt.Errorf("input: reset %s: %w", name, err)
		}
	}
	for name, value := range map[string]any{"tick": tick, "time": s.elapsed, "dt": dt} {
		if err := set(c, name, value); err != nil {
			return Frame{}, fmt.Errorf("input: set %s: %w", name, err)
		}
	}
	if err := c.RunContext(ctx); err != nil {
		return Frame{}, fmt.Errorf("input: tick %d: %w", tick, err)
	}
	s.elapsed += dt

	moveX, err := axis(c, "move_x")
	if err != nil {
		return Frame{}, err
	}
	moveY, err := axis(c, "move_y")
	if err != nil {
		return Frame{}, err
	}

	jump := flag(c, "jump")
	var f Frame
	f.Pawn = component.PawnInput{
		MoveDir:       cp.Vector{X: moveX, Y: moveY},
		JumpTriggered: press(&s.held.jump, jump),
		JumpHeld:      jump,
		Fallthrough:   flag(c, "fallthrough"),
	}
	f.General = component.GeneralInput{
		Pause:      press(&s.held.pause, flag(c, "pause")),
		DevMode:    press(&s.held.devMode, flag(c, "dev_mode")),
		FullScreen: press(&s.held.fullScreen, flag(c, "full_screen")),
	}
	return f, nil
}

// set skips globals the compiler dropped because the script never uses
// them.
func set(c *tengo.Compiled, name string, value any) error {
	if !c.IsDefined(name) {
		return nil
	}
	return c.Set(name, value)
}

func flag(c *tengo.Compiled, name string) bool {
	return c.IsDefined(name) && c.Get(name).Bool()
}

// axis reads a stick axis and clamps it to [-1, 1]. An unused axis is 0.
func axis(c *tengo.Compiled, name string) (float64, error) {
	if !c.IsDefined(name) {
		return 0, nil
	}
	v, ok := tengo.ToFloat64(c.Get(name).Object())
	if !ok {
		return 0, fmt.Errorf("input: %s: %w: want number, got %s", name, ErrScriptOutput, c.Get(name).ValueType())
	}
	return common.Clamp(v, -1, 1), nil
}
