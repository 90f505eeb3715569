package levels

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/ldplayground/ecs/component"
)

var ErrUnknownTrackType = errors.New("unknown track type")

const defaultGravity = -20

type Vec2 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v Vec2) Vector() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Y}
}

type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

// Box is an axis-aligned rectangle given by its center and size.
type Box struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	W        float64 `yaml:"w"`
	H        float64 `yaml:"h"`
	Material string  `yaml:"material"`
}

func (b Box) Center() cp.Vector {
	return cp.Vector{X: b.X, Y: b.Y}
}

type Platform struct {
	Name       string  `yaml:"name"`
	Track      string  `yaml:"track"`
	Anchor     Vec3    `yaml:"anchor"`
	Radius     float64 `yaml:"radius"`
	From       Vec3    `yaml:"from"`
	To         Vec3    `yaml:"to"`
	CycleTime  float64 `yaml:"cycle_time"`
	LoopOffset float64 `yaml:"loop_offset"`
	Width      float64 `yaml:"w"`
	Height     float64 `yaml:"h"`
	Material   string  `yaml:"material"`
}

// TrackType parses the platform's track name.
func (p Platform) TrackType() (component.TrackType, error) {
	return ParseTrackType(p.Track)
}

type Enemy struct {
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	MovingRight bool    `yaml:"moving_right"`
	Prefab      string  `yaml:"prefab"`
}

type Checkpoint struct {
	Box   `yaml:",inline"`
	Spawn Vec2 `yaml:"spawn"`
}

// Level is a static layout plus the live objects placed in it.
type Level struct {
	Name        string   `yaml:"name"`
	Gravity     Vec2     `yaml:"gravity"`
	KillFloorY  *float64 `yaml:"kill_floor_y"`
	PlayerSpawn Vec2     `yaml:"player_spawn"`

	Solids       []Box        `yaml:"solids"`
	OneWay       []Box        `yaml:"one_way"`
	Platforms    []Platform   `yaml:"platforms"`
	Enemies      []Enemy      `yaml:"enemies"`
	Collectables []Box        `yaml:"collectables"`
	Hazards      []Box        `yaml:"hazards"`
	Checkpoints  []Checkpoint `yaml:"checkpoints"`
	Exits        []Box        `yaml:"exits"`
}

// KillFloor returns the kill floor height, or -Inf when the level has none.
func (l *Level) KillFloor() float64 {
	if l.KillFloorY == nil {
		return math.Inf(-1)
	}
	return *l.KillFloorY
}

func (l *Level) applyDefaults() {
	if l.Gravity == (Vec2{}) {
		l.Gravity = Vec2{Y: defaultGravity}
	}
	for i := range l.Platforms {
		p := &l.Platforms[i]
		if p.Width == 0 {
			p.Width = 2
		}
		if p.Height == 0 {
			p.Height = 0.5
		}
	}
}

// Validate reports the first malformed object in the level.
func (l *Level) Validate() error {
	for i, p := range l.Platforms {
		if _, err := p.TrackType(); err != nil {
			return fmt.Errorf("platform %d: %w", i, err)
		}
		if p.CycleTime <= 0 {
			return fmt.Errorf("platform %d: cycle_time must be positive, got %v", i, p.CycleTime)
		}
	}
	for _, group := range []struct {
		kind  string
		boxes []Box
	}{
		{"solid", l.Solids},
		{"one_way", l.OneWay},
		{"collectable", l.Collectables},
		{"hazard", l.Hazards},
		{"exit", l.Exits},
	} {
		for i, b := range group.boxes {
			if b.W <= 0 || b.H <= 0 {
				return fmt.Errorf("%s %d: size must be positive", group.kind, i)
			}
		}
	}
	for i, c := range l.Checkpoints {
		if c.W <= 0 || c.H <= 0 {
			return fmt.Errorf("checkpoint %d: size must be positive", i)
		}
	}
	return nil
}

func ParseTrackType(s string) (component.TrackType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "circular", "circle":
		return component.TrackCircular, nil
	case "pingpong", "ping_pong":
		return component.TrackPingPong, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownTrackType, s)
	}
}
