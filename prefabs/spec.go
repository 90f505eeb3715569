package prefabs

import (
	"errors"
	"fmt"

	"github.com/milk9111/ldplayground/ecs/component"
	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("invalid spec")

func LoadSpec[T any](filename string) (T, error) {
	var spec T
	if err := decodeSpec(filename, &spec); err != nil {
		var zero T
		return zero, err
	}
	return spec, nil
}

// decodeSpec unmarshals onto out, so fields already set on out act as
// defaults for keys the file leaves out.
func decodeSpec(filename string, out any) error {
	data, err := Load(filename)
	if err != nil {
		return fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return nil
}

type MarkersSpec struct {
	Top    float64 `yaml:"top"`
	Hips   float64 `yaml:"hips"`
	Bottom float64 `yaml:"bottom"`
}

func (m MarkersSpec) Markers() component.Markers {
	return component.Markers{Top: m.Top, Hips: m.Hips, Bottom: m.Bottom}
}

type ShapeSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Radius  float64 `yaml:"radius"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

// PawnSpec describes a pawn archetype: skeleton markers, colliders and
// locomotion tuning.
type PawnSpec struct {
	Name             string                         `yaml:"name"`
	Markers          MarkersSpec                    `yaml:"markers"`
	Collider         ShapeSpec                      `yaml:"collider"`
	Hitbox           ShapeSpec                      `yaml:"hitbox"`
	Mass             float64                        `yaml:"mass"`
	GravityScale     float64                        `yaml:"gravity_scale"`
	SpriteFacingLeft bool                           `yaml:"sprite_facing_left"`
	Kinematics       component.PawnKinematicsParams `yaml:"kinematics"`
}

func defaultPawnSpec() PawnSpec {
	return PawnSpec{
		Markers:      MarkersSpec{Top: 1.6, Hips: 0.5, Bottom: 0},
		Mass:         1,
		GravityScale: 1,
		Kinematics:   component.DefaultKinematicsParams(),
	}
}

func (s *PawnSpec) Validate() error {
	m := s.Markers
	if !(m.Bottom <= m.Hips && m.Hips < m.Top) {
		return fmt.Errorf("%w: %s: markers must satisfy bottom <= hips < top", ErrInvalidSpec, s.Name)
	}
	if s.Mass <= 0 {
		return fmt.Errorf("%w: %s: mass must be positive", ErrInvalidSpec, s.Name)
	}
	if s.Kinematics.FootholdRaycastResolution <= 0 {
		return fmt.Errorf("%w: %s: foothold_raycast_resolution must be positive", ErrInvalidSpec, s.Name)
	}
	if s.Kinematics.LegReachPawnWidth < 0 || s.Kinematics.LegReachExtraWhenRunning < 0 {
		return fmt.Errorf("%w: %s: leg reach must not be negative", ErrInvalidSpec, s.Name)
	}
	return nil
}

type PlayerSpec struct {
	PawnSpec `yaml:",inline"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec := PlayerSpec{PawnSpec: defaultPawnSpec()}
	if err := decodeSpec("player.yaml", &spec); err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: player.yaml: %w", err)
	}
	return &spec, nil
}

type EnemySpec struct {
	PawnSpec `yaml:",inline"`
	AI       component.EnemyParams `yaml:"ai"`
}

func LoadEnemySpec() (*EnemySpec, error) {
	return loadEnemySpec("enemy.yaml")
}

// LoadEnemyVariant loads an enemy archetype other than the default one.
func LoadEnemyVariant(filename string) (*EnemySpec, error) {
	if filename == "" {
		return LoadEnemySpec()
	}
	return loadEnemySpec(filename)
}

func loadEnemySpec(filename string) (*EnemySpec, error) {
	spec := EnemySpec{PawnSpec: defaultPawnSpec(), AI: component.DefaultEnemyParams()}
	if err := decodeSpec(filename, &spec); err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", filename, err)
	}
	if spec.AI.AggroLossDelay < 0 || spec.AI.VisionMaxDistCalm < 0 || spec.AI.VisionMaxDistAggro < 0 {
		return nil, fmt.Errorf("prefabs: %s: %w: ai values must not be negative", filename, ErrInvalidSpec)
	}
	return &spec, nil
}

// AnimationSpec holds the clip lengths used when no animator is attached.
type AnimationSpec struct {
	SpawnDuration     float64 `yaml:"spawn_duration"`
	DeathDuration     float64 `yaml:"death_duration"`
	DisappearDuration float64 `yaml:"disappear_duration"`
	FootstepInterval  float64 `yaml:"footstep_interval"`
}

func LoadAnimationSpec() (*AnimationSpec, error) {
	spec, err := LoadSpec[AnimationSpec]("animation.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}
