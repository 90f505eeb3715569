package component

import "github.com/cespare/xxhash/v2"

// ParamID is a stable hash of an animation parameter name.
type ParamID uint64

func Param(name string) ParamID {
	return ParamID(xxhash.Sum64String(name))
}

var (
	ParamGrounded  = Param("grounded")
	ParamJumpStart = Param("jumpStart")
	ParamKilled    = Param("killed")
	ParamMoveSpeed = Param("moveSpeed")
	ParamAngry     = Param("angry")
	ParamCollected = Param("collected")
	ParamIsActive  = Param("isActive")
)

// Cue names a one-shot sound.
type Cue string

const (
	CueSpawn              Cue = "spawn"
	CueJump               Cue = "jump"
	CueFootstep           Cue = "footstep"
	CueFootstepPlatform   Cue = "footstep_platform"
	CueLand               Cue = "land"
	CueLandPlatform       Cue = "land_platform"
	CueDeath              Cue = "death"
	CueHitPlayer          Cue = "hit_player"
	CueCollected          Cue = "collected"
	CueHazardHit          Cue = "hazard_hit"
	CueCheckpointActivate Cue = "checkpoint_activate"
	CueExitActivate       Cue = "exit_activate"
)

// SignalSink receives fire-and-forget animation and audio signals.
type SignalSink interface {
	SetBool(id ParamID, v bool)
	SetFloat(id ParamID, v float64)
	SetTrigger(id ParamID)
	Play(cue Cue)
}

type NopSignals struct{}

func (NopSignals) SetBool(ParamID, bool)     {}
func (NopSignals) SetFloat(ParamID, float64) {}
func (NopSignals) SetTrigger(ParamID)        {}
func (NopSignals) Play(Cue)                  {}

func SignalsOrNop(s SignalSink) SignalSink {
	if s == nil {
		return NopSignals{}
	}
	return s
}

// SignalRecorder keeps every signal it receives.
type SignalRecorder struct {
	Bools    map[ParamID]bool
	Floats   map[ParamID]float64
	Triggers []ParamID
	Cues     []Cue
}

func NewSignalRecorder() *SignalRecorder {
	return &SignalRecorder{
		Bools:  make(map[ParamID]bool),
		Floats: make(map[ParamID]float64),
	}
}

func (r *SignalRecorder) SetBool(id ParamID, v bool) {
	r.Bools[id] = v
}

func (r *SignalRecorder) SetFloat(id ParamID, v float64) {
	r.Floats[id] = v
}

func (r *SignalRecorder) SetTrigger(id ParamID) {
	r.Triggers = append(r.Triggers, id)
}

func (r *SignalRecorder) Play(cue Cue) {
	r.Cues = append(r.Cues, cue)
}

func (r *SignalRecorder) Played(cue Cue) int {
	n := 0
	for _, c := range r.Cues {
		if c == cue {
			n++
		}
	}
	return n
}

func (r *SignalRecorder) Triggered(id ParamID) int {
	n := 0
	for _, t := range r.Triggers {
		if t == id {
			n++
		}
	}
	return n
}
