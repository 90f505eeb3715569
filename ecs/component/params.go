package component

// PawnKinematicsParams is per-archetype locomotion tuning.
type PawnKinematicsParams struct {
	MaxRunSpeed float64 `yaml:"max_run_speed"`
	MaxRunAccel float64 `yaml:"max_run_accel"`

	AirControlMaxSpeed float64 `yaml:"air_control_max_speed"`
	AirControlMaxAccel float64 `yaml:"air_control_max_accel"`

	JumpHeight   float64 `yaml:"jump_height"`
	BounceHeight float64 `yaml:"bounce_height"`

	// JumpForgivenessEarly is how long a jump press stays buffered.
	JumpForgivenessEarly float64 `yaml:"jump_forgiveness_early"`
	// JumpForgivenessLate is the coyote time after leaving the ground.
	JumpForgivenessLate float64 `yaml:"jump_forgiveness_late"`

	DragBrakingPassive      float64 `yaml:"drag_braking_passive"`
	DragBrakingReversalHelp float64 `yaml:"drag_braking_reversal_help"`
	DragAir                 float64 `yaml:"drag_air"`

	LegReachPawnWidth        float64 `yaml:"leg_reach_pawn_width"`
	LegReachExtraWhenRunning float64 `yaml:"leg_reach_extra_when_running"`

	// MaxSlope is in degrees.
	MaxSlope float64 `yaml:"max_slope"`
	// FootholdRaycastResolution is rays per unit of scanned width.
	FootholdRaycastResolution float64 `yaml:"foothold_raycast_resolution"`
}

func DefaultKinematicsParams() PawnKinematicsParams {
	return PawnKinematicsParams{
		MaxRunSpeed:               6,
		MaxRunAccel:               60,
		AirControlMaxSpeed:        5,
		AirControlMaxAccel:        25,
		JumpHeight:                2.5,
		BounceHeight:              1.5,
		JumpForgivenessEarly:      0.1,
		JumpForgivenessLate:       0.1,
		DragBrakingPassive:        40,
		DragBrakingReversalHelp:   60,
		DragAir:                   0.02,
		LegReachPawnWidth:         0.6,
		LegReachExtraWhenRunning:  0.3,
		MaxSlope:                  50,
		FootholdRaycastResolution: 10,
	}
}

// EnemyParams tunes the enemy decision layer.
type EnemyParams struct {
	VisionMaxDistCalm  float64 `yaml:"vision_max_dist_calm"`
	VisionMaxDistAggro float64 `yaml:"vision_max_dist_aggro"`
	SpeedScaleCalm     float64 `yaml:"speed_scale_calm"`
	SpeedScaleAggro    float64 `yaml:"speed_scale_aggro"`
	AggroLossDelay     float64 `yaml:"aggro_loss_delay"`
}

func DefaultEnemyParams() EnemyParams {
	return EnemyParams{
		VisionMaxDistCalm:  5,
		VisionMaxDistAggro: 8,
		SpeedScaleCalm:     0.3,
		SpeedScaleAggro:    0.8,
		AggroLossDelay:     1.5,
	}
}
