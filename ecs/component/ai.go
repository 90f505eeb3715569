package component

// Enemy is a pawn driven by the calm/aggro decision layer.
type Enemy struct {
	Pawn   Pawn
	Params *EnemyParams

	Valid               bool
	IsAggro             bool
	MovingRight         bool
	TimeSinceSeenPlayer float64
}
