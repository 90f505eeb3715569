package component

type PlayerAvatar struct {
	Pawn             Pawn
	FinishedSpawning bool
}
