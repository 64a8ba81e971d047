package eval

import "github.com/zarya-chess/zarya/pkg/board"

// Params holds the tunable evaluation and ordering constants. A single
// immutable instance is constructed at engine start and threaded through
// search and evaluation; nothing mutates it afterwards.
type Params struct {
	// Tempo is the bonus for the side to move, in centipawns.
	Tempo int

	// PieceValues are nominal piece values in centipawns, indexed by
	// board.PieceType with a zero entry for NoPieceType. Used by the move
	// orderer; the board maintains its own phased material baseline.
	PieceValues [7]int32

	StackedPawnPenalty board.Score
	PassedPawnBonus    [8]board.Score // indexed by relative rank
	BishopPairBonus    board.Score

	KnightMobility [9]board.Score
	BishopMobility [14]board.Score
	RookMobility   [15]board.Score
	QueenMobility  [28]board.Score

	// HistoryGravity is the saturation constant for history updates.
	HistoryGravity int32
}

// DefaultParams returns the tuned default parameters.
func DefaultParams() *Params {
	return &Params{
		Tempo: 7,

		PieceValues: [7]int32{86, 304, 360, 466, 905, 20903, 0},

		StackedPawnPenalty: board.S(12, 19),
		PassedPawnBonus: [8]board.Score{
			board.S(0, 0),
			board.S(2, 10),
			board.S(6, 16),
			board.S(12, 28),
			board.S(22, 48),
			board.S(42, 80),
			board.S(72, 124),
			board.S(0, 0), // a pawn never stands on the promotion rank
		},
		BishopPairBonus: board.S(26, 42),

		KnightMobility: [9]board.Score{
			board.S(-28, -34), board.S(-12, -16), board.S(-4, -6), board.S(0, 0),
			board.S(4, 6), board.S(8, 10), board.S(11, 13), board.S(13, 15),
			board.S(15, 16),
		},
		BishopMobility: [14]board.Score{
			board.S(-24, -32), board.S(-12, -16), board.S(-5, -8), board.S(0, -2),
			board.S(4, 3), board.S(8, 7), board.S(11, 11), board.S(13, 14),
			board.S(15, 17), board.S(17, 19), board.S(18, 20), board.S(19, 21),
			board.S(20, 22), board.S(21, 23),
		},
		RookMobility: [15]board.Score{
			board.S(-20, -30), board.S(-12, -14), board.S(-6, -6), board.S(-2, 0),
			board.S(0, 4), board.S(2, 9), board.S(4, 13), board.S(6, 16),
			board.S(8, 19), board.S(10, 21), board.S(11, 23), board.S(12, 25),
			board.S(13, 26), board.S(14, 27), board.S(15, 28),
		},
		QueenMobility: [28]board.Score{
			board.S(-16, -24), board.S(-10, -16), board.S(-6, -10), board.S(-4, -6),
			board.S(-2, -3), board.S(0, 0), board.S(1, 2), board.S(2, 4),
			board.S(3, 6), board.S(4, 8), board.S(5, 10), board.S(6, 11),
			board.S(7, 12), board.S(8, 13), board.S(8, 14), board.S(9, 15),
			board.S(9, 16), board.S(10, 17), board.S(10, 18), board.S(11, 18),
			board.S(11, 19), board.S(12, 19), board.S(12, 20), board.S(13, 20),
			board.S(13, 21), board.S(14, 21), board.S(14, 22), board.S(15, 22),
		},

		HistoryGravity: 8192,
	}
}
