// Package eval contains static position evaluation logic and its parameters.
package eval

import "github.com/zarya-chess/zarya/pkg/board"

// Evaluator is a static position evaluator. It folds the board's incremental
// material+PSQT baseline together with pawn structure, mobility and the bishop
// pair into a tapered score.
type Evaluator struct {
	Params *Params
}

// Evaluate returns the position score in centipawns from the side-to-move's
// perspective, with the tempo bonus added after side flipping.
func (e Evaluator) Evaluate(p *board.Position) int {
	score := p.EvalBaseline()

	score = score.Add(e.pawns(p, board.White)).Sub(e.pawns(p, board.Black))
	score = score.Add(e.knights(p, board.White)).Sub(e.knights(p, board.Black))
	score = score.Add(e.bishops(p, board.White)).Sub(e.bishops(p, board.Black))
	score = score.Add(e.rooks(p, board.White)).Sub(e.rooks(p, board.Black))
	score = score.Add(e.queens(p, board.White)).Sub(e.queens(p, board.Black))

	// Tapered blend: remaining non-pawn material defines the game phase.
	phase := p.AllPieces(board.Knight).PopCount() + p.AllPieces(board.Bishop).PopCount() +
		2*p.AllPieces(board.Rook).PopCount() + 4*p.AllPieces(board.Queen).PopCount()
	if phase > 24 {
		phase = 24
	}
	blended := (int(score.MG)*phase + int(score.EG)*(24-phase)) / 24

	if p.Turn() == board.Black {
		blended = -blended
	}
	return blended + e.Params.Tempo
}

// pawns scores stacked and passed pawns for the given side, positive for the side.
func (e Evaluator) pawns(p *board.Position, side board.Color) board.Score {
	var score board.Score

	all := p.AllPieces(board.Pawn)
	pawns := p.Pieces(side, board.Pawn)
	for rest := pawns; rest != 0; {
		var sq board.Square
		sq, rest = rest.PopLSB()

		// Count a stacked pair once per extra pawn on the file.
		if board.BitFile(sq.File())&rest != 0 {
			score = score.Sub(e.Params.StackedPawnPenalty)
		}

		if passedPawnMasks[side][sq]&all == 0 {
			score = score.Add(e.Params.PassedPawnBonus[sq.Rank().Relative(side)])
		}
	}
	return score
}

func (e Evaluator) knights(p *board.Position, side board.Color) board.Score {
	var score board.Score

	own := p.ColorOccupancy(side)
	for bb := p.Pieces(side, board.Knight); bb != 0; {
		var sq board.Square
		sq, bb = bb.PopLSB()

		mobility := (board.KnightAttackboard(sq) &^ own).PopCount()
		score = score.Add(e.Params.KnightMobility[mobility])
	}
	return score
}

func (e Evaluator) bishops(p *board.Position, side board.Color) board.Score {
	var score board.Score

	own := p.ColorOccupancy(side)
	occ := p.Occupancy()

	bishops := p.Pieces(side, board.Bishop)
	if bishops.PopCount() >= 2 {
		score = score.Add(e.Params.BishopPairBonus)
	}
	for bb := bishops; bb != 0; {
		var sq board.Square
		sq, bb = bb.PopLSB()

		mobility := (board.BishopAttackboard(sq, occ) &^ own).PopCount()
		score = score.Add(e.Params.BishopMobility[mobility])
	}
	return score
}

func (e Evaluator) rooks(p *board.Position, side board.Color) board.Score {
	var score board.Score

	own := p.ColorOccupancy(side)
	occ := p.Occupancy()
	for bb := p.Pieces(side, board.Rook); bb != 0; {
		var sq board.Square
		sq, bb = bb.PopLSB()

		mobility := (board.RookAttackboard(sq, occ) &^ own).PopCount()
		score = score.Add(e.Params.RookMobility[mobility])
	}
	return score
}

func (e Evaluator) queens(p *board.Position, side board.Color) board.Score {
	var score board.Score

	own := p.ColorOccupancy(side)
	occ := p.Occupancy()
	for bb := p.Pieces(side, board.Queen); bb != 0; {
		var sq board.Square
		sq, bb = bb.PopLSB()

		mobility := (board.QueenAttackboard(sq, occ) &^ own).PopCount()
		score = score.Add(e.Params.QueenMobility[mobility])
	}
	return score
}
