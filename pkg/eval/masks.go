package eval

import "github.com/zarya-chess/zarya/pkg/board"

// passedPawnMasks[c][sq] covers the own and adjacent files from sq's rank
// toward the promotion rank of color c, exclusive of sq's own rank. A pawn is
// passed iff the mask intersects no pawn of either color.
var passedPawnMasks [board.NumColors][board.NumSquares]board.Bitboard

func init() {
	for sq := board.ZeroSquare; sq < board.NumSquares; sq++ {
		files := board.BitFile(sq.File())
		if sq.File() != board.FileA {
			files |= board.BitFile(sq.File() - 1)
		}
		if sq.File() != board.FileH {
			files |= board.BitFile(sq.File() + 1)
		}

		var front, back board.Bitboard
		for r := board.ZeroRank; r < board.NumRanks; r++ {
			if r > sq.Rank() {
				front |= board.BitRank(r)
			}
			if r < sq.Rank() {
				back |= board.BitRank(r)
			}
		}

		passedPawnMasks[board.White][sq] = files & front
		passedPawnMasks[board.Black][sq] = files & back
	}
}
