package board

// Material and piece-square values backing the incrementally maintained
// evaluation baseline. The baseline is kept up to date by MakeMove/UnmakeMove
// so that static evaluation never walks the board for material.
//
// Kings carry no material here: both are always present and the value would
// cancel. The move orderer uses its own value table.

var materialValue = [NumPieceTypes]Score{
	Pawn:   S(86, 102),
	Knight: S(304, 288),
	Bishop: S(360, 332),
	Rook:   S(466, 512),
	Queen:  S(905, 942),
	King:   S(0, 0),
}

// Piece-square tables from White's perspective, rank 1 first (index = square).
// Black reads the tables through Square.Flip.

var psqPawnMG = [NumSquares]int32{
	0, 0, 0, 0, 0, 0, 0, 0,
	2, 4, 0, -12, -12, 0, 4, 2,
	2, -2, -4, 2, 2, -4, -2, 2,
	0, 0, 6, 14, 14, 6, 0, 0,
	4, 4, 10, 18, 18, 10, 4, 4,
	10, 12, 18, 24, 24, 18, 12, 10,
	28, 32, 36, 40, 40, 36, 32, 28,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var psqPawnEG = [NumSquares]int32{
	0, 0, 0, 0, 0, 0, 0, 0,
	4, 4, 4, 4, 4, 4, 4, 4,
	6, 6, 6, 6, 6, 6, 6, 6,
	10, 10, 10, 10, 10, 10, 10, 10,
	18, 18, 18, 18, 18, 18, 18, 18,
	32, 32, 32, 32, 32, 32, 32, 32,
	56, 56, 56, 56, 56, 56, 56, 56,
	0, 0, 0, 0, 0, 0, 0, 0,
}

var psqKnight = [NumSquares]int32{
	-32, -20, -12, -8, -8, -12, -20, -32,
	-20, -8, 0, 4, 4, 0, -8, -20,
	-12, 0, 8, 12, 12, 8, 0, -12,
	-8, 4, 12, 16, 16, 12, 4, -8,
	-8, 4, 12, 16, 16, 12, 4, -8,
	-12, 0, 8, 12, 12, 8, 0, -12,
	-20, -8, 0, 4, 4, 0, -8, -20,
	-32, -20, -12, -8, -8, -12, -20, -32,
}

var psqBishop = [NumSquares]int32{
	-12, -8, -6, -4, -4, -6, -8, -12,
	-4, 6, 4, 2, 2, 4, 6, -4,
	-2, 4, 6, 6, 6, 6, 4, -2,
	0, 2, 6, 8, 8, 6, 2, 0,
	0, 2, 6, 8, 8, 6, 2, 0,
	-2, 4, 6, 6, 6, 6, 4, -2,
	-4, 6, 4, 2, 2, 4, 6, -4,
	-12, -8, -6, -4, -4, -6, -8, -12,
}

var psqRook = [NumSquares]int32{
	-2, 0, 4, 8, 8, 4, 0, -2,
	-4, 0, 0, 2, 2, 0, 0, -4,
	-4, 0, 0, 0, 0, 0, 0, -4,
	-4, 0, 0, 0, 0, 0, 0, -4,
	-2, 0, 0, 0, 0, 0, 0, -2,
	0, 2, 2, 2, 2, 2, 2, 0,
	12, 14, 14, 14, 14, 14, 14, 12,
	6, 6, 6, 6, 6, 6, 6, 6,
}

var psqQueen = [NumSquares]int32{
	-8, -4, -4, 0, 0, -4, -4, -8,
	-4, 0, 2, 2, 2, 2, 0, -4,
	-4, 2, 2, 2, 2, 2, 2, -4,
	0, 2, 2, 4, 4, 2, 2, 0,
	0, 2, 2, 4, 4, 2, 2, 0,
	-4, 2, 2, 2, 2, 2, 2, -4,
	-4, 0, 2, 2, 2, 2, 0, -4,
	-8, -4, -4, 0, 0, -4, -4, -8,
}

var psqKingMG = [NumSquares]int32{
	16, 24, 8, -8, -8, 8, 24, 16,
	8, 8, -8, -16, -16, -8, 8, 8,
	-8, -16, -20, -24, -24, -20, -16, -8,
	-16, -24, -28, -32, -32, -28, -24, -16,
	-24, -28, -32, -36, -36, -32, -28, -24,
	-24, -28, -32, -36, -36, -32, -28, -24,
	-24, -28, -32, -36, -36, -32, -28, -24,
	-24, -28, -32, -36, -36, -32, -28, -24,
}

var psqKingEG = [NumSquares]int32{
	-36, -24, -16, -12, -12, -16, -24, -36,
	-24, -12, -4, 0, 0, -4, -12, -24,
	-16, -4, 6, 10, 10, 6, -4, -16,
	-12, 0, 10, 16, 16, 10, 0, -12,
	-12, 0, 10, 16, 16, 10, 0, -12,
	-16, -4, 6, 10, 10, 6, -4, -16,
	-24, -12, -4, 0, 0, -4, -12, -24,
	-36, -24, -16, -12, -12, -16, -24, -36,
}

var psqt [NumPieceTypes][NumSquares]Score

func init() {
	pairs := [NumPieceTypes]struct {
		mg, eg *[NumSquares]int32
	}{
		Pawn:   {&psqPawnMG, &psqPawnEG},
		Knight: {&psqKnight, &psqKnight},
		Bishop: {&psqBishop, &psqBishop},
		Rook:   {&psqRook, &psqRook},
		Queen:  {&psqQueen, &psqQueen},
		King:   {&psqKingMG, &psqKingEG},
	}

	for pt := ZeroPieceType; pt < NumPieceTypes; pt++ {
		for sq := ZeroSquare; sq < NumSquares; sq++ {
			psqt[pt][sq] = S(pairs[pt].mg[sq], pairs[pt].eg[sq])
		}
	}
}

// pieceSquare returns the material+PSQT contribution of the piece on the
// square, signed positive for White.
func pieceSquare(p Piece, sq Square) Score {
	pt := p.Type()
	if p.Color() == White {
		return materialValue[pt].Add(psqt[pt][sq])
	}
	return materialValue[pt].Add(psqt[pt][sq.Flip()]).Neg()
}
