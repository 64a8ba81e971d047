package board

import "strings"

// CastleRights represents the set of castling rights. 4 bits.
type CastleRights uint8

const (
	WhiteKingSideCastle CastleRights = 1 << iota
	WhiteQueenSideCastle
	BlackKingSideCastle
	BlackQueenSideCastle
)

const (
	FullCastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle

	NumCastling  CastleRights = 16
	ZeroCastling CastleRights = 0
)

// IsAllowed returns true iff any of the given rights are allowed.
func (c CastleRights) IsAllowed(right CastleRights) bool {
	return c&right != 0
}

func (c CastleRights) String() string {
	if c == 0 {
		return "-"
	}

	var sb strings.Builder
	if c.IsAllowed(WhiteKingSideCastle) {
		sb.WriteString("K")
	}
	if c.IsAllowed(WhiteQueenSideCastle) {
		sb.WriteString("Q")
	}
	if c.IsAllowed(BlackKingSideCastle) {
		sb.WriteString("k")
	}
	if c.IsAllowed(BlackQueenSideCastle) {
		sb.WriteString("q")
	}
	return sb.String()
}

// castlingRightsLost maps a from/to square to the rights removed when a move
// touches it. Moving or capturing a rook on its home square clears that side,
// moving the king clears both.
var castlingRightsLost = [NumSquares]CastleRights{
	A1: WhiteQueenSideCastle,
	E1: WhiteKingSideCastle | WhiteQueenSideCastle,
	H1: WhiteKingSideCastle,
	A8: BlackQueenSideCastle,
	E8: BlackKingSideCastle | BlackQueenSideCastle,
	H8: BlackKingSideCastle,
}
