package board

// PieceType represents a chess piece kind (King, Pawn, etc) with no color. 3 bits.
type PieceType uint8

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType
)

const (
	ZeroPieceType PieceType = 0
	NumPieceTypes PieceType = 6
)

func ParsePieceType(r rune) (PieceType, bool) {
	switch r {
	case 'p', 'P':
		return Pawn, true
	case 'n', 'N':
		return Knight, true
	case 'b', 'B':
		return Bishop, true
	case 'r', 'R':
		return Rook, true
	case 'q', 'Q':
		return Queen, true
	case 'k', 'K':
		return King, true
	default:
		return NoPieceType, false
	}
}

func (p PieceType) IsValid() bool {
	return p < NumPieceTypes
}

func (p PieceType) String() string {
	switch p {
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "?"
	}
}

// Piece represents a colored chess piece, WhitePawn=0 .. BlackKing=11. 4 bits.
type Piece uint8

const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	NoPiece
)

const (
	ZeroPiece Piece = 0
	NumPieces Piece = 12
)

func NewPiece(c Color, pt PieceType) Piece {
	return Piece(c)*6 + Piece(pt)
}

func ParsePiece(r rune) (Piece, bool) {
	pt, ok := ParsePieceType(r)
	if !ok {
		return NoPiece, false
	}
	if 'A' <= r && r <= 'Z' {
		return NewPiece(White, pt), true
	}
	return NewPiece(Black, pt), true
}

func (p Piece) IsValid() bool {
	return p < NumPieces
}

// Type strips the color off the piece. NoPiece maps to NoPieceType.
func (p Piece) Type() PieceType {
	if !p.IsValid() {
		return NoPieceType
	}
	return PieceType(p % 6)
}

func (p Piece) Color() Color {
	return Color(p / 6)
}

func (p Piece) String() string {
	if !p.IsValid() {
		return " "
	}
	if p.Color() == White {
		return string(rune("PNBRQK"[p.Type()]))
	}
	return string(rune("pnbrqk"[p.Type()]))
}
