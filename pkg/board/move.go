package board

import (
	"fmt"
	"strings"
)

// MoveFlag indicates the kind of move. 3 bits.
type MoveFlag uint8

const (
	Normal MoveFlag = iota
	DoublePawnPush
	Capture
	EnPassant // implicitly a pawn capture
	Castling
	Promotion
	CapturePromotion
)

// Move represents a not-necessarily-legal move packed into a single word for
// cheap copy and array storage:
//
//	bits 0-5:   from square
//	bits 6-11:  to square
//	bits 12-15: moving piece (colored)
//	bits 16-18: move flag
//	bits 19-21: promotion piece type (meaningful only for promotion flags)
//
// 32 bits.
type Move uint32

// NullMove is the zero Move, used as a "no move" sentinel.
const NullMove Move = 0

// NewMove packs a move. Fields outside their range are masked off.
func NewMove(from, to Square, piece Piece, flag MoveFlag, promotion PieceType) Move {
	return Move(uint32(from&0x3f) |
		uint32(to&0x3f)<<6 |
		uint32(piece&0xf)<<12 |
		uint32(flag&0x7)<<16 |
		uint32(promotion&0x7)<<19)
}

func (m Move) From() Square {
	return Square(m & 0x3f)
}

func (m Move) To() Square {
	return Square(m >> 6 & 0x3f)
}

// Piece returns the moving piece, color included.
func (m Move) Piece() Piece {
	return Piece(m >> 12 & 0xf)
}

func (m Move) Flag() MoveFlag {
	return MoveFlag(m >> 16 & 0x7)
}

// PromotionTo returns the promotion target. Returns NoPieceType unless the
// move is a promotion.
func (m Move) PromotionTo() PieceType {
	if !m.IsPromotion() {
		return NoPieceType
	}
	return PieceType(m >> 19 & 0x7)
}

// IsCapture returns true iff the move changes material.
func (m Move) IsCapture() bool {
	switch m.Flag() {
	case Capture, EnPassant, CapturePromotion:
		return true
	default:
		return false
	}
}

func (m Move) IsPromotion() bool {
	return m.Flag() == Promotion || m.Flag() == CapturePromotion
}

func (m Move) Equals(o Move) bool {
	return m == o
}

// String prints the move in pure algebraic coordinate notation, such as "a2a4"
// or "a7a8q".
func (m Move) String() string {
	if m.IsPromotion() {
		return fmt.Sprintf("%v%v%v", m.From(), m.To(), m.PromotionTo())
	}
	return fmt.Sprintf("%v%v", m.From(), m.To())
}

// PrintMoves formats a sequence of moves as space-separated coordinate notation.
func PrintMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
