package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zarya-chess/zarya/pkg/board"
)

func TestSquare(t *testing.T) {

	t.Run("layout", func(t *testing.T) {
		assert.Equal(t, board.A1, board.ZeroSquare)
		assert.Equal(t, board.H1, board.Square(7))
		assert.Equal(t, board.A8, board.Square(56))
		assert.Equal(t, board.H8, board.Square(63))

		assert.Equal(t, board.E4.File(), board.FileE)
		assert.Equal(t, board.E4.Rank(), board.Rank4)
		assert.Equal(t, board.NewSquare(board.FileE, board.Rank4), board.E4)
	})

	t.Run("flip", func(t *testing.T) {
		assert.Equal(t, board.A1.Flip(), board.A8)
		assert.Equal(t, board.E4.Flip(), board.E5)
		assert.Equal(t, board.H8.Flip(), board.H1)
	})

	t.Run("parse", func(t *testing.T) {
		tests := []struct {
			str      string
			expected board.Square
		}{
			{"a1", board.A1},
			{"e4", board.E4},
			{"h8", board.H8},
			{"C7", board.C7},
		}

		for _, tt := range tests {
			actual, err := board.ParseSquareStr(tt.str)
			require.NoError(t, err)
			assert.Equal(t, actual, tt.expected)
		}

		for _, bad := range []string{"", "e", "i4", "a9", "e44"} {
			_, err := board.ParseSquareStr(bad)
			assert.Error(t, err)
		}
	})

	t.Run("string", func(t *testing.T) {
		assert.Equal(t, board.A1.String(), "a1")
		assert.Equal(t, board.E4.String(), "e4")
		assert.Equal(t, board.H8.String(), "h8")
	})

	t.Run("relative", func(t *testing.T) {
		assert.Equal(t, board.Rank2.Relative(board.White), board.Rank2)
		assert.Equal(t, board.Rank2.Relative(board.Black), board.Rank7)
		assert.Equal(t, board.Rank8.Relative(board.Black), board.Rank1)
	})
}

func TestPiece(t *testing.T) {

	t.Run("colored", func(t *testing.T) {
		assert.Equal(t, board.NewPiece(board.White, board.Pawn), board.WhitePawn)
		assert.Equal(t, board.NewPiece(board.Black, board.King), board.BlackKing)

		assert.Equal(t, board.BlackQueen.Type(), board.Queen)
		assert.Equal(t, board.BlackQueen.Color(), board.Black)
		assert.Equal(t, board.WhiteRook.Type(), board.Rook)
		assert.Equal(t, board.WhiteRook.Color(), board.White)

		assert.Equal(t, board.NoPiece.Type(), board.NoPieceType)
	})

	t.Run("parse", func(t *testing.T) {
		p, ok := board.ParsePiece('N')
		require.True(t, ok)
		assert.Equal(t, p, board.WhiteKnight)

		p, ok = board.ParsePiece('q')
		require.True(t, ok)
		assert.Equal(t, p, board.BlackQueen)

		_, ok = board.ParsePiece('x')
		assert.False(t, ok)
	})

	t.Run("string", func(t *testing.T) {
		assert.Equal(t, board.WhiteKing.String(), "K")
		assert.Equal(t, board.BlackPawn.String(), "p")
	})
}
