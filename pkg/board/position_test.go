package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zarya-chess/zarya/pkg/board"
	"github.com/zarya-chess/zarya/pkg/board/fen"
)

func TestPosition(t *testing.T) {

	t.Run("accessors", func(t *testing.T) {
		pos, err := fen.Decode(fen.Initial)
		require.NoError(t, err)

		assert.Equal(t, pos.Turn(), board.White)
		assert.Equal(t, pos.PieceOn(board.E1), board.WhiteKing)
		assert.Equal(t, pos.PieceOn(board.D8), board.BlackQueen)
		assert.Equal(t, pos.PieceOn(board.E4), board.NoPiece)
		assert.Equal(t, pos.Occupancy().PopCount(), 32)
		assert.Equal(t, pos.ColorOccupancy(board.White).PopCount(), 16)
		assert.Equal(t, pos.Pieces(board.White, board.Pawn).PopCount(), 8)
		assert.Equal(t, pos.AllPieces(board.Pawn).PopCount(), 16)
		assert.Equal(t, pos.CastlingRights(), board.FullCastlingRights)

		_, ok := pos.EnPassant()
		assert.False(t, ok)

		assert.False(t, pos.IsInCheck())
	})

	t.Run("attacked", func(t *testing.T) {
		pos, err := fen.Decode("4k3/8/8/8/8/8/4R3/4K3 w - - 0 1")
		require.NoError(t, err)

		assert.True(t, pos.IsAttacked(board.E7, board.White))
		assert.True(t, pos.IsAttacked(board.A2, board.White))
		assert.False(t, pos.IsAttacked(board.A3, board.White))
		assert.True(t, pos.IsAttacked(board.D7, board.Black))
		assert.True(t, pos.IsChecked(board.Black))
		assert.False(t, pos.IsChecked(board.White))
	})

	// Every legal move must round-trip all incremental state through
	// make/unmake: placement, hash, eval baseline and counters.
	t.Run("roundtrip", func(t *testing.T) {
		tests := []string{
			fen.Initial,
			"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
			"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b KQkq - 0 1",
			"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
			"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
			"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 b - - 0 1",
		}

		for _, position := range tests {
			pos, err := fen.Decode(position)
			require.NoError(t, err)

			before := fen.Encode(pos)
			hash := pos.Hash()
			baseline := pos.EvalBaseline()

			var list board.MoveList
			pos.PseudoLegalMoves(&list, false)

			for _, m := range list.Moves() {
				if !pos.MakeMove(m) {
					// Illegal pseudo-legal moves must revert by themselves.
					assert.Equalf(t, fen.Encode(pos), before, "state changed by illegal %v", m)
					continue
				}
				assert.NotEqualf(t, pos.Hash(), hash, "hash unchanged by %v", m)

				pos.UnmakeMove()
				assert.Equalf(t, fen.Encode(pos), before, "bad unmake of %v in %v", m, position)
				assert.Equalf(t, pos.Hash(), hash, "bad hash unmake of %v", m)
				assert.Equalf(t, pos.EvalBaseline(), baseline, "bad baseline unmake of %v", m)
			}
		}
	})

	t.Run("illegal", func(t *testing.T) {
		// The black rook is pinned: leaving the e-file exposes the king.
		pos, err := fen.Decode("4k3/4r3/8/8/8/8/4Q3/4K3 b - - 0 1")
		require.NoError(t, err)

		var list board.MoveList
		pos.PseudoLegalMoves(&list, false)

		for _, m := range list.Moves() {
			if m.String() == "e7d7" {
				assert.False(t, pos.MakeMove(m))
				assert.Equal(t, pos.Turn(), board.Black)
				assert.Equal(t, pos.Ply(), 0)
			}
			if m.String() == "e7e5" {
				assert.True(t, pos.MakeMove(m))
				pos.UnmakeMove()
			}
		}
	})

	t.Run("castle", func(t *testing.T) {
		pos, err := fen.Decode("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
		require.NoError(t, err)

		var list board.MoveList
		pos.PseudoLegalMoves(&list, false)

		for _, m := range list.Moves() {
			if m.String() != "e1g1" {
				continue
			}
			require.True(t, pos.MakeMove(m))
			assert.Equal(t, pos.PieceOn(board.G1), board.WhiteKing)
			assert.Equal(t, pos.PieceOn(board.F1), board.WhiteRook)
			assert.Equal(t, pos.PieceOn(board.H1), board.NoPiece)
			assert.False(t, pos.CastlingRights().IsAllowed(board.WhiteKingSideCastle|board.WhiteQueenSideCastle))
			assert.True(t, pos.CastlingRights().IsAllowed(board.BlackKingSideCastle))

			pos.UnmakeMove()
			assert.Equal(t, pos.PieceOn(board.E1), board.WhiteKing)
			assert.Equal(t, pos.PieceOn(board.H1), board.WhiteRook)
			assert.Equal(t, pos.CastlingRights(), board.FullCastlingRights)
		}
	})

	t.Run("enpassant", func(t *testing.T) {
		pos, err := fen.Decode("rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
		require.NoError(t, err)

		var list board.MoveList
		pos.PseudoLegalMoves(&list, false)

		for _, m := range list.Moves() {
			if m.Flag() != board.EnPassant {
				continue
			}
			require.True(t, pos.MakeMove(m))
			assert.Equal(t, pos.PieceOn(board.F6), board.WhitePawn)
			assert.Equal(t, pos.PieceOn(board.F5), board.NoPiece, "captured pawn not removed")
			assert.Equal(t, pos.PieceOn(board.E5), board.NoPiece)

			pos.UnmakeMove()
			assert.Equal(t, pos.PieceOn(board.F5), board.BlackPawn)
			assert.Equal(t, pos.PieceOn(board.E5), board.WhitePawn)
		}
	})

	t.Run("jump", func(t *testing.T) {
		pos, err := fen.Decode(fen.Initial)
		require.NoError(t, err)

		var list board.MoveList
		pos.PseudoLegalMoves(&list, false)

		for _, m := range list.Moves() {
			if m.String() != "e2e4" {
				continue
			}
			require.True(t, pos.MakeMove(m))
			ep, ok := pos.EnPassant()
			require.True(t, ok)
			assert.Equal(t, ep, board.E3)
			pos.UnmakeMove()
		}
	})

	t.Run("fork", func(t *testing.T) {
		pos, err := fen.Decode(fen.Initial)
		require.NoError(t, err)

		fork := pos.Fork()

		var list board.MoveList
		fork.PseudoLegalMoves(&list, false)
		require.True(t, fork.MakeMove(list.At(0)))

		assert.NotEqual(t, fen.Encode(fork), fen.Encode(pos))
		assert.Equal(t, fen.Encode(pos), fen.Initial)
	})

	t.Run("invalid", func(t *testing.T) {
		// Two kings per side and adjacent kings are rejected.
		_, err := fen.Decode("4k3/8/8/8/8/8/8/4K1K1 w - - 0 1")
		assert.Error(t, err)

		_, err = fen.Decode("8/8/8/8/4kK2/8/8/8 w - - 0 1")
		assert.Error(t, err)
	})
}
