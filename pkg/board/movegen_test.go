package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zarya-chess/zarya/pkg/board"
	"github.com/zarya-chess/zarya/pkg/board/fen"
)

func TestPseudoLegalMoves(t *testing.T) {

	t.Run("startpos", func(t *testing.T) {
		pos, err := fen.Decode(fen.Initial)
		require.NoError(t, err)

		var list board.MoveList
		pos.PseudoLegalMoves(&list, false)

		assert.Equal(t, list.Len(), 20)
		for _, m := range list.Moves() {
			require.True(t, pos.MakeMove(m), "startpos move %v must be legal", m)
			pos.UnmakeMove()
		}

		var captures board.MoveList
		pos.PseudoLegalMoves(&captures, true)
		assert.Equal(t, captures.Len(), 0)
	})

	t.Run("counts", func(t *testing.T) {
		// Legal move counts for well-known positions.
		tests := []struct {
			fen      string
			expected int
		}{
			{fen.Initial, 20},
			{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", 48},
			{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 14},
			{"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 6},
			{"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 44},
		}

		for _, tt := range tests {
			pos, err := fen.Decode(tt.fen)
			require.NoError(t, err)

			var list board.MoveList
			pos.PseudoLegalMoves(&list, false)

			legal := 0
			for _, m := range list.Moves() {
				if pos.MakeMove(m) {
					pos.UnmakeMove()
					legal++
				}
			}
			assert.Equalf(t, legal, tt.expected, "wrong count for %v: %v", tt.fen, list)
		}
	})

	// Every move from the captures-only generator changes material, and the
	// two generators agree on which moves those are.
	t.Run("captures-only", func(t *testing.T) {
		tests := []string{
			fen.Initial,
			"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
			"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b KQkq - 0 1",
			"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3", // en passant
			"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",     // promotions
			"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 b - - 0 1",
		}

		for _, position := range tests {
			pos, err := fen.Decode(position)
			require.NoError(t, err)

			var all, captures board.MoveList
			pos.PseudoLegalMoves(&all, false)
			pos.PseudoLegalMoves(&captures, true)

			seen := map[board.Move]bool{}
			for _, m := range captures.Moves() {
				assert.Truef(t, m.IsCapture(), "non-capture %v generated captures-only in %v", m, position)
				seen[m] = true
			}
			for _, m := range all.Moves() {
				assert.Equalf(t, seen[m], m.IsCapture(), "generator disagreement on %v in %v", m, position)
			}
		}
	})

	t.Run("enpassant", func(t *testing.T) {
		pos, err := fen.Decode("rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")
		require.NoError(t, err)

		var list board.MoveList
		pos.PseudoLegalMoves(&list, true)

		var eps []board.Move
		for _, m := range list.Moves() {
			if m.Flag() == board.EnPassant {
				eps = append(eps, m)
			}
		}
		require.Len(t, eps, 1)
		assert.Equal(t, eps[0].String(), "e5f6")
	})

	t.Run("castling", func(t *testing.T) {
		tests := []struct {
			fen      string
			expected []string
		}{
			// Both castles available.
			{"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", []string{"e1g1", "e1c1"}},
			{"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", []string{"e8g8", "e8c8"}},
			// No rights.
			{"r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1", nil},
			// Queen side blocked.
			{"r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1", []string{"e1g1"}},
			// King passes through an attacked square.
			{"r3k2r/8/8/8/8/5r2/8/R3K2R w KQkq - 0 1", []string{"e1c1"}},
			// King in check.
			{"r3k2r/8/8/8/8/4r3/8/R3K2R w KQkq - 0 1", nil},
		}

		for _, tt := range tests {
			pos, err := fen.Decode(tt.fen)
			require.NoError(t, err)

			var list board.MoveList
			pos.PseudoLegalMoves(&list, false)

			var castles []string
			for _, m := range list.Moves() {
				if m.Flag() == board.Castling {
					castles = append(castles, m.String())
				}
			}
			assert.ElementsMatchf(t, castles, tt.expected, "wrong castles for %v", tt.fen)
		}
	})

	t.Run("promotions", func(t *testing.T) {
		pos, err := fen.Decode("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
		require.NoError(t, err)

		var list board.MoveList
		pos.PseudoLegalMoves(&list, false)

		var promos []string
		for _, m := range list.Moves() {
			if m.Flag() == board.Promotion {
				promos = append(promos, m.String())
			}
		}
		assert.ElementsMatch(t, promos, []string{"a7a8q", "a7a8r", "a7a8b", "a7a8n"})
	})

	// The 256 bound holds even for contrived material.
	t.Run("bound", func(t *testing.T) {
		pos, err := fen.Decode("R6R/3Q4/1Q4Q1/4Q3/2Q4Q/Q4Q2/pp1Q4/kBNN1KB1 w - - 0 1")
		require.NoError(t, err)

		var list board.MoveList
		pos.PseudoLegalMoves(&list, false)

		assert.Greater(t, list.Len(), 200)
		assert.LessOrEqual(t, list.Len(), board.MaxMoves)
	})
}
