package search

import (
	"sort"

	"github.com/zarya-chess/zarya/pkg/board"
)

// Move ordering. Captures score five times the victim value (MVV-flavored);
// en passant, queen promotions and castles add fixed bonuses on top, so a
// queen promotion can outrank most captures. Quiet moves keep their generation
// order. Good
// ordering is worth several hundred Elo through earlier beta cutoffs.

// ScoreMove assigns the ordering priority of a move.
func (s *Search) ScoreMove(p *board.Position, m board.Move) int32 {
	values := &s.Eval.Params.PieceValues

	value := 5 * values[p.PieceOn(m.To()).Type()]

	switch {
	case m.Flag() == board.EnPassant:
		value += 2 * values[board.Pawn]
	case m.IsPromotion() && m.PromotionTo() == board.Queen:
		value += 5 * values[board.Queen]
	case m.Flag() == board.Castling:
		value += 256
	}
	return value
}

// SortMoves stable-sorts the list descending by priority.
func (s *Search) SortMoves(p *board.Position, l *board.MoveList) {
	moves := l.Moves()
	sort.SliceStable(moves, func(i, j int) bool {
		return s.ScoreMove(p, moves[i]) > s.ScoreMove(p, moves[j])
	})
}
