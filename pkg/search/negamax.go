package search

import "github.com/zarya-chess/zarya/pkg/board"

// Negamax is the recursive alpha-beta driver, fail-soft: the returned score
// may lie outside the window and is then only a bound. The PV is rebuilt on
// every alpha improvement; once the search is stopped the frame returns 0
// without extending it further.
func (s *Search) Negamax(p *board.Position, alpha, beta, depth int, info *Info, pv *PV) int {
	pv.clear()

	if info.Nodes&(timeCheckInterval-1) == 0 {
		info.checkTime()
		if info.Stopped() {
			return 0
		}
	}

	if depth == 0 {
		return s.QSearch(p, alpha, beta, info, pv)
	}

	legal := 0
	best := -Inf

	var moves board.MoveList
	p.PseudoLegalMoves(&moves, false)
	s.SortMoves(p, &moves)

	var child PV
	for _, m := range moves.Moves() {
		if !p.MakeMove(m) {
			continue
		}
		info.Nodes++
		info.Ply++
		legal++

		score := -s.Negamax(p, -beta, -alpha, depth-1, info, &child)

		p.UnmakeMove()
		if info.Stopped() {
			return 0
		}
		info.Ply--

		if score > best {
			best = score
			if score > alpha {
				alpha = score
				pv.extend(m, &child)
				pv.Score = score
				if score >= beta {
					return score
				}
			}
		}
	}

	if legal == 0 {
		if p.IsInCheck() {
			return -Mate + info.Ply // checkmate: prefer the shorter mate
		}
		return 0 // stalemate
	}
	return best
}
