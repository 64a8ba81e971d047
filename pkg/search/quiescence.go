package search

import "github.com/zarya-chess/zarya/pkg/board"

// QSearch resolves captures past the nominal horizon to avoid the horizon
// effect: stand-pat on the static evaluation, then capture-only alpha-beta.
// Terminal positions return stand-pat; there is no mate detection here.
func (s *Search) QSearch(p *board.Position, alpha, beta int, info *Info, pv *PV) int {
	eval := s.Eval.Evaluate(p)
	pv.clear()

	if info.Nodes&(timeCheckInterval-1) == 0 {
		info.checkTime()
		if info.Stopped() {
			return 0
		}
	}
	info.Nodes++

	if info.Ply > MaxPly-1 {
		return eval
	}

	best := eval
	if eval > alpha {
		alpha = eval
	}
	if alpha >= beta {
		return eval
	}

	var moves board.MoveList
	p.PseudoLegalMoves(&moves, true)
	s.SortMoves(p, &moves)

	var child PV
	for _, m := range moves.Moves() {
		if !p.MakeMove(m) {
			continue
		}
		info.Ply++

		score := -s.QSearch(p, -beta, -alpha, info, &child)

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
			}
			if alpha >= beta {
				break
			}
		}
	}
	return best
}
