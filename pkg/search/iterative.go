package search

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/seekerror/logw"
	"github.com/zarya-chess/zarya/pkg/board"
	"github.com/zarya-chess/zarya/pkg/eval"
)

// Search is an iterative deepening search with aspiration windows. Each depth
// is searched with a window derived from the previous iteration's score,
// widened on fail-high or fail-low until the score is exact.
//
// The search is single-threaded and synchronous; the only suspension point is
// the periodic wall-clock check, which unwinds all active frames. The caller
// receives the last fully-completed iteration as the result.
type Search struct {
	Eval eval.Evaluator

	// Emit receives the UCI "info"/"bestmove" lines the search produces.
	// Defaults to standard output.
	Emit func(line string)
}

// Run searches the position to info.Depth plies and returns the principal
// variation of the deepest completed iteration. One info line is emitted per
// completed depth, and a final bestmove line on return.
func (s *Search) Run(ctx context.Context, p *board.Position, info *Info) PV {
	start := info.start
	if !info.timed {
		start = time.Now()
	}

	var best PV
	score := 0

	for depth := 1; depth <= info.Depth; depth++ {
		alpha, beta := -Inf, Inf
		delta := 10
		if depth >= 4 {
			// Aspiration window around the previous iteration's score.
			alpha, beta = score-delta, score+delta
		}

		var pv PV
		for {
			score = s.Negamax(p, alpha, beta, depth, info, &pv)
			if info.Stopped() {
				break
			}
			if alpha < score && score < beta {
				break
			}

			if score <= alpha {
				beta = (alpha + beta) / 2
				alpha = maxInt(-Inf, alpha-delta)
			} else {
				beta = minInt(Inf, beta+delta)
			}
			delta += delta / 2
		}

		if info.Stopped() {
			break // discard the in-progress iteration
		}

		pv.Score = score
		best = pv

		elapsed := time.Since(start).Milliseconds()
		s.emit(fmt.Sprintf("info score cp %v depth %v nodes %v time %v pv %v",
			score, depth, info.Nodes, elapsed, board.PrintMoves(best.Moves())))
		logw.Debugf(ctx, "Searched %v: depth=%v %v nodes=%v", p, depth, &best, info.Nodes)
	}

	if m, ok := best.Best(); ok {
		s.emit(fmt.Sprintf("bestmove %v", m))
	} else {
		// No legal move at the root: checkmate or stalemate.
		s.emit("bestmove 0000")
	}
	return best
}

func (s *Search) emit(line string) {
	if s.Emit != nil {
		s.Emit(line)
		return
	}
	_, _ = fmt.Fprintln(os.Stdout, line)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
