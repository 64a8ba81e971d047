// Package search contains the search core: move ordering, quiescence search,
// negamax alpha-beta and iterative deepening with aspiration windows.
package search

import (
	"fmt"
	"time"

	"github.com/zarya-chess/zarya/pkg/board"
	"go.uber.org/atomic"
)

const (
	// MaxPly is the maximum search distance from the root.
	MaxPly = 64

	// Inf bounds every alpha-beta window.
	Inf = 32500

	// Mate is the base checkmate score. Mate scores are ply-adjusted so that
	// shorter mates score higher for the winner.
	Mate = 32000

	// timeCheckInterval is the node granularity of the wall-clock check. It
	// trades overshoot, bounded by one subtree traversal, against overhead.
	timeCheckInterval = 2048
)

// Info tracks search statistics and stop conditions. It is created at the top
// of a search, shared by every recursive frame, and discarded on return. Once
// the stop flag is set, all active frames unwind without mutating their PV.
type Info struct {
	// Nodes is the number of nodes visited.
	Nodes uint64
	// Depth is the target search depth in plies.
	Depth int
	// Ply is the current distance from the root.
	Ply int

	stopped *atomic.Bool

	timed  bool
	start  time.Time
	budget time.Duration
}

// NewInfo returns an Info for a depth-limited search with no time limit.
func NewInfo(depth int) *Info {
	return &Info{Depth: depth, stopped: atomic.NewBool(false)}
}

// NewTimedInfo returns an Info that will stop the search once the wall-clock
// budget measured from start is exhausted.
func NewTimedInfo(depth int, start time.Time, budget time.Duration) *Info {
	return &Info{Depth: depth, stopped: atomic.NewBool(false), timed: true, start: start, budget: budget}
}

// Stop asks the search to unwind. Safe to call from another goroutine.
func (i *Info) Stop() {
	i.stopped.Store(true)
}

func (i *Info) Stopped() bool {
	return i.stopped.Load()
}

// checkTime sets the stop flag if the time budget is exhausted. Called every
// timeCheckInterval nodes in the leaf-adjacent loops.
func (i *Info) checkTime() {
	if i.timed && time.Since(i.start) > i.budget {
		i.stopped.Store(true)
	}
}

// PV is a principal variation: the best line of play found and its score in
// centipawns from the perspective of the side to move at the root.
type PV struct {
	Score int

	line   [MaxPly]board.Move
	length int
}

// Moves returns the moves of the variation. The slice aliases the PV.
func (pv *PV) Moves() []board.Move {
	return pv.line[:pv.length]
}

// Best returns the first move of the variation, if any.
func (pv *PV) Best() (board.Move, bool) {
	if pv.length == 0 {
		return board.NullMove, false
	}
	return pv.line[0], true
}

func (pv *PV) clear() {
	pv.length = 0
}

// extend overwrites the variation with m followed by the child variation.
func (pv *PV) extend(m board.Move, child *PV) {
	pv.line[0] = m
	copy(pv.line[1:], child.line[:child.length])
	pv.length = child.length + 1
}

func (pv *PV) String() string {
	return fmt.Sprintf("score=%v pv=%v", pv.Score, board.PrintMoves(pv.Moves()))
}
