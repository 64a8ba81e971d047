package search

import (
	"context"

	"github.com/seekerror/logw"
	"github.com/zarya-chess/zarya/pkg/board"
)

// Transposition table. The table is allocated by the engine and exercised by
// its tests, but the search does not yet probe or store entries; wiring it in
// is a follow-on step.

// Flag qualifies a stored score: exact, or a bound from a fail-low/high.
type Flag uint8

const (
	FlagNone Flag = iota
	FlagExact
	FlagAlpha
	FlagBeta
)

func (f Flag) String() string {
	switch f {
	case FlagNone:
		return "None"
	case FlagExact:
		return "Exact"
	case FlagAlpha:
		return "Alpha"
	case FlagBeta:
		return "Beta"
	default:
		return "?"
	}
}

// Entry is a stored search result. 24 bytes.
type Entry struct {
	Key   board.ZobristHash
	Move  board.Move
	Score int32
	Depth uint8
	Flag  Flag
}

// DefaultTableSize is the default transposition table size in MB.
const DefaultTableSize = 64

// Table is a fixed-size transposition table with modulo indexing and
// always-replace semantics. Not thread-safe.
type Table struct {
	entries []Entry
}

// NewTable allocates a table of the given size in MB.
func NewTable(ctx context.Context, sizeMB uint) *Table {
	n := (uint64(sizeMB) << 20) / 24
	logw.Infof(ctx, "Allocating %vMB transposition table with %v entries", sizeMB, n)

	return &Table{entries: make([]Entry, n)}
}

// Clear drops all entries.
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
}

// Store saves a search result. Mate scores are stored relative to the node
// rather than the root, so they remain valid at other plies.
func (t *Table) Store(key board.ZobristHash, score int, m board.Move, depth, ply int, flag Flag) {
	switch {
	case score > Mate-MaxPly:
		score += ply
	case score < -(Mate - MaxPly):
		score -= ply
	}

	t.entries[t.index(key)] = Entry{
		Key:   key,
		Move:  m,
		Score: int32(score),
		Depth: uint8(depth),
		Flag:  flag,
	}
}

// Probe returns the stored score for the position if present, searched at
// least as deep as requested, and usable against the given window. The stored
// best move is returned whenever the position is present, usable or not.
func (t *Table) Probe(key board.ZobristHash, depth, ply, alpha, beta int) (int, board.Move, bool) {
	e := t.entries[t.index(key)]
	if e.Key != key {
		return 0, board.NullMove, false
	}
	if int(e.Depth) < depth {
		return 0, e.Move, false
	}

	score := int(e.Score)
	switch {
	case score > Mate-MaxPly:
		score -= ply
	case score < -(Mate - MaxPly):
		score += ply
	}

	switch e.Flag {
	case FlagExact:
		return score, e.Move, true
	case FlagAlpha:
		if score <= alpha {
			return alpha, e.Move, true
		}
	case FlagBeta:
		if score >= beta {
			return beta, e.Move, true
		}
	}
	return 0, e.Move, false
}

func (t *Table) index(key board.ZobristHash) uint64 {
	return uint64(key) % uint64(len(t.entries))
}
