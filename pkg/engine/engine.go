// Package engine encapsulates game-playing logic, search and evaluation
// behind the protocol drivers.
package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/zarya-chess/zarya/pkg/board"
	"github.com/zarya-chess/zarya/pkg/board/fen"
	"github.com/zarya-chess/zarya/pkg/eval"
	"github.com/zarya-chess/zarya/pkg/search"
)

var version = build.NewVersion(0, 3, 0)

// Options are engine creation options.
type Options struct {
	// Depth is the default search depth limit when a "go" command carries no
	// limit of its own. If zero, searches run to MaxPly.
	Depth uint
	// Hash is the transposition table size in MB.
	Hash uint
}

func (o Options) String() string {
	return fmt.Sprintf("{depth=%v, hash=%v}", o.Depth, o.Hash)
}

// TimeControl represents clock information from the protocol driver.
type TimeControl struct {
	White, Black time.Duration
	Moves        int // 0 == rest of game
}

// Budget returns the wall-clock allowance for one move of the given color.
// We assume 40 moves to end the game, if nothing else is known.
func (t TimeControl) Budget(c board.Color) time.Duration {
	remainder := t.White
	if c == board.Black {
		remainder = t.Black
	}

	moves := time.Duration(40)
	if t.Moves > 0 {
		moves = time.Duration(t.Moves) + 1
	}
	return remainder / (2 * moves)
}

func (t TimeControl) String() string {
	return fmt.Sprintf("%.1f<>%.1f[moves=%v]", t.White.Seconds(), t.Black.Seconds(), t.Moves)
}

// Limits hold dynamic search limits. The user may change these on a
// particular search.
type Limits struct {
	// Depth, if set, limits the search to the given ply depth.
	Depth lang.Optional[int]
	// MoveTime, if set, is an exact wall-clock budget for the move.
	MoveTime lang.Optional[time.Duration]
	// TimeControl, if set, derives a budget from the game clocks.
	TimeControl lang.Optional[TimeControl]
}

// Engine owns the board, search parameters and the active search.
type Engine struct {
	name, author string
	params       *eval.Params
	opts         Options

	pos    *board.Position
	tt     *search.Table
	active *search.Info
	wg     sync.WaitGroup
	mu     sync.Mutex
}

// Option is an engine creation option.
type Option func(*Engine)

// WithOptions sets default runtime options.
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

func New(ctx context.Context, name, author string, params *eval.Params, opts ...Option) *Engine {
	e := &Engine{
		name:   name,
		author: author,
		params: params,
		opts:   Options{Hash: search.DefaultTableSize},
	}
	for _, fn := range opts {
		fn(e)
	}
	if e.opts.Hash > 0 {
		e.tt = search.NewTable(ctx, e.opts.Hash)
	}

	_ = e.Reset(ctx, fen.Initial)

	logw.Infof(ctx, "Initialized engine: %v, options=%v", e.Name(), e.opts)
	return e
}

// Name returns the engine name and version.
func (e *Engine) Name() string {
	return fmt.Sprintf("%v %v", e.name, version)
}

// Author returns the author.
func (e *Engine) Author() string {
	return e.author
}

func (e *Engine) SetDepth(depth uint) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.Depth = depth
}

func (e *Engine) SetHash(ctx context.Context, size uint) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.Hash = size
	e.tt = nil
	if size > 0 {
		e.tt = search.NewTable(ctx, size)
	}
}

// Position returns the current position in FEN format.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return fen.Encode(e.pos)
}

// Reset resets the engine to a new starting position in FEN format. Any
// active search is halted first.
func (e *Engine) Reset(ctx context.Context, position string) error {
	e.Halt(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()

	pos, err := fen.Decode(position)
	if err != nil {
		return fmt.Errorf("invalid position '%v': %w", position, err)
	}

	e.pos = pos
	logw.Debugf(ctx, "Reset position: %v", pos)
	return nil
}

// Move applies a move in coordinate notation, such as "e2e4" or "a7a8q", to
// the current position. The move must be legal.
func (e *Engine) Move(ctx context.Context, move string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	var list board.MoveList
	e.pos.PseudoLegalMoves(&list, false)

	for _, m := range list.Moves() {
		if m.String() != move {
			continue
		}
		if !e.pos.MakeMove(m) {
			return fmt.Errorf("illegal move '%v' in %v", move, e.pos)
		}
		return nil
	}
	return fmt.Errorf("invalid move '%v' in %v", move, e.pos)
}

// Analyze launches a search of the current position with the given limits.
// Emitted info/bestmove lines are sent to emit. Any previously active search
// is halted. The search owns a fork of the position and runs until complete
// or halted.
func (e *Engine) Analyze(ctx context.Context, limits Limits, emit func(string)) {
	e.Halt(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()

	depth := search.MaxPly
	if d, ok := limits.Depth.V(); ok {
		depth = d
	} else if e.opts.Depth > 0 {
		depth = int(e.opts.Depth)
	}

	budget := time.Duration(0)
	if d, ok := limits.MoveTime.V(); ok {
		budget = d
	} else if tc, ok := limits.TimeControl.V(); ok {
		budget = tc.Budget(e.pos.Turn())
	}

	var info *search.Info
	if budget > 0 {
		info = search.NewTimedInfo(depth, time.Now(), budget)
	} else {
		info = search.NewInfo(depth)
	}
	e.active = info

	s := &search.Search{
		Eval: eval.Evaluator{Params: e.params},
		Emit: emit,
	}
	pos := e.pos.Fork()

	logw.Debugf(ctx, "Search launched: %v depth=%v budget=%v", pos, depth, budget)

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		s.Run(ctx, pos, info)
	}()
}

// Halt stops the active search, if any, and waits for it to unwind.
func (e *Engine) Halt(ctx context.Context) {
	e.mu.Lock()
	active := e.active
	e.active = nil
	e.mu.Unlock()

	if active != nil {
		active.Stop()
	}
	e.wg.Wait()
}
