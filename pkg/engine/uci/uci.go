// Package uci contains a driver for using the engine under the UCI protocol.
//
// See: http://wbec-ridderkerk.nl/html/UCIProtocol.html
package uci

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/seekerror/stdlib/pkg/util/iox"
	"github.com/zarya-chess/zarya/pkg/board/fen"
	"github.com/zarya-chess/zarya/pkg/engine"
	"github.com/zarya-chess/zarya/pkg/search"
)

const ProtocolName = "uci"

// Driver implements a UCI driver for an engine. It is activated if sent "uci".
type Driver struct {
	e   *engine.Engine
	out chan<- string

	quit iox.AsyncCloser
}

func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		e:    e,
		out:  out,
		quit: iox.NewAsyncCloser(),
	}
	go d.process(ctx, in)

	return d, out
}

func (d *Driver) Close() {
	d.quit.Close()
}

func (d *Driver) Closed() <-chan struct{} {
	return d.quit.Closed()
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "UCI protocol initialized")

	d.out <- fmt.Sprintf("id name %v", d.e.Name())
	d.out <- fmt.Sprintf("id author %v", d.e.Author())
	d.out <- "option name Hash type spin default 64 min 0 max 4096"
	d.out <- "uciok"

	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "Input stream broken. Exiting")
				return
			}

			parts := strings.Fields(line)
			if len(parts) == 0 {
				break
			}
			cmd, args := parts[0], parts[1:]

			switch strings.ToLower(cmd) {
			case "isready":
				d.out <- "readyok"

			case "debug", "register", "ponderhit":
				// accepted and ignored

			case "setoption":
				// setoption name <id> [value <x>]

				var name, value string
				if len(args) > 1 {
					name = args[1]
				}
				if len(args) > 3 {
					value = args[3]
				}

				switch name {
				case "Hash":
					if n, err := strconv.Atoi(value); err == nil && n >= 0 {
						d.e.SetHash(ctx, uint(n))
					}
				case "Depth":
					if n, err := strconv.Atoi(value); err == nil && n >= 0 {
						d.e.SetDepth(uint(n))
					}
				}

			case "ucinewgame":
				if err := d.e.Reset(ctx, fen.Initial); err != nil {
					logw.Errorf(ctx, "Reset failed: %v", err)
					return
				}

			case "position":
				// position [fen <fenstring> | startpos] moves <move1> ... <movei>

				position := fen.Initial
				if len(args) >= 7 && args[0] == "fen" {
					position = strings.Join(args[1:7], " ")
				}

				if err := d.e.Reset(ctx, position); err != nil {
					logw.Errorf(ctx, "Invalid position: %v", line)
					return
				}

				move := false
				for _, arg := range args {
					if arg == "moves" {
						move = true
						continue
					}
					if !move {
						continue
					}

					if err := d.e.Move(ctx, arg); err != nil {
						logw.Errorf(ctx, "Invalid position move '%v': %v: %v", arg, line, err)
						return
					}
				}

			case "go":
				limits, err := parseLimits(args)
				if err != nil {
					logw.Errorf(ctx, "Invalid go command '%v': %v", line, err)
					return
				}

				d.e.Analyze(ctx, limits, func(line string) {
					d.out <- line
				})

			case "stop":
				d.e.Halt(ctx)

			case "quit":
				d.e.Halt(ctx)
				return

			default:
				logw.Warningf(ctx, "Unknown command '%v': %v", cmd, args)
			}

		case <-d.quit.Closed():
			d.e.Halt(ctx)

			logw.Infof(ctx, "Driver closed")
			return
		}
	}
}

// parseLimits extracts the search limits from a "go" command. Unhandled
// arguments are silently ignored.
func parseLimits(args []string) (engine.Limits, error) {
	var limits engine.Limits
	var tc engine.TimeControl
	timed := false

	for i := 0; i < len(args); i++ {
		cmd := args[i]
		switch cmd {
		case "depth", "wtime", "btime", "movestogo", "movetime":
			// Next argument is an int.

			i++
			if i == len(args) {
				return limits, fmt.Errorf("no argument for %v", cmd)
			}
			n, err := strconv.Atoi(args[i])
			if err != nil {
				return limits, fmt.Errorf("invalid argument for %v: %w", cmd, err)
			}

			switch cmd {
			case "depth":
				limits.Depth = lang.Some(n)
			case "movetime":
				limits.MoveTime = lang.Some(time.Millisecond * time.Duration(n))
			case "wtime":
				tc.White = time.Millisecond * time.Duration(n)
				timed = true
			case "btime":
				tc.Black = time.Millisecond * time.Duration(n)
				timed = true
			case "movestogo":
				tc.Moves = n
				timed = true
			}

		case "infinite":
			// Search to the horizon; the engine's default depth must not apply.
			limits.Depth = lang.Some(search.MaxPly)

		default:
			// silently ignore anything not handled
		}
	}

	if timed {
		limits.TimeControl = lang.Some(tc)
	}
	return limits, nil
}
