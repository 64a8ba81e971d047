package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/pkg/profile"
	"github.com/seekerror/logw"
	"github.com/zarya-chess/zarya/pkg/engine"
	"github.com/zarya-chess/zarya/pkg/engine/uci"
	"github.com/zarya-chess/zarya/pkg/eval"
)

var (
	depth   = flag.Uint("depth", 0, "Default search depth limit in plies (zero if unlimited)")
	hash    = flag.Uint("hash", 64, "Transposition table size in MB (zero if none)")
	params  = flag.String("params", "", "Optional TOML file overriding the evaluation parameters")
	prof    = flag.Bool("profile", false, "Enable CPU profiling")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: zarya [options]

ZARYA is a simple UCI chess engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	if *prof {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	p := eval.DefaultParams()
	if *params != "" {
		if _, err := toml.DecodeFile(*params, p); err != nil {
			logw.Exitf(ctx, "Invalid params file '%v': %v", *params, err)
		}
		logw.Infof(ctx, "Loaded evaluation params from %v", *params)
	}

	e := engine.New(ctx, "zarya", "the zarya authors", p, engine.WithOptions(engine.Options{
		Depth: *depth,
		Hash:  *hash,
	}))

	in := engine.ReadStdinLines(ctx)
	switch <-in {
	case uci.ProtocolName:
		// Use UCI protocol.

		driver, out := uci.NewDriver(ctx, e, in)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	default:
		flag.Usage()
		logw.Exitf(ctx, "Protocol not supported")
	}
}
