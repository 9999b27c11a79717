package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/corvid-chess/corvid/pkg/engine"
	"github.com/corvid-chess/corvid/pkg/engine/console"
	"github.com/corvid-chess/corvid/pkg/engine/uci"
	"github.com/corvid-chess/corvid/pkg/search"
	"github.com/seekerror/logw"
)

var (
	depth = flag.Uint("depth", 0, "Search depth limit (zero if none)")
	hash  = flag.Uint("hash", 1024, "Transposition table size in MB (zero disables it)")
	noise = flag.Uint("noise", 0, "Evaluation noise in centipawns (zero if deterministic)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: corvid [options]

CORVID is a UCI chess engine.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	opts := engine.DefaultOptions()
	opts.Depth = *depth
	opts.Hash = *hash
	opts.Noise = *noise

	s := &search.PVS{}
	e := engine.New(ctx, "corvid", "corvid-chess", s,
		engine.WithTable(search.NewTranspositionTable),
		engine.WithOptions(opts),
	)

	in := engine.ReadStdinLines(ctx)
	switch <-in {
	case uci.ProtocolName:
		// Use UCI protocol.

		driver, out := uci.NewDriver(ctx, e, in)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	case console.ProtocolName:
		driver, out := console.NewDriver(ctx, e, in)
		go engine.WriteStdoutLines(ctx, out)

		<-driver.Closed()

	default:
		flag.Usage()
		logw.Exitf(ctx, "Protocol not supported")
	}
}
