// perft is a movegen debugging tools. See: https://www.chessprogramming.org/Perft_Results.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/corvid-chess/corvid/pkg/board"
	"github.com/corvid-chess/corvid/pkg/board/fen"
	"github.com/seekerror/logw"
)

var (
	depth    = flag.Int("depth", 4, "Search depth")
	position = flag.String("fen", "", "Start position (default to standard)")
	divide   = flag.Bool("divide", false, "Divide counts by initial move")
)

func main() {
	ctx := context.Background()
	flag.Parse()

	if *position == "" {
		*position = fen.Initial
	}

	zt := board.NewZobristTable(0)
	b := board.NewBoard(zt)
	if _, err := b.SetPosition(*position); err != nil {
		logw.Exitf(ctx, "Invalid fen '%v': %v", *position, err)
	}

	for i := 1; i <= *depth; i++ {
		start := time.Now()
		nodes := search(b, i, *divide && i == *depth)
		duration := time.Since(start)

		println(fmt.Sprintf("perft,%v,%v,%v,%v", *position, i, nodes, duration.Microseconds()))
	}
}

func search(b *board.Board, depth int, d bool) int64 {
	if depth == 0 {
		return 1
	}

	var list board.MoveList
	board.GenerateMoves(b.Position(), &list, false, 0)
	board.FilterLegal(b.Position(), &list)

	var nodes int64
	for list.Len() > 0 {
		m, ok := list.Next()
		if !ok {
			break
		}

		b.Exec(m)
		count := search(b, depth-1, false)
		b.Undo()

		if d {
			println(fmt.Sprintf("%v: %v", m.CoordString(), count))
		}
		nodes += count
	}
	return nodes
}
