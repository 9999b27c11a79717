package searchctl

import (
	"context"
	"sync"
	"time"

	"github.com/corvid-chess/corvid/pkg/board"
	"github.com/corvid-chess/corvid/pkg/eval"
	"github.com/corvid-chess/corvid/pkg/search"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"
	"github.com/seekerror/stdlib/pkg/util/iox"
)

// Iterative is a search harness for iterative deepening search. A single
// Context is created per Launch and reused across depths, so the
// transposition table, history and killer state keep accumulating.
type Iterative struct {
	Root search.Search
}

func (i *Iterative) Launch(ctx context.Context, b *board.Board, tt search.TranspositionTable, evaluator eval.Evaluator, noise eval.Random, cfg search.Config, opt Options) (Handle, <-chan search.PV) {
	out := make(chan search.PV, 1)
	h := &handle{
		init: iox.NewAsyncCloser(),
		quit: iox.NewAsyncCloser(),
	}
	go h.process(ctx, i.Root, b, tt, evaluator, noise, cfg, opt, out)

	return h, out
}

type handle struct {
	init, quit iox.AsyncCloser

	pv search.PV
	mu sync.Mutex
}

func (h *handle) process(ctx context.Context, root search.Search, b *board.Board, tt search.TranspositionTable, evaluator eval.Evaluator, noise eval.Random, cfg search.Config, opt Options, out chan search.PV) {
	defer h.init.Close()
	defer close(out)

	sctx := search.NewContext(tt, evaluator, noise)
	cfg.Apply(sctx)
	soft, useSoft := EnforceTimeControl(ctx, h, opt.TimeControl, b.Turn())

	wctx, cancel := contextx.WithQuitCancel(ctx, h.quit.Closed())
	defer cancel()

	depth := 1
	for !h.quit.IsClosed() {
		start := time.Now()

		nodes, score, moves, err := root.Search(wctx, sctx, b, depth)
		if err != nil {
			if err == search.ErrHalted {
				return // Halt was called.
			}
			logw.Errorf(ctx, "Search failed on %v at depth=%v: %v", b, depth, err)
			return
		}

		pv := search.PV{
			Depth: depth,
			Nodes: nodes,
			Score: score,
			Moves: moves,
			Time:  time.Since(start),
		}
		if tt != nil {
			pv.Hash = tt.Used()
		}

		logw.Debugf(ctx, "Searched %v: %v", b.Position(), pv)

		h.mu.Lock()
		h.pv = pv
		h.mu.Unlock()

		select {
		case <-out:
		default:
		}
		out <- pv

		h.init.Close()
		if limit, ok := opt.DepthLimit.V(); ok && limit > 0 && uint(depth) == limit {
			return // halt: reached max depth
		}
		if depth >= search.MaxPlies {
			return // halt: reached the implementation's ply bound
		}
		if md, ok := score.MateDistance(); ok && md >= 0 && md <= depth {
			return // halt: forced mate found within full width search. Exact result.
		}
		if useSoft && soft < time.Since(start) {
			return // halt: exceeded soft time limit. Do not start new search.
		}
		depth++
	}
}

func (h *handle) Halt() search.PV {
	<-h.init.Closed()
	h.quit.Close()

	h.mu.Lock()
	defer h.mu.Unlock()

	return h.pv
}
