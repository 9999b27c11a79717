// Package search implements the engine's tree search: quiescence search,
// the main PVS driver with null-move pruning, late-move reductions,
// razoring, internal iterative deepening and check extensions, and the
// transposition table and move-ordering heuristics that feed it.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/corvid-chess/corvid/pkg/board"
	"github.com/corvid-chess/corvid/pkg/eval"
)

// ErrHalted indicates the search was stopped before completing its depth.
var ErrHalted = errors.New("search halted")

// Context carries everything a search needs beyond the position itself:
// the transposition table, evaluator, move-ordering state and feature
// toggles. Alpha/Beta seed the top-level call; the recursive search
// negates and narrows them on the way down. A Context is created once per
// Launch and reused across the iterative-deepening depths so History and
// the transposition table keep accumulating.
type Context struct {
	Alpha, Beta eval.Score

	TT    TranspositionTable
	Eval  eval.Evaluator
	Noise eval.Random

	Killers *Killers
	History *History
	Stats   *Stats

	// Feature toggles, all enabled by default. Engine options can switch off
	// NullMove, IID, CheckExtend and OneReplyExtend; Razoring and
	// LateMoveReduce are switched off through a zero RazorMargin or LMRBase.
	NullMove       bool
	Razoring       bool
	IID            bool
	LateMoveReduce bool
	CheckExtend    bool
	OneReplyExtend bool

	// RazorMargin and DeltaMargin are the "Razoring Delta" and "Delta Pruning
	// Margin" options of spec.md §6.
	RazorMargin eval.Score
	DeltaMargin eval.Score

	// LMRBase is the "Late Move Reduction" option: the base ply reduction
	// applied to a late quiet move, escalated by one more ply when history
	// strongly disfavors it. Zero disables LateMoveReduce regardless of the
	// bool above.
	LMRBase int
}

// DefaultRazorMargin, DefaultDeltaMargin and DefaultLMRBase are spec.md §6's
// listed defaults for the Razoring Delta, Delta Pruning Margin and Late Move
// Reduction options.
const (
	DefaultRazorMargin eval.Score = 500
	DefaultDeltaMargin eval.Score = 500
	DefaultLMRBase     int        = 1
)

// NewContext returns a Context with every search enhancement turned on and
// default margins, matching spec.md §6's Configuration table.
func NewContext(tt TranspositionTable, evaluator eval.Evaluator, noise eval.Random) *Context {
	return &Context{
		Alpha: -eval.Infinity,
		Beta:  eval.Infinity,

		TT:    tt,
		Eval:  evaluator,
		Noise: noise,

		Killers: &Killers{},
		History: &History{},
		Stats:   &Stats{},

		NullMove:       true,
		Razoring:       true,
		IID:            true,
		LateMoveReduce: true,
		CheckExtend:    true,
		OneReplyExtend: true,

		RazorMargin: DefaultRazorMargin,
		DeltaMargin: DefaultDeltaMargin,
		LMRBase:     DefaultLMRBase,
	}
}

// Config holds the tunable feature toggles and margins of spec.md §6's
// Configuration table that setoption can change at runtime: Check
// Extensions, Internal Iterative Deepening, Late Move Reduction, Null Move
// Pruning, One Reply Extensions, Razoring Delta and Delta Pruning Margin.
// Launch applies a Config on top of NewContext's defaults for every depth of
// one search; Razoring and LateMoveReduce stay enabled as master switches,
// with RazorMargin==0 and LMRBase==0 the actual per-spec disable knobs.
type Config struct {
	CheckExtend    bool
	IID            bool
	NullMove       bool
	OneReplyExtend bool

	RazorMargin eval.Score
	DeltaMargin eval.Score
	LMRBase     int
}

// DefaultConfig returns spec.md §6's listed defaults: every feature enabled.
func DefaultConfig() Config {
	return Config{
		CheckExtend:    true,
		IID:            true,
		NullMove:       true,
		OneReplyExtend: true,

		RazorMargin: DefaultRazorMargin,
		DeltaMargin: DefaultDeltaMargin,
		LMRBase:     DefaultLMRBase,
	}
}

// Apply overwrites ctx's configurable toggles and margins with cfg's.
func (cfg Config) Apply(ctx *Context) {
	ctx.CheckExtend = cfg.CheckExtend
	ctx.IID = cfg.IID
	ctx.NullMove = cfg.NullMove
	ctx.OneReplyExtend = cfg.OneReplyExtend
	ctx.RazorMargin = cfg.RazorMargin
	ctx.DeltaMargin = cfg.DeltaMargin
	ctx.LMRBase = cfg.LMRBase
}

// Search is the tree-search entry point: an alpha/beta/depth call at the
// given position, returning the node count, score, and principal variation
// from the side to move's perspective.
type Search interface {
	Search(ctx context.Context, sctx *Context, b *board.Board, depth int) (uint64, eval.Score, []board.Move, error)
}

// PV is a completed (or in-progress, on Halt) principal variation report.
type PV struct {
	Depth int
	Moves []board.Move
	Score eval.Score
	Nodes uint64
	Time  time.Duration
	Hash  float64 // transposition table utilization, [0;1]
}

func (p PV) String() string {
	parts := make([]string, len(p.Moves))
	for i, m := range p.Moves {
		parts[i] = m.String()
	}
	return fmt.Sprintf("depth=%v score=%v nodes=%v time=%v hash=%v%% pv=%v",
		p.Depth, p.Score, p.Nodes, p.Time, int(100*p.Hash), strings.Join(parts, " "))
}
