package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/corvid-chess/corvid/pkg/board"
	"github.com/corvid-chess/corvid/pkg/eval"
	"github.com/corvid-chess/corvid/pkg/search"
	"github.com/corvid-chess/corvid/pkg/search/searchctl"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
)

var version = build.NewVersion(0, 89, 3)

// Options are search creation options, the engine-level equivalent of
// spec.md §6's Configuration table. WithOptions replaces the struct
// wholesale, so callers building one from scratch should start from
// DefaultOptions and override individual fields.
type Options struct {
	// Depth is the search depth limit. If zero, there is no limit. Overridden by search
	// options if provided.
	Depth uint
	// Hash is the transposition table size in MB. If zero, the engine will not use
	// a transposition table.
	Hash uint
	// Noise adds some centipawn randomness to the leaf evaluations.
	Noise uint

	// Contempt biases the static evaluator's draw score away from zero.
	Contempt uint
	// TempoBonus rewards the side to move in the static evaluator.
	TempoBonus uint

	// CheckExtend enables the one-ply check extension of spec.md §4.6 step 4.
	CheckExtend bool
	// IID enables internal iterative deepening (spec.md §4.6 step 8).
	IID bool
	// NullMove enables null-move pruning (spec.md §4.6 step 7).
	NullMove bool
	// OneReplyExtend enables the one-reply extension (spec.md §4.6 step 9).
	OneReplyExtend bool

	// RazorMargin is the razoring margin in centipawns; zero disables razoring.
	RazorMargin uint
	// DeltaMargin is the quiescence delta-pruning margin in centipawns.
	DeltaMargin uint
	// LMRBase is the base late-move-reduction depth; zero disables it.
	LMRBase uint
}

// DefaultOptions returns spec.md §6's listed Configuration defaults.
func DefaultOptions() Options {
	return Options{
		Hash: 1024,

		CheckExtend:    true,
		IID:            true,
		NullMove:       true,
		OneReplyExtend: true,

		RazorMargin: 500,
		DeltaMargin: 500,
		LMRBase:     1,
	}
}

func (o Options) String() string {
	return fmt.Sprintf("{depth=%v, hash=%v, noise=%v, contempt=%v, tempo=%v, "+
		"checkExtend=%v, iid=%v, nullMove=%v, oneReply=%v, razorMargin=%v, deltaMargin=%v, lmrBase=%v}",
		o.Depth, o.Hash, o.Noise, o.Contempt, o.TempoBonus,
		o.CheckExtend, o.IID, o.NullMove, o.OneReplyExtend, o.RazorMargin, o.DeltaMargin, o.LMRBase)
}

// asConfig projects the search-relevant fields of o onto a search.Config.
func (o Options) asConfig() search.Config {
	return search.Config{
		CheckExtend:    o.CheckExtend,
		IID:            o.IID,
		NullMove:       o.NullMove,
		OneReplyExtend: o.OneReplyExtend,

		RazorMargin: eval.Score(o.RazorMargin),
		DeltaMargin: eval.Score(o.DeltaMargin),
		LMRBase:     int(o.LMRBase),
	}
}

// Engine encapsulates game-playing logic, search and evaluation.
type Engine struct {
	name, author string

	launcher searchctl.Launcher
	factory  search.TranspositionTableFactory
	evaluate eval.Evaluator
	// customEval is true once WithEvaluator has overridden the default
	// evaluator; Contempt/TempoBonus setoptions then have no effect, since
	// there is no way to know whether the custom evaluator understands them.
	customEval bool
	zt         *board.ZobristTable
	seed       int64
	opts       Options

	b      *board.Board
	tt     search.TranspositionTable
	noise  eval.Random
	active searchctl.Handle
	mu     sync.Mutex
}

// Option is an engine creation option.
type Option func(*Engine)

// WithTable configures the engine to use the given transposition table factory.
func WithTable(factory search.TranspositionTableFactory) Option {
	return func(e *Engine) {
		e.factory = factory
	}
}

// WithEvaluator overrides the default static evaluator. The Contempt and
// TempoBonus options no longer have any effect once this is set.
func WithEvaluator(evaluator eval.Evaluator) Option {
	return func(e *Engine) {
		e.evaluate = evaluator
		e.customEval = true
	}
}

// WithOptions sets default runtime options.
func WithOptions(opts Options) Option {
	return func(e *Engine) {
		e.opts = opts
	}
}

// WithZobrist configures the engine to use the given random seed instead of the
// default seed of zero.
func WithZobrist(seed int64) Option {
	return func(e *Engine) {
		e.seed = seed
	}
}

func New(ctx context.Context, name, author string, root search.Search, opts ...Option) *Engine {
	e := &Engine{
		name:     name,
		author:   author,
		launcher: &searchctl.Iterative{Root: root},
		factory:  search.NewTranspositionTable,
		opts:     DefaultOptions(),
	}
	for _, fn := range opts {
		fn(e)
	}
	e.rebuildEvaluator()
	e.zt = board.NewZobristTable(e.seed)

	_ = e.Reset(ctx, board.InitialFEN)

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

func (e *Engine) Options() Options {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.opts
}

func (e *Engine) SetDepth(depth uint) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.Depth = depth
}

func (e *Engine) SetHash(size uint) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.Hash = size
}

func (e *Engine) SetNoise(centipawns uint) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.Noise = centipawns
}

// SetContempt sets the "Contempt" option: the draw-score bias in centipawns.
func (e *Engine) SetContempt(centipawns uint) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.Contempt = centipawns
	e.rebuildEvaluator()
}

// SetTempoBonus sets the "Tempo Bonus" option: the side-to-move bonus in
// centipawns awarded by the static evaluator.
func (e *Engine) SetTempoBonus(centipawns uint) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.TempoBonus = centipawns
	e.rebuildEvaluator()
}

// SetCheckExtend sets the "Check Extensions" option.
func (e *Engine) SetCheckExtend(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.CheckExtend = enabled
}

// SetIID sets the "Internal Iterative Deepening" option.
func (e *Engine) SetIID(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.IID = enabled
}

// SetNullMove sets the "Null Move Pruning" option.
func (e *Engine) SetNullMove(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.NullMove = enabled
}

// SetOneReplyExtend sets the "One Reply Extensions" option.
func (e *Engine) SetOneReplyExtend(enabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.OneReplyExtend = enabled
}

// SetRazorMargin sets the "Razoring Delta" option; zero disables razoring.
func (e *Engine) SetRazorMargin(centipawns uint) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.RazorMargin = centipawns
}

// SetDeltaMargin sets the "Delta Pruning Margin" option for quiescence search.
func (e *Engine) SetDeltaMargin(centipawns uint) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.DeltaMargin = centipawns
}

// SetLMRBase sets the "Late Move Reduction" option; zero disables it.
func (e *Engine) SetLMRBase(plies uint) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.opts.LMRBase = plies
}

// ClearHash implements the "Clear Hash" action: it zeroes the transposition
// table without otherwise disturbing the position or search options.
func (e *Engine) ClearHash(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.opts.Hash > 0 {
		e.tt = e.factory(ctx, uint64(e.opts.Hash)<<20)
	}
}

// rebuildEvaluator rebuilds the default static evaluator from the current
// Contempt/TempoBonus options. No-op once WithEvaluator has set a custom one.
func (e *Engine) rebuildEvaluator() {
	if e.customEval {
		return
	}
	e.evaluate = eval.Static{
		TempoBonus: int32(e.opts.TempoBonus),
		Contempt:   int32(e.opts.Contempt),
	}
}

// Board returns a forked board.
func (e *Engine) Board() *board.Board {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.b.Fork()
}

// Position returns the current position in FEN format. Convenience function.
func (e *Engine) Position() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.b.GetFEN()
}

// Reset resets the engine to a new starting position in FEN format.
func (e *Engine) Reset(ctx context.Context, position string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Reset %v, depth=%v, TT=%vMB, noise=%vcp", position, e.opts.Depth, e.opts.Hash, e.opts.Noise)

	_, _ = e.haltSearchIfActive(ctx)

	b := board.NewBoard(e.zt)
	if _, err := b.SetPosition(position); err != nil {
		return err
	}
	e.b = b

	e.tt = search.NoTranspositionTable{}
	if e.opts.Hash > 0 {
		e.tt = e.factory(ctx, uint64(e.opts.Hash)<<20)
	}
	e.noise = eval.Random{}
	if e.opts.Noise > 0 {
		e.noise = eval.NewRandom(int(e.opts.Noise), e.seed)
	}

	logw.Infof(ctx, "New board: %v", e.b)
	return nil
}

// Move selects the given move, usually an opponent move, in pure algebraic
// coordinate notation.
func (e *Engine) Move(ctx context.Context, move string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Move %v", move)

	_, _ = e.haltSearchIfActive(ctx)

	if _, err := e.b.MakeMove(move); err != nil {
		return fmt.Errorf("invalid move: %w", err)
	}

	logw.Infof(ctx, "Move %v: %v", move, e.b)
	return nil
}

// TakeBack undoes the latest move.
func (e *Engine) TakeBack(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	_, _ = e.haltSearchIfActive(ctx)

	if e.b.Ply() == 0 {
		return fmt.Errorf("no move to take back")
	}
	e.b.Undo()

	logw.Infof(ctx, "Takeback: %v", e.b)
	return nil
}

// Analyze analyzes the current position.
func (e *Engine) Analyze(ctx context.Context, opt searchctl.Options) (<-chan search.PV, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := opt.DepthLimit.V(); !ok {
		opt.DepthLimit = lang.Some(e.opts.Depth)
	}

	logw.Infof(ctx, "Analyze %v, opt=%v", e.b, opt)

	if e.active != nil {
		return nil, fmt.Errorf("search already active")
	}

	handle, out := e.launcher.Launch(ctx, e.b.Fork(), e.tt, e.evaluate, e.noise, e.opts.asConfig(), opt)
	e.active = handle
	return out, nil
}

// Halt halts the active search and returns the principal variation, if any.
func (e *Engine) Halt(ctx context.Context) (search.PV, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	logw.Infof(ctx, "Halt")

	pv, ok := e.haltSearchIfActive(ctx)
	if !ok {
		return search.PV{}, fmt.Errorf("no active search")
	}
	return pv, nil
}

func (e *Engine) haltSearchIfActive(ctx context.Context) (search.PV, bool) {
	if e.active != nil {
		pv := e.active.Halt()
		logw.Infof(ctx, "Search %v halted: %v", e.b, pv)

		e.active = nil
		return pv, true
	}
	return search.PV{}, false
}
