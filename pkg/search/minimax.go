package search

import (
	"context"

	"github.com/corvid-chess/corvid/pkg/board"
	"github.com/corvid-chess/corvid/pkg/eval"
)

// Minimax implements naive fixed-depth minimax with no pruning, ordering or
// transposition table: a slow but simple cross-check that PVS's score at a
// shallow depth agrees with brute-force search.
//
// function minimax(node, depth, maximizingPlayer) is
//    if depth = 0 or node is a terminal node then
//        return the heuristic value of node
//    if maximizingPlayer then
//        value := −∞
//        for each child of node do
//            value := max(value, minimax(child, depth − 1, FALSE))
//        return value
//    else (* minimizing player *)
//        value := +∞
//        for each child of node do
//            value := min(value, minimax(child, depth − 1, TRUE))
//        return value
//
// See: https://en.wikipedia.org/wiki/Minimax.
type Minimax struct {
	Eval eval.Evaluator
}

func (m Minimax) Search(ctx context.Context, sctx *Context, b *board.Board, depth int) (uint64, eval.Score, []board.Move, error) {
	e := m.Eval
	if e == nil {
		e = sctx.Eval
	}
	run := &runMinimax{ctx: ctx, eval: e, b: b}
	score, pv := run.search(0, depth)
	if err := ctx.Err(); err != nil {
		return run.nodes, score, pv, ErrHalted
	}
	return run.nodes, score, pv, nil
}

type runMinimax struct {
	ctx   context.Context
	eval  eval.Evaluator
	b     *board.Board
	nodes uint64
}

// search returns the score from the side to move's perspective at this node.
func (m *runMinimax) search(ply, depth int) (eval.Score, []board.Move) {
	m.nodes++

	if m.b.IsRepetition() || m.b.IsDrawByNoProgress() {
		return m.eval.DrawScore(m.b.Turn()), nil
	}
	if depth <= 0 {
		return m.eval.Evaluate(m.ctx, m.b), nil
	}

	var list board.MoveList
	board.GenerateMoves(m.b.Position(), &list, false, depth)
	board.FilterLegal(m.b.Position(), &list)

	if list.Len() == 0 {
		if m.b.InCheck() {
			return eval.Score(ply) - eval.Infinity, nil
		}
		return m.eval.DrawScore(m.b.Turn()), nil
	}

	best := eval.NegInfinity
	var pv []board.Move
	for list.Len() > 0 {
		move, _ := list.Next()

		m.b.Exec(move)
		score, rem := m.search(ply+1, depth-1)
		m.b.Undo()

		score = -score
		if score > best {
			best = score
			pv = append([]board.Move{move}, rem...)
		}
	}

	return best, pv
}
