package search

import (
	"context"

	"github.com/corvid-chess/corvid/pkg/board"
	"github.com/corvid-chess/corvid/pkg/eval"
)

// qsearch implements the quiescence search: captures, promotions and, while
// depth >= 0, checking moves only, with delta pruning and a TT probe in the
// same shape as the main search but without further depth to spend.
func qsearch(ctx context.Context, sctx *Context, b *board.Board, ply, depth int, alpha, beta eval.Score) eval.Score {
	if err := ctx.Err(); err != nil {
		return 0
	}

	sctx.Stats.QNodes.Inc()

	if b.IsRepetition() || b.IsDrawByNoProgress() {
		return sctx.Eval.DrawScore(b.Turn())
	}

	check := b.InCheck()

	var best eval.Score
	if check {
		best = eval.Score(ply) - eval.Infinity
	} else {
		best = sctx.Eval.Evaluate(ctx, b)
	}
	if best >= beta {
		return best
	}
	if alpha < best {
		alpha = best
	}

	var firstMove board.Move
	if bound, _, score, ttMove, ok := sctx.TT.Read(b.PositionKey()); ok {
		switch {
		case bound.Is(Checkmate):
			return eval.Score(ply) - eval.Infinity
		case bound.Is(Stalemate):
			return sctx.Eval.DrawScore(b.Turn())
		case bound.Is(UpperBound) && score <= alpha:
			return score
		case bound.Is(LowerBound) && score >= beta:
			return score
		case bound.Is(ExactScore):
			return score
		}
		if ttMove.IsValid() && (ttMove.IsCapture() || ttMove.IsPromotion() || check) {
			firstMove = ttMove
		}
	}

	if firstMove.IsValid() {
		b.Exec(firstMove)
		score := -qsearch(ctx, sctx, b, ply+1, depth-1, -beta, -alpha)
		b.Undo()

		if score > best {
			best = score
			if score > alpha {
				alpha = score
			}
		}
		if alpha >= beta {
			if check {
				sctx.TT.Write(b.PositionKey(), LowerBound, ply, 0, best, firstMove)
			}
			return best
		}
	}

	var list board.MoveList
	board.GenerateMoves(b.Position(), &list, true, depth)
	board.FilterLegal(b.Position(), &list)

	if list.Len() == 0 {
		if check {
			mate := eval.Score(ply) - eval.Infinity
			sctx.TT.Write(b.PositionKey(), Checkmate, ply, 0, mate, board.Move{})
			return mate
		}
		return best
	}

	standPat := best
	if check {
		standPat = sctx.Eval.Evaluate(ctx, b)
	}

	moves := orderMoves(b, &list, firstMove, [2]board.Move{}, sctx.History)
	var pvMove board.Move

	for _, m := range moves {
		if !check && depth < 0 && !m.IsPromotion() {
			if standPat+eval.Score(m.Capture().Value())+sctx.DeltaMargin <= alpha && !givesCheckMove(b, m) {
				sctx.Stats.DeltaCount.Inc()
				continue
			}
		}

		b.Exec(m)
		score := -qsearch(ctx, sctx, b, ply+1, depth-1, -beta, -alpha)
		b.Undo()

		if score > best {
			best = score
			pvMove = m
			if score > alpha {
				alpha = score
			}
		}
		if alpha >= beta {
			if check {
				sctx.TT.Write(b.PositionKey(), LowerBound, ply, 0, best, m)
			}
			return best
		}
	}

	if check && pvMove.IsValid() {
		bound := UpperBound
		if best > standPat {
			bound = ExactScore
		}
		sctx.TT.Write(b.PositionKey(), bound, ply, 0, best, pvMove)
	}
	return best
}

func givesCheckMove(b *board.Board, m board.Move) bool {
	b.Exec(m)
	inCheck := b.InCheck()
	b.Undo()
	return inCheck
}
