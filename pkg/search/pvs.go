package search

import (
	"context"

	"github.com/corvid-chess/corvid/pkg/board"
	"github.com/corvid-chess/corvid/pkg/eval"
)

// PVS is the main recursive search: principal-variation search with
// null-move pruning, late-move reductions, razoring, internal iterative
// deepening and check/one-reply extensions. A single PVS value serves both
// the root and interior nodes; the root window comes from the Context's
// Alpha and Beta. Root moves are not restricted.
type PVS struct{}

func (PVS) Search(ctx context.Context, sctx *Context, b *board.Board, depth int) (uint64, eval.Score, []board.Move, error) {
	score, pv := pvSearch(ctx, sctx, b, 0, depth, sctx.Alpha, sctx.Beta, false, false)
	if err := ctx.Err(); err != nil {
		return sctx.Stats.Nodes(), score, pv, ErrHalted
	}
	return sctx.Stats.Nodes(), score, pv, nil
}

// pvSearch implements spec §4.6. extended reports whether the
// current node's depth was already bumped by an ancestor's check/one-reply
// extension, so the bump is applied at most once per branch.
func pvSearch(ctx context.Context, sctx *Context, b *board.Board, ply, depth int, alpha, beta eval.Score, cutNode, extended bool) (eval.Score, []board.Move) {
	if err := ctx.Err(); err != nil {
		return 0, nil
	}

	sctx.Stats.SNodes.Inc()

	if ply > 0 && (b.IsRepetition() || b.IsDrawByNoProgress()) {
		return sctx.Eval.DrawScore(b.Turn()), nil
	}
	if depth <= 0 {
		return qsearch(ctx, sctx, b, ply, 0, alpha, beta), nil
	}

	pvNode := alpha+1 != beta

	best := eval.Score(ply) - eval.Infinity
	if best >= beta {
		return best, nil
	}

	check := b.InCheck()
	if check && !extended && sctx.CheckExtend {
		depth++
		extended = true
		sctx.Stats.CheckExts.Inc()
	}

	var firstMove board.Move
	if bound, ttDepth, score, ttMove, ok := sctx.TT.Read(b.PositionKey()); ok {
		if bound.Is(Extended) && !extended {
			depth++
			extended = true
		}
		if ttDepth >= depth && (!pvNode || bound.Is(FromPV)) {
			switch {
			case bound.Is(Checkmate):
				return eval.Score(ply) - eval.Infinity, nil
			case bound.Is(Stalemate):
				return sctx.Eval.DrawScore(b.Turn()), nil
			case bound.Is(UpperBound) && score <= alpha:
				return score, nil
			case bound.Is(LowerBound) && score >= beta:
				return score, nil
			case bound.Is(ExactScore) && (score >= beta || score <= alpha):
				return score, nil
			}
		}
		if ttMove.IsValid() {
			firstMove = ttMove
		}
	}

	standPat := sctx.Eval.Evaluate(ctx, b) + sctx.Noise.Evaluate(ctx, b)

	if sctx.Razoring && sctx.RazorMargin > 0 && !check && !pvNode && !firstMove.IsValid() && depth <= 2 {
		margin := sctx.RazorMargin + eval.Score(64*(depth-1))
		if standPat+margin <= alpha {
			sctx.Stats.RazorCount.Inc()
			score := qsearch(ctx, sctx, b, ply, 0, alpha, beta)
			if score <= alpha {
				sctx.Stats.RazorCutoffs.Inc()
				return score, nil
			}
		}
	}

	if sctx.NullMove && !check && !pvNode && depth > 1 && standPat >= beta && nonPawnPieceCount(b.Position(), b.Turn()) > 1 {
		r := 3 + depth/6
		if standPat-beta >= 400 {
			r++
		}
		reduced := depth - 1 - r
		if reduced < 0 {
			reduced = 0
		}

		sctx.Stats.NullMoves.Inc()
		b.ExecNullMove()
		score, _ := pvSearch(ctx, sctx, b, ply+1, reduced, -beta, -beta+1, !cutNode, extended)
		score = -score
		b.UndoNullMove()

		if score >= beta {
			sctx.Stats.NMCutoffs.Inc()
			return beta, nil
		}
	}

	if sctx.IID && !firstMove.IsValid() && !check && depth >= 4 {
		sctx.Stats.IIDCount.Inc()
		_, iidPV := pvSearch(ctx, sctx, b, ply, depth-2, alpha, beta, cutNode, extended)
		if len(iidPV) > 0 {
			firstMove = iidPV[0]
		}
	}

	var list board.MoveList
	haveList := false
	ensureList := func() {
		if !haveList {
			board.GenerateMoves(b.Position(), &list, false, depth)
			board.FilterLegal(b.Position(), &list)
			haveList = true
		}
	}

	if !firstMove.IsValid() {
		ensureList()
		if list.Len() == 0 {
			if check {
				sctx.TT.Write(b.PositionKey(), Checkmate, ply, depth, best, board.Move{})
				return best, nil
			}
			sctx.TT.Write(b.PositionKey(), Stalemate, ply, depth, sctx.Eval.DrawScore(b.Turn()), board.Move{})
			return sctx.Eval.DrawScore(b.Turn()), nil
		}
		if list.Len() == 1 && !extended && sctx.OneReplyExtend {
			depth++
			extended = true
			sctx.Stats.OneReplyExts.Inc()
		}
		moves := orderMoves(b, &list, board.Move{}, [2]board.Move{}, sctx.History)
		firstMove = moves[0]
		haveList = false // remaining moves re-ordered below, excluding firstMove
	}

	killer0, killer1 := sctx.Killers.At(ply)

	b.Exec(firstMove)
	childScore, childPV := pvSearch(ctx, sctx, b, ply+1, depth-1, -beta, -alpha, false, extended)
	score := -childScore
	b.Undo()

	var pv []board.Move
	if score > best {
		best = score
		pv = append([]board.Move{firstMove}, childPV...)
		if score > alpha {
			alpha = score
		}
	}
	if alpha >= beta {
		storeCutoff(sctx, b, firstMove, ply, depth, best, extended)
		updateOrderingOnCutoff(sctx, b, firstMove, ply, depth, killer0)
		return best, pv
	}

	ensureList()
	rest := orderMoves(b, &list, firstMove, [2]board.Move{killer0, killer1}, sctx.History)

	moveCount := 1
	for _, m := range rest {
		if err := ctx.Err(); err != nil {
			return beta, pv
		}
		moveCount++

		reduction := 0
		if sctx.LateMoveReduce && sctx.LMRBase > 0 && !check && depth >= 3 && moveCount > 3 &&
			!m.IsCapture() && !m.IsPromotion() && !m.Equals(killer0) && !m.Equals(killer1) && !isNearPromotion(m) {
			h := sctx.History.Get(m)
			if h < 0 {
				reduction = sctx.LMRBase
				if h < -1 && depth >= 5 {
					reduction = sctx.LMRBase + 1
				}
				sctx.Stats.LMCandidates.Inc()
			}
		}

		b.Exec(m)
		childInCheck := b.InCheck()
		if reduction > 0 && childInCheck {
			reduction = 0
		}
		if reduction > 0 {
			sctx.Stats.LMReductions.Inc()
		}

		sctx.Stats.LateMoves.Inc()
		d := depth - 1 - reduction
		if d < 0 {
			d = 0
		}
		childScore, childPV := pvSearch(ctx, sctx, b, ply+1, d, -alpha-1, -alpha, true, extended)
		score := -childScore

		if reduction > 0 && score > alpha {
			sctx.Stats.LMResearches.Inc()
			childScore, childPV = pvSearch(ctx, sctx, b, ply+1, depth-1, -alpha-1, -alpha, true, extended)
			score = -childScore
		}
		if pvNode && score > alpha {
			childScore, childPV = pvSearch(ctx, sctx, b, ply+1, depth-1, -beta, -alpha, false, extended)
			score = -childScore
		}
		b.Undo()

		if reduction > 0 && score > alpha {
			sctx.Stats.LMConfirmed.Inc()
		}

		if score > best {
			best = score
			pv = append([]board.Move{m}, childPV...)
			if score > alpha {
				alpha = score
				sctx.Stats.LMAlphaIncs.Inc()
				if !m.IsCapture() && !m.IsPromotion() {
					sctx.History.Bonus(m, depth)
				}
			} else if !m.IsCapture() && !m.IsPromotion() {
				sctx.History.Penalize(m)
			}
		} else if !m.IsCapture() && !m.IsPromotion() {
			sctx.History.Penalize(m)
		}

		if alpha >= beta {
			storeCutoff(sctx, b, m, ply, depth, best, extended)
			updateOrderingOnCutoff(sctx, b, m, ply, depth, killer0)
			return best, pv
		}
	}

	bound := UpperBound
	if best > -eval.Infinity+eval.Score(ply) && len(pv) > 0 {
		bound = ExactScore
		if pvNode {
			bound |= FromPV
		}
		if !pv[0].IsCapture() && !pv[0].IsPromotion() {
			sctx.History.Bonus(pv[0], depth)
		}
	}
	if extended {
		bound |= Extended
	}
	sctx.TT.Write(b.PositionKey(), bound, ply, depth, best, firstMove)

	return best, pv
}

func storeCutoff(sctx *Context, b *board.Board, m board.Move, ply, depth int, best eval.Score, extended bool) {
	bound := LowerBound
	if extended {
		bound |= Extended
	}
	sctx.TT.Write(b.PositionKey(), bound, ply, depth, best, m)
}

func updateOrderingOnCutoff(sctx *Context, b *board.Board, m board.Move, ply, depth int, killer0 board.Move) {
	if m.IsCapture() || m.IsPromotion() {
		return
	}
	sctx.Killers.Store(ply, m)
	sctx.History.Bonus(m, depth)
}

// nonPawnPieceCount counts c's knights, bishops, rooks and queens: the
// null-move pruning guard against reducing in king-and-pawn endgames, where
// zugzwang makes the null-move assumption unsound.
func nonPawnPieceCount(pos *board.Position, c board.Color) int {
	n := 0
	for r := board.Rank1; r <= board.Rank8; r++ {
		for f := board.FileA; f <= board.FileH; f++ {
			p := pos.PieceAt(board.NewSquare(f, r))
			if p.Color() != c {
				continue
			}
			switch p.Type() {
			case board.KnightType, board.BishopType, board.RookType, board.QueenType:
				n++
			}
		}
	}
	return n
}
