package search

import "github.com/corvid-chess/corvid/pkg/board"

// seeValue returns the exact static-exchange value of playing m: the
// immediate material gain, less the opponent's best continuation recapture
// sequence on the destination square. b is left unchanged.
func seeValue(b *board.Board, m board.Move) int32 {
	gain := m.Capture().Value()
	if m.Type() == board.EnPassant {
		gain = board.PawnType.Value()
	}
	if promo := m.Promotion(); promo != board.NoPiece {
		gain += promo.Value() - board.PawnType.Value()
	}

	b.Exec(m)
	gain -= board.StaticExchange(b.Position(), m.To(), b.Turn())
	b.Undo()

	return gain
}

// orderMoves returns the remaining legal moves (everything but skip, the
// move already searched as firstMove) sorted best-first: TT/firstMove
// handling happens separately, so here every capture and promotion (ordered
// among themselves by SEE, losing ones included) ranks above the killers,
// which rank above the remaining quiet moves ordered by history score.
func orderMoves(b *board.Board, list *board.MoveList, skip board.Move, killers [2]board.Move, hist *History) []board.Move {
	moves := make([]board.Move, 0, list.Len())
	for list.Len() > 0 {
		m, _ := list.Next()
		if m.Equals(skip) {
			continue
		}
		moves = append(moves, m)
	}

	scores := make([]int32, len(moves))
	for i, m := range moves {
		scores[i] = orderingScore(b, m, killers, hist)
	}

	// Insertion sort: move lists at typical branching factors are short
	// enough that this beats sort.Slice's overhead, and it is stable.
	for i := 1; i < len(moves); i++ {
		m, s := moves[i], scores[i]
		j := i - 1
		for j >= 0 && scores[j] < s {
			moves[j+1] = moves[j]
			scores[j+1] = scores[j]
			j--
		}
		moves[j+1] = m
		scores[j+1] = s
	}
	return moves
}

func orderingScore(b *board.Board, m board.Move, killers [2]board.Move, hist *History) int32 {
	switch {
	case m.IsCapture() || m.IsPromotion():
		return 1<<20 + seeValue(b, m)
	case m.Equals(killers[0]):
		return 1 << 19
	case m.Equals(killers[1]):
		return 1<<19 - 1
	default:
		return int32(hist.Get(m))
	}
}

// isNearPromotion reports a pawn push to the 7th rank (2nd for Black): the
// late-move-reduction exemption for pushes that are one step from queening.
func isNearPromotion(m board.Move) bool {
	if m.Piece() != board.PawnType {
		return false
	}
	r := m.To().Rank()
	return r == board.Rank7 || r == board.Rank2
}
