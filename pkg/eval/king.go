package eval

import "github.com/corvid-chess/corvid/pkg/board"

// shelterFiles returns the three files scanned for shelter and storm pawns:
// a-c for a king on files a-c, f-h for a king on files f-h, otherwise the
// king's file and its two neighbours.
func shelterFiles(f board.File) [3]board.File {
	switch {
	case f <= board.FileC:
		return [3]board.File{board.FileA, board.FileB, board.FileC}
	case f >= board.FileF:
		return [3]board.File{board.FileF, board.FileG, board.FileH}
	default:
		lo := f - 1
		return [3]board.File{lo, lo + 1, lo + 2}
	}
}

// evalKingShelterStorm scans the three files around the king up to two ranks
// ahead: friendly pawns still in place are shelter (bonus), advanced enemy
// pawns are a storm (penalty).
func evalKingShelterStorm(pos *board.Position, c board.Color, kingSq board.Square) int32 {
	var score int32
	files := shelterFiles(kingSq.File())
	step := forward(c)

	for _, f := range files {
		sq := kingSq
		for rank := 0; rank < 2; rank++ {
			next, ok := sq.Add(step)
			if !ok {
				break
			}
			scanSq := board.NewSquare(f, next.Rank())
			p := pos.PieceAt(scanSq)
			switch {
			case p.Type() == board.PawnType && p.Color() == c:
				score += 8 - int32(rank)*4
			case p.Type() == board.PawnType && p.Color() != c:
				score -= 12 - int32(rank)*4
			}
			sq = next
		}
	}
	return score
}

// evalKingBlockers penalizes the king by 6 for each own rook or bishop on
// the square directly east or west of it, whether or not it has castled.
func evalKingBlockers(pos *board.Position, c board.Color, kingSq board.Square) int32 {
	var score int32
	for _, d := range []int8{board.DirE, board.DirW} {
		if sq, ok := kingSq.Add(d); ok {
			p := pos.PieceAt(sq)
			if p.Color() == c && (p.Type() == board.RookType || p.Type() == board.BishopType) {
				score -= 6
			}
		}
	}
	return score
}

func evalKing(pos *board.Position, c board.Color) int32 {
	kingSq := pos.King(c)
	mg := MidGame(pos, c)
	eg := EndGame(pos, c)

	pstScore := float64(pstValue(&kingMidTable, c, kingSq))*mg + float64(pstValue(&kingEndTable, c, kingSq))*eg

	shelterStorm := float64(evalKingShelterStorm(pos, c, kingSq)) * mg
	blockers := float64(evalKingBlockers(pos, c, kingSq)) * mg

	return int32(pstScore + shelterStorm + blockers)
}
