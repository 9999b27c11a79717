package eval

import "github.com/corvid-chess/corvid/pkg/board"

// passerBonus is indexed by the pawn's advancement toward promotion, 0 for a
// pawn still on its starting rank through 5 for a pawn one step from queening.
var passerBonus = [6]int32{16, 24, 36, 52, 68, 80}

// advanceIndex maps a pawn's square to its passerBonus index for its color.
func advanceIndex(c board.Color, sq board.Square) int {
	r := int(sq.Rank())
	if c == board.Black {
		r = 7 - r
	}
	return r - 1
}

func homeRank(c board.Color) board.Rank {
	if c == board.White {
		return board.Rank2
	}
	return board.Rank7
}

func forward(c board.Color) int8 {
	return board.PawnAdvance(c)
}

// fileHasPawn reports whether color c has a pawn on file f.
func fileHasPawn(pos *board.Position, c board.Color, f board.File) bool {
	for r := board.Rank1; r <= board.Rank8; r++ {
		sq := board.NewSquare(f, r)
		if p := pos.PieceAt(sq); p.Color() == c && p.Type() == board.PawnType {
			return true
		}
	}
	return false
}

// isPassed reports whether the pawn on sq has no enemy pawn able to stop it:
// no enemy pawn on its file or an adjacent file, between it and promotion.
func isPassed(pos *board.Position, c board.Color, sq board.Square) bool {
	f := sq.File()
	r := int(sq.Rank())
	for df := -1; df <= 1; df++ {
		nf := int(f) + df
		if nf < 0 || nf > 7 {
			continue
		}
		for rr := 0; rr < 8; rr++ {
			ahead := (c == board.White && rr > r) || (c == board.Black && rr < r)
			if !ahead {
				continue
			}
			p := pos.PieceAt(board.NewSquare(board.File(nf), board.Rank(rr)))
			if p.Type() == board.PawnType && p.Color() != c {
				return false
			}
		}
	}
	return true
}

// isIsolated reports that no friendly pawn sits on an adjacent file.
func isIsolated(pos *board.Position, c board.Color, f board.File) bool {
	if f > 0 && fileHasPawn(pos, c, f-1) {
		return false
	}
	if f < 7 && fileHasPawn(pos, c, f+1) {
		return false
	}
	return true
}

// nearestFriendlyPawnFileDistance returns the smallest file distance from
// sq's file to another friendly pawn, or 8 when the color has no other pawns.
func nearestFriendlyPawnFileDistance(pos *board.Position, c board.Color, sq board.Square) int {
	best := 8
	for r := board.Rank1; r <= board.Rank8; r++ {
		for f := board.FileA; f <= board.FileH; f++ {
			other := board.NewSquare(f, r)
			if other == sq {
				continue
			}
			p := pos.PieceAt(other)
			if p.Color() == c && p.Type() == board.PawnType {
				if d := f.Distance(sq.File()); d < best {
					best = d
				}
			}
		}
	}
	return best
}

// hasOpposingFlankPawns reports whether the opponent still has pawns two
// files beyond the passer's file, a rough proxy for holding counterplay on
// the other wing that halves the practical value of the passer.
func hasOpposingFlankPawns(pos *board.Position, them board.Color, f board.File) bool {
	for _, df := range []int{-2, 2} {
		nf := int(f) + df
		if nf >= 0 && nf <= 7 && fileHasPawn(pos, them, board.File(nf)) {
			return true
		}
	}
	return false
}

// evalPawns walks every pawn of color c, returning the summed pawn-structure
// term (piece-square plus the structural bonuses/penalties of spec §4.4.3).
func evalPawns(pos *board.Position, c board.Color) int32 {
	them := c.Opponent()
	var total int32

	for r := board.Rank1; r <= board.Rank8; r++ {
		for f := board.FileA; f <= board.FileH; f++ {
			sq := board.NewSquare(f, r)
			p := pos.PieceAt(sq)
			if p.Type() != board.PawnType || p.Color() != c {
				continue
			}

			total += pstValue(&pawnTable, c, sq)

			if r == homeRank(c) && (f == board.FileD || f == board.FileE) {
				if ahead, ok := sq.Add(forward(c)); ok && pos.PieceAt(ahead) != board.NoPiece {
					total -= 16
				}
			}

			if count := countFilePawns(pos, c, f); count > 1 {
				total -= 32
			}

			if isPassed(pos, c, sq) {
				bonus := passerBonus[advanceIndex(c, sq)]
				if hasOpposingFlankPawns(pos, them, f) {
					bonus /= 2
				}
				if hasSupportingFlankPawn(pos, c, sq) {
					bonus += bonus / 3
				}
				if ahead, ok := sq.Add(forward(c)); ok && pos.PieceAt(ahead) != board.NoPiece {
					bonus /= 2
				}
				total += bonus
			} else if isIsolated(pos, c, f) || isBackward(pos, c, sq) {
				d := nearestFriendlyPawnFileDistance(pos, c, sq)
				total -= int32(2 * d)
				if ahead, ok := sq.Add(forward(c)); ok {
					blocker := pos.PieceAt(ahead)
					if blocker.Type() == board.KnightType || blocker.Type() == board.BishopType {
						if blocker.Color() == them {
							total -= 8
						}
					}
				}
			}
		}
	}
	return total
}

func countFilePawns(pos *board.Position, c board.Color, f board.File) int {
	n := 0
	for r := board.Rank1; r <= board.Rank8; r++ {
		p := pos.PieceAt(board.NewSquare(f, r))
		if p.Color() == c && p.Type() == board.PawnType {
			n++
		}
	}
	return n
}

// hasSupportingFlankPawn reports a friendly pawn one rank behind on an
// adjacent file, able to escort the passer forward.
func hasSupportingFlankPawn(pos *board.Position, c board.Color, sq board.Square) bool {
	back := -forward(c)
	behind, ok := sq.Add(back)
	if !ok {
		return false
	}
	for _, d := range []int8{board.DirE, board.DirW} {
		if side, ok := behind.Add(d); ok {
			p := pos.PieceAt(side)
			if p.Color() == c && p.Type() == board.PawnType {
				return true
			}
		}
	}
	return false
}

// isBackward reports a pawn with no friendly pawn diagonally behind it to
// defend it. The safety of its advance square is not checked.
func isBackward(pos *board.Position, c board.Color, sq board.Square) bool {
	back := -forward(c)
	behind, ok := sq.Add(back)
	if !ok {
		return false
	}
	for _, d := range []int8{board.DirE, board.DirW} {
		if side, ok := behind.Add(d); ok {
			p := pos.PieceAt(side)
			if p.Color() == c && p.Type() == board.PawnType {
				return false
			}
		}
	}
	return true
}
