package eval

import "github.com/corvid-chess/corvid/pkg/board"

// StartMaterial is the non-king material present at the start of a game,
// used as the normalizer for the middlegame/endgame interpolation ratios.
const StartMaterial = 8*pawnValue + 2*knightValue + 2*bishopValue + 2*rookValue + queenValue

const (
	pawnValue   = 100
	knightValue = 350
	bishopValue = 350
	rookValue   = 500
	queenValue  = 950
)

// MidGame is 1 when the opponent has all its material and falls toward 0 as
// it is traded away; EndGame is its complement. Both are evaluated against
// the opponent of c, since it is the opponent's remaining firepower that
// determines how cautious c's king and pieces need to be.
func MidGame(pos *board.Position, c board.Color) float64 {
	return float64(pos.Material(c.Opponent())) / float64(StartMaterial)
}

func EndGame(pos *board.Position, c board.Color) float64 {
	return float64(StartMaterial-pos.Material(c.Opponent())) / float64(StartMaterial)
}

func chebyshev(a, b board.Square) int {
	df := int(a.File()) - int(b.File())
	dr := int(a.Rank()) - int(b.Rank())
	if df < 0 {
		df = -df
	}
	if dr < 0 {
		dr = -dr
	}
	if df > dr {
		return df
	}
	return dr
}

func forEachPiece(pos *board.Position, c board.Color, t board.Piece, fn func(sq board.Square)) {
	for r := board.Rank1; r <= board.Rank8; r++ {
		for f := board.FileA; f <= board.FileH; f++ {
			sq := board.NewSquare(f, r)
			p := pos.PieceAt(sq)
			if p.Color() == c && p.Type() == t {
				fn(sq)
			}
		}
	}
}

func evalKnights(pos *board.Position, c board.Color) int32 {
	ownKing, oppKing := pos.King(c), pos.King(c.Opponent())
	var total int32
	forEachPiece(pos, c, board.KnightType, func(sq board.Square) {
		total += pstValue(&knightTable, c, sq)
		tropism := 14 - (chebyshev(sq, ownKing) + chebyshev(sq, oppKing))
		total += int32(tropism)
	})
	return total
}

func isDiagonalTo(a, b board.Square) bool {
	df := int(a.File()) - int(b.File())
	dr := int(a.Rank()) - int(b.Rank())
	if df < 0 {
		df = -df
	}
	if dr < 0 {
		dr = -dr
	}
	return df == dr
}

func evalBishops(pos *board.Position, c board.Color) int32 {
	ownKing, oppKing := pos.King(c), pos.King(c.Opponent())
	eg := EndGame(pos, c)
	var total int32
	forEachPiece(pos, c, board.BishopType, func(sq board.Square) {
		total += pstValue(&bishopTable, c, sq)
		proximity := float64(14-chebyshev(sq, ownKing)) * eg
		total += int32(proximity)
		if isDiagonalTo(sq, oppKing) {
			total += 8
		}
	})
	return total
}

func isAlignedTo(a, b board.Square) bool {
	return a.File() == b.File() || a.Rank() == b.Rank()
}

// rookOnWrongSide flags a rook stuck on the far wing while its own king
// still holds castling rights and has settled toward the opposite side.
func rookOnWrongSide(pos *board.Position, c board.Color, rookSq board.Square) bool {
	kingSq := pos.King(c)
	var rights board.Castling
	if c == board.White {
		rights = board.WhiteKingSideCastle | board.WhiteQueenSideCastle
	} else {
		rights = board.BlackKingSideCastle | board.BlackQueenSideCastle
	}
	if pos.Castling()&rights == 0 {
		return false
	}
	kf, rf := int(kingSq.File()), int(rookSq.File())
	return (kf <= int(board.FileD) && rf > kf+2) || (kf >= int(board.FileE) && rf < kf-2)
}

func evalRooks(pos *board.Position, c board.Color) int32 {
	ownKing, oppKing := pos.King(c), pos.King(c.Opponent())
	eg := EndGame(pos, c)
	them := c.Opponent()
	var total int32
	forEachPiece(pos, c, board.RookType, func(sq board.Square) {
		total += pstValue(&rookTable, c, sq)
		total += int32(float64(14-chebyshev(sq, ownKing)) * eg)

		own, enemy := fileHasPawn(pos, c, sq.File()), fileHasPawn(pos, them, sq.File())
		switch {
		case !own && !enemy:
			total += 12
		case !own:
			total += 8
		}
		if isAlignedTo(sq, oppKing) {
			total += 8
		}
		if rookOnWrongSide(pos, c, sq) {
			total -= 20
		}
	})
	return total
}

func evalQueens(pos *board.Position, c board.Color) int32 {
	var total int32
	forEachPiece(pos, c, board.QueenType, func(sq board.Square) {
		total += pstValue(&queenTable, c, sq)
	})
	return total
}
