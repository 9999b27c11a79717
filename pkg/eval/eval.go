// Package eval implements static position evaluation: material, piece-square
// tables, pawn structure, and king safety, combined into a single centipawn
// standPat score from the side-to-move's perspective.
package eval

import (
	"context"

	"github.com/corvid-chess/corvid/pkg/board"
)

// Evaluator is a static position evaluator.
type Evaluator interface {
	// Evaluate returns the position's standPat score from the side to
	// move's perspective, in centipawns.
	Evaluate(ctx context.Context, b *board.Board) Score

	// DrawScore returns the score awarded to turn when the position is
	// judged a theoretical or rule draw, biased away from 0 by Contempt.
	DrawScore(turn board.Color) Score
}

// Static is the engine's full static evaluator, combining material with the
// piece-square, pawn-structure and king-safety terms below into standPat.
// The zero value matches spec.md §6's defaults (TempoBonus=0, Contempt=0);
// an engine Option may raise either.
type Static struct {
	// TempoBonus rewards the side to move for the extra half-move of
	// initiative.
	TempoBonus int32
	// Contempt biases DrawScore away from 0 to discourage the engine from
	// steering into draws against weaker opposition.
	Contempt int32
}

// DrawScore implements Evaluator.
func (s Static) DrawScore(_ board.Color) Score { return Score(-s.Contempt) }

func (s Static) Evaluate(_ context.Context, b *board.Board) Score {
	pos := b.Position()
	turn := pos.Turn()

	white := pieceCounts(pos, board.White)
	black := pieceCounts(pos, board.Black)
	if !white.hasMatingMaterial() && !black.hasMatingMaterial() {
		return s.DrawScore(turn)
	}

	eval := int32(pos.Material(board.White)) - int32(pos.Material(board.Black))
	eval += s.TempoBonus * turn.Unit()

	eval += evalPawns(pos, board.White) - evalPawns(pos, board.Black)
	eval += evalKnights(pos, board.White) - evalKnights(pos, board.Black)
	eval += evalBishops(pos, board.White) - evalBishops(pos, board.Black)
	eval += evalRooks(pos, board.White) - evalRooks(pos, board.Black)
	eval += evalQueens(pos, board.White) - evalQueens(pos, board.Black)
	eval += evalKing(pos, board.White) - evalKing(pos, board.Black)

	winning := board.White
	if eval < 0 {
		winning = board.Black
	}
	counts := white
	if winning == board.Black {
		counts = black
	}
	if !counts.hasMatingMaterial() {
		eval /= 8
	}

	if rc := pos.ReversibleCount(); rc > 25 {
		if rc >= 100 {
			return s.DrawScore(turn)
		}
		eval = eval * 25 / int32(rc)
	}

	eval = (eval / 8) * 8

	if turn == board.Black {
		eval = -eval
	}
	return Score(eval)
}

// pieceCount tallies the non-king material of one color, used for the
// insufficient-material draw check.
type pieceCount struct {
	pawns, knights, bishops, rooks, queens int
}

func pieceCounts(pos *board.Position, c board.Color) pieceCount {
	var pc pieceCount
	for r := board.Rank1; r <= board.Rank8; r++ {
		for f := board.FileA; f <= board.FileH; f++ {
			p := pos.PieceAt(board.NewSquare(f, r))
			if p.Color() != c {
				continue
			}
			switch p.Type() {
			case board.PawnType:
				pc.pawns++
			case board.KnightType:
				pc.knights++
			case board.BishopType:
				pc.bishops++
			case board.RookType:
				pc.rooks++
			case board.QueenType:
				pc.queens++
			}
		}
	}
	return pc
}

// hasMatingMaterial reports whether this side alone could ever force mate:
// any pawn, rook or queen always can; a lone minor or up to two knights
// cannot, but a bishop pair or a bishop-and-knight combination can.
func (pc pieceCount) hasMatingMaterial() bool {
	if pc.pawns > 0 || pc.rooks > 0 || pc.queens > 0 {
		return true
	}
	if pc.bishops >= 2 || (pc.bishops >= 1 && pc.knights >= 1) {
		return true
	}
	return pc.knights >= 3
}
