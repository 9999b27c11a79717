package eval

import "github.com/corvid-chess/corvid/pkg/board"

// Piece-square tables are written from White's point of view, rank 1 at
// index 0 through rank 8 at index 7, file a at index 0 through file h at
// index 7. pstValue mirrors the rank for Black so every table is authored
// once.
type pst [8][8]int32

func pstValue(t *pst, c board.Color, sq board.Square) int32 {
	r := int(sq.Rank())
	if c == board.Black {
		r = 7 - r
	}
	return t[r][sq.File()]
}

var pawnTable = pst{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{5, 8, 8, -20, -20, 8, 8, 5},
	{5, -2, -5, 10, 10, -5, -2, 5},
	{0, 0, 10, 25, 25, 10, 0, 0},
	{5, 5, 10, 28, 28, 10, 5, 5},
	{12, 12, 20, 32, 32, 20, 12, 12},
	{24, 24, 24, 24, 24, 24, 24, 24},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var knightTable = pst{
	{-40, -28, -20, -20, -20, -20, -28, -40},
	{-28, -16, 0, 2, 2, 0, -16, -28},
	{-20, 4, 12, 16, 16, 12, 4, -20},
	{-20, 0, 16, 22, 22, 16, 0, -20},
	{-20, 4, 16, 22, 22, 16, 4, -20},
	{-20, 0, 12, 16, 16, 12, 0, -20},
	{-28, -16, 0, 0, 0, 0, -16, -28},
	{-40, -24, -20, -20, -20, -20, -24, -40},
}

var bishopTable = pst{
	{-16, -8, -8, -8, -8, -8, -8, -16},
	{-8, 4, 0, 0, 0, 0, 4, -8},
	{-8, 8, 8, 8, 8, 8, 8, -8},
	{-8, 0, 8, 12, 12, 8, 0, -8},
	{-8, 4, 4, 12, 12, 4, 4, -8},
	{-8, 0, 4, 8, 8, 4, 0, -8},
	{-8, 0, 0, 0, 0, 0, 0, -8},
	{-16, -8, -8, -8, -8, -8, -8, -16},
}

var rookTable = pst{
	{0, 0, 4, 8, 8, 4, 0, 0},
	{-4, 0, 0, 0, 0, 0, 0, -4},
	{-4, 0, 0, 0, 0, 0, 0, -4},
	{-4, 0, 0, 0, 0, 0, 0, -4},
	{-4, 0, 0, 0, 0, 0, 0, -4},
	{-4, 0, 0, 0, 0, 0, 0, -4},
	{8, 12, 12, 12, 12, 12, 12, 8},
	{0, 0, 4, 8, 8, 4, 0, 0},
}

var queenTable = pst{
	{-16, -8, -8, -4, -4, -8, -8, -16},
	{-8, 0, 4, 0, 0, 0, 0, -8},
	{-8, 4, 4, 4, 4, 4, 0, -8},
	{0, 0, 4, 4, 4, 4, 0, -4},
	{-4, 0, 4, 4, 4, 4, 0, -4},
	{-8, 0, 4, 4, 4, 4, 0, -8},
	{-8, 0, 0, 0, 0, 0, 0, -8},
	{-16, -8, -8, -4, -4, -8, -8, -16},
}

// kingMidTable favors the back rank and the castled corners. kingEndTable
// favors the center, where the king becomes an active attacking piece.
var kingMidTable = pst{
	{16, 28, 4, -8, -8, 4, 28, 16},
	{8, 8, -4, -16, -16, -4, 8, 8},
	{-16, -24, -24, -32, -32, -24, -24, -16},
	{-32, -40, -40, -48, -48, -40, -40, -32},
	{-40, -48, -48, -56, -56, -48, -48, -40},
	{-40, -48, -48, -56, -56, -48, -48, -40},
	{-40, -48, -48, -56, -56, -48, -48, -40},
	{-40, -48, -48, -56, -56, -48, -48, -40},
}

var kingEndTable = pst{
	{-48, -32, -16, -8, -8, -16, -32, -48},
	{-24, 0, 8, 12, 12, 8, 0, -24},
	{-8, 16, 24, 28, 28, 24, 16, -8},
	{-8, 16, 28, 32, 32, 28, 16, -8},
	{-8, 16, 28, 32, 32, 28, 16, -8},
	{-8, 16, 24, 28, 28, 24, 16, -8},
	{-24, 0, 8, 12, 12, 8, 0, -24},
	{-48, -24, -8, -8, -8, -8, -24, -48},
}
