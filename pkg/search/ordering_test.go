package search

import (
	"testing"

	"github.com/corvid-chess/corvid/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderingBoard(t *testing.T, f string) *board.Board {
	t.Helper()
	zt := board.NewZobristTable(1)
	b := board.NewBoard(zt)
	_, err := b.SetPosition(f)
	require.NoError(t, err)
	return b
}

func TestOrderMovesRanksCaptureAboveKillerAboveQuiet(t *testing.T) {
	// White rook can capture a hanging queen on d5, or play a quiet king move.
	b := newOrderingBoard(t, "4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1")

	var list board.MoveList
	board.GenerateMoves(b.Position(), &list, false, 0)
	board.FilterLegal(b.Position(), &list)

	var hist History
	var killers [2]board.Move
	killers[0] = board.NewMove(board.KingMove, board.NewSquare(board.FileE, board.Rank1), board.NewSquare(board.FileF, board.Rank2), board.WhiteKing, board.NoPiece, board.NoPiece)

	moves := orderMoves(b, &list, board.Move{}, killers, &hist)
	require.NotEmpty(t, moves)

	capture := moves[0]
	assert.True(t, capture.IsCapture())
	assert.Equal(t, board.NewSquare(board.FileD, board.Rank5), capture.To())
	assert.True(t, moves[1].Equals(killers[0]))
}

func TestOrderMovesSkipsGivenMove(t *testing.T) {
	b := newOrderingBoard(t, board.InitialFEN)

	var list board.MoveList
	board.GenerateMoves(b.Position(), &list, false, 0)
	board.FilterLegal(b.Position(), &list)

	var all board.MoveList
	board.GenerateMoves(b.Position(), &all, false, 0)
	board.FilterLegal(b.Position(), &all)
	skip, ok := all.Next()
	require.True(t, ok)

	var hist History
	var killers [2]board.Move
	moves := orderMoves(b, &list, skip, killers, &hist)

	for _, m := range moves {
		assert.False(t, m.Equals(skip))
	}
}

func TestSeeValueWinningCapture(t *testing.T) {
	b := newOrderingBoard(t, "4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1")

	var list board.MoveList
	board.GenerateMoves(b.Position(), &list, false, 0)
	board.FilterLegal(b.Position(), &list)

	var capture board.Move
	for list.Len() > 0 {
		m, _ := list.Next()
		if m.IsCapture() {
			capture = m
		}
	}
	require.True(t, capture.IsValid())

	assert.Greater(t, seeValue(b, capture), int32(0))
}

func TestIsNearPromotion(t *testing.T) {
	whitePush := board.NewMove(board.PawnPush, board.NewSquare(board.FileE, board.Rank6), board.NewSquare(board.FileE, board.Rank7), board.WhitePawn, board.NoPiece, board.NoPiece)
	assert.True(t, isNearPromotion(whitePush))

	blackPush := board.NewMove(board.PawnPush, board.NewSquare(board.FileE, board.Rank3), board.NewSquare(board.FileE, board.Rank2), board.BlackPawn, board.NoPiece, board.NoPiece)
	assert.True(t, isNearPromotion(blackPush))

	notNear := board.NewMove(board.PawnPush, board.NewSquare(board.FileE, board.Rank2), board.NewSquare(board.FileE, board.Rank3), board.WhitePawn, board.NoPiece, board.NoPiece)
	assert.False(t, isNearPromotion(notNear))
}
