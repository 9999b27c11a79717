package eval

import (
	"testing"

	"github.com/corvid-chess/corvid/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestChebyshevDistance(t *testing.T) {
	a := board.NewSquare(board.FileA, board.Rank1)
	b := board.NewSquare(board.FileC, board.Rank2)

	assert.Equal(t, 2, chebyshev(a, b)) // max(|2 files|, |1 rank|)
}

func TestIsDiagonalTo(t *testing.T) {
	a := board.NewSquare(board.FileA, board.Rank1)
	b := board.NewSquare(board.FileD, board.Rank4)
	c := board.NewSquare(board.FileD, board.Rank5)

	assert.True(t, isDiagonalTo(a, b))
	assert.False(t, isDiagonalTo(a, c))
}

func TestIsAlignedTo(t *testing.T) {
	a := board.NewSquare(board.FileA, board.Rank1)
	sameFile := board.NewSquare(board.FileA, board.Rank8)
	sameRank := board.NewSquare(board.FileH, board.Rank1)
	neither := board.NewSquare(board.FileC, board.Rank3)

	assert.True(t, isAlignedTo(a, sameFile))
	assert.True(t, isAlignedTo(a, sameRank))
	assert.False(t, isAlignedTo(a, neither))
}

func TestEvalKnightsRewardsCentralizationOverCorner(t *testing.T) {
	pos := newPosition(t, "4k3/8/8/3N4/8/8/8/4K3 w - - 0 1")
	central := evalKnights(pos, board.White)

	pos2 := newPosition(t, "4k3/8/8/8/8/8/8/N3K3 w - - 0 1")
	corner := evalKnights(pos2, board.White)

	assert.Greater(t, central, corner)
}

func TestRookOnWrongSideFlagsFarRookWithCastlingRights(t *testing.T) {
	// White king on e1 retains kingside rights with a rook stuck on a1.
	pos := newPosition(t, "4k3/8/8/8/8/8/8/R3K2R w K - 0 1")
	rookSq := board.NewSquare(board.FileA, board.Rank1)

	assert.True(t, rookOnWrongSide(pos, board.White, rookSq))
}

func TestRookOnWrongSideFalseWithoutCastlingRights(t *testing.T) {
	pos := newPosition(t, "4k3/8/8/8/8/8/8/R3K2R w - - 0 1")
	rookSq := board.NewSquare(board.FileA, board.Rank1)

	assert.False(t, rookOnWrongSide(pos, board.White, rookSq))
}

func TestEvalRooksRewardsOpenFile(t *testing.T) {
	pos := newPosition(t, "4k3/8/8/8/8/8/8/4KR2 w - - 0 1") // rook on f1, open file
	open := evalRooks(pos, board.White)

	pos2 := newPosition(t, "4k3/8/8/8/8/8/5P2/4KR2 w - - 0 1") // own pawn on f2 blocks the rook's file
	blocked := evalRooks(pos2, board.White)

	assert.Greater(t, open, blocked)
}
