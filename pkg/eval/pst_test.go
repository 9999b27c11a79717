package eval

import (
	"testing"

	"github.com/corvid-chess/corvid/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestPstValueMirrorsRankForBlack(t *testing.T) {
	whiteSq := board.NewSquare(board.FileD, board.Rank4)
	blackSq := board.NewSquare(board.FileD, board.Rank5) // mirror of d4 across the center

	assert.Equal(t, pstValue(&pawnTable, board.White, whiteSq), pstValue(&pawnTable, board.Black, blackSq))
}

func TestPawnTableFavorsAdvancedRanks(t *testing.T) {
	rank2 := pstValue(&pawnTable, board.White, board.NewSquare(board.FileD, board.Rank2))
	rank7 := pstValue(&pawnTable, board.White, board.NewSquare(board.FileD, board.Rank7))

	assert.Greater(t, rank7, rank2)
}
