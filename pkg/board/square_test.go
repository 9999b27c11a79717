package board_test

import (
	"testing"

	"github.com/corvid-chess/corvid/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestRank(t *testing.T) {
	assert.True(t, board.Rank1.IsValid())
	assert.True(t, board.Rank3.IsValid())
	assert.True(t, board.Rank8.IsValid())

	assert.Equal(t, "1", board.Rank1.String())
	assert.Equal(t, "7", board.Rank7.String())
}

func TestFile(t *testing.T) {
	assert.True(t, board.FileA.IsValid())
	assert.True(t, board.FileB.IsValid())
	assert.True(t, board.FileH.IsValid())
	assert.False(t, board.File(8).IsValid())

	assert.Equal(t, "a", board.FileA.String())
	assert.Equal(t, "g", board.FileG.String())
	assert.Equal(t, 2, board.FileC.Distance(board.FileA))
}

func TestSquare(t *testing.T) {
	c2 := board.NewSquare(board.FileC, board.Rank2)
	g5 := board.NewSquare(board.FileG, board.Rank5)

	assert.True(t, c2.IsValid())
	assert.True(t, g5.IsValid())
	assert.Equal(t, board.FileC, c2.File())
	assert.Equal(t, board.Rank2, c2.Rank())

	assert.Equal(t, "c2", c2.String())
	assert.Equal(t, "g5", g5.String())
	assert.Equal(t, "-", board.NoSquare.String())

	// 0x88 off-board slots are invalid even though the integer is positive.
	offBoard := board.NewSquare(board.FileA, board.Rank1) + 8
	assert.False(t, offBoard.IsValid())
}

func TestSquareAdd(t *testing.T) {
	a1 := board.NewSquare(board.FileA, board.Rank1)

	if n, ok := a1.Add(board.DirN); assert.True(t, ok) {
		assert.Equal(t, board.NewSquare(board.FileA, board.Rank2), n)
	}
	if _, ok := a1.Add(board.DirS); !ok {
		// off the board to the south: expected.
	} else {
		t.Fatal("expected south of rank 1 to be off-board")
	}
	if _, ok := a1.Add(board.DirW); !ok {
		// off the board to the west: expected.
	} else {
		t.Fatal("expected west of file a to be off-board")
	}
}

func TestParseSquare(t *testing.T) {
	sq, err := board.ParseSquareStr("e4")
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(board.NewSquare(board.FileE, board.Rank4), sq)

	_, err = board.ParseSquareStr("z9")
	assert.Error(err)
}
