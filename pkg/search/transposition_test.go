package search_test

import (
	"context"
	"testing"

	"github.com/corvid-chess/corvid/pkg/board"
	"github.com/corvid-chess/corvid/pkg/eval"
	"github.com/corvid-chess/corvid/pkg/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func e2e4(t *testing.T) board.Move {
	t.Helper()
	from := board.NewSquare(board.FileE, board.Rank2)
	to := board.NewSquare(board.FileE, board.Rank4)
	return board.NewMove(board.PawnLung, from, to, board.WhitePawn, board.NoPiece, board.NoPiece)
}

func TestTranspositionWriteRead(t *testing.T) {
	tt := search.NewTranspositionTable(context.Background(), 1<<20)

	var hash board.ZobristHash = 0x1234
	m := e2e4(t)

	ok := tt.Write(hash, search.ExactScore, 0, 4, eval.Score(37), m)
	require.True(t, ok)

	bound, depth, score, move, found := tt.Read(hash)
	require.True(t, found)
	assert.True(t, bound.Is(search.ExactScore))
	assert.Equal(t, 4, depth)
	assert.Equal(t, eval.Score(37), score)
	assert.Equal(t, m.CoordString(), move.CoordString())
}

func TestTranspositionWriteAlwaysReplaces(t *testing.T) {
	tt := search.NewTranspositionTable(context.Background(), 1<<20)

	var hash board.ZobristHash = 0x1234
	m := e2e4(t)

	require.True(t, tt.Write(hash, search.ExactScore, 0, 8, eval.Score(100), m))
	require.True(t, tt.Write(hash, search.ExactScore, 0, 1, eval.Score(-50), m))

	_, depth, score, _, found := tt.Read(hash)
	require.True(t, found)
	assert.Equal(t, 1, depth)
	assert.Equal(t, eval.Score(-50), score)
}

func TestTranspositionMiss(t *testing.T) {
	tt := search.NewTranspositionTable(context.Background(), 1<<20)

	_, _, _, _, found := tt.Read(0xdeadbeef)
	assert.False(t, found)
}

func TestTranspositionClear(t *testing.T) {
	tt := search.NewTranspositionTable(context.Background(), 1<<20)

	m := e2e4(t)
	require.True(t, tt.Write(1, search.ExactScore, 0, 1, eval.Score(0), m))

	tt.Clear()

	_, _, _, _, found := tt.Read(1)
	assert.False(t, found)
	assert.Zero(t, tt.Used())
}

func TestNoTranspositionTable(t *testing.T) {
	var tt search.NoTranspositionTable

	m := e2e4(t)
	assert.False(t, tt.Write(1, search.ExactScore, 0, 1, eval.Score(0), m))

	_, _, _, _, found := tt.Read(1)
	assert.False(t, found)
}
