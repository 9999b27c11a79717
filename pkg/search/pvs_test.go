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

func newSearchBoard(t *testing.T, f string) *board.Board {
	t.Helper()
	zt := board.NewZobristTable(1)
	b := board.NewBoard(zt)
	_, err := b.SetPosition(f)
	require.NoError(t, err)
	return b
}

func TestPVSFindsMateInOne(t *testing.T) {
	// White to move, mates with the back-rank Qe1-e8#.
	b := newSearchBoard(t, "6k1/5ppp/8/8/8/8/8/4Q1K1 w - - 0 1")

	sctx := search.NewContext(search.NoTranspositionTable{}, eval.Static{}, eval.Random{})
	pvs := &search.PVS{}

	_, score, moves, err := pvs.Search(context.Background(), sctx, b, 3)
	require.NoError(t, err)
	require.NotEmpty(t, moves)

	plies, ok := score.MateDistance()
	assert.True(t, ok)
	assert.Equal(t, 1, plies)
}

func TestPVSAgreesWithMinimaxShallow(t *testing.T) {
	b := newSearchBoard(t, board.InitialFEN)

	pvsCtx := search.NewContext(search.NoTranspositionTable{}, eval.Static{}, eval.Random{})
	_, pvsScore, _, err := (&search.PVS{}).Search(context.Background(), pvsCtx, b.Fork(), 2)
	require.NoError(t, err)

	mmCtx := search.NewContext(search.NoTranspositionTable{}, eval.Static{}, eval.Random{})
	_, mmScore, _, err := (&search.Minimax{}).Search(context.Background(), mmCtx, b.Fork(), 2)
	require.NoError(t, err)

	assert.Equal(t, mmScore, pvsScore)
}

func TestPVSHaltsOnCanceledContext(t *testing.T) {
	b := newSearchBoard(t, board.InitialFEN)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sctx := search.NewContext(search.NoTranspositionTable{}, eval.Static{}, eval.Random{})
	_, _, _, err := (&search.PVS{}).Search(ctx, sctx, b, 4)
	assert.ErrorIs(t, err, search.ErrHalted)
}
