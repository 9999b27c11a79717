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

// TestQuiescenceCapturesHangingQueen checks that the quiescence search picks
// up a one-move winning capture that a plain static eval would miss.
func TestQuiescenceCapturesHangingQueen(t *testing.T) {
	b := newSearchBoard(t, "4k3/8/8/3q4/3R4/8/8/4K3 w - - 0 1")

	sctx := search.NewContext(search.NoTranspositionTable{}, eval.Static{}, eval.Random{})
	pvs := &search.PVS{}

	_, score, moves, err := pvs.Search(context.Background(), sctx, b, 1)
	require.NoError(t, err)
	require.NotEmpty(t, moves)

	assert.Greater(t, int(score), 500) // a rook up once the queen is taken
}

func TestQuiescenceQuietPositionMatchesStandPat(t *testing.T) {
	b := newSearchBoard(t, board.InitialFEN)

	sctx := search.NewContext(search.NoTranspositionTable{}, eval.Static{}, eval.Random{})
	_, score, _, err := (&search.PVS{}).Search(context.Background(), sctx, b, 0)
	require.NoError(t, err)

	want := eval.Static{}.Evaluate(context.Background(), b)
	assert.Equal(t, want, score)
}
