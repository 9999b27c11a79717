package eval_test

import (
	"context"
	"testing"

	"github.com/corvid-chess/corvid/pkg/board"
	"github.com/corvid-chess/corvid/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoard(t *testing.T, f string) *board.Board {
	t.Helper()
	zt := board.NewZobristTable(1)
	b := board.NewBoard(zt)
	_, err := b.SetPosition(f)
	require.NoError(t, err)
	return b
}

func TestStaticEvaluateSymmetricStartPosition(t *testing.T) {
	b := newBoard(t, board.InitialFEN)

	s := eval.Static{}.Evaluate(context.Background(), b)
	assert.InDelta(t, 0, int(s), 20) // tempo bonus aside, material/PST are mirror-symmetric
}

func TestStaticEvaluateRewardsMaterialAdvantage(t *testing.T) {
	// White is up a rook.
	b := newBoard(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")

	s := eval.Static{}.Evaluate(context.Background(), b)
	assert.Greater(t, int(s), 400)
}

func TestRandomZeroLimitIsDeterministic(t *testing.T) {
	b := newBoard(t, board.InitialFEN)
	var n eval.Random

	assert.Equal(t, eval.Score(0), n.Evaluate(context.Background(), b))
}

func TestRandomWithinLimit(t *testing.T) {
	b := newBoard(t, board.InitialFEN)
	n := eval.NewRandom(20, 1)

	for i := 0; i < 50; i++ {
		s := n.Evaluate(context.Background(), b)
		assert.GreaterOrEqual(t, int(s), -10)
		assert.LessOrEqual(t, int(s), 10)
	}
}
