package eval_test

import (
	"testing"

	"github.com/corvid-chess/corvid/pkg/board"
	"github.com/corvid-chess/corvid/pkg/eval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMateInMatedIn(t *testing.T) {
	assert.Equal(t, eval.Infinity, eval.MateIn(0))
	assert.Equal(t, eval.Infinity-3, eval.MateIn(3))
	assert.Equal(t, -eval.Infinity, eval.MatedIn(0))
	assert.Equal(t, -eval.Infinity+3, eval.MatedIn(3))
}

func TestIsMateScore(t *testing.T) {
	assert.True(t, eval.IsMateScore(eval.MateIn(5)))
	assert.True(t, eval.IsMateScore(eval.MatedIn(5)))
	assert.False(t, eval.IsMateScore(eval.Score(200)))
	assert.False(t, eval.IsMateScore(eval.WinningScore-1))
}

func TestMateDistance(t *testing.T) {
	plies, ok := eval.MateIn(4).MateDistance()
	require.True(t, ok)
	assert.Equal(t, 4, plies)

	plies, ok = eval.MatedIn(4).MateDistance()
	require.True(t, ok)
	assert.Equal(t, 4, plies)

	_, ok = eval.Score(0).MateDistance()
	assert.False(t, ok)
}

func TestCrop(t *testing.T) {
	assert.Equal(t, eval.Infinity, eval.Crop(eval.Infinity+1000))
	assert.Equal(t, -eval.Infinity, eval.Crop(-eval.Infinity-1000))
	assert.Equal(t, eval.Score(42), eval.Crop(42))
}

func TestUnit(t *testing.T) {
	assert.Equal(t, eval.Score(1), eval.Unit(board.White))
	assert.Equal(t, eval.Score(-1), eval.Unit(board.Black))
}

func TestMaxMin(t *testing.T) {
	assert.Equal(t, eval.Score(5), eval.Max(eval.Score(5), eval.Score(3)))
	assert.Equal(t, eval.Score(3), eval.Min(eval.Score(5), eval.Score(3)))
}
