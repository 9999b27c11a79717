package searchctl_test

import (
	"context"
	"testing"

	"github.com/corvid-chess/corvid/pkg/board"
	"github.com/corvid-chess/corvid/pkg/eval"
	"github.com/corvid-chess/corvid/pkg/search"
	"github.com/corvid-chess/corvid/pkg/search/searchctl"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterativeLaunchReachesDepthLimit(t *testing.T) {
	zt := board.NewZobristTable(1)
	b := board.NewBoard(zt)
	_, err := b.SetPosition(board.InitialFEN)
	require.NoError(t, err)

	launcher := &searchctl.Iterative{Root: &search.PVS{}}
	tt := search.NewTranspositionTable(context.Background(), 1<<20)

	handle, out := launcher.Launch(context.Background(), b, tt, eval.Static{}, eval.Random{}, search.DefaultConfig(),
		searchctl.Options{DepthLimit: lang.Some(uint(3))})

	var last search.PV
	for pv := range out {
		last = pv
	}

	assert.Equal(t, 3, last.Depth)
	assert.NotEmpty(t, last.Moves)

	final := handle.Halt()
	assert.Equal(t, last.Depth, final.Depth)
}

func TestIterativeHaltStopsSearchEarly(t *testing.T) {
	zt := board.NewZobristTable(1)
	b := board.NewBoard(zt)
	_, err := b.SetPosition(board.InitialFEN)
	require.NoError(t, err)

	launcher := &searchctl.Iterative{Root: &search.PVS{}}
	tt := search.NewTranspositionTable(context.Background(), 1<<20)

	handle, out := launcher.Launch(context.Background(), b, tt, eval.Static{}, eval.Random{}, search.DefaultConfig(), searchctl.Options{})

	pv := <-out // wait for at least one completed depth
	assert.NotEmpty(t, pv.Moves)

	final := handle.Halt()
	assert.NotEmpty(t, final.Moves)
}
