package eval

import (
	"testing"

	"github.com/corvid-chess/corvid/pkg/board"
	"github.com/corvid-chess/corvid/pkg/board/fen"
	"github.com/stretchr/testify/require"
)

func newPosition(t *testing.T, f string) *board.Position {
	t.Helper()
	pos, _, err := fen.Decode(f)
	require.NoError(t, err)
	return pos
}

func TestIsPassedTrueWithNoBlockingEnemyPawn(t *testing.T) {
	pos := newPosition(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	sq := board.NewSquare(board.FileE, board.Rank2)

	require.True(t, isPassed(pos, board.White, sq))
}

func TestIsPassedFalseWithBlockingEnemyPawn(t *testing.T) {
	pos := newPosition(t, "4k3/4p3/8/8/8/8/4P3/4K3 w - - 0 1")
	sq := board.NewSquare(board.FileE, board.Rank2)

	require.False(t, isPassed(pos, board.White, sq))
}

func TestIsIsolatedNoAdjacentPawn(t *testing.T) {
	pos := newPosition(t, "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")

	require.True(t, isIsolated(pos, board.White, board.FileE))
}

func TestIsIsolatedWithAdjacentPawn(t *testing.T) {
	pos := newPosition(t, "4k3/8/8/8/8/8/3PP3/4K3 w - - 0 1")

	require.False(t, isIsolated(pos, board.White, board.FileE))
}

func TestEvalPawnsRewardsPasserAdvancement(t *testing.T) {
	// King well out of the way so the e7 pawn's path to promotion is clear.
	pos := newPosition(t, "7k/4P3/8/8/8/8/8/K7 w - - 0 1")

	score := evalPawns(pos, board.White)
	require.Greater(t, score, int32(50)) // near-queening passer outweighs the base PST term
}

func TestAdvanceIndexMirrorsByColor(t *testing.T) {
	white := advanceIndex(board.White, board.NewSquare(board.FileE, board.Rank7))
	black := advanceIndex(board.Black, board.NewSquare(board.FileE, board.Rank2))

	require.Equal(t, white, black)
}
