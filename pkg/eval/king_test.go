package eval

import (
	"testing"

	"github.com/corvid-chess/corvid/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestShelterFilesClampsToEdge(t *testing.T) {
	assert.Equal(t, [3]board.File{board.FileA, board.FileB, board.FileC}, shelterFiles(board.FileA))
	assert.Equal(t, [3]board.File{board.FileF, board.FileG, board.FileH}, shelterFiles(board.FileH))
	assert.Equal(t, [3]board.File{board.FileD, board.FileE, board.FileF}, shelterFiles(board.FileE))
}

func TestEvalKingShelterStormRewardsOwnPawnsAboveIt(t *testing.T) {
	pos := newPosition(t, "4k3/8/8/8/8/8/PPP5/1K6 w - - 0 1")
	kingSq := pos.King(board.White)

	score := evalKingShelterStorm(pos, board.White, kingSq)
	assert.Greater(t, score, int32(0))
}

func TestEvalKingShelterStormPenalizesEnemyStorm(t *testing.T) {
	pos := newPosition(t, "4k3/8/8/8/8/ppp5/8/1K6 w - - 0 1")
	kingSq := pos.King(board.White)

	score := evalKingShelterStorm(pos, board.White, kingSq)
	assert.Less(t, score, int32(0))
}

func TestEvalKingBlockersPenalizesOwnPieceBesideKing(t *testing.T) {
	pos := newPosition(t, "4k3/8/8/8/8/8/8/KR6 w - - 0 1")
	kingSq := pos.King(board.White)

	score := evalKingBlockers(pos, board.White, kingSq)
	assert.Less(t, score, int32(0))
}

func TestEvalKingBlockersZeroWithoutAdjacentPiece(t *testing.T) {
	pos := newPosition(t, "4k3/8/8/8/8/8/8/K7 w - - 0 1")
	kingSq := pos.King(board.White)

	score := evalKingBlockers(pos, board.White, kingSq)
	assert.Equal(t, int32(0), score)
}
