package eval

import (
	"context"
	"math/rand"

	"github.com/corvid-chess/corvid/pkg/board"
)

// Random is a randomized noise generator, used to de-correlate otherwise
// identical lines during self-play testing. limit is the centipawn spread;
// the noise returned is in [-limit/2; limit/2]. The zero value always
// returns zero.
type Random struct {
	rand  *rand.Rand
	limit int
}

func NewRandom(limit int, seed int64) Random {
	return Random{
		limit: limit,
		rand:  rand.New(rand.NewSource(seed)),
	}
}

func (n Random) Evaluate(_ context.Context, _ *board.Board) Score {
	if n.limit <= 0 {
		return 0
	}
	return Score(n.rand.Intn(n.limit) - n.limit/2)
}
