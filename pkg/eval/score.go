package eval

import (
	"fmt"

	"github.com/corvid-chess/corvid/pkg/board"
)

// Score is a signed centipawn position or search score: from White's
// perspective when it labels a position, from the side-to-move's
// perspective when it labels a search result. It is distinct from
// board.Score, which only orders moves during generation.
type Score int32

// Bounds and mate scoring. A mate score is Infinity minus the number of
// plies to mate, the same base the search uses when it scores a checkmate;
// Infinity also seeds alpha/beta at the root. Scores at or beyond
// ±WinningScore are mate scores (see IsMateScore).
const (
	WinningScore Score = 30000
	MateScore    Score = 31000
	Infinity     Score = 32000

	NegInfinity = -Infinity
)

// MateIn returns the score for delivering mate in the given number of plies
// from the current node (0 means mate has just been delivered).
func MateIn(ply int) Score {
	return Infinity - Score(ply)
}

// MatedIn returns the score for being mated in the given number of plies.
func MatedIn(ply int) Score {
	return -Infinity + Score(ply)
}

// IsMateScore reports whether s represents a forced mate rather than a
// material/positional evaluation.
func IsMateScore(s Score) bool {
	return s >= WinningScore || s <= -WinningScore
}

func (s Score) String() string {
	return fmt.Sprintf("%v", int32(s))
}

// Unit returns the signed unit for the color: 1 for White and -1 for Black.
func Unit(c board.Color) Score {
	if c == board.White {
		return 1
	}
	return -1
}

// Crop clamps s into [-Infinity;Infinity].
func Crop(s Score) Score {
	switch {
	case s > Infinity:
		return Infinity
	case s < -Infinity:
		return -Infinity
	default:
		return s
	}
}

// MateDistance returns the number of plies to the forced mate s represents,
// and whether s represents one at all.
func (s Score) MateDistance() (int, bool) {
	switch {
	case s >= WinningScore:
		return int(Infinity - s), true
	case s <= -WinningScore:
		return int(Infinity + s), true
	default:
		return 0, false
	}
}

// Max returns the larger of two scores.
func Max(a, b Score) Score {
	if a < b {
		return b
	}
	return a
}

// Min returns the smaller of two scores.
func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}
