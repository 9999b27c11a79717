package board

import "fmt"

// Score is a move-ordering score in arbitrary units (not centipawns):
// generated moves are ranked by it before search visits them. It is distinct
// from eval.Score, which is a centipawn position score.
type Score int32

func (s Score) String() string {
	return fmt.Sprintf("%v", int32(s))
}
