package board

import (
	"container/heap"
	"fmt"
)

// MoveList is a move priority queue for move ordering: GenerateMoves scores
// each move as it is added (spec's "scoring during add"), and callers pop
// moves back out highest-score-first via Next.
type MoveList struct {
	h moveHeap
}

// Add appends a move with its ordering score, restoring heap order.
func (ml *MoveList) Add(m Move, score Score) {
	m.Score = score
	heap.Push(&ml.h, m)
}

// Next returns the next move. It is the highest priority move in the list.
func (ml *MoveList) Next() (Move, bool) {
	if ml.Len() == 0 {
		return Move{}, false
	}
	return heap.Pop(&ml.h).(Move), true
}

func (ml *MoveList) Len() int {
	return ml.h.Len()
}

// At returns the i'th move in the backing array, in arbitrary heap order.
// Used by callers that scan for a specific move rather than consuming the
// list by priority (Board.MakeMove resolving coordinate notation).
func (ml *MoveList) At(i int) Move {
	return ml.h[i]
}

func (ml *MoveList) String() string {
	if ml.Len() == 0 {
		return "[size=0]"
	}
	return fmt.Sprintf("[top=%v, size=%v]", ml.h[0], ml.Len())
}

type moveHeap []Move

func (h moveHeap) Len() int {
	return len(h)
}

func (h moveHeap) Less(i, j int) bool {
	return h[i].Score > h[j].Score
}

func (h moveHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h *moveHeap) Push(x interface{}) {
	*h = append(*h, x.(Move))
}

func (h *moveHeap) Pop() interface{} {
	n := len(*h)
	ret := (*h)[n-1]
	*h = (*h)[0 : n-1]
	return ret
}
