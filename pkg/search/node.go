package search

import (
	"fmt"

	"github.com/corvid-chess/corvid/pkg/board"
	"go.uber.org/atomic"
)

// MaxPlies bounds the search tree depth (root to leaf); MaxMoves bounds the
// branching factor assumed when sizing per-ply scratch arrays.
const (
	MaxPlies = 100
	MaxMoves = 128
)

// Stats accumulates search counters for UCI info output and tuning. Fields
// are updated from a single search goroutine (spec.md's single-worker-thread
// model) but kept atomic to match the table's own lock-free idiom.
type Stats struct {
	SNodes  atomic.Uint64 // Search() calls
	QNodes  atomic.Uint64 // QSearch() calls
	Execs   atomic.Uint64 // Board.Exec calls

	CheckExts     atomic.Uint64
	OneReplyExts  atomic.Uint64
	HashExts      atomic.Uint64

	DeltaCount atomic.Uint64 // delta-pruned qsearch candidates

	RazorCount    atomic.Uint64
	RazorCutoffs  atomic.Uint64

	NullMoves     atomic.Uint64
	NMCutoffs     atomic.Uint64
	NMRCandidates atomic.Uint64

	IIDCount atomic.Uint64

	LateMoves     atomic.Uint64
	LMCandidates  atomic.Uint64
	LMReductions  atomic.Uint64
	LMResearches  atomic.Uint64
	LMConfirmed   atomic.Uint64
	LMAlphaIncs   atomic.Uint64
}

func (s *Stats) Nodes() uint64 {
	return s.SNodes.Load() + s.QNodes.Load()
}

func (s *Stats) String() string {
	return fmt.Sprintf("snodes=%v qnodes=%v execs=%v", s.SNodes.Load(), s.QNodes.Load(), s.Execs.Load())
}

// Clear zeroes every counter, for reuse across searches on the same Context.
func (s *Stats) Clear() {
	*s = Stats{}
}

// Killers holds the two quiet moves that most recently caused a beta cutoff
// at each ply, tried early in move ordering before history-ranked quiets.
type Killers struct {
	slots [MaxPlies][2]board.Move
}

// Store records m as the newest killer at ply, shifting the older one down,
// unless m is already the primary killer.
func (k *Killers) Store(ply int, m board.Move) {
	if ply < 0 || ply >= MaxPlies {
		return
	}
	if k.slots[ply][0].Equals(m) {
		return
	}
	k.slots[ply][1] = k.slots[ply][0]
	k.slots[ply][0] = m
}

func (k *Killers) At(ply int) (board.Move, board.Move) {
	if ply < 0 || ply >= MaxPlies {
		return board.Move{}, board.Move{}
	}
	return k.slots[ply][0], k.slots[ply][1]
}

// History is the 1 MiB quiet-move history heuristic table: one signed byte
// per (from, to, piece) combination, indexed by Move.HistoryIndex.
type History struct {
	table [1 << 20]int8
}

// Bonus increments a quiet move's history weight on a beta cutoff or alpha
// improvement, clamped to +40.
func (h *History) Bonus(m board.Move, depth int) {
	idx := m.HistoryIndex()
	v := int(h.table[idx]) + depth + 2
	if v > 40 {
		v = 40
	}
	h.table[idx] = int8(v)
}

// Penalize decrements a quiet move's weight when it was searched but failed
// to improve alpha, clamped to -2.
func (h *History) Penalize(m board.Move) {
	idx := m.HistoryIndex()
	v := int(h.table[idx]) - 1
	if v < -2 {
		v = -2
	}
	h.table[idx] = int8(v)
}

func (h *History) Get(m board.Move) int8 {
	return h.table[m.HistoryIndex()]
}
