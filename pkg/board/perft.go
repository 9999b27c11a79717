package board

// Perft returns the leaf-node count of the legal-move tree rooted at b's
// current position, to the given depth: the standard move-generator
// correctness check (spec's end-to-end perft scenarios).
func Perft(b *Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var list MoveList
	GenerateMoves(b.Position(), &list, false, 0)
	FilterLegal(b.Position(), &list)

	var leaves uint64
	for list.Len() > 0 {
		m, _ := list.Next()
		b.Exec(m)
		leaves += Perft(b, depth-1)
		b.Undo()
	}
	return leaves
}
