package board_test

import (
	"testing"

	"github.com/corvid-chess/corvid/pkg/board"
	"github.com/corvid-chess/corvid/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBoardFromFEN(t *testing.T, f string) *board.Board {
	t.Helper()
	zt := board.NewZobristTable(1)
	b := board.NewBoard(zt)
	_, err := b.SetPosition(f)
	require.NoError(t, err)
	return b
}

func legalMoves(b *board.Board) *board.MoveList {
	var list board.MoveList
	board.GenerateMoves(b.Position(), &list, false, 0)
	board.FilterLegal(b.Position(), &list)
	return &list
}

func TestInitialPositionMoveCount(t *testing.T) {
	b := newBoardFromFEN(t, board.InitialFEN)
	assert.Equal(t, 20, legalMoves(b).Len())
	assert.False(t, b.InCheck())
}

func TestPerftInitialPosition(t *testing.T) {
	b := newBoardFromFEN(t, board.InitialFEN)
	assert.EqualValues(t, 20, board.Perft(b, 1))
	assert.EqualValues(t, 400, board.Perft(b, 2))
	assert.EqualValues(t, 8902, board.Perft(b, 3))
	assert.EqualValues(t, 197281, board.Perft(b, 4))
}

func TestPerftKiwipete(t *testing.T) {
	b := newBoardFromFEN(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.EqualValues(t, 97862, board.Perft(b, 3))
}

func TestCastlingLegality(t *testing.T) {
	open := newBoardFromFEN(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.EqualValues(t, 26, board.Perft(open, 1))

	blocked := newBoardFromFEN(t, "r3k2r/8/8/8/4r3/8/8/R3K2R w KQkq - 0 1")
	for i := 0; i < legalMoves(blocked).Len(); i++ {
		m := legalMoves(blocked).At(i)
		assert.NotEqual(t, board.CastleShort, m.Type())
		assert.NotEqual(t, board.CastleLong, m.Type())
	}
}

func TestMatingMoveIsLegal(t *testing.T) {
	// Black king boxed into h8; Qf7-g7 is mate, supported by the king on g6.
	b := newBoardFromFEN(t, "7k/5Q2/6K1/8/8/8/8/8 w - - 0 1")
	list := legalMoves(b)
	var found bool
	for i := 0; i < list.Len(); i++ {
		if list.At(i).CoordString() == "f7g7" {
			found = true
		}
	}
	assert.True(t, found, "expected Qg7 to be a legal move")
}

func TestPinFilterExcludesIllegalMove(t *testing.T) {
	// White king e1, White rook e2 pinned by Black rook e8: Re2 may only
	// move along the e-file.
	b := newBoardFromFEN(t, "4r2k/8/8/8/8/8/4R3/4K3 w - - 0 1")
	list := legalMoves(b)
	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.From() == board.NewSquare(board.FileE, board.Rank2) {
			assert.Equal(t, board.FileE, m.To().File(), "pinned rook must stay on the e-file")
		}
	}
}

func TestEnPassantPinIsFiltered(t *testing.T) {
	// White king a5, black rook h5: capturing exd6 en passant clears both
	// d5 and e5, uncovering a horizontal check along the fifth rank.
	b := newBoardFromFEN(t, "4k3/8/8/K2pP2r/8/8/8/8 w - d6 0 1")
	list := legalMoves(b)
	for i := 0; i < list.Len(); i++ {
		assert.NotEqual(t, board.EnPassant, list.At(i).Type())
	}
}

func TestRepetitionAndFiftyMoveRule(t *testing.T) {
	b := newBoardFromFEN(t, board.InitialFEN)

	moves := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	for i := 0; i < 2; i++ {
		for _, m := range moves {
			_, err := b.MakeMove(m)
			require.NoError(t, err)
		}
	}
	assert.True(t, b.IsRepetition())

	b2 := newBoardFromFEN(t, "8/8/8/8/8/6k1/8/6K1 w - - 99 50")
	_, err := b2.MakeMove("g1f1")
	require.NoError(t, err)
	assert.True(t, b2.IsDrawByNoProgress())
}

func TestPromotionMakeMove(t *testing.T) {
	b := newBoardFromFEN(t, "8/P7/8/8/8/8/8/4k2K w - - 0 1")
	_, err := b.MakeMove("a7a8q")
	require.NoError(t, err)
	assert.Equal(t, board.WhiteQueen, b.PieceAt(board.NewSquare(board.FileA, board.Rank8)))
}

func TestExecUndoRestoresPosition(t *testing.T) {
	b := newBoardFromFEN(t, board.InitialFEN)
	before := b.GetFEN()
	beforeKey := b.PositionKey()

	list := legalMoves(b)
	m, ok := list.Next()
	require.True(t, ok)

	b.Exec(m)
	assert.NotEqual(t, before, b.GetFEN())
	b.Undo()

	assert.Equal(t, before, b.GetFEN())
	assert.Equal(t, beforeKey, b.PositionKey())
}

func TestFENRoundTrip(t *testing.T) {
	for _, f := range []string{
		board.InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/P7/8/8/8/8/8/4k2K w - - 0 1",
	} {
		pos, rest, err := fen.Decode(f)
		require.NoError(t, err)
		assert.Empty(t, rest)
		assert.Equal(t, f, fen.Encode(pos))
	}
}

func TestInvalidFENRejected(t *testing.T) {
	// White's king on e1 is attacked by the black queen on e8 while it is
	// black's move: the side not to move cannot already be in check.
	_, _, err := fen.Decode("k3q3/8/8/8/8/8/8/4K3 b - - 0 1")
	assert.Error(t, err)
}
