// Package board implements the chess board representation: a 16x8 extended
// mailbox with incremental Zobrist hashing, move generation, static exchange
// evaluation and FEN I/O.
package board

import "fmt"

// MaxPlies is the initial capacity of the Exec/Undo history stack and of the
// repetition map; both grow past it as needed.
const MaxPlies = 100

// undoRecord captures exactly what Exec changed, so Undo can restore the
// board byte-for-byte without keeping a full position copy per ply.
type undoRecord struct {
	move Move

	prevCastling  Castling
	prevEnPassant Square
	prevRCount    int
	prevFullmove  int
	prevCheck     CheckState
	prevPieceKey  ZobristHash
	prevPosKey    ZobristHash
	prevKing      [NumColors]Square
	prevMaterial  [NumColors]int32

	capturedPiece  Piece
	capturedSquare Square // NoSquare if the move was not a capture

	isNull bool
}

// Board is the mutable game state: a single Position mutated in place by
// Exec/Undo, plus the undo stack and repetition multiset that make that
// in-place mutation reversible and repetition-aware. Not thread-safe; Fork
// makes an independent copy for concurrent analysis.
type Board struct {
	zt   *ZobristTable
	pos  Position
	undo []undoRecord
	seen map[ZobristHash]int // multiset of position keys on the current path
}

func NewBoard(zt *ZobristTable) *Board {
	b := &Board{
		zt:   zt,
		undo: make([]undoRecord, 0, MaxPlies),
		seen: make(map[ZobristHash]int, MaxPlies),
	}
	_, _ = b.SetPosition(InitialFEN)
	return b
}

// InitialFEN is the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func (b *Board) Turn() Color              { return b.pos.turn }
func (b *Board) Ply() int                 { return len(b.undo) }
func (b *Board) PositionKey() ZobristHash { return b.pos.positionKey }
func (b *Board) PieceKey() ZobristHash    { return b.pos.pieceKey }
func (b *Board) King(c Color) Square      { return b.pos.king[c] }
func (b *Board) Material(c Color) int32   { return b.pos.material[c] }
func (b *Board) Castling() Castling       { return b.pos.castling }
func (b *Board) EnPassant() Square        { return b.pos.enpassant }
func (b *Board) ReversibleCount() int     { return b.pos.rcount }
func (b *Board) FullMove() int            { return b.pos.fullmove }
func (b *Board) PieceAt(sq Square) Piece  { return b.pos.PieceAt(sq) }
func (b *Board) Position() *Position      { return &b.pos }

// Fork returns an independent copy of the board, for analysis that must not
// disturb the searching board (e.g. a debug console breaking down a move).
func (b *Board) Fork() *Board {
	f := &Board{
		zt:   b.zt,
		pos:  b.pos,
		undo: append([]undoRecord(nil), b.undo...),
		seen: make(map[ZobristHash]int, len(b.seen)),
	}
	for k, v := range b.seen {
		f.seen[k] = v
	}
	return f
}

// InCheck reports whether the side to move is in check, computing and
// caching the result the first time it's asked per node.
func (b *Board) InCheck() bool {
	if b.pos.check == UnknownCheck {
		if IsAttacked(&b.pos, b.pos.king[b.pos.turn], b.pos.turn.Opponent()) {
			b.pos.check = InCheck
		} else {
			b.pos.check = NotInCheck
		}
	}
	return b.pos.check == InCheck
}

// IsRepetition reports whether the current position key has already
// occurred on this search path (the "seen" multiset of spec.md §3). Exec
// counts the current visit before this is called, so a first-ever visit
// reads 1: only a count above that means the position repeats.
func (b *Board) IsRepetition() bool {
	return b.seen[b.pos.positionKey] > 1
}

// IsDrawByNoProgress reports the 50 (100 half-)move rule.
func (b *Board) IsDrawByNoProgress() bool {
	return b.pos.rcount >= 100
}

// SetPosition parses a FEN string and replaces the current position and
// history. Returns any unconsumed trailing text (per spec.md §4.1's
// remaining_text contract) and leaves the board untouched on error.
func (b *Board) SetPosition(fen string) (string, error) {
	decoded, rest, err := DecodeFEN(fen)
	if err != nil {
		return "", err
	}

	pos, err := NewPosition(decoded.pieces, decoded.turn, decoded.castling, decoded.enpassant, decoded.rcount, decoded.fullmove)
	if err != nil {
		return "", err
	}
	if IsAttacked(pos, pos.king[pos.turn.Opponent()], pos.turn) {
		return "", fmt.Errorf("invalid fen: side to move can capture enemy king")
	}
	pos.recomputeKeys(b.zt)

	b.pos = *pos
	b.undo = b.undo[:0]
	b.seen = make(map[ZobristHash]int, MaxPlies)
	b.seen[b.pos.positionKey]++

	return rest, nil
}

// GetFEN encodes the current position as a standard 6-field FEN string.
func (b *Board) GetFEN() string {
	return EncodeFEN(&b.pos)
}

// MakeMove parses coord_str (pure algebraic coordinate notation, e.g.
// "e2e4" or "e7e8q"), resolves it against the legal moves available at the
// current position, and executes it. Returns an error without mutating the
// board if the move is malformed or illegal.
func (b *Board) MakeMove(coordStr string) (string, error) {
	parsed, err := ParseMove(coordStr)
	if err != nil {
		return "", err
	}

	var list MoveList
	GenerateMoves(&b.pos, &list, false, 0)
	FilterLegal(&b.pos, &list)

	for i := 0; i < list.Len(); i++ {
		m := list.At(i)
		if m.From() == parsed.From && m.To() == parsed.To && m.Promotion().Type() == parsed.Promotion.Type() {
			b.Exec(m)
			return "", nil
		}
	}
	return "", fmt.Errorf("illegal move: %v", coordStr)
}

// Exec applies m, mutating the board in place and pushing an undo record.
// Per spec.md §4.1, keys are updated incrementally rather than recomputed.
func (b *Board) Exec(m Move) {
	pos := &b.pos
	turn := pos.turn

	rec := undoRecord{
		move:           m,
		prevCastling:   pos.castling,
		prevEnPassant:  pos.enpassant,
		prevRCount:     pos.rcount,
		prevFullmove:   pos.fullmove,
		prevCheck:      pos.check,
		prevPieceKey:   pos.pieceKey,
		prevPosKey:     pos.positionKey,
		prevKing:       pos.king,
		prevMaterial:   pos.material,
		capturedSquare: NoSquare,
	}

	mover := pos.squares[m.From()]
	newCastling := pos.castling

	moveOffBoard := func(from Square) {
		pos.pieceKey ^= b.zt.PieceHash(mover, from)
		pos.squares[from] = NoPiece
	}
	placeOnBoard := func(to Square, p Piece) {
		pos.squares[to] = p
		pos.pieceKey ^= b.zt.PieceHash(p, to)
	}
	captureAt := func(sq Square) Piece {
		captured := pos.squares[sq]
		if captured != NoPiece {
			pos.pieceKey ^= b.zt.PieceHash(captured, sq)
			pos.material[captured.Color()] -= captured.Value()
			pos.squares[sq] = NoPiece
			rec.capturedPiece = captured
			rec.capturedSquare = sq
		}
		return captured
	}

	switch m.Type() {
	case PawnPush:
		moveOffBoard(m.From())
		if promo := m.Promotion(); promo != NoPiece {
			promoted := NewPiece(turn, promo)
			placeOnBoard(m.To(), promoted)
			pos.material[turn] += promoted.Value() - mover.Value()
		} else {
			placeOnBoard(m.To(), mover)
		}
		pos.rcount = 0

	case PawnLung:
		moveOffBoard(m.From())
		placeOnBoard(m.To(), mover)
		mid, _ := m.From().Add(PawnAdvance(turn))
		pos.enpassant = mid
		pos.rcount = 0

	case PawnCapture:
		captureAt(m.To())
		moveOffBoard(m.From())
		if promo := m.Promotion(); promo != NoPiece {
			promoted := NewPiece(turn, promo)
			placeOnBoard(m.To(), promoted)
			pos.material[turn] += promoted.Value() - mover.Value()
		} else {
			placeOnBoard(m.To(), mover)
		}
		newCastling &^= CastlingRightsLost(turn, m.Type(), m.From(), m.To())
		pos.rcount = 0

	case EnPassant:
		capSq, _ := EnPassantCaptureSquare(turn, m.To())
		captureAt(capSq)
		moveOffBoard(m.From())
		placeOnBoard(m.To(), mover)
		pos.rcount = 0

	case KingMove:
		captured := captureAt(m.To())
		moveOffBoard(m.From())
		placeOnBoard(m.To(), mover)
		pos.king[turn] = m.To()
		if turn == White {
			newCastling &^= WhiteKingSideCastle | WhiteQueenSideCastle
		} else {
			newCastling &^= BlackKingSideCastle | BlackQueenSideCastle
		}
		if captured != NoPiece {
			pos.rcount = 0
		} else {
			pos.rcount++
		}

	case CastleShort, CastleLong:
		moveOffBoard(m.From())
		placeOnBoard(m.To(), mover)
		pos.king[turn] = m.To()

		rFrom, rTo := CastlingRookSquares(turn, m.Type())
		rook := pos.squares[rFrom]
		pos.pieceKey ^= b.zt.PieceHash(rook, rFrom)
		pos.squares[rFrom] = NoPiece
		pos.squares[rTo] = rook
		pos.pieceKey ^= b.zt.PieceHash(rook, rTo)

		if turn == White {
			newCastling &^= WhiteKingSideCastle | WhiteQueenSideCastle
		} else {
			newCastling &^= BlackKingSideCastle | BlackQueenSideCastle
		}
		pos.rcount++

	default: // Normal
		captured := captureAt(m.To())
		moveOffBoard(m.From())
		placeOnBoard(m.To(), mover)
		newCastling &^= CastlingRightsLost(turn, m.Type(), m.From(), m.To())
		if captured != NoPiece {
			pos.rcount = 0
		} else {
			pos.rcount++
		}
	}

	if turn == Black {
		pos.fullmove++
	}
	if m.Type() != PawnLung {
		pos.enpassant = NoSquare
	}
	pos.castling = newCastling
	pos.turn = turn.Opponent()
	pos.check = UnknownCheck
	pos.positionKey = pos.pieceKey ^ b.zt.MetaHash(pos.castling, pos.enpassant, pos.turn)

	b.undo = append(b.undo, rec)
	b.seen[pos.positionKey]++
}

// Undo reverses the most recent Exec, restoring the board byte-for-byte.
func (b *Board) Undo() {
	n := len(b.undo)
	rec := b.undo[n-1]
	b.undo = b.undo[:n-1]

	pos := &b.pos
	b.seen[pos.positionKey]--
	if b.seen[pos.positionKey] == 0 {
		delete(b.seen, pos.positionKey)
	}

	turn := pos.turn.Opponent() // the side that moved
	m := rec.move

	if m.Type() == CastleShort || m.Type() == CastleLong {
		rFrom, rTo := CastlingRookSquares(turn, m.Type())
		rook := pos.squares[rTo]
		pos.squares[rTo] = NoPiece
		pos.squares[rFrom] = rook
	}

	mover := pos.squares[m.To()]
	if promo := m.Promotion(); promo != NoPiece {
		mover = NewPiece(turn, m.Piece())
	}
	pos.squares[m.To()] = NoPiece
	pos.squares[m.From()] = mover

	if m.Type() == EnPassant {
		capSq, _ := EnPassantCaptureSquare(turn, m.To())
		pos.squares[capSq] = rec.capturedPiece
	} else if rec.capturedSquare != NoSquare {
		pos.squares[rec.capturedSquare] = rec.capturedPiece
	}

	pos.castling = rec.prevCastling
	pos.enpassant = rec.prevEnPassant
	pos.rcount = rec.prevRCount
	pos.fullmove = rec.prevFullmove
	pos.check = rec.prevCheck
	pos.pieceKey = rec.prevPieceKey
	pos.positionKey = rec.prevPosKey
	pos.king = rec.prevKing
	pos.material = rec.prevMaterial
	pos.turn = turn
}

// ExecNullMove flips the side to move without moving a piece, clearing the
// en-passant square. Used by null-move pruning only when not in check.
func (b *Board) ExecNullMove() {
	pos := &b.pos
	rec := undoRecord{
		isNull:        true,
		prevEnPassant: pos.enpassant,
		prevCheck:     pos.check,
		prevPosKey:    pos.positionKey,
	}
	pos.enpassant = NoSquare
	pos.turn = pos.turn.Opponent()
	pos.check = UnknownCheck
	pos.positionKey = pos.pieceKey ^ b.zt.MetaHash(pos.castling, pos.enpassant, pos.turn)

	b.undo = append(b.undo, rec)
	b.seen[pos.positionKey]++
}

// UndoNullMove reverses ExecNullMove.
func (b *Board) UndoNullMove() {
	n := len(b.undo)
	rec := b.undo[n-1]
	b.undo = b.undo[:n-1]

	pos := &b.pos
	b.seen[pos.positionKey]--
	if b.seen[pos.positionKey] == 0 {
		delete(b.seen, pos.positionKey)
	}

	pos.turn = pos.turn.Opponent()
	pos.enpassant = rec.prevEnPassant
	pos.check = rec.prevCheck
	pos.positionKey = rec.prevPosKey
}

func (b *Board) String() string {
	return b.GetFEN()
}
