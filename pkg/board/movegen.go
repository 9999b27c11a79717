package board

import "container/heap"

// GenerateMoves fills list with the moves available to the side to move,
// scored for ordering as they are added. It has three modes, chosen by
// whether the side to move is in check and by qsearch:
//
//  1. In check: all pseudo-legal moves restricted to the set of squares that
//     capture or block every checker (or, with 2+ checkers, king moves only).
//  2. Not in check, qsearch false: all pseudo-legal moves.
//  3. Not in check, qsearch true: only "volatile" moves (captures,
//     en-passant, promotions), plus quiet checks once depth >= 0.
//
// In every mode the result is still only pseudo-legal with respect to pins
// and king safety; callers must run it through FilterLegal before use.
func GenerateMoves(pos *Position, list *MoveList, qsearch bool, depth int) {
	turn := pos.turn
	if IsAttacked(pos, pos.king[turn], turn.Opponent()) {
		generateEvasions(pos, list, turn)
		return
	}
	generatePseudoLegal(pos, list, turn, qsearch, depth)
}

// FilterLegal removes moves that would leave (or walk into) the mover's own
// king in check: pinned pieces moving off their pin ray, king moves to an
// attacked square, and en-passant captures that expose a horizontal pin.
func FilterLegal(pos *Position, list *MoveList) {
	kept := list.h[:0]
	for _, m := range list.h {
		if isMoveLegal(pos, m) {
			kept = append(kept, m)
		}
	}
	list.h = kept
	heap.Init(&list.h)
}

func isMoveLegal(pos *Position, m Move) bool {
	turn := pos.squares[m.From()].Color()
	switch m.Type() {
	case CastleShort, CastleLong:
		return true // legality already verified during generation
	case KingMove:
		return isKingMoveLegal(pos, m.From(), m.To(), turn.Opponent())
	case EnPassant:
		return isEnPassantLegal(pos, m, turn)
	default:
		piece := NewPiece(turn, m.Piece())
		return !isPinned(pos, m.From(), m.To(), piece)
	}
}

func isKingMoveLegal(pos *Position, from, to Square, opp Color) bool {
	orig := pos.squares[from]
	pos.squares[from] = NoPiece
	attacked := IsAttacked(pos, to, opp)
	pos.squares[from] = orig
	return !attacked
}

func isEnPassantLegal(pos *Position, m Move, turn Color) bool {
	from, to := m.From(), m.To()
	capSq, _ := EnPassantCaptureSquare(turn, to)

	mover := pos.squares[from]
	captured := pos.squares[capSq]
	pos.squares[from] = NoPiece
	pos.squares[capSq] = NoPiece
	pos.squares[to] = mover

	legal := !IsAttacked(pos, pos.king[turn], turn.Opponent())

	pos.squares[to] = NoPiece
	pos.squares[capSq] = captured
	pos.squares[from] = mover

	return legal
}

// isPinned reports whether the piece on from is pinned to its own king along
// the from->king line and the move to to would leave that line, per the
// ray-scan pin filter: walk from the king through from and beyond; if the
// first piece past from is an enemy slider compatible with the ray direction,
// from is pinned and must stay on the line.
func isPinned(pos *Position, from, to Square, mover Piece) bool {
	king := pos.king[mover.Color()]
	if from == king {
		return false
	}

	dToKing, aligned := direction(from, king)
	if !aligned {
		return false
	}
	d := -dToKing

	cur := king
	sawMover := false
	for {
		next, ok := cur.Add(d)
		if !ok {
			return false
		}
		p := pos.PieceAt(next)
		if p == NoPiece {
			cur = next
			continue
		}
		if next == from {
			sawMover = true
			cur = next
			continue
		}
		if !sawMover {
			return false // something else already blocks this ray
		}
		if p.Color() == mover.Color() {
			return false
		}
		if !isCompatibleSlider(p, d) {
			return false
		}

		dMove, ok := direction(from, to)
		return !ok || (dMove != d && dMove != -d)
	}
}

func isCompatibleSlider(p Piece, d int8) bool {
	if isDiagonal(d) {
		return p.Type() == BishopType || p.Type() == QueenType
	}
	return p.Type() == RookType || p.Type() == QueenType
}

func isDiagonal(d int8) bool {
	return d == DirNE || d == DirNW || d == DirSE || d == DirSW
}

// direction returns the compass direction from a straight line connecting
// from to to, if the two squares are aligned on a rank, file or diagonal.
func direction(from, to Square) (int8, bool) {
	df := int(to.File()) - int(from.File())
	dr := int(to.Rank()) - int(from.Rank())
	switch {
	case df == 0 && dr == 0:
		return 0, false
	case df == 0:
		if dr > 0 {
			return DirN, true
		}
		return DirS, true
	case dr == 0:
		if df > 0 {
			return DirE, true
		}
		return DirW, true
	case df == dr:
		if df > 0 {
			return DirNE, true
		}
		return DirSW, true
	case df == -dr:
		if df > 0 {
			return DirSE, true
		}
		return DirNW, true
	default:
		return 0, false
	}
}

// IsAttacked reports whether sq is attacked by any piece of color by.
func IsAttacked(pos *Position, sq Square, by Color) bool {
	if !sq.IsValid() {
		return false
	}

	for _, d := range PawnCaptureDeltas(by) {
		if from, ok := sq.Add(-d); ok && pos.PieceAt(from) == NewPiece(by, PawnType) {
			return true
		}
	}
	for _, d := range KnightDeltas {
		if at, ok := sq.Add(d); ok && pos.PieceAt(at) == NewPiece(by, KnightType) {
			return true
		}
	}
	for _, d := range QueenDirections {
		if at, ok := sq.Add(d); ok && pos.PieceAt(at) == NewPiece(by, KingType) {
			return true
		}
	}
	for _, d := range RookDirections {
		if slidingAttack(pos, sq, d, by, RookType) {
			return true
		}
	}
	for _, d := range BishopDirections {
		if slidingAttack(pos, sq, d, by, BishopType) {
			return true
		}
	}
	return false
}

func slidingAttack(pos *Position, sq Square, dir int8, by Color, sliderType Piece) bool {
	at, ok := firstOccupant(pos, sq, dir)
	if !ok {
		return false
	}
	p := pos.PieceAt(at)
	return p.Color() == by && (p.Type() == sliderType || p.Type() == QueenType)
}

// findCheckers returns the set of squares that capture or block every piece
// currently checking turn's king, plus the number of checkers. With two or
// more checkers the set is irrelevant: only king moves remain legal.
func findCheckers(pos *Position, turn Color) (map[Square]bool, int) {
	king := pos.king[turn]
	opp := turn.Opponent()
	targets := make(map[Square]bool)
	numCheckers := 0

	for _, d := range QueenDirections {
		cur := king
		var path []Square
		for {
			next, ok := cur.Add(d)
			if !ok {
				break
			}
			p := pos.PieceAt(next)
			if p == NoPiece {
				path = append(path, next)
				cur = next
				continue
			}
			if p.Color() == opp && isCompatibleSlider(p, d) {
				numCheckers++
				targets[next] = true
				for _, s := range path {
					targets[s] = true
				}
			}
			break
		}
	}
	for _, d := range KnightDeltas {
		if next, ok := king.Add(d); ok && pos.PieceAt(next) == NewPiece(opp, KnightType) {
			numCheckers++
			targets[next] = true
		}
	}
	for _, d := range PawnCaptureDeltas(turn) {
		if next, ok := king.Add(d); ok && pos.PieceAt(next) == NewPiece(opp, PawnType) {
			numCheckers++
			targets[next] = true
		}
	}

	return targets, numCheckers
}

func generateEvasions(pos *Position, list *MoveList, turn Color) {
	targets, numCheckers := findCheckers(pos, turn)

	generatePieceMoves(pos, turn, func(m Move) {
		if m.Type().IsCastle() {
			return // cannot castle out of check
		}
		if m.Type() == KingMove {
			list.Add(m, scoreMove(pos, m, turn))
			return
		}
		if numCheckers >= 2 {
			return
		}

		to := m.To()
		match := targets[to]
		if m.Type() == EnPassant {
			if capSq, ok := EnPassantCaptureSquare(turn, to); ok && targets[capSq] {
				match = true
			}
		}
		if match {
			list.Add(m, scoreMove(pos, m, turn))
		}
	})
}

func generatePseudoLegal(pos *Position, list *MoveList, turn Color, qsearch bool, depth int) {
	generatePieceMoves(pos, turn, func(m Move) {
		if qsearch {
			if m.Type().IsCastle() {
				return
			}
			volatile := m.IsCapture() || m.IsPromotion()
			if !volatile && (depth < 0 || !givesCheck(pos, m, turn)) {
				return
			}
		}
		list.Add(m, scoreMove(pos, m, turn))
	})
}

// givesCheck reports whether m, if played, would attack the opponent's king.
// It simulates the move directly on pos.squares (cheaper than Board.Exec,
// and with no Zobrist/material bookkeeping to undo) and restores it before
// returning, so it handles discovered checks for free.
func givesCheck(pos *Position, m Move, turn Color) bool {
	from, to := m.From(), m.To()
	mover := pos.squares[from]
	captured := pos.squares[to]

	pos.squares[from] = NoPiece
	if promo := m.Promotion(); promo != NoPiece {
		pos.squares[to] = NewPiece(turn, promo)
	} else {
		pos.squares[to] = mover
	}

	capSq := NoSquare
	var capPiece Piece
	if m.Type() == EnPassant {
		capSq, _ = EnPassantCaptureSquare(turn, to)
		capPiece = pos.squares[capSq]
		pos.squares[capSq] = NoPiece
	}

	check := IsAttacked(pos, pos.king[turn.Opponent()], turn)

	pos.squares[to] = captured
	pos.squares[from] = mover
	if capSq != NoSquare {
		pos.squares[capSq] = capPiece
	}
	return check
}

// orderingPieceSquareValue is a lightweight centralization bonus used only to
// rank freshly generated moves; the full positional piece-square evaluation
// used by the static evaluator lives in package eval.
func orderingPieceSquareValue(p Piece, sq Square) int32 {
	file, rank := int(sq.File()), int(sq.Rank())
	cf, cr := file, rank
	if cf > 7-cf {
		cf = 7 - cf
	}
	if cr > 7-cr {
		cr = 7 - cr
	}
	centrality := int32(cf + cr)

	switch p.Type() {
	case PawnType:
		adv := rank
		if p.Color() == Black {
			adv = 7 - rank
		}
		return int32(adv)*4 + centrality
	case KnightType, BishopType:
		return centrality * 4
	case KingType:
		return -centrality * 2
	default:
		return centrality
	}
}

// scoreMove assigns the initial move-ordering score described by spec: a
// piece-square delta, plus a capture/promotion/en-passant term.
func scoreMove(pos *Position, m Move, turn Color) Score {
	piece := NewPiece(turn, m.Piece())
	score := Score(orderingPieceSquareValue(piece, m.To()) - orderingPieceSquareValue(piece, m.From()))

	switch {
	case m.Type() == EnPassant:
		score += Score(PawnType.Value())
	case m.IsPromotion():
		promo := NewPiece(turn, m.Promotion())
		score += Score(m.Capture().Value() + promo.Value() - PawnType.Value())
	case m.IsCapture():
		score += Score(m.Capture().Value()) - Score(StaticExchange(pos, m.To(), turn.Opponent()))
	}
	return score
}

func generatePieceMoves(pos *Position, turn Color, emit func(Move)) {
	for i := 0; i < numMailboxSquares; i++ {
		sq := Square(i)
		if !sq.IsValid() {
			continue
		}
		p := pos.PieceAt(sq)
		if p == NoPiece || p.Color() != turn {
			continue
		}
		switch p.Type() {
		case PawnType:
			genPawnMoves(pos, sq, turn, emit)
		case KnightType:
			genKnightMoves(pos, sq, turn, emit)
		case BishopType:
			genSliderMoves(pos, sq, turn, BishopDirections[:], BishopType, emit)
		case RookType:
			genSliderMoves(pos, sq, turn, RookDirections[:], RookType, emit)
		case QueenType:
			genSliderMoves(pos, sq, turn, QueenDirections[:], QueenType, emit)
		case KingType:
			genKingMoves(pos, sq, turn, emit)
		}
	}
}

var promotionTypes = [4]Piece{QueenType, RookType, BishopType, KnightType}

func genPawnMoves(pos *Position, from Square, turn Color, emit func(Move)) {
	adv := PawnAdvance(turn)
	homeRank, promoRank := Rank2, Rank8
	if turn == Black {
		homeRank, promoRank = Rank7, Rank1
	}

	if to, ok := from.Add(adv); ok && pos.PieceAt(to) == NoPiece {
		if to.Rank() == promoRank {
			for _, promo := range promotionTypes {
				emit(NewMove(PawnPush, from, to, PawnType, NoPiece, promo))
			}
		} else {
			emit(NewMove(PawnPush, from, to, PawnType, NoPiece, NoPiece))
			if from.Rank() == homeRank {
				if to2, ok := to.Add(adv); ok && pos.PieceAt(to2) == NoPiece {
					emit(NewMove(PawnLung, from, to2, PawnType, NoPiece, NoPiece))
				}
			}
		}
	}

	for _, d := range PawnCaptureDeltas(turn) {
		to, ok := from.Add(d)
		if !ok {
			continue
		}
		if target := pos.PieceAt(to); target != NoPiece && target.Color() != turn {
			if to.Rank() == promoRank {
				for _, promo := range promotionTypes {
					emit(NewMove(PawnCapture, from, to, PawnType, target.Type(), promo))
				}
			} else {
				emit(NewMove(PawnCapture, from, to, PawnType, target.Type(), NoPiece))
			}
		} else if to == pos.enpassant {
			emit(NewMove(EnPassant, from, to, PawnType, PawnType, NoPiece))
		}
	}
}

func genKnightMoves(pos *Position, from Square, turn Color, emit func(Move)) {
	for _, d := range KnightDeltas {
		to, ok := from.Add(d)
		if !ok {
			continue
		}
		target := pos.PieceAt(to)
		if target != NoPiece && target.Color() == turn {
			continue
		}
		emit(NewMove(Normal, from, to, KnightType, target.Type(), NoPiece))
	}
}

func genSliderMoves(pos *Position, from Square, turn Color, dirs []int8, pieceType Piece, emit func(Move)) {
	for _, d := range dirs {
		cur := from
		for {
			to, ok := cur.Add(d)
			if !ok {
				break
			}
			target := pos.PieceAt(to)
			if target == NoPiece {
				emit(NewMove(Normal, from, to, pieceType, NoPiece, NoPiece))
				cur = to
				continue
			}
			if target.Color() != turn {
				emit(NewMove(Normal, from, to, pieceType, target.Type(), NoPiece))
			}
			break
		}
	}
}

func genKingMoves(pos *Position, from Square, turn Color, emit func(Move)) {
	for _, d := range QueenDirections {
		to, ok := from.Add(d)
		if !ok {
			continue
		}
		target := pos.PieceAt(to)
		if target != NoPiece && target.Color() == turn {
			continue
		}
		emit(NewMove(KingMove, from, to, KingType, target.Type(), NoPiece))
	}
	genCastling(pos, from, turn, emit)
}

func genCastling(pos *Position, from Square, turn Color, emit func(Move)) {
	opp := turn.Opponent()
	rank := Rank1
	if turn == Black {
		rank = Rank8
	}
	if from != NewSquare(FileE, rank) {
		return
	}

	kingSide, queenSide := WhiteKingSideCastle, WhiteQueenSideCastle
	if turn == Black {
		kingSide, queenSide = BlackKingSideCastle, BlackQueenSideCastle
	}

	if pos.castling.IsAllowed(kingSide) {
		f, g := NewSquare(FileF, rank), NewSquare(FileG, rank)
		if pos.PieceAt(f) == NoPiece && pos.PieceAt(g) == NoPiece &&
			!IsAttacked(pos, from, opp) && !IsAttacked(pos, f, opp) && !IsAttacked(pos, g, opp) {
			emit(NewMove(CastleShort, from, g, KingType, NoPiece, NoPiece))
		}
	}
	if pos.castling.IsAllowed(queenSide) {
		b, c, d := NewSquare(FileB, rank), NewSquare(FileC, rank), NewSquare(FileD, rank)
		if pos.PieceAt(b) == NoPiece && pos.PieceAt(c) == NoPiece && pos.PieceAt(d) == NoPiece &&
			!IsAttacked(pos, from, opp) && !IsAttacked(pos, d, opp) && !IsAttacked(pos, c, opp) {
			emit(NewMove(CastleLong, from, c, KingType, NoPiece, NoPiece))
		}
	}
}
