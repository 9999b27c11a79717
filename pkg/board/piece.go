package board

// Piece is a mailbox piece code: a color bit (0=White, 1=Black) combined
// with a type value. NoPiece is 0; every real type starts at an even value
// so the color bit never collides with a neighboring type.
type Piece uint8

const (
	NoPiece Piece = 0

	WhitePawn   Piece = 2
	BlackPawn   Piece = 3
	WhiteKnight Piece = 4
	BlackKnight Piece = 5
	WhiteBishop Piece = 6
	BlackBishop Piece = 7
	WhiteRook   Piece = 8
	BlackRook   Piece = 9
	WhiteQueen  Piece = 10
	BlackQueen  Piece = 11
	WhiteKing   Piece = 12
	BlackKing   Piece = 13
)

// Type codes, color-less: used for piece-square table lookups and the
// packed-move piece/captured/promotion nibbles.
const (
	PawnType   = WhitePawn
	KnightType = WhiteKnight
	BishopType = WhiteBishop
	RookType   = WhiteRook
	QueenType  = WhiteQueen
	KingType   = WhiteKing
)

// KingValue stands in for "infinite" in SEE: the king is never actually
// captured, but SEE needs a sentinel larger than any real exchange.
const KingValue int32 = 1 << 20

// NewPiece combines a color and a color-less type into a piece code.
func NewPiece(c Color, t Piece) Piece {
	return (t &^ 1) | Piece(c)
}

func (p Piece) IsValid() bool {
	return p >= WhitePawn && p <= BlackKing
}

// Color returns the piece's color. Meaningless for NoPiece.
func (p Piece) Color() Color {
	return Color(p & 1)
}

// Type strips the color bit, yielding one of the *Type constants.
func (p Piece) Type() Piece {
	return p &^ 1
}

// Value returns the static piece value in centipawns; King returns KingValue.
func (p Piece) Value() int32 {
	switch p.Type() {
	case PawnType:
		return 100
	case KnightType, BishopType:
		return 350
	case RookType:
		return 500
	case QueenType:
		return 950
	case KingType:
		return KingValue
	default:
		return 0
	}
}

func ParsePiece(r rune) (Piece, bool) {
	switch r {
	case 'P':
		return WhitePawn, true
	case 'p':
		return BlackPawn, true
	case 'N':
		return WhiteKnight, true
	case 'n':
		return BlackKnight, true
	case 'B':
		return WhiteBishop, true
	case 'b':
		return BlackBishop, true
	case 'R':
		return WhiteRook, true
	case 'r':
		return BlackRook, true
	case 'Q':
		return WhiteQueen, true
	case 'q':
		return BlackQueen, true
	case 'K':
		return WhiteKing, true
	case 'k':
		return BlackKing, true
	default:
		return NoPiece, false
	}
}

// ParsePromotion parses a promotion letter as used in pure algebraic coordinate
// notation ("q", "r", "b", "n"), always as a White-type code; callers combine it
// with the mover's color via Type()|Color().
func ParsePromotion(r rune) (Piece, bool) {
	switch r {
	case 'n', 'N':
		return KnightType, true
	case 'b', 'B':
		return BishopType, true
	case 'r', 'R':
		return RookType, true
	case 'q', 'Q':
		return QueenType, true
	default:
		return NoPiece, false
	}
}

func (p Piece) String() string {
	switch p {
	case NoPiece:
		return "."
	case WhitePawn:
		return "P"
	case BlackPawn:
		return "p"
	case WhiteKnight:
		return "N"
	case BlackKnight:
		return "n"
	case WhiteBishop:
		return "B"
	case BlackBishop:
		return "b"
	case WhiteRook:
		return "R"
	case BlackRook:
		return "r"
	case WhiteQueen:
		return "Q"
	case BlackQueen:
		return "q"
	case WhiteKing:
		return "K"
	case BlackKing:
		return "k"
	default:
		return "?"
	}
}
