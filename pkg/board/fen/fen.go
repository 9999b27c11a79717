// Package fen contains utilities for reading and writing positions in FEN
// notation, as a thin wrapper around board.DecodeFEN/EncodeFEN for callers
// (cmd/perft, cmd/corvid) that want FEN handling without going through a
// live Board.
package fen

import "github.com/corvid-chess/corvid/pkg/board"

const Initial = board.InitialFEN

// Decode parses a FEN string into a fresh position, plus any trailing text.
func Decode(s string) (*board.Position, string, error) {
	decoded, rest, err := board.DecodeFEN(s)
	if err != nil {
		return nil, "", err
	}
	pos, err := decoded.NewPosition()
	if err != nil {
		return nil, "", err
	}
	return pos, rest, nil
}

// Encode renders a position as a standard 6-field FEN string.
func Encode(pos *board.Position) string {
	return board.EncodeFEN(pos)
}
