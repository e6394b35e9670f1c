package game

import (
	"fmt"
	"strings"
)

// PieceColor is the contents of a square: empty or one of the two players' pieces.
type PieceColor int8

const (
	Empty PieceColor = iota
	Black
	White
)

// Opposite returns the other player's color. Empty is its own opposite.
func (c PieceColor) Opposite() PieceColor {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		return Empty
	}
}

// IsPiece reports whether c is one of the two movers.
func (c PieceColor) IsPiece() bool {
	return c == White || c == Black
}

func (c PieceColor) String() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "Empty"
	}
}

// ShortName is the one character used by layouts and board dumps.
func (c PieceColor) ShortName() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		return "-"
	}
}

// ParseColor accepts "white" or "black" in any case.
func ParseColor(s string) (PieceColor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white":
		return White, nil
	case "black":
		return Black, nil
	default:
		return Empty, fmt.Errorf("%q: %w", s, ErrInvalidColor)
	}
}
