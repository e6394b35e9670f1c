package game

import (
	"fmt"
	"slices"
)

// Squares are named by a column 'a'..'e' and a row '1'..'5', or by their
// linearized index: the square number in row-major order, bottom row first.
const (
	Side       = 5
	NumSquares = Side * Side
	MaxIndex   = NumSquares - 1
)

// offset is a (column, row) displacement.
type offset struct {
	dc, dr int
}

// Neighbor tables. Even squares connect along diagonals too, odd squares only
// orthogonally. Generation order follows these tables, so they must not be
// reordered.
var (
	evenSteps = []offset{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}
	oddSteps  = []offset{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	evenJumps = []offset{{2, 0}, {2, 2}, {0, 2}, {-2, 2}, {-2, 0}, {-2, -2}, {0, -2}, {2, -2}}
	oddJumps  = []offset{{2, 0}, {0, 2}, {-2, 0}, {0, -2}}
)

func stepOffsets(k int) []offset {
	if k%2 == 0 {
		return evenSteps
	}
	return oddSteps
}

func jumpOffsets(k int) []offset {
	if k%2 == 0 {
		return evenJumps
	}
	return oddJumps
}

// ValidSquare reports whether col and row name a square on the board.
func ValidSquare(col, row byte) bool {
	return col >= 'a' && col <= 'e' && row >= '1' && row <= '5'
}

// ValidIndex reports whether k is a linearized square index.
func ValidIndex(k int) bool {
	return k >= 0 && k <= MaxIndex
}

// Index returns the linearized index of square col row.
func Index(col, row byte) int {
	if !ValidSquare(col, row) {
		panic(fmt.Sprintf("square %c%c is off the board", col, row))
	}
	return int(col-'a') + int(row-'1')*Side
}

// Col returns the column letter of square k.
func Col(k int) byte {
	mustIndex(k)
	return byte('a' + k%Side)
}

// Row returns the row digit of square k.
func Row(k int) byte {
	mustIndex(k)
	return byte('1' + k/Side)
}

// SquareName returns the two character name of square k, e.g. "c3".
func SquareName(k int) string {
	return string([]byte{Col(k), Row(k)})
}

func mustIndex(k int) {
	if !ValidIndex(k) {
		panic(fmt.Sprintf("square index %d is off the board", k))
	}
}

// shift returns the index reached from k by o, or -1 when that leaves the board.
func shift(k int, o offset) int {
	c := k%Side + o.dc
	r := k/Side + o.dr
	if c < 0 || c >= Side || r < 0 || r >= Side {
		return -1
	}
	return r*Side + c
}

// connected reports whether o is a step (or, for jumps, a leap) that the
// geometry of square k allows.
func connected(k int, o offset, jump bool) bool {
	if jump {
		return slices.Contains(jumpOffsets(k), o)
	}
	return slices.Contains(stepOffsets(k), o)
}
