package game

import (
	"fmt"
	"strings"
)

// Move is a single step or jump, or a chain of jumps when it has a tail.
// Moves are immutable; the zero value is not a valid move.
type Move struct {
	from, to int
	jump     bool
	tail     *Move
}

// NewMove returns the one-hop move from square index from to square index to,
// or nil if either is off the board. A displacement of two squares in any
// direction is a jump.
func NewMove(from, to int) *Move {
	if !ValidIndex(from) || !ValidIndex(to) {
		return nil
	}
	dc, dr := abs(to%Side-from%Side), abs(to/Side-from/Side)
	return &Move{from: from, to: to, jump: dc == 2 || dr == 2}
}

// MoveFromSquares returns the move c0r0-c1r1, or nil if a square is off the board.
func MoveFromSquares(c0, r0, c1, r1 byte) *Move {
	if !ValidSquare(c0, r0) || !ValidSquare(c1, r1) {
		return nil
	}
	return NewMove(Index(c0, r0), Index(c1, r1))
}

// Chain returns the move that plays head and then tail from head's final
// landing square.
func Chain(head, tail *Move) *Move {
	if head == nil {
		return tail
	}
	if tail == nil {
		return head
	}
	return &Move{from: head.from, to: head.to, jump: head.jump, tail: Chain(head.tail, tail)}
}

func (m *Move) FromIndex() int { return m.from }
func (m *Move) ToIndex() int   { return m.to }
func (m *Move) IsJump() bool   { return m.jump }

// JumpTail is the rest of a multi-jump, nil on the last hop.
func (m *Move) JumpTail() *Move { return m.tail }

// JumpedIndex is the square captured by this hop, or -1 for a step.
func (m *Move) JumpedIndex() int {
	if !m.jump {
		return -1
	}
	return (m.from + m.to) / 2
}

// IsLeftMove reports whether m is a single non-capturing step one column left.
func (m *Move) IsLeftMove() bool {
	return !m.jump && m.from/Side == m.to/Side && m.to%Side == m.from%Side-1
}

// IsRightMove reports whether m is a single non-capturing step one column right.
func (m *Move) IsRightMove() bool {
	return !m.jump && m.from/Side == m.to/Side && m.to%Side == m.from%Side+1
}

// Final returns the square the moving piece ends on.
func (m *Move) Final() int {
	for m.tail != nil {
		m = m.tail
	}
	return m.to
}

// Captured lists the squares emptied by jumps, in play order.
func (m *Move) Captured() []int {
	var captured []int
	for hop := m; hop != nil; hop = hop.tail {
		if hop.jump {
			captured = append(captured, hop.JumpedIndex())
		}
	}
	return captured
}

// Equal compares whole chains.
func (m *Move) Equal(other *Move) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.from == other.from && m.to == other.to && m.jump == other.jump && m.tail.Equal(other.tail)
}

func (m *Move) String() string {
	if m == nil {
		return "<none>"
	}
	var sb strings.Builder
	sb.WriteString(SquareName(m.from))
	for hop := m; hop != nil; hop = hop.tail {
		sb.WriteByte('-')
		sb.WriteString(SquareName(hop.to))
	}
	return sb.String()
}

// ParseMove reads notation such as "c2-c3" or "a3-c5-c3". Squares after the
// second extend a chain, so every hop of a chain must be a jump.
func ParseMove(s string) (*Move, error) {
	names := strings.Split(strings.TrimSpace(s), "-")
	if len(names) < 2 {
		return nil, fmt.Errorf("%q: %w", s, ErrInvalidMove)
	}
	squares := make([]int, len(names))
	for i, name := range names {
		if len(name) != 2 || !ValidSquare(name[0], name[1]) {
			return nil, fmt.Errorf("%q: square %q: %w", s, name, ErrInvalidMove)
		}
		squares[i] = Index(name[0], name[1])
	}

	var mov *Move
	for i := len(squares) - 2; i >= 0; i-- {
		hop := NewMove(squares[i], squares[i+1])
		if hop.from == hop.to {
			return nil, fmt.Errorf("%q: empty hop: %w", s, ErrInvalidMove)
		}
		if len(squares) > 2 && !hop.jump {
			return nil, fmt.Errorf("%q: chain hop %s is not a jump: %w", s, hop, ErrInvalidMove)
		}
		hop.tail = mov
		mov = hop
	}
	return mov, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
