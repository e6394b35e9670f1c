package game

import (
	"fmt"
	"slices"
	"strings"
)

// InitialLayout is the starting position, row-major from a1 (bottom row first).
const InitialLayout = "w w w w w  w w w w w  b b - w w  b b b b b  b b b b b"

// Board is a Qirkat game in progress: the position, the player to move and
// the moves played so far.
type Board struct {
	position
	history []record
}

// record is a history entry. It keeps the direction markers from before the
// move so that undo restores them exactly.
type record struct {
	move       *Move
	directions [NumSquares]int8
}

// NewBoard returns a board set up for the start of a game, White to move.
func NewBoard() *Board {
	b := &Board{}
	b.Clear()
	return b
}

// Clear resets b to the initial position with White to move.
func (b *Board) Clear() {
	if err := b.SetPieces(InitialLayout, White); err != nil {
		panic(err)
	}
}

// SetPieces loads a 25 character layout of 'b', 'w' and '-' in row-major
// order starting at a1; whitespace is ignored. Direction markers and history
// are cleared. On error b is left unchanged.
func (b *Board) SetPieces(layout string, next PieceColor) error {
	if !next.IsPiece() {
		return fmt.Errorf("next player %v: %w", next, ErrInvalidColor)
	}
	compact := strings.Join(strings.Fields(layout), "")
	if len(compact) != NumSquares {
		return fmt.Errorf("%d squares given: %w", len(compact), ErrInvalidLayout)
	}

	var p position
	for k := 0; k < NumSquares; k++ {
		switch compact[k] {
		case 'w':
			p.squares[k] = White
		case 'b':
			p.squares[k] = Black
		case '-':
			p.squares[k] = Empty
		default:
			return fmt.Errorf("character %q at %s: %w", compact[k], SquareName(k), ErrInvalidLayout)
		}
	}
	p.whoseMove = next

	b.position = p
	b.history = nil
	return nil
}

// Copy returns an independent board with the same position and history.
func (b *Board) Copy() *Board {
	return &Board{position: b.position, history: slices.Clone(b.history)}
}

// Fork returns an independent board with the same position and no history.
// Search branches use it; they never undo.
func (b *Board) Fork() *Board {
	return &Board{position: b.position}
}

// Get returns the contents of square k.
func (b *Board) Get(k int) PieceColor {
	return b.get(k)
}

// GetSquare returns the contents of square col row.
func (b *Board) GetSquare(col, row byte) PieceColor {
	return b.get(Index(col, row))
}

// Direction returns the direction marker of square k: -1, 0 or 1.
func (b *Board) Direction(k int) int {
	mustIndex(k)
	return int(b.directions[k])
}

func (b *Board) WhoseMove() PieceColor {
	return b.whoseMove
}

// LegalMove reports whether the first hop of mov may be played now. It does
// not apply the mandatory capture rule; Moves does.
func (b *Board) LegalMove(mov *Move) bool {
	return b.legalMove(mov)
}

// Moves returns every legal move for the player to move, in square order and
// then neighbor table order. When any capture exists only captures are
// returned, each extended as far as it can go.
func (b *Board) Moves() []*Move {
	return b.moves()
}

// JumpPossible reports whether the player to move has a capture anywhere.
func (b *Board) JumpPossible() bool {
	return b.jumpPossible()
}

// JumpPossibleAt reports whether the piece on k belongs to the player to
// move and can capture.
func (b *Board) JumpPossibleAt(k int) bool {
	return b.jumpPossibleAt(k)
}

// IsMove reports whether the player to move has any legal move.
func (b *Board) IsMove() bool {
	return b.isMove()
}

// GameOver reports whether the player to move is stuck.
func (b *Board) GameOver() bool {
	return !b.isMove()
}

// Winner is the player who made the last move once the game is over, and
// Empty before that.
func (b *Board) Winner() PieceColor {
	if !b.GameOver() {
		return Empty
	}
	return b.whoseMove.Opposite()
}

// CheckJump reports whether mov is a capture sequence that can be played now.
// With allowPartial only the first hop is checked; otherwise every hop must be
// legal in turn and the chain must stop only where no further capture exists.
func (b *Board) CheckJump(mov *Move, allowPartial bool) bool {
	if mov == nil || !mov.jump {
		return false
	}
	if allowPartial {
		return b.legalMove(mov)
	}
	p := b.position
	for hop := mov; hop != nil; hop = hop.tail {
		if !hop.jump || !p.legalMove(hop) {
			return false
		}
		p.applyHop(hop, b.whoseMove)
	}
	return !p.jumpPossibleAt(mov.Final())
}

// Apply plays mov. Calling it with a move that fails LegalMove is a bug.
func (b *Board) Apply(mov *Move) {
	if !b.legalMove(mov) {
		panic(fmt.Sprintf("illegal move %v for %v on\n%v", mov, b.whoseMove, b))
	}
	b.history = append(b.history, record{move: mov, directions: b.directions})
	b.play(mov)
}

// Undo takes back the last move applied.
func (b *Board) Undo() error {
	n := len(b.history)
	if n == 0 {
		return ErrEmptyHistory
	}
	last := b.history[n-1]
	b.whoseMove = b.whoseMove.Opposite()
	mover := b.whoseMove
	if last.move.jump {
		b.undoJumps(last.move, mover)
	} else {
		b.set(last.move.from, mover)
		b.set(last.move.to, Empty)
	}
	b.directions = last.directions
	b.history = b.history[:n-1]
	return nil
}

func (b *Board) undoJumps(jump *Move, mover PieceColor) {
	if jump.tail != nil {
		b.undoJumps(jump.tail, mover)
	}
	b.set(jump.from, mover)
	b.set(jump.JumpedIndex(), mover.Opposite())
	b.set(jump.to, Empty)
}

// HistoryLen is the number of moves that can be undone.
func (b *Board) HistoryLen() int {
	return len(b.history)
}

// LastMove returns the most recent move, or nil.
func (b *Board) LastMove() *Move {
	if len(b.history) == 0 {
		return nil
	}
	return b.history[len(b.history)-1].move
}

// History returns the moves played, oldest first.
func (b *Board) History() []*Move {
	moves := make([]*Move, len(b.history))
	for i, r := range b.history {
		moves[i] = r.move
	}
	return moves
}

// Count returns how many squares hold c.
func (b *Board) Count(c PieceColor) int {
	return b.count(c)
}

// Layout serializes the pieces in the form SetPieces reads.
func (b *Board) Layout() string {
	var sb strings.Builder
	for _, s := range b.squares {
		sb.WriteString(s.ShortName())
	}
	return sb.String()
}

// String draws the board with row 5 on top, one indented line per row.
func (b *Board) String() string {
	rows := make([]string, 0, Side)
	for r := Side - 1; r >= 0; r-- {
		cells := make([]string, Side)
		for c := 0; c < Side; c++ {
			cells[c] = b.squares[r*Side+c].ShortName()
		}
		rows = append(rows, "  "+strings.Join(cells, " "))
	}
	return strings.Join(rows, "\n")
}
