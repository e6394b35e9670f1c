package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

const initBoard = "  b b b b b\n  b b b b b\n  b b - w w\n  w w w w w\n  w w w w w"

var game1 = []string{
	"c2-c3", "c4-c2",
	"c1-c3", "a3-c1",
	"c3-a3", "c5-c4",
	"a3-c5-c3",
}

const game1Board = "  b b - b b\n  b - - b b\n  - - w w w\n  w - - w w\n  w w b w w"

func makeMoves(t *testing.T, b *Board, moves []string) {
	t.Helper()
	for _, s := range moves {
		mov, err := ParseMove(s)
		require.NoError(t, err, "Move %s should parse", s)
		require.True(t, b.LegalMove(mov), "Move %s should be legal on\n%v", s, b)
		b.Apply(mov)
	}
}

type boardState struct {
	layout     string
	directions [NumSquares]int
	whoseMove  PieceColor
	history    int
}

func stateOf(b *Board) boardState {
	s := boardState{layout: b.Layout(), whoseMove: b.WhoseMove(), history: b.HistoryLen()}
	for k := 0; k < NumSquares; k++ {
		s.directions[k] = b.Direction(k)
	}
	return s
}

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	require.Equal(t, initBoard, b.String(), "Initial board should render the standard layout")
	require.Equal(t, White, b.WhoseMove(), "White should move first")
	require.Equal(t, 12, b.Count(White), "White should start with two and a half rows")
	require.Equal(t, 12, b.Count(Black), "Black should start with two and a half rows")
	require.Equal(t, 1, b.Count(Empty), "Only one square should start empty")
	require.Equal(t, Empty, b.GetSquare('c', '3'), "The center square should start empty")
	require.Equal(t, 0, b.HistoryLen(), "A new board has no history")
	require.False(t, b.GameOver(), "The game is not over at the start")
}

func TestSetPieces(t *testing.T) {
	t.Run("loading a layout with whitespace", func(t *testing.T) {
		b := NewBoard()
		err := b.SetPieces(" -----\n  --bw-\n  -bb--\n  -----\n  -----", Black)

		require.NoError(t, err)
		require.Equal(t, Black, b.WhoseMove(), "Declared side should be to move")
		require.Equal(t, "-------bw--bb------------", b.Layout(), "Layout should round trip")
		require.Equal(t, White, b.GetSquare('d', '2'))
		require.Equal(t, Black, b.GetSquare('c', '2'))
	})

	t.Run("loading clears history and direction markers", func(t *testing.T) {
		b := NewBoard()
		makeMoves(t, b, []string{"d3-c3"})
		require.Equal(t, -1, b.Direction(Index('c', '3')), "A left step should be recorded")

		require.NoError(t, b.SetPieces(b.Layout(), White))

		require.Equal(t, 0, b.Direction(Index('c', '3')), "Direction markers should be reset")
		require.Equal(t, 0, b.HistoryLen(), "History should be cleared")
		require.ErrorIs(t, b.Undo(), ErrEmptyHistory)
	})

	t.Run("rejecting bad layouts without changing the board", func(t *testing.T) {
		bad := map[string]string{
			"too short":       "wwwww",
			"too long":        InitialLayout + "w",
			"bad character":   "wwwwwwwwwwbbxwwbbbbbbbbbb",
			"uppercase piece": "WWWWWWWWWWBB-WWBBBBBBBBBB",
		}
		for name, layout := range bad {
			b := NewBoard()
			before := stateOf(b)

			err := b.SetPieces(layout, White)

			require.ErrorIs(t, err, ErrInvalidLayout, "Layout %q should fail", name)
			require.Equal(t, before, stateOf(b), "Board should be unchanged after %q", name)
		}
	})

	t.Run("rejecting an empty side to move", func(t *testing.T) {
		b := NewBoard()
		before := stateOf(b)

		err := b.SetPieces(InitialLayout, Empty)

		require.ErrorIs(t, err, ErrInvalidColor)
		require.Equal(t, before, stateOf(b), "Board should be unchanged")
	})
}

func TestApply(t *testing.T) {
	t.Run("playing a recorded game", func(t *testing.T) {
		b := NewBoard()
		makeMoves(t, b, game1)

		require.Equal(t, game1Board, b.String())
		require.Equal(t, Black, b.WhoseMove(), "Seven moves leave Black to move")
		require.Equal(t, len(game1), b.HistoryLen())
		require.Equal(t, "a3-c5-c3", b.LastMove().String())
	})

	t.Run("recording horizontal steps", func(t *testing.T) {
		b := NewBoard()
		require.NoError(t, b.SetPieces("----- --w-- ----- ----- ----b", White))

		makeMoves(t, b, []string{"c2-d2"})

		require.Equal(t, 1, b.Direction(Index('d', '2')), "Right step should mark the landing square")
		require.Equal(t, 0, b.Direction(Index('c', '2')), "The vacated square should carry no marker")
	})

	t.Run("panicking on an illegal move", func(t *testing.T) {
		b := NewBoard()
		mov, err := ParseMove("c2-c4")
		require.NoError(t, err)

		require.Panics(t, func() { b.Apply(mov) }, "Applying an illegal move is a caller bug")
		require.Panics(t, func() { b.Apply(nil) }, "Applying no move is a caller bug")
	})
}

func TestUndo(t *testing.T) {
	t.Run("undoing with no history", func(t *testing.T) {
		b := NewBoard()
		require.ErrorIs(t, b.Undo(), ErrEmptyHistory)
	})

	t.Run("undoing a whole game", func(t *testing.T) {
		b := NewBoard()
		makeMoves(t, b, game1)

		for i := 0; i < len(game1); i++ {
			require.NoError(t, b.Undo())
		}

		require.Equal(t, initBoard, b.String(), "Undoing every move should restore the start")
		require.Equal(t, White, b.WhoseMove())
		require.ErrorIs(t, b.Undo(), ErrEmptyHistory)

		makeMoves(t, b, game1)
		require.Equal(t, game1Board, b.String(), "The game should replay after undo")
	})

	t.Run("restoring direction markers", func(t *testing.T) {
		b := NewBoard()
		require.NoError(t, b.SetPieces("----- --w-- ----- ----- ----b", White))
		makeMoves(t, b, []string{"c2-d2", "e5-e4"})
		before := stateOf(b)

		makeMoves(t, b, []string{"d2-d3"})
		require.NoError(t, b.Undo())

		require.Equal(t, before, stateOf(b), "Undo should bring back the right step marker on d2")
		require.Equal(t, 1, b.Direction(Index('d', '2')))
	})
}

func TestApplyUndoRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for g := 0; g < 20; g++ {
		b := NewBoard()
		for ply := 0; ply < 80 && b.IsMove(); ply++ {
			moves := b.Moves()
			require.NotEmpty(t, moves, "IsMove and Moves should agree on\n%v", b)

			jumps := b.JumpPossible()
			for _, mov := range moves {
				require.Equal(t, jumps, mov.IsJump(), "Move %s should be a jump iff a jump exists", mov)
				require.True(t, ValidIndex(mov.ToIndex()), "Move %s should stay on the board", mov)
				require.Equal(t, Empty, b.Get(mov.ToIndex()), "Move %s should land on an empty square", mov)
				if mov.IsLeftMove() {
					require.NotEqual(t, 1, b.Direction(mov.FromIndex()), "Move %s reverses a right step", mov)
				}
				if mov.IsRightMove() {
					require.NotEqual(t, -1, b.Direction(mov.FromIndex()), "Move %s reverses a left step", mov)
				}
				if mov.IsJump() {
					require.True(t, b.CheckJump(mov, false), "Capture %s should be complete", mov)
				}

				before := stateOf(b)
				b.Apply(mov)
				require.Equal(t, NumSquares, b.Count(White)+b.Count(Black)+b.Count(Empty))
				require.NoError(t, b.Undo())
				require.Equal(t, before, stateOf(b), "Apply then undo of %s should restore the board", mov)
			}

			b.Apply(moves[rng.Intn(len(moves))])
		}
	}
}

func TestGameOver(t *testing.T) {
	t.Run("player stuck on the far row", func(t *testing.T) {
		b := NewBoard()
		require.NoError(t, b.SetPieces("----b ----- ----- ----- -w---", White))

		require.True(t, b.GameOver(), "White can neither advance nor sidestep on row 5")
		require.False(t, b.IsMove())
		require.Empty(t, b.Moves())
		require.Equal(t, Black, b.Winner())
	})

	t.Run("player without pieces", func(t *testing.T) {
		b := NewBoard()
		require.NoError(t, b.SetPieces("w---- ----- ----- ----- -----", Black))

		require.True(t, b.GameOver())
		require.Equal(t, White, b.Winner())
	})

	t.Run("game in progress", func(t *testing.T) {
		require.Equal(t, Empty, NewBoard().Winner(), "Nobody has won yet")
	})
}

func TestCopy(t *testing.T) {
	b := NewBoard()
	makeMoves(t, b, game1[:2])

	c := b.Copy()
	f := b.Fork()
	makeMoves(t, c, game1[2:3])

	require.Equal(t, 2, b.HistoryLen(), "Copy should not share history")
	require.NotEqual(t, b.Layout(), c.Layout(), "Copy should not share squares")
	require.Equal(t, b.Layout(), f.Layout(), "Fork should keep the position")
	require.Equal(t, 0, f.HistoryLen(), "Fork should drop the history")
	require.ErrorIs(t, f.Undo(), ErrEmptyHistory)
}

func TestGetPanicsOffBoard(t *testing.T) {
	b := NewBoard()
	require.Panics(t, func() { b.Get(25) })
	require.Panics(t, func() { b.Get(-1) })
	require.Panics(t, func() { b.GetSquare('f', '1') })
	require.Panics(t, func() { b.Direction(30) })
}
