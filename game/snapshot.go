package game

// Snapshot is a read-only copy of a Board. It does not follow the board it
// was taken from; the owner calls Refresh after changing that board.
type Snapshot struct {
	board Board
}

// Snapshot returns a read-only copy of b.
func (b *Board) Snapshot() *Snapshot {
	s := &Snapshot{}
	s.Refresh(b)
	return s
}

// Refresh makes s a copy of the current state of b.
func (s *Snapshot) Refresh(b *Board) {
	s.board = *b.Copy()
}

// Board returns a mutable copy of the snapshot's position and history.
func (s *Snapshot) Board() *Board {
	return s.board.Copy()
}

func (s *Snapshot) Get(k int) PieceColor               { return s.board.Get(k) }
func (s *Snapshot) GetSquare(col, row byte) PieceColor { return s.board.GetSquare(col, row) }
func (s *Snapshot) Direction(k int) int                { return s.board.Direction(k) }
func (s *Snapshot) WhoseMove() PieceColor              { return s.board.WhoseMove() }
func (s *Snapshot) LegalMove(mov *Move) bool           { return s.board.LegalMove(mov) }
func (s *Snapshot) Moves() []*Move                     { return s.board.Moves() }
func (s *Snapshot) JumpPossible() bool                 { return s.board.JumpPossible() }
func (s *Snapshot) IsMove() bool                       { return s.board.IsMove() }
func (s *Snapshot) GameOver() bool                     { return s.board.GameOver() }
func (s *Snapshot) Winner() PieceColor                 { return s.board.Winner() }
func (s *Snapshot) HistoryLen() int                    { return s.board.HistoryLen() }
func (s *Snapshot) LastMove() *Move                    { return s.board.LastMove() }
func (s *Snapshot) Count(c PieceColor) int             { return s.board.Count(c) }
func (s *Snapshot) Layout() string                     { return s.board.Layout() }
func (s *Snapshot) String() string                     { return s.board.String() }
