package game

// position is the part of a Board that move generation reads: a value type, so
// hypothetical boards are plain copies.
type position struct {
	squares [NumSquares]PieceColor
	// Last horizontal step direction of the piece on each square: -1 left,
	// 1 right, 0 otherwise. Zero on every empty square.
	directions [NumSquares]int8
	whoseMove  PieceColor
}

func (p *position) get(k int) PieceColor {
	mustIndex(k)
	return p.squares[k]
}

func (p *position) set(k int, v PieceColor) {
	mustIndex(k)
	p.squares[k] = v
	if v == Empty {
		p.directions[k] = 0
	}
}

func (p *position) legalMove(mov *Move) bool {
	if mov == nil {
		return false
	}
	a, b := mov.from, mov.to
	if !ValidIndex(a) || !ValidIndex(b) || p.squares[b] != Empty || p.squares[a] != p.whoseMove {
		return false
	}
	if !connected(a, offset{b%Side - a%Side, b/Side - a/Side}, mov.jump) {
		return false
	}

	mover := p.squares[a]
	if mov.jump {
		return p.squares[mov.JumpedIndex()] == mover.Opposite()
	}
	if mov.tail != nil {
		return false
	}
	if mov.IsLeftMove() || mov.IsRightMove() {
		if (mov.IsLeftMove() && p.directions[a] == 1) || (mov.IsRightMove() && p.directions[a] == -1) {
			return false
		}
		// No sidestepping along the far row.
		if (mover == White && a/Side == Side-1) || (mover == Black && a/Side == 0) {
			return false
		}
		return true
	}
	if mover == White {
		return a < b
	}
	return a > b
}

// applyHop plays one hop of mov for mover without touching whoseMove.
func (p *position) applyHop(hop *Move, mover PieceColor) {
	p.set(hop.from, Empty)
	p.set(hop.to, mover)
	p.directions[hop.to] = 0
	switch {
	case hop.jump:
		p.set(hop.JumpedIndex(), Empty)
	case hop.IsRightMove():
		p.directions[hop.to] = 1
	case hop.IsLeftMove():
		p.directions[hop.to] = -1
	}
}

func (p *position) play(mov *Move) {
	mover := p.whoseMove
	for hop := mov; hop != nil; hop = hop.tail {
		p.applyHop(hop, mover)
	}
	p.whoseMove = mover.Opposite()
}

func (p *position) appendSteps(moves []*Move, k int) []*Move {
	for _, o := range stepOffsets(k) {
		to := shift(k, o)
		if to < 0 {
			continue
		}
		if mov := NewMove(k, to); p.legalMove(mov) {
			moves = append(moves, mov)
		}
	}
	return moves
}

// appendJumps adds every capture the piece on k can make. A hop that can be
// continued only appears extended by each of its continuations.
func (p *position) appendJumps(moves []*Move, k int) []*Move {
	for _, o := range jumpOffsets(k) {
		to := shift(k, o)
		if to < 0 {
			continue
		}
		hop := NewMove(k, to)
		if !p.legalMove(hop) {
			continue
		}

		next := *p
		next.applyHop(hop, p.whoseMove)
		tails := next.appendJumps(nil, to)
		if len(tails) == 0 {
			moves = append(moves, hop)
			continue
		}
		for _, tail := range tails {
			moves = append(moves, &Move{from: hop.from, to: hop.to, jump: true, tail: tail})
		}
	}
	return moves
}

func (p *position) jumpPossibleAt(k int) bool {
	if p.get(k) != p.whoseMove {
		return false
	}
	for _, o := range jumpOffsets(k) {
		if to := shift(k, o); to >= 0 && p.legalMove(NewMove(k, to)) {
			return true
		}
	}
	return false
}

func (p *position) jumpPossible() bool {
	for k := 0; k < NumSquares; k++ {
		if p.jumpPossibleAt(k) {
			return true
		}
	}
	return false
}

func (p *position) moves() []*Move {
	var moves []*Move
	if p.jumpPossible() {
		for k := 0; k < NumSquares; k++ {
			if p.squares[k] == p.whoseMove {
				moves = p.appendJumps(moves, k)
			}
		}
		return moves
	}
	for k := 0; k < NumSquares; k++ {
		if p.squares[k] == p.whoseMove {
			moves = p.appendSteps(moves, k)
		}
	}
	return moves
}

func (p *position) isMove() bool {
	for k := 0; k < NumSquares; k++ {
		if p.squares[k] != p.whoseMove {
			continue
		}
		if p.jumpPossibleAt(k) || len(p.appendSteps(nil, k)) > 0 {
			return true
		}
	}
	return false
}

func (p *position) count(c PieceColor) int {
	n := 0
	for _, s := range p.squares {
		if s == c {
			n++
		}
	}
	return n
}
