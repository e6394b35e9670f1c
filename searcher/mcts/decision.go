package mcts

import (
	"sync"

	"qirkat/game"
)

// decision is a search tree node for one position. Its statistics are from the
// point of view of player, who made the move leading to it, so a parent picks
// the child with the highest score.
type decision struct {
	sync.RWMutex
	parent   *decision
	player   game.PieceColor
	moves    []*game.Move // Legal moves of the player to move, in generation order
	children []*decision  // children[i] follows moves[i]
	rewards  float64
	visits   float64
}

func newDecision(parent *decision, player game.PieceColor, board *game.Board) *decision {
	moves := board.Moves()
	return &decision{
		parent:   parent,
		player:   player,
		moves:    moves,
		children: make([]*decision, 0, len(moves)),
	}
}

// selectOrExpand descends one level and plays the move taken on board. It
// reports whether the child was selected among existing ones, in which case
// the descent should continue. A terminal node returns itself.
func (d *decision) selectOrExpand(board *game.Board) (*decision, bool) {
	d.Lock()
	defer d.Unlock()

	if len(d.moves) == 0 { // Terminal node
		return d, false
	}

	if len(d.moves) > len(d.children) { // Expandable node
		move := d.moves[len(d.children)]
		mover := board.WhoseMove()
		board.Apply(move)
		child := newDecision(d, mover, board)
		child.applyLoss()
		d.children = append(d.children, child)
		return child, false
	}

	// Fully expanded node
	ith := d.pickChild()
	child := d.children[ith]
	board.Apply(d.moves[ith])
	child.applyLoss()
	return child, true
}

func (d *decision) pickChild() int {
	// Backups of concurrent episodes may not have reached the root yet
	policy := newUCT(CSquared, max(d.visits, 1))

	maxIndex := 0
	maxScore := d.children[0].score(policy)
	for i, child := range d.children[1:] {
		if score := child.score(policy); score > maxScore {
			maxScore = score
			maxIndex = i + 1
		}
	}
	return maxIndex
}

// applyLoss counts a visit in progress as a loss so concurrent episodes
// spread over the tree.
func (d *decision) applyLoss() {
	d.Lock()
	defer d.Unlock()

	d.rewards += Loss
	d.visits++
}

func (d *decision) reverseLoss() {
	d.rewards -= Loss
	d.visits--
}

func (d *decision) score(policy *uct) float64 {
	d.RLock()
	defer d.RUnlock()

	return policy.evaluate(d.rewards, d.visits)
}

// backup records the reward of an episode for this node's player and returns
// the parent.
func (d *decision) backup(reward func(game.PieceColor) float64) *decision {
	d.Lock()
	defer d.Unlock()

	if d.parent != nil { // Non-root node
		d.reverseLoss()
	}

	d.rewards += reward(d.player)
	d.visits++

	return d.parent
}

// bestMove returns the most visited move and its mean reward for the player
// to move here. Ties go to the move generated first.
func (d *decision) bestMove() (*game.Move, float64) {
	d.RLock()
	defer d.RUnlock()

	if len(d.children) == 0 {
		panic("node has no children")
	}

	bestIndex := 0
	maxVisits := -1.0
	mean := 0.0
	for i, child := range d.children {
		child.RLock()
		if child.visits > maxVisits {
			maxVisits = child.visits
			bestIndex = i
			mean = child.rewards / child.visits
		}
		child.RUnlock()
	}
	return d.moves[bestIndex], mean
}
