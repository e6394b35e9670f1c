package mcts

import "math"

// CSquared is the squared exploration constant of the tree policy.
const CSquared = 2.0

// Rewards bound a Qirkat rollout from the view of the player who moved:
// Win for leaving the opponent without a move, Loss for being left without
// one. Rollouts cut off by the ply limit score in between.
const (
	Win  = 1.0
	Loss = -Win
)

// uct ranks the children of one decision node. Children are positions the
// node's player can reach with one Qirkat move, and each child's rewards are
// kept for the player who made that move, so the highest score is the move
// that player would pick.
type uct struct {
	numerator float64
}

// newUCT fixes the exploration numerator for a parent visited parentVisits
// times.
func newUCT(cSquared float64, parentVisits float64) *uct {
	if parentVisits == 0 {
		panic("parent visits cannot be 0")
	}
	return &uct{numerator: cSquared * math.Log(parentVisits)}
}

// evaluate returns rewards/visits + sqrt(c^2*ln(N)/visits) for a child.
func (u uct) evaluate(rewards float64, visits float64) float64 {
	if visits == 0 {
		panic("child visits cannot be 0")
	}
	return rewards/visits + math.Sqrt(u.numerator/visits)
}
