package agent

import (
	"qirkat/experiments/metrics"
	"qirkat/game"
	"qirkat/searcher"
)

type aiAgent struct {
	searcher searcher.Searcher
	color    game.PieceColor
}

// NewAIAgent returns an agent that plays the moves s finds for color. Both
// minimax and MCTS agents are AI agents.
func NewAIAgent(s searcher.Searcher, color game.PieceColor) Agent {
	return aiAgent{searcher: s, color: color}
}

func (a aiAgent) FindMove(view *game.Snapshot) (*game.Move, metrics.SearchMetric) {
	return a.searcher.FindMove(view.Board(), a.color)
}
