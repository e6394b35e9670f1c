package searcher

import (
	"qirkat/experiments/metrics"
	"qirkat/game"
)

type Searcher interface {
	// FindMove returns the best move for player on board, or nil if player has none
	FindMove(board *game.Board, player game.PieceColor) (*game.Move, metrics.SearchMetric)
}

// sense is the direction a player pushes the score: 1 for White, -1 for Black.
func sense(player game.PieceColor) int {
	if player == game.Black {
		return -1
	}
	return 1
}
