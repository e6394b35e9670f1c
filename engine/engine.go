package engine

import (
	"qirkat/experiments/metrics"
	"qirkat/game"
)

type Engine interface {
	// Run plays a game till there's a winner or a max number of turns is reached
	Run() (winner game.PieceColor, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
