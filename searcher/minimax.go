package searcher

import (
	"qirkat/experiments/metrics"
	"qirkat/game"
	"qirkat/meta"
)

type Option func(m *Minimax)

// Minimax is a depth-limited minimax search with alpha-beta pruning. White
// maximizes and Black minimizes. At the horizon, and wherever the player to
// move is stuck, it looks one more ply ahead with the static evaluator.
type Minimax struct {
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:    meta.MAX_DEPTH,
		evaluate: game.MaterialBalance,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

// FindMove searches a private copy of board for player, who should be the
// player to move. Among equally good moves the first generated wins. The
// returned metric carries the root value even without WithMetrics.
func (m *Minimax) FindMove(board *game.Board, player game.PieceColor) (*game.Move, metrics.SearchMetric) {
	m.metrics.Start(m.depth)
	value, move := m.findMove(board.Fork(), m.depth, sense(player), -Infinity, Infinity)
	metric := m.metrics.Complete()
	metric.Value = value
	return move, metric
}

// findMove returns the value of board searched depth plies deep and the move
// reaching it. The move is nil at the horizon and when there is no move.
func (m *Minimax) findMove(board *game.Board, depth, sense, alpha, beta int) (int, *game.Move) {
	m.metrics.AddNode()
	moves := board.Moves()
	if depth == 0 || len(moves) == 0 {
		return m.simpleFindMove(board, moves, sense, alpha, beta), nil
	}

	best := sense * -Infinity
	var bestMove *game.Move
	for _, mov := range moves {
		next := board.Fork()
		next.Apply(mov)
		response, _ := m.findMove(next, depth-1, -sense, alpha, beta)

		if sense == 1 {
			if response > best {
				best, bestMove = response, mov
				alpha = max(alpha, response)
				if beta <= alpha {
					m.metrics.AddCutoff()
					break
				}
			}
		} else {
			if response < best {
				best, bestMove = response, mov
				beta = min(beta, response)
				if beta <= alpha {
					m.metrics.AddCutoff()
					break
				}
			}
		}
	}
	return best, bestMove
}

// simpleFindMove scores board as the best static value one ply ahead. A
// player with no moves has lost.
func (m *Minimax) simpleFindMove(board *game.Board, moves []*game.Move, sense, alpha, beta int) int {
	if len(moves) == 0 {
		return sense * -WinningValue
	}

	best := sense * -Infinity
	for _, mov := range moves {
		next := board.Fork()
		next.Apply(mov)
		m.metrics.AddLeaf()
		value := m.evaluate(next)

		if sense == 1 {
			if value >= best {
				best = value
				alpha = max(alpha, value)
				if beta <= alpha {
					m.metrics.AddCutoff()
					break
				}
			}
		} else {
			if value <= best {
				best = value
				beta = min(beta, value)
				if beta <= alpha {
					m.metrics.AddCutoff()
					break
				}
			}
		}
	}
	return best
}
