// Package mcts is a Monte Carlo tree search for Qirkat using tree
// parallelization with virtual loss.
package mcts

import (
	"sync"
	"time"

	"qirkat/experiments/metrics"
	"qirkat/game"
	"qirkat/meta"
	"qirkat/searcher"

	"golang.org/x/exp/rand"
)

const MaxCutoff = 100 // Rollout length in plies

type Option func(m *MCTS)

type MCTS struct {
	goroutines int
	duration   time.Duration
	episodes   int
	cutoff     int
	seed       uint64
	evaluate   game.Evaluate
	metrics    metrics.Collector
}

func WithGoroutines(goroutines int) Option {
	return func(m *MCTS) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithCutoff(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

// WithSeed seeds the rollouts. A single goroutine running a fixed number of
// episodes always returns the same move for the same seed.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.seed = seed
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *MCTS) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		goroutines: 1,
		cutoff:     MaxCutoff,
		seed:       meta.DEFAULT_SEED,
		evaluate:   game.MaterialBalance,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

var _ searcher.Searcher = (*MCTS)(nil)

// FindMove builds a fresh tree for player on a private copy of board and
// returns the most visited move. The metric value is the estimated score of
// that move from White's point of view, in thousandths.
func (m *MCTS) FindMove(board *game.Board, player game.PieceColor) (*game.Move, metrics.SearchMetric) {
	b := board.Fork()
	root := newDecision(nil, player.Opposite(), b)

	m.metrics.Start(m.cutoff)
	if len(root.moves) == 0 {
		metric := m.metrics.Complete()
		metric.Value = -int(score(player)) * searcher.WinningValue
		return nil, metric
	}

	// Run simulations to collect statistics
	if m.episodes > 0 {
		m.iterate(root, b)
	} else {
		m.countdown(root, b)
	}
	metric := m.metrics.Complete()

	move, mean := root.bestMove()
	metric.Value = int(score(player) * mean * 1000)
	return move, metric
}

func (m *MCTS) iterate(root *decision, board *game.Board) {
	task := make(chan any, m.episodes)
	for i := 0; i < m.episodes; i++ {
		task <- nil
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func(rng *rand.Rand) {
			defer wg.Done()

			for range task {
				m.simulate(root, board, rng)
				m.metrics.AddEpisode()
			}
		}(m.rng(i))
	}

	wg.Wait()
}

func (m *MCTS) countdown(root *decision, board *game.Board) {
	done := make(chan any)

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		wg.Add(1)
		go func(rng *rand.Rand) {
			defer wg.Done()

			for {
				select {
				case <-done:
					return
				default:
					m.simulate(root, board, rng)
					m.metrics.AddEpisode()
				}
			}
		}(m.rng(i))
	}

	<-time.After(m.duration)
	close(done)
	wg.Wait()
}

func (m *MCTS) rng(worker int) *rand.Rand {
	return rand.New(rand.NewSource(m.seed + uint64(worker)))
}

func (m *MCTS) simulate(root *decision, board *game.Board, rng *rand.Rand) {
	b := board.Fork()
	newNode := selectThenExpand(root, b)
	value := rollout(b, m.cutoff, m.evaluate, rng, m.metrics)
	backup(newNode, func(player game.PieceColor) float64 {
		return score(player) * value
	})
}

func selectThenExpand(root *decision, board *game.Board) *decision {
	child, selected := root.selectOrExpand(board)
	for selected {
		child, selected = child.selectOrExpand(board)
	}
	return child
}

// rollout plays random moves on board and returns the outcome from White's
// point of view, between Loss and Win.
func rollout(board *game.Board, cutoff int, evaluate game.Evaluate, rng *rand.Rand, metrics metrics.Collector) float64 {
	depth := 0
	moves := board.Moves()
	// Rollout till game over or for cutoff number of moves
	for len(moves) > 0 && depth < cutoff {
		board.Apply(moves[rng.Intn(len(moves))]) // Random rollout policy
		moves = board.Moves()
		depth++
	}

	if len(moves) == 0 { // Game over before cutoff
		metrics.AddFullPlayout()
		return score(board.Winner()) * Win
	}

	// At cutoff, scale the evaluation so it never outweighs a real win
	value := float64(evaluate(board)) / game.NumSquares
	return max(Loss, min(Win, value))
}

func backup(newNode *decision, reward func(game.PieceColor) float64) {
	node := newNode
	for node != nil {
		node = node.backup(reward)
	}
}

// score is 1 for White and -1 for Black.
func score(player game.PieceColor) float64 {
	if player == game.Black {
		return -1
	}
	return 1
}
