package agent

import (
	"fmt"
	"io"
	"os"
	"time"

	"qirkat/experiments/metrics"
	"qirkat/game"
	"qirkat/meta"
	"qirkat/searcher"
	"qirkat/searcher/mcts"
	"qirkat/utils"
)

type Agent interface {
	// FindMove returns the move to play from view and performance metrics (if collected).
	// A nil move means the agent gives up its turn, ending the game.
	FindMove(view *game.Snapshot) (*game.Move, metrics.SearchMetric)
}

const (
	AI     = "ai"
	MCTS   = "mcts"
	Random = "random"
	Manual = "manual"
)

var Kinds = []string{AI, MCTS, Random, Manual}

type Config struct {
	Kind       string
	Depth      int           // AI only, meta.MAX_DEPTH if not positive
	Seed       uint64        // Random and MCTS
	Goroutines int           // MCTS only
	Episodes   int           // MCTS only, meta.MCTS_EPISODES if neither this nor Duration is set
	Duration   time.Duration // MCTS only, time budget per move
	Metrics    bool          // AI and MCTS, collect search metrics
	Input      io.Reader
	Output     io.Writer
}

// New creates the agent described by cfg to play color.
func New(cfg Config, color game.PieceColor) (Agent, error) {
	if !color.IsPiece() {
		return nil, fmt.Errorf("failed to create agent: %w", game.ErrInvalidColor)
	}
	if utils.FindIndex(Kinds, cfg.Kind) < 0 {
		return nil, fmt.Errorf("failed to create agent: unknown kind %q", cfg.Kind)
	}

	switch cfg.Kind {
	case AI:
		options := []searcher.Option{searcher.WithDepth(cfg.Depth)}
		if cfg.Metrics {
			options = append(options, searcher.WithMetrics())
		}
		return NewAIAgent(searcher.NewMinimax(options...), color), nil
	case MCTS:
		return NewAIAgent(newMCTS(cfg), color), nil
	case Random:
		return NewRandomAgent(cfg.Seed), nil
	default:
		input, output := cfg.Input, cfg.Output
		if input == nil {
			input = os.Stdin
		}
		if output == nil {
			output = os.Stdout
		}
		return NewManualAgent(color, input, output), nil
	}
}

// DefaultConfig is an AI agent searching meta.MAX_DEPTH plies.
func DefaultConfig() Config {
	return Config{Kind: AI, Depth: meta.MAX_DEPTH, Seed: meta.DEFAULT_SEED}
}

func newMCTS(cfg Config) *mcts.MCTS {
	options := []mcts.Option{
		mcts.WithGoroutines(cfg.Goroutines),
		mcts.WithSeed(cfg.Seed),
	}

	if cfg.Episodes > 0 {
		options = append(options, mcts.WithEpisodes(cfg.Episodes))
	} else if cfg.Duration > 0 {
		options = append(options, mcts.WithDuration(cfg.Duration))
	} else {
		options = append(options, mcts.WithEpisodes(meta.MCTS_EPISODES))
	}
	if cfg.Metrics {
		options = append(options, mcts.WithMetrics())
	}
	return mcts.NewMCTS(options...)
}
