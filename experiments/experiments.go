package experiments

import (
	"fmt"
	"time"

	"qirkat/agent"
	"qirkat/engine"
	"qirkat/experiments/metrics"
	"qirkat/game"
	"qirkat/meta"

	"github.com/rs/zerolog/log"
)

const (
	NumGames   = 10 // Per matchup
	TimeBudget = 50 * time.Millisecond
)

var depthConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: agent.AI, Depth: 1}, // Baseline equivalent
	{ID: 2, Kind: agent.AI, Depth: 2},
	{ID: 3, Kind: agent.AI, Depth: 3},
	{ID: 4, Kind: agent.AI, Depth: 4},
	{ID: 5, Kind: agent.AI, Depth: meta.MAX_DEPTH},
}

// RunDepthExperiment pairs a one-ply baseline against deeper searches and
// stores the results under outDir. It returns the directory written to.
func RunDepthExperiment(numGames int, outDir string) string {
	if numGames <= 0 {
		numGames = NumGames
	}

	baseline := metrics.AgentConfig{ID: 0, Kind: agent.AI, Depth: 1}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range depthConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return runExperiment("depth", append(depthConfigs, baseline), matchUps, numGames, outDir)
}

var parallelConfigs = []metrics.AgentConfig{
	{ID: 1, Kind: agent.MCTS, Goroutines: 1, Duration: TimeBudget, Seed: meta.DEFAULT_SEED},
	{ID: 2, Kind: agent.MCTS, Goroutines: 4, Duration: TimeBudget, Seed: meta.DEFAULT_SEED},
	{ID: 3, Kind: agent.MCTS, Goroutines: 8, Duration: TimeBudget, Seed: meta.DEFAULT_SEED},
	{ID: 4, Kind: agent.MCTS, Goroutines: 16, Duration: TimeBudget, Seed: meta.DEFAULT_SEED},
}

// RunParallelizationExperiment pairs a minimax baseline against MCTS agents
// with the same time budget and more and more goroutines.
func RunParallelizationExperiment(numGames int, outDir string) string {
	if numGames <= 0 {
		numGames = NumGames
	}

	baseline := metrics.AgentConfig{ID: 0, Kind: agent.AI, Depth: 3}
	matchUps := [][]metrics.AgentConfig{}
	for _, config := range parallelConfigs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config})
	}

	return runExperiment("parallelization", append(parallelConfigs, baseline), matchUps, numGames, outDir)
}

func runExperiment(name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, numGames int, outDir string) string {
	setup := metrics.Setup{
		Name:      name,
		Matchups:  matchUps,
		NumGames:  numGames,
		StartTime: time.Now(),
	}

	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < numGames; i++ {
			log.Info().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(matchUps), i+1, numGames)

			// Alternate colors so neither agent always moves first
			white, black := config1, config2
			if i%2 == 1 {
				white, black = black, white
			}

			count++
			winner, gameMetric, moveMetrics := runGame(white, black, meta.DEFAULT_SEED+uint64(count))
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				White:      white.ID,
				Black:      black.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d", mi+1, len(matchUps))
	}

	setup.EndTime = time.Now()
	setup.Duration = setup.EndTime.Sub(setup.StartTime)
	log.Info().Msgf("completed %s experiment in %s", name, setup.Duration)

	return store(name, outDir, setup, configs, gameRecords, moveRecords)
}

func store(name, outDir string, setup metrics.Setup, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) string {
	writer, err := metrics.NewWriter(outDir, name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	// Store experiment metadata
	err = writer.WriteSetup(setup)
	if err != nil {
		panic(fmt.Sprintf("failed to store setup: %v", err))
	}
	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		panic(fmt.Sprintf("failed to store agent configs: %v", err))
	}
	log.Info().Msg("stored agent configs")

	// Store experiment results
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write game records: %v", err))
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write move records: %v", err))
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())

	return writer.Dir()
}

// runGame plays a single game from a random opening and returns the winner.
func runGame(white, black metrics.AgentConfig, seed uint64) (game.PieceColor, metrics.GameMetric, []metrics.MoveMetric) {
	board := openingBoard(seed)
	var e engine.Engine = engine.LocalEngine(createAgent(white, game.White), createAgent(black, game.Black), engine.WithBoard(board))
	return e.Run()
}

// openingBoard plays meta.OPENING_PLIES random moves so that repeated games
// between deterministic agents differ.
func openingBoard(seed uint64) *game.Board {
	board := game.NewBoard()
	opening := agent.NewRandomAgent(seed)
	for i := 0; i < meta.OPENING_PLIES && board.IsMove(); i++ {
		mov, _ := opening.FindMove(board.Snapshot())
		board.Apply(mov)
	}
	return board
}

func createAgent(config metrics.AgentConfig, color game.PieceColor) agent.Agent {
	a, err := agent.New(agent.Config{
		Kind:       config.Kind,
		Depth:      config.Depth,
		Seed:       config.Seed,
		Goroutines: config.Goroutines,
		Episodes:   config.Episodes,
		Duration:   config.Duration,
		Metrics:    true,
	}, color)
	if err != nil {
		panic(fmt.Sprintf("failed to create agent %d: %v", config.ID, err))
	}
	return a
}
