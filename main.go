package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"qirkat/agent"
	"qirkat/engine"
	"qirkat/experiments"
	"qirkat/game"
	"qirkat/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	kinds := strings.Join(agent.Kinds, "|")
	white := flag.String("white", agent.Manual, "White player: "+kinds)
	black := flag.String("black", agent.AI, "Black player: "+kinds)
	depth := flag.Int("depth", meta.MAX_DEPTH, "Search depth of AI players, in plies")
	seed := flag.Uint64("seed", meta.DEFAULT_SEED, "Seed of random and MCTS players")
	layout := flag.String("layout", "", "Starting position, 25 squares of w, b or - from a1 to e5 (default initial position)")
	next := flag.String("next", "white", "Player to move first when -layout is given")
	goroutines := flag.Int("goroutines", 1, "Number of goroutines for parallel MCTS playouts")
	episodes := flag.Int("episodes", meta.MCTS_EPISODES, "Number of MCTS playouts per move")
	duration := flag.Duration("duration", 0, "Duration of MCTS playouts per move, instead of -episodes")
	maxTurns := flag.Int("turns", meta.MAX_TURNS, "Stop the game after this many moves")
	experiment := flag.String("experiment", "", "Run an experiment instead of a game: depth|parallelization")
	numGames := flag.Int("games", experiments.NumGames, "Games per matchup in an experiment")
	out := flag.String("out", "results", "Directory for experiment results")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid log level %q: %v\n", *logLevel, err)
		os.Exit(2)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	switch *experiment {
	case "":
	case "depth":
		dir := experiments.RunDepthExperiment(*numGames, *out)
		log.Info().Msgf("results stored in %s", dir)
		return
	case "parallelization":
		dir := experiments.RunParallelizationExperiment(*numGames, *out)
		log.Info().Msgf("results stored in %s", dir)
		return
	default:
		log.Fatal().Msgf("unknown experiment %q", *experiment)
	}

	board, err := setupBoard(*layout, *next)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up board")
	}

	players := map[game.PieceColor]agent.Agent{}
	for color, kind := range map[game.PieceColor]string{game.White: *white, game.Black: *black} {
		cfg := agent.DefaultConfig()
		cfg.Kind, cfg.Depth, cfg.Seed = kind, *depth, *seed
		cfg.Goroutines, cfg.Episodes = *goroutines, *episodes
		if *duration > 0 {
			cfg.Episodes, cfg.Duration = 0, *duration
		}
		cfg.Metrics = level <= zerolog.DebugLevel
		if color == game.Black {
			cfg.Seed++ // Two random players should not mirror each other
		}
		a, err := agent.New(cfg, color)
		if err != nil {
			log.Fatal().Err(err).Msgf("failed to create %s player", color)
		}
		players[color] = a
	}

	e := engine.LocalEngine(players[game.White], players[game.Black], engine.WithBoard(board), engine.WithMaxTurns(*maxTurns))
	fmt.Println(e.Board)
	winner, gameMetric, _ := e.Run()
	fmt.Println(e.Board)
	if winner == game.Empty {
		fmt.Printf("No winner after %d moves.\n", gameMetric.TotalMoves)
		return
	}
	fmt.Printf("%s wins.\n", winner)
}

func setupBoard(layout, next string) (*game.Board, error) {
	board := game.NewBoard()
	if layout == "" {
		return board, nil
	}
	color, err := game.ParseColor(next)
	if err != nil {
		return nil, err
	}
	if err := board.SetPieces(layout, color); err != nil {
		return nil, err
	}
	return board, nil
}
