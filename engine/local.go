package engine

import (
	"time"

	"qirkat/agent"
	"qirkat/experiments/metrics"
	"qirkat/game"
	"qirkat/meta"
	"qirkat/utils"

	"github.com/rs/zerolog/log"
)

type Option func(e *Local)

// Local plays a game between two agents in this process. Board is the
// authoritative game; agents only see a snapshot of it.
type Local struct {
	Board    *game.Board
	view     *game.Snapshot
	agents   map[game.PieceColor]agent.Agent
	maxTurns int
}

// WithBoard starts the game from b instead of the initial position.
func WithBoard(b *game.Board) Option {
	return func(e *Local) {
		if b != nil {
			e.Board = b
		}
	}
}

func WithMaxTurns(maxTurns int) Option {
	return func(e *Local) {
		if maxTurns > 0 {
			e.maxTurns = maxTurns
		}
	}
}

func LocalEngine(white, black agent.Agent, options ...Option) *Local {
	if white == nil || black == nil {
		panic("need an agent for each player")
	}

	e := &Local{
		Board:    game.NewBoard(),
		agents:   map[game.PieceColor]agent.Agent{game.White: white, game.Black: black},
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	e.view = e.Board.Snapshot()
	return e
}

// View is what the agents see of the game.
func (e *Local) View() *game.Snapshot {
	return e.view
}

// Run executes the entire game loop until a player is stuck, a player gives
// up or the turn limit is reached. The winner is Empty in the last case.
func (e *Local) Run() (game.PieceColor, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.Board.WhoseMove().String(),
		StartTime:      time.Now(),
	}
	moveMetrics := []metrics.MoveMetric{}

	log.Info().Msgf("%s is starting", e.Board.WhoseMove())

	winner := game.Empty
	turn := 1
	for e.Board.IsMove() && turn <= e.maxTurns {
		player := e.Board.WhoseMove()

		mov, searchMetric := e.agents[player].FindMove(e.view)
		if mov == nil {
			log.Info().Msgf("%s gives up.", player)
			winner = player.Opposite()
			break
		}

		moves := e.Board.Moves()
		if utils.FindIndexFunc(moves, mov.Equal) < 0 {
			log.Warn().Msgf("%s chose illegal move %s, playing %s instead", player, mov, moves[0])
			mov = moves[0]
		}

		e.Board.Apply(mov)
		e.view.Refresh(e.Board)

		log.Info().Msgf("%s moves %s.", player, mov)
		log.Debug().Msgf("%s search: %+v", player, searchMetric)

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       player.String(),
			Move:         mov.String(),
			SearchMetric: searchMetric,
		})
		turn++
	}

	if e.Board.GameOver() {
		winner = e.Board.Winner()
	}
	if winner != game.Empty {
		log.Info().Msgf("%s wins.", winner)
	} else {
		log.Info().Msgf("stopped after %d turns (no winner yet)", e.maxTurns)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	if winner != game.Empty {
		gameMetric.Winner = winner.String()
	}
	return winner, gameMetric, moveMetrics
}
