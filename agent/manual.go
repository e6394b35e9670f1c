package agent

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"qirkat/experiments/metrics"
	"qirkat/game"
	"qirkat/utils"

	"github.com/rs/zerolog/log"
)

type manualAgent struct {
	color   game.PieceColor
	scanner *bufio.Scanner
	output  io.Writer
}

// NewManualAgent returns an agent that reads moves such as "c2-c3" or
// "a3-c5-c3" from input, one per line, prompting on output.
func NewManualAgent(color game.PieceColor, input io.Reader, output io.Writer) Agent {
	return &manualAgent{
		color:   color,
		scanner: bufio.NewScanner(input),
		output:  output,
	}
}

// FindMove prompts until a legal move is entered. It returns nil when it is
// not its turn or once the input is exhausted.
func (a *manualAgent) FindMove(view *game.Snapshot) (*game.Move, metrics.SearchMetric) {
	if view.WhoseMove() != a.color {
		return nil, metrics.SearchMetric{}
	}

	moves := view.Moves()
	for {
		fmt.Fprintf(a.output, "%s: ", a.color)
		if !a.scanner.Scan() {
			if err := a.scanner.Err(); err != nil {
				log.Error().Err(err).Msgf("failed to read %s move", a.color)
			}
			return nil, metrics.SearchMetric{}
		}

		line := strings.TrimSpace(a.scanner.Text())
		if line == "" {
			continue
		}
		mov, err := game.ParseMove(line)
		if err != nil {
			log.Warn().Err(err).Msgf("cannot read %q", line)
			continue
		}
		i := utils.FindIndexFunc(moves, mov.Equal)
		if i < 0 {
			log.Warn().Msgf("%s is not a legal move", mov)
			continue
		}
		return moves[i], metrics.SearchMetric{}
	}
}
