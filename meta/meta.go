// meta/meta.go
package meta

// MAX_DEPTH is the default minimax search depth in plies.
const MAX_DEPTH = 5

// MAX_TURNS stops a game that nobody is winning.
const MAX_TURNS = 200

// DEFAULT_SEED seeds random agents when no seed is given.
const DEFAULT_SEED = 2018

// OPENING_PLIES random moves start each experiment game so repeated games differ.
const OPENING_PLIES = 4

// MCTS_EPISODES is the default number of MCTS simulations per move.
const MCTS_EPISODES = 2000
