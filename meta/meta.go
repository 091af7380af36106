// meta/meta.go
package meta

// GO_ROUTINES defines the number of goroutines to use.
const GO_ROUTINES = 4

// EPISODES defines the number of episodes for MCTS.
const EPISODES = 1000

// WITH_CUTOFF defines the cutoff value for MCTS.
const WITH_CUTOFF = 20

// MAX_TURNS bounds a game loop. 60 placements plus passes always fit.
const MAX_TURNS = 128

// NUM_GAMES defines the number of games per experiment matchup.
const NUM_GAMES = 10

// PARALLEL_GAMES defines how many experiment games run at once.
const PARALLEL_GAMES = 2

// TEMPERATURE defines the sampling temperature of training agents.
const TEMPERATURE = 1.0

// EXPERIMENTS_DIR is where experiment records are written.
const EXPERIMENTS_DIR = "experiments/results"
