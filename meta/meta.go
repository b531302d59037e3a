// meta/meta.go
package meta

// SIMULATIONS defines the default number of simulations per search.
const SIMULATIONS = 1000

// EXPLORATION defines the default UCB1 exploration constant.
const EXPLORATION = 2.0

// GO_ROUTINES defines the number of experiment games played at once.
const GO_ROUTINES = 8

// GAMES defines the number of games per experiment matchup.
const GAMES = 30
