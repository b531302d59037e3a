package metrics

import (
	"time"

	"mcts/engine"
	"mcts/game"
	"mcts/searcher"
)

// AgentConfig describes how one searcher in an experiment is built.
type AgentConfig struct {
	ID          int
	Simulations int
	Duration    time.Duration
	Exploration float64
	Policy      searcher.FinalPolicy
}

func (c AgentConfig) Options() []searcher.Option {
	options := []searcher.Option{
		searcher.WithExploration(c.Exploration),
		searcher.WithFinalPolicy(c.Policy),
		searcher.WithMetrics(),
	}
	if c.Simulations > 0 {
		options = append(options, searcher.WithSimulations(c.Simulations))
	}
	if c.Duration > 0 {
		options = append(options, searcher.WithDuration(c.Duration))
	}
	return options
}

// NoWinner is the WinnerAgent of a drawn game.
const NoWinner = -1

type GameRecord struct {
	ID          int
	Agent1      int         // AgentConfig.ID
	Agent2      int         // AgentConfig.ID
	Agent1Seat  game.Player // Seat played by Agent1
	WinnerAgent int         // AgentConfig.ID or NoWinner
	engine.GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	engine.MoveMetric
}
