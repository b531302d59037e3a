package engine

import (
	"time"

	"mcts/game"
	"mcts/searcher"
)

const MaxMoves = 10000

// Agent chooses the move to play in a position.
type Agent[S any, A comparable] interface {
	FindMove(state S) (A, searcher.SearchMetrics, error)
}

type MoveMetric struct {
	Step   int
	Player game.Player
	searcher.SearchMetrics
}

type GameMetric struct {
	StartingPlayer game.Player
	Winner         game.Player
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// MCTSAgent plays the move picked by a tree search.
type MCTSAgent[S any, A comparable] struct {
	Searcher *searcher.MCTS[S, A]
}

func NewMCTSAgent[S any, A comparable](adapter game.Adapter[S, A], options ...searcher.Option) *MCTSAgent[S, A] {
	return &MCTSAgent[S, A]{Searcher: searcher.NewMCTS(adapter, options...)}
}

func (a *MCTSAgent[S, A]) FindMove(state S) (A, searcher.SearchMetrics, error) {
	move, err := a.Searcher.Think(state)
	if err != nil {
		return move, searcher.SearchMetrics{}, err
	}
	return move, a.Searcher.LastMetrics(), nil
}
