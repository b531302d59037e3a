package engine

import (
	"errors"
	"fmt"
	"time"

	"mcts/game"

	"github.com/rs/zerolog/log"
)

type Engine[S any, A comparable] struct {
	State    S
	adapter  game.Adapter[S, A]
	agents   map[game.Player]Agent[S, A]
	maxMoves int
}

func LocalEngine[S any, A comparable](adapter game.Adapter[S, A], state S, agents map[game.Player]Agent[S, A]) *Engine[S, A] {
	if len(agents) < 2 {
		panic("need at least two agents")
	}

	return &Engine[S, A]{
		State:    state,
		adapter:  adapter,
		agents:   agents,
		maxMoves: MaxMoves,
	}
}

// Run plays the game till it is over, nobody can move or MaxMoves is reached.
func (e *Engine[S, A]) Run() (game.Outcome, GameMetric, []MoveMetric, error) {
	gameMetric := GameMetric{
		StartingPlayer: e.adapter.CurrentPlayer(e.State),
		StartTime:      time.Now(),
	}
	var moveMetrics []MoveMetric

	log.Info().Msgf("player %s is starting", gameMetric.StartingPlayer)

	step := 1
	for ; !e.adapter.IsEnded(e.State) && step <= e.maxMoves; step++ {
		player := e.adapter.CurrentPlayer(e.State)
		agent, ok := e.agents[player]
		if !ok {
			return game.Outcome{}, gameMetric, moveMetrics, fmt.Errorf("no agent for player %s", player)
		}

		legal := e.adapter.LegalActions(e.State)
		if len(legal) == 0 {
			log.Warn().Msgf("player %s has no legal move", player)
			break
		}

		move, metric, err := agent.FindMove(e.State)
		if err != nil {
			return game.Outcome{}, gameMetric, moveMetrics, fmt.Errorf("player %s finding move: %w", player, err)
		}

		next, err := e.adapter.NextState(e.State, move)
		if errors.Is(err, game.ErrInvalidAction) {
			log.Warn().Msgf("player %s returned invalid move %v, playing %v instead", player, move, legal[0])
			move = legal[0]
			next, err = e.adapter.NextState(e.State, move)
		}
		if err != nil {
			return game.Outcome{}, gameMetric, moveMetrics, fmt.Errorf("player %s playing %v: %w", player, move, err)
		}

		moveMetrics = append(moveMetrics, MoveMetric{
			Step:          step,
			Player:        player,
			SearchMetrics: metric,
		})
		log.Debug().Msgf("turn %d: player %s played %v", step, player, move)
		e.State = next
	}

	outcome := game.DeadEndOutcome()
	if e.adapter.IsEnded(e.State) {
		outcome = game.NewOutcome(e.adapter.PointsValues(e.State))
	}

	gameMetric.Winner = outcome.Winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	if outcome.IsDraw() {
		log.Info().Msgf("game over after %d moves: draw", gameMetric.TotalMoves)
	} else {
		log.Info().Msgf("game over after %d moves: player %s wins", gameMetric.TotalMoves, outcome.Winner)
	}
	return outcome, gameMetric, moveMetrics, nil
}
