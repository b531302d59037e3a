package searcher

import (
	"fmt"

	"mcts/game"

	"golang.org/x/exp/rand"
)

// rollout plays uniformly random legal actions until the game is over or no
// action is left. Returns the final state and how many actions were applied.
func rollout[S any, A comparable](adapter game.Adapter[S, A], rng *rand.Rand, state S) (S, int, error) {
	played := 0
	for !adapter.IsEnded(state) {
		actions := adapter.LegalActions(state)
		if len(actions) == 0 { // Dead end
			break
		}
		action := actions[rng.Intn(len(actions))] // Random rollout policy
		next, err := adapter.NextState(state, action)
		if err != nil {
			return state, played, fmt.Errorf("rolling out %v: %w", action, err)
		}
		state = next
		played++
	}
	return state, played, nil
}

// score turns the final state of a rollout into an outcome.
func score[S any, A comparable](adapter game.Adapter[S, A], state S) game.Outcome {
	if !adapter.IsEnded(state) {
		return game.DeadEndOutcome()
	}
	return game.NewOutcome(adapter.PointsValues(state))
}
