package searcher

import (
	"fmt"

	"mcts/game"

	"golang.org/x/exp/rand"
)

// expand adds one child for a random untried action of id and returns it with
// the successor state. Nodes with nothing left to try are returned unchanged.
func expand[S any, A comparable](t *tree[A], adapter game.Adapter[S, A], rng *rand.Rand, id nodeID, state S) (nodeID, S, error) {
	untried := t.get(id).untried
	if len(untried) == 0 {
		return id, state, nil
	}

	action := untried[rng.Intn(len(untried))]
	mover := adapter.CurrentPlayer(state)
	nextState, err := adapter.NextState(state, action)
	if err != nil {
		return id, state, fmt.Errorf("expanding %v: %w", action, err)
	}

	child := t.addChild(id, action, mover, adapter.LegalActions(nextState))
	return child, nextState, nil
}
