package searcher

import (
	"fmt"
	"math"

	"mcts/game"
)

// selectFrontier descends from the root to a node that still has untried
// actions or has no moves at all, carrying the state along. It never mutates
// the tree. Returns the frontier, its state and its depth.
func selectFrontier[S any, A comparable](t *tree[A], adapter game.Adapter[S, A], c float64, state S, rootPlayer game.Player) (nodeID, S, int, error) {
	id := rootID
	depth := 0
	for t.get(id).isFullyExpanded() {
		maximizing := adapter.CurrentPlayer(state) == rootPlayer
		next, err := pickChild(t, id, c, maximizing)
		if err != nil {
			return id, state, depth, err
		}

		action := t.get(next).action
		nextState, err := adapter.NextState(state, action)
		if err != nil {
			return id, state, depth, fmt.Errorf("selecting %v: %w", action, err)
		}
		id, state = next, nextState
		depth++
	}
	return id, state, depth, nil
}

// pickChild returns the child with the highest UCB1 score when maximizing and
// the lowest otherwise. Ties go to the earliest child.
func pickChild[A comparable](t *tree[A], parent nodeID, c float64, maximizing bool) (nodeID, error) {
	p := t.get(parent)
	policy, err := newUCT(c, p.visits)
	if err != nil {
		return noNode, err
	}

	best := noNode
	bestScore := math.Inf(-1)
	if !maximizing {
		bestScore = math.Inf(1)
	}
	for _, id := range p.children {
		child := t.get(id)
		score, err := policy.evaluate(child.wins, child.visits, maximizing)
		if err != nil {
			return noNode, err
		}
		if (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			best = id
			bestScore = score
		}
	}
	return best, nil
}
