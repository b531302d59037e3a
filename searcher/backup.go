package searcher

import "mcts/game"

// backup walks from id to the root, counting a visit on every node and a win
// on the nodes whose mover won.
func backup[A comparable](t *tree[A], id nodeID, outcome game.Outcome) {
	for id != noNode {
		n := t.get(id)
		n.visits++
		n.wins += reward(outcome, n.mover)
		id = n.parent
	}
}
