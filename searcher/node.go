package searcher

import "mcts/game"

type nodeID int

const (
	noNode nodeID = -1
	rootID nodeID = 0
)

type node[A comparable] struct {
	parent   nodeID
	action   A           // Action that produced this node, zero for the root
	mover    game.Player // Player who chose action, empty for the root
	children []nodeID    // Creation order
	index    map[A]nodeID
	untried  []A
	visits   int
	wins     float64
}

// A leaf either still has actions to expand or has nothing left at all.
func (n *node[A]) isLeaf() bool {
	return len(n.untried) > 0 || len(n.children) == 0
}

func (n *node[A]) isFullyExpanded() bool {
	return len(n.untried) == 0 && len(n.children) > 0
}

// reward is the credit a node receives for outcome.
func reward(outcome game.Outcome, mover game.Player) float64 {
	if outcome.WonBy(mover) {
		return Win
	}
	return Loss
}
