package searcher

import (
	"slices"

	"mcts/game"
)

// tree owns every node of one search. Nodes live in a single slice and refer
// to each other by index, so pointers returned by get are only valid until the
// next addChild.
type tree[A comparable] struct {
	nodes []node[A]
}

func newTree[A comparable](actions []A) *tree[A] {
	return &tree[A]{
		nodes: []node[A]{{
			parent:  noNode,
			index:   make(map[A]nodeID, len(actions)),
			untried: slices.Clone(actions),
		}},
	}
}

func (t *tree[A]) get(id nodeID) *node[A] {
	return &t.nodes[id]
}

func (t *tree[A]) root() *node[A] {
	return t.get(rootID)
}

func (t *tree[A]) size() int {
	return len(t.nodes)
}

// child looks up the node reached from parent by action.
func (t *tree[A]) child(parent nodeID, action A) (nodeID, bool) {
	id, ok := t.nodes[parent].index[action]
	return id, ok
}

// addChild materializes action, which must be one of parent's untried actions.
func (t *tree[A]) addChild(parent nodeID, action A, mover game.Player, actions []A) nodeID {
	p := t.get(parent)
	i := slices.Index(p.untried, action)
	if i < 0 {
		panic("action is not untried")
	}
	p.untried = slices.Delete(p.untried, i, i+1)

	id := nodeID(len(t.nodes))
	p.children = append(p.children, id)
	p.index[action] = id

	t.nodes = append(t.nodes, node[A]{
		parent:  parent,
		action:  action,
		mover:   mover,
		index:   make(map[A]nodeID, len(actions)),
		untried: slices.Clone(actions),
	})
	return id
}
