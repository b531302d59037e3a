package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTree(t *testing.T) {
	actions := []mockAction{"A", "B"}
	tr := newTree(actions)

	require.Equal(t, 1, tr.size())
	root := tr.root()
	require.Equal(t, noNode, root.parent, "Root should have no parent")
	require.Equal(t, mockAction(""), root.action, "Root should have no action")
	require.Equal(t, actions, root.untried)
	require.Zero(t, root.visits)
	require.Zero(t, root.wins)

	root.untried[0] = "Z"
	require.Equal(t, mockAction("A"), actions[0], "Tree should not alias the caller's actions")
}

func TestTreeAddChild(t *testing.T) {
	t.Run("adding a child consumes the untried action", func(t *testing.T) {
		tr := newTree([]mockAction{"A", "B", "C"})

		id := tr.addChild(rootID, "B", red, []mockAction{"x", "y"})

		require.Equal(t, 2, tr.size())
		require.Equal(t, []mockAction{"A", "C"}, tr.root().untried)
		require.Equal(t, []nodeID{id}, tr.root().children)

		got, ok := tr.child(rootID, "B")
		require.True(t, ok)
		require.Equal(t, id, got)

		child := tr.get(id)
		require.Equal(t, rootID, child.parent)
		require.Equal(t, mockAction("B"), child.action)
		require.Equal(t, red, child.mover)
		require.Equal(t, []mockAction{"x", "y"}, child.untried)
		require.Empty(t, child.children)
	})

	t.Run("children keep creation order", func(t *testing.T) {
		tr := newTree([]mockAction{"A", "B", "C"})

		c := tr.addChild(rootID, "C", red, nil)
		a := tr.addChild(rootID, "A", red, nil)
		grandChild := tr.addChild(rootID, "B", red, []mockAction{"x"})
		grandChild = tr.addChild(grandChild, "x", blue, nil)

		require.Equal(t, []nodeID{c, a, 3}, tr.root().children)
		require.Empty(t, tr.root().untried)
		require.Equal(t, nodeID(3), tr.get(grandChild).parent)
	})

	t.Run("looking up an unexpanded action fails", func(t *testing.T) {
		tr := newTree([]mockAction{"A"})

		_, ok := tr.child(rootID, "A")
		require.False(t, ok)
	})

	t.Run("adding an action that is not untried panics", func(t *testing.T) {
		tr := newTree([]mockAction{"A"})
		tr.addChild(rootID, "A", red, nil)

		require.Panics(t, func() {
			tr.addChild(rootID, "A", red, nil)
		}, "Each action should be expanded at most once")
	})
}
