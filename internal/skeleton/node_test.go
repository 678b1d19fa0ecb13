package skeleton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChild_LinksParentAndPreservesOrder(t *testing.T) {
	root := NewNode("hips")
	legL := root.NewChild("leg_l")
	legR := root.NewChild("leg_r")

	require.Equal(t, 2, root.ChildCount())
	assert.Equal(t, []*Node{legL, legR}, root.Children())
	assert.Same(t, root, legL.Parent())
	assert.Same(t, root, legR.Parent())
	assert.Nil(t, root.Parent())
}

func TestAttachments(t *testing.T) {
	node := NewNode("hand")
	assert.Nil(t, node.Effector())
	assert.Nil(t, node.Algorithm())

	effector := &Effector{ChainLength: 2, Weight: 1}
	algorithm := &Algorithm{Type: "fabrik"}
	node.AttachEffector(effector)
	node.AttachAlgorithm(algorithm)
	assert.Same(t, effector, node.Effector())
	assert.Same(t, algorithm, node.Algorithm())

	node.AttachEffector(nil)
	assert.Nil(t, node.Effector())
}

func TestWalk_PreOrder(t *testing.T) {
	root := NewNode("a")
	b := root.NewChild("b")
	b.NewChild("c")
	root.NewChild("d")

	var visited []string
	root.Walk(func(n *Node) { visited = append(visited, n.Name()) })
	assert.Equal(t, []string{"a", "b", "c", "d"}, visited)
}

func TestFind(t *testing.T) {
	root := NewNode("a")
	b := root.NewChild("b")
	c := b.NewChild("c")

	assert.Same(t, root, root.Find("a"))
	assert.Same(t, c, root.Find("c"))
	assert.Nil(t, root.Find("missing"))
	assert.Nil(t, b.Find("a")) // search is scoped to the subtree
}

func TestCount(t *testing.T) {
	root := NewNode("a")
	root.NewChild("b").NewChild("c")
	assert.Equal(t, 3, root.Count())
	assert.Equal(t, 1, NewNode("lone").Count())
}
