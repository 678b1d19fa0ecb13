// Package skeleton models the jointed node tree that IK planning operates
// on: named nodes with a parent pointer, ordered children, and optional
// effector/algorithm attachments. The tree owns its nodes; consumers such as
// the planner hold plain references and require the tree to stay unchanged
// for as long as a built plan is in use.
package skeleton

// Node is a single joint in the skeleton tree.
type Node struct {
	// name is the stable, unique identifier of the node. It is used as a
	// map key during planning and must be unique within a tree.
	name string
	// parent is nil only at the tree root.
	parent *Node
	// children preserves attachment order.
	children []*Node

	effector  *Effector
	algorithm *Algorithm
}

// NewNode creates a detached node, typically the tree root.
func NewNode(name string) *Node {
	return &Node{name: name}
}

// NewChild creates a node attached under n and returns it.
func (n *Node) NewChild(name string) *Node {
	child := &Node{name: name, parent: n}
	n.children = append(n.children, child)
	return child
}

// Name returns the node's unique identifier.
func (n *Node) Name() string {
	return n.name
}

// Parent returns the parent node, or nil at the tree root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's children in attachment order. The returned
// slice is the node's own storage; callers must not modify it.
func (n *Node) Children() []*Node {
	return n.children
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Effector returns the attached effector, or nil.
func (n *Node) Effector() *Effector {
	return n.effector
}

// Algorithm returns the attached algorithm, or nil.
func (n *Node) Algorithm() *Algorithm {
	return n.algorithm
}

// AttachEffector sets the node's effector. Passing nil detaches it.
func (n *Node) AttachEffector(e *Effector) {
	n.effector = e
}

// AttachAlgorithm sets the node's algorithm. Passing nil detaches it.
func (n *Node) AttachAlgorithm(a *Algorithm) {
	n.algorithm = a
}

// Find returns the node with the given name in the subtree rooted at n, or
// nil if no such node exists.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Walk(func(node *Node) {
		if found == nil && node.name == name {
			found = node
		}
	})
	return found
}

// Walk visits n and every descendant in pre-order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, child := range n.children {
		child.Walk(fn)
	}
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	total := 0
	n.Walk(func(*Node) { total++ })
	return total
}
