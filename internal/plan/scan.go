package plan

import "github.com/vk/rigsplit/internal/skeleton"

// collectEffectorNodes gathers every node in the tree that has an effector
// attached. Children are visited before their parents; any traversal that
// visits each node exactly once would do.
func collectEffectorNodes(root *skeleton.Node) []*skeleton.Node {
	var nodes []*skeleton.Node
	var visit func(*skeleton.Node)
	visit = func(n *skeleton.Node) {
		for _, child := range n.Children() {
			visit(child)
		}
		if n.Effector() != nil {
			nodes = append(nodes, n)
		}
	}
	visit(root)
	return nodes
}
