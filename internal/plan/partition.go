package plan

import (
	"fmt"
	"log/slog"

	"github.com/vk/rigsplit/internal/skeleton"
)

// partitioner carves the marked tree into disjoint subtrees and builds one
// solver job per subtree. Jobs are appended in post-order, so a subtree's
// job always lands after the jobs of every subtree nested inside it. That
// is exactly the dependency order the caller needs, with no explicit sort.
type partitioner struct {
	marks   map[string]mark
	factory Factory
	logger  *slog.Logger
	jobs    []Job
}

// walk descends from node carrying the enclosing subtree context. A nil
// current means the node is outside every subtree built so far.
func (p *partitioner) walk(node *skeleton.Node, current *Subtree) error {
	m, marked := p.marks[node.Name()]
	if !marked {
		// The node is not part of any chain. Chain context never crosses an
		// unmarked node, but regions further down may hold chains of their
		// own when chain length limits have split the tree.
		for _, child := range node.Children() {
			if err := p.walk(child, nil); err != nil {
				return err
			}
		}
		return nil
	}

	switch m {
	case markEnd:
		if current == nil {
			// Only reachable when the effector sits on the tree root of a
			// one-node tree; there is no subtree to terminate.
			p.logger.Error("chain terminus outside any subtree", "node", node.Name())
			return fmt.Errorf("%w: chain ends at node %q outside any subtree", ErrInvalidTree, node.Name())
		}
		current.Leaves = append(current.Leaves, node)
		fallthrough

	case markSection:
		// A chain may continue past its nominal end when a nested, shorter
		// chain begins further down.
		for _, child := range node.Children() {
			if err := p.walk(child, current); err != nil {
				return err
			}
		}

	case markBeginAndEnd:
		if current != nil {
			current.Leaves = append(current.Leaves, node)
		}
		return p.begin(node)

	case markBegin:
		return p.begin(node)
	}

	return nil
}

// begin starts a new subtree rooted at node, fully explores it, then
// resolves its governing algorithm and appends the constructed solver job.
func (p *partitioner) begin(node *skeleton.Node) error {
	subtree := &Subtree{Root: node}
	for _, child := range node.Children() {
		if err := p.walk(child, subtree); err != nil {
			return err
		}
	}

	algorithm := resolveAlgorithm(node)
	if algorithm == nil {
		p.logger.Error("no algorithm assigned to subtree", "root", node.Name())
		return fmt.Errorf("%w: subtree root %q", ErrNoAlgorithm, node.Name())
	}

	job, err := p.factory.NewJob(subtree, algorithm)
	if err != nil {
		return err
	}
	p.jobs = append(p.jobs, job)
	return nil
}

// resolveAlgorithm returns the algorithm governing the subtree rooted at
// node: the first algorithm found walking from the node itself up through
// its ancestors to the tree root.
func resolveAlgorithm(node *skeleton.Node) *skeleton.Algorithm {
	for n := node; n != nil; n = n.Parent() {
		if a := n.Algorithm(); a != nil {
			return a
		}
	}
	return nil
}
