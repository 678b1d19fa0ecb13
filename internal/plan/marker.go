package plan

import (
	"context"
	"fmt"

	"github.com/vk/rigsplit/internal/ctxlog"
	"github.com/vk/rigsplit/internal/skeleton"
)

// markChains walks the ancestor chain of every effector node, bounded by the
// effector's chain length (0 = unbounded, walk to the tree root), and
// classifies each visited node. The result maps node names to marks.
//
// Chains from different effectors may overlap. When a node already holds a
// mark, markSection overwrites it unconditionally: a node interior to one
// chain cannot be a subtree boundary for the whole marking, regardless of
// what another, shorter-reaching chain implied. Any other collision keeps
// the existing mark.
func markChains(ctx context.Context, effectorNodes []*skeleton.Node) (map[string]mark, error) {
	logger := ctxlog.FromContext(ctx)
	marks := make(map[string]mark)

	for _, effectorNode := range effectorNodes {
		counter := int(effectorNode.Effector().ChainLength)
		if counter == 0 {
			counter = -1 // unbounded
		}

		for node := effectorNode; ; node = node.Parent() {
			idx := 0
			if counter == 0 || node.Parent() == nil {
				idx |= bitEndOfWalk
			}
			if node.ChildCount() > 0 {
				idx |= bitChildren
			}
			if node.Effector() != nil {
				idx |= bitEffector
			}
			if node.Algorithm() != nil {
				idx |= bitAlgorithm
			}

			newMark := markTable[idx]
			if newMark == markInvalid {
				// Walks only ever visit effector nodes and their ancestors,
				// so a leaf without an effector should be unreachable here.
				logger.Error("chain marking visited a leaf node with no effector attached; this should never happen",
					"node", node.Name())
				return nil, fmt.Errorf("%w: leaf node %q has no effector", ErrInvalidTree, node.Name())
			}
			if uselessAlgorithm[idx] {
				logger.Warn("attached algorithm is never selected for any subtree",
					"node", node.Name(), "type", node.Algorithm().Type)
			}

			if existing, ok := marks[node.Name()]; ok {
				if newMark == markSection && existing != markSection {
					marks[node.Name()] = markSection
				}
			} else {
				marks[node.Name()] = newMark
			}

			if idx&bitEndOfWalk != 0 {
				break
			}
			counter--
		}
	}

	return marks, nil
}
