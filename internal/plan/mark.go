package plan

// mark classifies a node visited during chain marking. Marks exist only for
// the duration of a single rebuild and are discarded once the tree has been
// partitioned into subtrees.
type mark uint8

const (
	// markSection is an interior chain node: the chain passes through, the
	// node is neither a subtree root nor a chain terminus.
	markSection mark = iota
	// markBegin is a subtree root: the walk stops advancing toward the tree
	// root here.
	markBegin
	// markEnd is a chain terminus at the effector-bearing end.
	markEnd
	// markBeginAndEnd is simultaneously a chain terminus and a subtree
	// root, e.g. an effector on a branching node or a one-node chain.
	markBeginAndEnd
	// markInvalid flags the combinations that violate the marking
	// invariant: a visited leaf carrying no effector.
	markInvalid
)

func (m mark) String() string {
	switch m {
	case markSection:
		return "section"
	case markBegin:
		return "begin"
	case markEnd:
		return "end"
	case markBeginAndEnd:
		return "begin+end"
	default:
		return "invalid"
	}
}

// Classification input bits, matching the four observations made at each
// node of a chain walk.
const (
	// bitEndOfWalk: the chain length counter has reached zero, or the node
	// has no parent.
	bitEndOfWalk = 1 << 0
	// bitChildren: the node has at least one child.
	bitChildren = 1 << 1
	// bitEffector: the node itself carries an effector.
	bitEffector = 1 << 2
	// bitAlgorithm: the node itself carries an algorithm.
	bitAlgorithm = 1 << 3
)

// markTable maps the (algorithm, effector, children, end-of-walk) bit
// combination of a visited node to its mark.
var markTable = [16]mark{
	markInvalid,     // leaf, no effector
	markInvalid,     // leaf, no effector, end of walk
	markSection,     // children only
	markBegin,       // children, end of walk
	markEnd,         // effector only
	markEnd,         // effector, end of walk
	markBeginAndEnd, // effector + children
	markBeginAndEnd, // effector + children, end of walk
	markInvalid,     // algorithm on an effector-less leaf
	markInvalid,     // algorithm on an effector-less leaf, end of walk
	markSection,     // algorithm + children (algorithm unused, see below)
	markBegin,       // algorithm + children, end of walk (algorithm unused)
	markBegin,       // algorithm + effector
	markBeginAndEnd, // algorithm + effector, end of walk
	markBeginAndEnd, // algorithm + effector + children
	markBeginAndEnd, // algorithm + effector + children, end of walk
}

// uselessAlgorithm flags the combinations where a node carries an algorithm
// that merely passes a chain through, so the attachment can never be
// selected as the governing algorithm for any subtree rooted below it in
// this walk. Reported as a warning, never an error.
var uselessAlgorithm = [16]bool{
	bitAlgorithm | bitChildren:                true,
	bitAlgorithm | bitChildren | bitEndOfWalk: true,
}
