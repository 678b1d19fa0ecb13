package plan

import "github.com/vk/rigsplit/internal/skeleton"

// Subtree is one independently solvable region of the skeleton: a root node
// plus the chain-terminal leaves reachable without crossing into a nested
// subtree. Subtrees are transient; each one is consumed by the solver
// factory as soon as partitioning has fully explored it.
type Subtree struct {
	Root   *skeleton.Node
	Leaves []*skeleton.Node
}

// Job is a solver job built from one subtree. It is opaque to the planner
// beyond creation and release.
type Job interface {
	Release()
}

// Factory constructs solver jobs. Implementations are provided by the
// solver layer; the planner only decides what to build and in which order.
type Factory interface {
	NewJob(subtree *Subtree, algorithm *skeleton.Algorithm) (Job, error)
}
