package solver

import (
	"fmt"
	"strings"

	"github.com/vk/rigsplit/internal/skeleton"
)

// Job is a planned IK solve over one subtree: the subtree root, its chain
// terminals, the governing algorithm, and the flattened node chain from
// each terminal up to the root.
type Job struct {
	root      *skeleton.Node
	leaves    []*skeleton.Node
	algorithm *skeleton.Algorithm
	// chains holds one leaf-to-root node name sequence per leaf, in leaf
	// order.
	chains   [][]string
	released bool
}

// Root returns the subtree root node.
func (j *Job) Root() *skeleton.Node {
	return j.root
}

// Leaves returns the chain-terminal nodes in partition order.
func (j *Job) Leaves() []*skeleton.Node {
	return j.leaves
}

// Algorithm returns the governing algorithm.
func (j *Job) Algorithm() *skeleton.Algorithm {
	return j.algorithm
}

// Chains returns one leaf-to-root node name sequence per leaf.
func (j *Job) Chains() [][]string {
	return j.chains
}

// Release frees the job. It is safe to call more than once.
func (j *Job) Release() {
	j.released = true
}

// Released reports whether Release has been called.
func (j *Job) Released() bool {
	return j.released
}

// Describe renders the job as a single human-readable line.
func (j *Job) Describe() string {
	parts := make([]string, len(j.chains))
	for i, chain := range j.chains {
		parts[i] = strings.Join(chain, " -> ")
	}
	return fmt.Sprintf("%s root=%s chains=[%s]", j.algorithm.Type, j.root.Name(), strings.Join(parts, "; "))
}
