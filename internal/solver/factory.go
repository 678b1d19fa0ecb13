package solver

import (
	"fmt"
	"strings"

	"github.com/vk/rigsplit/internal/plan"
	"github.com/vk/rigsplit/internal/skeleton"
)

// Factory builds solver jobs for the planner, validating each requested
// algorithm against the strategy registry.
type Factory struct{}

// NewFactory returns a job factory.
func NewFactory() *Factory {
	return &Factory{}
}

// NewJob constructs a job from one partitioned subtree. It fails when the
// algorithm names an unregistered strategy or when a leaf does not reach
// the subtree root through its parent chain.
func (f *Factory) NewJob(subtree *plan.Subtree, algorithm *skeleton.Algorithm) (plan.Job, error) {
	if !Known(algorithm.Type) {
		return nil, fmt.Errorf("unknown solver algorithm %q (known: %s)",
			algorithm.Type, strings.Join(Strategies(), ", "))
	}

	job := &Job{
		root:      subtree.Root,
		leaves:    append([]*skeleton.Node(nil), subtree.Leaves...),
		algorithm: algorithm,
	}
	for _, leaf := range subtree.Leaves {
		var chain []string
		for n := leaf; ; n = n.Parent() {
			chain = append(chain, n.Name())
			if n == subtree.Root {
				break
			}
			if n.Parent() == nil {
				return nil, fmt.Errorf("leaf %q is not a descendant of subtree root %q",
					leaf.Name(), subtree.Root.Name())
			}
		}
		job.chains = append(job.chains, chain)
	}

	return job, nil
}
