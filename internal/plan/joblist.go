package plan

import (
	"context"

	"github.com/vk/rigsplit/internal/ctxlog"
	"github.com/vk/rigsplit/internal/skeleton"
)

// JobList owns the ordered solver jobs for one skeleton tree. Jobs appear in
// dependency order: the job of a subtree nested inside another always
// precedes the enclosing subtree's job, so executing the list front to back
// is safe.
//
// A list stays useful only while the tree it was built from is unchanged;
// after adding or removing nodes, effectors, or algorithms, the caller must
// Update. Rebuilds are single-threaded and synchronous; the caller is
// responsible for excluding concurrent tree edits and concurrent reads
// while an Update runs.
type JobList struct {
	factory Factory
	jobs    []Job
}

// NewJobList allocates a job list and performs the initial build. The error
// is ErrNoEffectors when the tree has no effectors; callers that treat an
// effector-less tree as a valid empty result should test for it with
// errors.Is.
func NewJobList(ctx context.Context, root *skeleton.Node, factory Factory) (*JobList, error) {
	list := &JobList{factory: factory}
	if err := list.Update(ctx, root); err != nil {
		return nil, err
	}
	return list, nil
}

// Update recomputes the job list from scratch. The rebuild is atomic: on
// any failure, including ErrNoEffectors, the previously installed jobs
// remain untouched. Only once the whole tree has been partitioned
// successfully are the old jobs released and the new sequence installed.
func (l *JobList) Update(ctx context.Context, root *skeleton.Node) error {
	logger := ctxlog.FromContext(ctx)

	effectorNodes := collectEffectorNodes(root)
	if len(effectorNodes) == 0 {
		logger.Warn("no effectors were found in the tree, job list left unchanged")
		return ErrNoEffectors
	}
	logger.Debug("collected effector nodes", "count", len(effectorNodes))

	marks, err := markChains(ctx, effectorNodes)
	if err != nil {
		return err
	}
	logger.Debug("chain marking complete", "marked_nodes", len(marks))

	// Chain length limits can isolate parts of the tree, splitting it into
	// several subtrees that must be solved in order.
	p := &partitioner{marks: marks, factory: l.factory, logger: logger}
	if err := p.walk(root, nil); err != nil {
		for _, job := range p.jobs {
			job.Release()
		}
		return err
	}
	logger.Debug("partitioning complete", "jobs", len(p.jobs))

	for _, job := range l.jobs {
		job.Release()
	}
	l.jobs = p.jobs
	return nil
}

// Jobs returns the solver jobs in dependency order. The returned slice is
// the list's own storage; callers must not modify it.
func (l *JobList) Jobs() []Job {
	return l.jobs
}

// Len returns the number of jobs currently installed.
func (l *JobList) Len() int {
	return len(l.jobs)
}

// Release frees every owned job and empties the list. The list may be
// updated again afterwards.
func (l *JobList) Release() {
	for _, job := range l.jobs {
		job.Release()
	}
	l.jobs = nil
}
