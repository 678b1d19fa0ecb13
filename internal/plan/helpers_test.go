package plan

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/vk/rigsplit/internal/ctxlog"
	"github.com/vk/rigsplit/internal/skeleton"
)

// buildChain creates a linear skeleton and returns its nodes root-first.
func buildChain(names ...string) []*skeleton.Node {
	nodes := make([]*skeleton.Node, len(names))
	nodes[0] = skeleton.NewNode(names[0])
	for i := 1; i < len(names); i++ {
		nodes[i] = nodes[i-1].NewChild(names[i])
	}
	return nodes
}

// testContext returns a context whose logger writes to buf, so tests can
// assert on emitted warnings.
func testContext(buf *bytes.Buffer) context.Context {
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return ctxlog.WithLogger(context.Background(), logger)
}

// fakeJob records what the partitioner asked the factory to build.
type fakeJob struct {
	root      string
	leaves    []string
	algorithm *skeleton.Algorithm
	released  bool
}

func (j *fakeJob) Release() {
	j.released = true
}

// fakeFactory builds fakeJobs and can be told to fail at a given subtree
// root, for exercising the atomic-update paths.
type fakeFactory struct {
	created []*fakeJob
	failAt  string
}

func (f *fakeFactory) NewJob(subtree *Subtree, algorithm *skeleton.Algorithm) (Job, error) {
	if f.failAt != "" && subtree.Root.Name() == f.failAt {
		return nil, fmt.Errorf("factory failure at %q", f.failAt)
	}
	job := &fakeJob{root: subtree.Root.Name(), algorithm: algorithm}
	for _, leaf := range subtree.Leaves {
		job.leaves = append(job.leaves, leaf.Name())
	}
	f.created = append(f.created, job)
	return job, nil
}
