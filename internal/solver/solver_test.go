package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/rigsplit/internal/plan"
	"github.com/vk/rigsplit/internal/skeleton"
)

func TestKnown(t *testing.T) {
	assert.True(t, Known("fabrik"))
	assert.True(t, Known("one_bone"))
	assert.True(t, Known("two_bone"))
	assert.True(t, Known("mss"))
	assert.False(t, Known("gradient_descent"))
}

func TestStrategies_Sorted(t *testing.T) {
	assert.Equal(t, []string{"fabrik", "mss", "one_bone", "two_bone"}, Strategies())
}

func TestFactory_NewJob(t *testing.T) {
	root := skeleton.NewNode("shoulder")
	elbow := root.NewChild("elbow")
	hand := elbow.NewChild("hand")
	algorithm := &skeleton.Algorithm{Type: "two_bone"}

	subtree := &plan.Subtree{Root: root, Leaves: []*skeleton.Node{hand}}
	j, err := NewFactory().NewJob(subtree, algorithm)
	require.NoError(t, err)

	job := j.(*Job)
	assert.Same(t, root, job.Root())
	assert.Equal(t, []*skeleton.Node{hand}, job.Leaves())
	assert.Same(t, algorithm, job.Algorithm())
	require.Len(t, job.Chains(), 1)
	assert.Equal(t, []string{"hand", "elbow", "shoulder"}, job.Chains()[0])
}

func TestFactory_UnknownAlgorithm(t *testing.T) {
	subtree := &plan.Subtree{Root: skeleton.NewNode("hips")}
	_, err := NewFactory().NewJob(subtree, &skeleton.Algorithm{Type: "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown solver algorithm "nope"`)
	assert.Contains(t, err.Error(), "fabrik")
}

func TestFactory_LeafOutsideSubtree(t *testing.T) {
	root := skeleton.NewNode("hips")
	stray := skeleton.NewNode("stray")

	subtree := &plan.Subtree{Root: root, Leaves: []*skeleton.Node{stray}}
	_, err := NewFactory().NewJob(subtree, &skeleton.Algorithm{Type: "fabrik"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a descendant")
}

func TestJob_ReleaseIsIdempotent(t *testing.T) {
	root := skeleton.NewNode("hips")
	subtree := &plan.Subtree{Root: root}
	j, err := NewFactory().NewJob(subtree, &skeleton.Algorithm{Type: "fabrik"})
	require.NoError(t, err)

	job := j.(*Job)
	assert.False(t, job.Released())
	job.Release()
	job.Release()
	assert.True(t, job.Released())
}

func TestJob_Describe(t *testing.T) {
	root := skeleton.NewNode("shoulder")
	hand := root.NewChild("elbow").NewChild("hand")
	subtree := &plan.Subtree{Root: root, Leaves: []*skeleton.Node{hand}}

	j, err := NewFactory().NewJob(subtree, &skeleton.Algorithm{Type: "two_bone"})
	require.NoError(t, err)

	desc := j.(*Job).Describe()
	assert.Contains(t, desc, "two_bone")
	assert.Contains(t, desc, "root=shoulder")
	assert.Contains(t, desc, "hand -> elbow -> shoulder")
}
