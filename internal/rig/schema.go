package rig

// hclRigFile is the top-level structure of a rig file for decoding. A rig
// may be split across several files; node blocks are merged before the tree
// is assembled.
type hclRigFile struct {
	Nodes []*hclNode `hcl:"node,block"`
}

// hclNode is a single `node` block from a rig file.
type hclNode struct {
	Name      string        `hcl:"name,label"`
	Parent    string        `hcl:"parent,optional"`
	Effector  *hclEffector  `hcl:"effector,block"`
	Algorithm *hclAlgorithm `hcl:"algorithm,block"`

	// file is the rig file the block was declared in, kept for error
	// reporting.
	file string
}

// hclEffector is the `effector` block within a node.
type hclEffector struct {
	// ChainLength 0 means unlimited: the chain extends to the tree root.
	ChainLength uint      `hcl:"chain_length,optional"`
	Target      []float64 `hcl:"target,optional"`
	Weight      *float64  `hcl:"weight,optional"`
}

// hclAlgorithm is the `algorithm` block within a node.
type hclAlgorithm struct {
	Type          string   `hcl:"type"`
	Tolerance     *float64 `hcl:"tolerance,optional"`
	MaxIterations *int     `hcl:"max_iterations,optional"`
}

// Defaults applied to omitted effector/algorithm attributes.
const (
	defaultWeight        = 1.0
	defaultTolerance     = 1e-3
	defaultMaxIterations = 20
)
