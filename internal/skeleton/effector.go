package skeleton

import "gonum.org/v1/gonum/spatial/r3"

// Effector marks a node as an IK target. The chain of ancestors reaching up
// to ChainLength joints above the node is bent so the node approaches
// Target. The planner only reads ChainLength; Target and Weight pass through
// opaquely to the solver.
type Effector struct {
	// Target is the world-space position the effector node is pulled toward.
	Target r3.Vec
	// Weight scales the effector's influence, 0..1.
	Weight float64
	// ChainLength is how many joints above the effector node take part in
	// solving. 0 means unlimited: the chain extends to the tree root.
	ChainLength uint
}
