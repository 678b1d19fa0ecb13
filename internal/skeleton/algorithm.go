package skeleton

// Algorithm names the solving strategy governing the subtree rooted at or
// above the node it is attached to. The planner compares algorithms by
// identity only; the remaining fields pass through to the solver.
type Algorithm struct {
	// Type is the registered solver strategy name, e.g. "fabrik".
	Type string
	// Tolerance is the distance below which a chain counts as solved.
	Tolerance float64
	// MaxIterations bounds the solver's iteration count per job.
	MaxIterations int
}
