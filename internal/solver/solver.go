// Package solver provides the solver-side collaborators of the planner: a
// registry of known solving strategies and the factory that turns
// (subtree, algorithm) pairs into jobs. Jobs capture the planned chain
// layout only; numerical iteration is intentionally out of scope.
package solver

import "sort"

// strategies is the registry of solving strategy names an algorithm block
// may reference.
var strategies = map[string]struct{}{
	"fabrik":   {},
	"one_bone": {},
	"two_bone": {},
	"mss":      {},
}

// Known reports whether the strategy name is registered.
func Known(name string) bool {
	_, ok := strategies[name]
	return ok
}

// Strategies returns the registered strategy names in sorted order.
func Strategies() []string {
	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
