package plan

import "errors"

var (
	// ErrNoEffectors reports that the tree contains no effectors at all.
	// This is an expected condition, not a fault; an update returning it
	// leaves the previously built job list untouched.
	ErrNoEffectors = errors.New("no effectors found in tree")

	// ErrNoAlgorithm reports a subtree whose root reaches no ancestor with
	// an algorithm attached. This is a configuration error in the rig.
	ErrNoAlgorithm = errors.New("no algorithm assigned to subtree")

	// ErrInvalidTree reports a tree that violates the marking invariant:
	// a leaf without an effector was visited during chain marking.
	ErrInvalidTree = errors.New("invalid tree configuration")
)
