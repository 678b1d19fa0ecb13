// Package plan partitions a skeleton tree into an ordered list of
// independent IK solver jobs. It scans the tree for effectors, marks every
// node their chains can reach, carves the marked region into disjoint
// subtrees, and builds one solver job per subtree such that nested subtrees
// are always solved before the subtrees that depend on their result.
package plan
