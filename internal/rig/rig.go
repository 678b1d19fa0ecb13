// Package rig loads skeleton definitions from HCL manifests. A rig file
// declares the joint tree as flat `node` blocks referencing their parent by
// name, with optional `effector` and `algorithm` blocks:
//
//	node "hand_l" {
//	  parent = "lowerarm_l"
//	  effector {
//	    chain_length = 2
//	    target       = [0.3, 1.2, 0.1]
//	  }
//	}
//
// Declaration order never matters: the tree is assembled after all files
// have been decoded.
package rig

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/vk/rigsplit/internal/ctxlog"
	"github.com/vk/rigsplit/internal/fsutil"
	"github.com/vk/rigsplit/internal/skeleton"
)

// Load finds and parses all .hcl files under rigPath (a single file or a
// directory) and assembles them into a skeleton tree, returning its root.
func Load(ctx context.Context, rigPath string) (*skeleton.Node, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("loading rig", "path", rigPath)

	files, err := fsutil.FindFilesByExtension(rigPath, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to find rig files in %s: %w", rigPath, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl rig files found in %s", rigPath)
	}

	parser := hclparse.NewParser()
	var decls []*hclNode
	for _, file := range files {
		nodes, err := decodeRigFile(file, parser)
		if err != nil {
			return nil, err
		}
		decls = append(decls, nodes...)
	}
	logger.Debug("rig files decoded", "files", len(files), "nodes", len(decls))

	root, err := buildTree(decls)
	if err != nil {
		return nil, err
	}
	logger.Info("rig loaded", "path", rigPath, "nodes", root.Count())
	return root, nil
}

// decodeRigFile parses a single HCL file and returns the node blocks found
// within it.
func decodeRigFile(filePath string, parser *hclparse.Parser) ([]*hclNode, error) {
	hclFile, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse rig file %s: %w", filePath, diags)
	}

	var parsedFile hclRigFile
	diags = gohcl.DecodeBody(hclFile.Body, nil, &parsedFile)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode rig file %s: %w", filePath, diags)
	}

	for _, node := range parsedFile.Nodes {
		node.file = filePath
		if node.Effector != nil && node.Effector.Target != nil && len(node.Effector.Target) != 3 {
			return nil, fmt.Errorf("%s: node %q: effector target must have exactly 3 components, got %d",
				filePath, node.Name, len(node.Effector.Target))
		}
	}

	return parsedFile.Nodes, nil
}

// buildTree assembles the skeleton from flat node declarations. It first
// indexes every declaration by name, then grows the tree from the single
// root so that a parent always exists before its children, regardless of
// declaration order. Declarations that never connect to the root (orphaned
// subtrees or parent cycles) are rejected.
func buildTree(decls []*hclNode) (*skeleton.Node, error) {
	byName := make(map[string]*hclNode, len(decls))
	childrenOf := make(map[string][]*hclNode)
	var roots []*hclNode

	for _, decl := range decls {
		if decl.Name == "" {
			return nil, fmt.Errorf("%s: node with empty name", decl.file)
		}
		if prev, ok := byName[decl.Name]; ok {
			return nil, fmt.Errorf("%s: duplicate node %q (first declared in %s)", decl.file, decl.Name, prev.file)
		}
		byName[decl.Name] = decl
		if decl.Parent == "" {
			roots = append(roots, decl)
		} else {
			childrenOf[decl.Parent] = append(childrenOf[decl.Parent], decl)
		}
	}

	for _, decl := range decls {
		if decl.Parent != "" {
			if _, ok := byName[decl.Parent]; !ok {
				return nil, fmt.Errorf("%s: node %q references unknown parent %q", decl.file, decl.Name, decl.Parent)
			}
		}
	}

	if len(roots) == 0 {
		return nil, fmt.Errorf("rig has no root node (every node declares a parent; check for cycles)")
	}
	if len(roots) > 1 {
		return nil, fmt.Errorf("rig has %d root nodes (%q and %q at least); exactly one node must omit parent",
			len(roots), roots[0].Name, roots[1].Name)
	}

	rootDecl := roots[0]
	root := skeleton.NewNode(rootDecl.Name)
	attach(root, rootDecl)

	created := 1
	var grow func(parent *skeleton.Node)
	grow = func(parent *skeleton.Node) {
		for _, decl := range childrenOf[parent.Name()] {
			child := parent.NewChild(decl.Name)
			attach(child, decl)
			created++
			grow(child)
		}
	}
	grow(root)

	if created != len(decls) {
		return nil, fmt.Errorf("rig has %d node(s) unreachable from root %q (parent cycle)",
			len(decls)-created, rootDecl.Name)
	}

	return root, nil
}

// attach converts a declaration's effector/algorithm blocks and attaches
// them to the created node.
func attach(node *skeleton.Node, decl *hclNode) {
	if e := decl.Effector; e != nil {
		effector := &skeleton.Effector{
			ChainLength: e.ChainLength,
			Weight:      defaultWeight,
		}
		if len(e.Target) == 3 {
			effector.Target = r3.Vec{X: e.Target[0], Y: e.Target[1], Z: e.Target[2]}
		}
		if e.Weight != nil {
			effector.Weight = *e.Weight
		}
		node.AttachEffector(effector)
	}

	if a := decl.Algorithm; a != nil {
		algorithm := &skeleton.Algorithm{
			Type:          a.Type,
			Tolerance:     defaultTolerance,
			MaxIterations: defaultMaxIterations,
		}
		if a.Tolerance != nil {
			algorithm.Tolerance = *a.Tolerance
		}
		if a.MaxIterations != nil {
			algorithm.MaxIterations = *a.MaxIterations
		}
		node.AttachAlgorithm(algorithm)
	}
}
