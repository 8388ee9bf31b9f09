package xmlmatch

import "fmt"

// Node is one element of a hierarchical document: a name, its own inline
// text (independent of children), an attribute map, and an ordered child
// list. Equivalence ignores attribute order and child order; everything
// else counts.
type Node struct {
	Name       string
	Text       string
	Attributes map[string]string
	Children   []*Node
}

// Document is a root node. The matcher needs nothing document-wide beyond
// the element tree itself.
type Document struct {
	Root *Node
}

// Validate fails fast on malformed trees so they never reach the hasher:
// a nil or unnamed node, or a node reachable twice (the input must be a
// tree, not a DAG or a cycle). Silent mis-hashing would defeat the tool.
func (d *Document) Validate() error {
	if d == nil || d.Root == nil {
		return fmt.Errorf("document has no root element")
	}
	return validateNode(d.Root, map[*Node]struct{}{})
}

func validateNode(n *Node, seen map[*Node]struct{}) error {
	if n == nil {
		return fmt.Errorf("nil node in tree")
	}
	if n.Name == "" {
		return fmt.Errorf("node with empty name")
	}
	if _, ok := seen[n]; ok {
		return fmt.Errorf("node %q reachable twice (input is not a tree)", n.Name)
	}
	seen[n] = struct{}{}
	for _, c := range n.Children {
		if err := validateNode(c, seen); err != nil {
			return err
		}
	}
	return nil
}
