package xmlmatch

import (
	"sync"

	"github.com/aqilarik/xmlmatch/internal/ignore"
)

// Matcher derives structural fingerprints of element trees and compares
// documents by them. Two documents match when every level agrees on
// element names, inline text, and attribute name/value pairs, while the
// order of siblings and the order of attribute declarations never matters.
//
// The scheme is a mix of two combine primitives: CombineUniquely binds
// the slots of a single node's identity (and an attribute name to its own
// value) position-sensitively, CombineLoosely pools unordered sets
// (attributes, children) commutatively. See keys.go.
type Matcher struct {
	ignoreSrc string
	ignored   *ignore.Predicate
	parallel  bool
}

// New creates a matcher with options. It fails only when an ignore
// expression does not compile.
func New(opts ...Option) (*Matcher, error) {
	m := &Matcher{}
	for _, o := range opts {
		o.apply(m)
	}
	if m.ignoreSrc != "" {
		pred, err := ignore.Compile(m.ignoreSrc)
		if err != nil {
			return nil, err
		}
		m.ignored = pred
	}
	return m, nil
}

// MatchLoosely reports whether two documents are structurally equivalent
// modulo attribute-order and child-order permutations at every level.
// Pure function of the two trees; no side effects.
func (m *Matcher) MatchLoosely(lhs, rhs *Document) bool {
	return m.NodeKey(lhs.Root) == m.NodeKey(rhs.Root)
}

// NodeKey computes the fingerprint of the subtree rooted at n. The key
// depends only on (name, text, the unordered set of attribute pairs, the
// unordered multiset of child keys). An ignored node yields the identity.
func (m *Matcher) NodeKey(n *Node) Key {
	key, _ := m.nodeKey(n, 0)
	return key
}

// AttributesKey digests the attribute set of a single node. Each pair is
// bound name-to-value with CombineUniquely before entering the loose
// pool, so `x="1"` can never collide with `1="x"` or with a value swap
// between two attributes. No attributes yields the identity.
func (m *Matcher) AttributesKey(n *Node) Key {
	var acc Key
	for name, value := range n.Attributes {
		acc = CombineLoosely(acc, CombineUniquely(HashString(name), HashString(value)))
	}
	return acc
}

// parallelMin is the sibling count below which fanning out goroutines
// costs more than it saves.
const parallelMin = 4

func (m *Matcher) nodeKey(n *Node, depth int) (Key, bool) {
	if m.ignored != nil && m.ignored.Match(n.Name, n.Text, n.Attributes, depth) {
		return 0, false
	}

	var childrenKey Key
	if m.parallel && depth == 0 && len(n.Children) >= parallelMin {
		childrenKey = m.childrenKeyParallel(n)
	} else {
		for _, c := range n.Children {
			if key, ok := m.nodeKey(c, depth+1); ok {
				childrenKey = CombineLoosely(childrenKey, key)
			}
		}
	}

	return CombineUniquely(
		HashString(n.Name),
		HashString(n.Text),
		m.AttributesKey(n),
		childrenKey,
	), true
}

// childrenKeyParallel hashes each root child in its own goroutine. The
// reduction is a commutative XOR fold, so completion order is irrelevant.
func (m *Matcher) childrenKeyParallel(n *Node) Key {
	keys := make([]Key, len(n.Children))
	kept := make([]bool, len(n.Children))

	var wg sync.WaitGroup
	for i, c := range n.Children {
		wg.Add(1)
		go func(i int, c *Node) {
			defer wg.Done()
			keys[i], kept[i] = m.nodeKey(c, 1)
		}(i, c)
	}
	wg.Wait()

	var acc Key
	for i, k := range keys {
		if kept[i] {
			acc = CombineLoosely(acc, k)
		}
	}
	return acc
}

// defaultMatcher backs the package-level convenience functions: no
// ignore predicate, sequential hashing.
var defaultMatcher = &Matcher{}

// MatchLoosely compares two documents with the default matcher.
func MatchLoosely(lhs, rhs *Document) bool { return defaultMatcher.MatchLoosely(lhs, rhs) }

// NodeKey computes a subtree fingerprint with the default matcher.
func NodeKey(n *Node) Key { return defaultMatcher.NodeKey(n) }

// AttributesKey digests a node's attribute set with the default matcher.
func AttributesKey(n *Node) Key { return defaultMatcher.AttributesKey(n) }
