// Package ignore compiles node-exclusion predicates written in
// expr-lang. A predicate sees one element at a time and returns true
// when that element (and its whole subtree) must be left out of the
// structural key.
package ignore

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// env is the shape a predicate is type-checked against.
// Example predicates:
//
//	name == "timestamp"
//	attrs["generated"] == "true"
//	depth > 3 && text == ""
var env = map[string]interface{}{
	"name":  "",
	"text":  "",
	"attrs": map[string]string{},
	"depth": 0,
}

// Predicate is a compiled, reusable ignore expression.
type Predicate struct {
	src  string
	prog *vm.Program
}

// Compile type-checks src as a boolean expression over the node env.
func Compile(src string) (*Predicate, error) {
	prog, err := expr.Compile(src, expr.Env(env), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile ignore expression %q: %w", src, err)
	}
	return &Predicate{src: src, prog: prog}, nil
}

// Source returns the original expression text.
func (p *Predicate) Source() string { return p.src }

// Match reports whether the node described by the arguments should be
// excluded. Runtime evaluation errors keep the node: the hasher must
// stay total, and dropping content on a broken predicate would silently
// change what “equivalent” means.
func (p *Predicate) Match(name, text string, attrs map[string]string, depth int) bool {
	if attrs == nil {
		attrs = map[string]string{}
	}
	out, err := expr.Run(p.prog, map[string]interface{}{
		"name":  name,
		"text":  text,
		"attrs": attrs,
		"depth": depth,
	})
	if err != nil {
		return false
	}
	b, _ := out.(bool)
	return b
}
