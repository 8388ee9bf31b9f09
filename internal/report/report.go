// Package report renders suite results for the console.
package report

import (
	"fmt"
	"io"

	"github.com/TwiN/go-color"
)

// Result is the outcome of one compared pair.
type Result struct {
	Left     string
	Right    string
	Expected bool
	Actual   bool
	Err      error
}

// Passed reports whether the observed verdict matched the expected one.
func (r Result) Passed() bool { return r.Err == nil && r.Actual == r.Expected }

// Line formats one result like `[1.xml] == [2.xml] ---> PASSED`.
func Line(r Result) string {
	op := "!="
	if r.Expected {
		op = "=="
	}
	prefix := fmt.Sprintf("[%s] %s [%s] ---> ", r.Left, op, r.Right)

	if r.Err != nil {
		return prefix + color.InRed("ERROR: "+r.Err.Error())
	}
	if r.Passed() {
		return prefix + color.InGreen("PASSED")
	}
	return prefix + color.InRed("FAILED")
}

// Summary writes every line plus a totals footer and reports whether the
// whole suite passed.
func Summary(w io.Writer, name string, results []Result) bool {
	if name != "" {
		fmt.Fprintln(w, color.InWhite(name))
	}

	passed := 0
	for _, r := range results {
		fmt.Fprintln(w, Line(r))
		if r.Passed() {
			passed++
		}
	}

	total := len(results)
	footer := fmt.Sprintf("%d/%d passed", passed, total)
	if passed == total {
		fmt.Fprintln(w, color.InGreen(footer))
		return true
	}
	fmt.Fprintln(w, color.InRed(footer))
	return false
}
