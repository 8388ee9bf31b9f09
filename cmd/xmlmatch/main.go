package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/aqilarik/xmlmatch/internal/manifest"
	"github.com/aqilarik/xmlmatch/internal/report"
	"github.com/aqilarik/xmlmatch/internal/xload"
	"github.com/aqilarik/xmlmatch/xmlmatch"
)

// errVerdict marks "the comparison ran fine and the answer is no":
// exit code 1, as opposed to 2 for anything that kept us from answering.
var errVerdict = errors.New("not equivalent")

func main() {
	err := newRootCmd().Execute()
	if err == nil {
		return
	}
	if errors.Is(err, errVerdict) {
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(2)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "xmlmatch",
		Short:         "Order-insensitive structural comparison of XML documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCompareCmd(), newRunCmd(), newKeyCmd())
	return root
}

func newCompareCmd() *cobra.Command {
	var ignoreExpr string
	var parallel bool

	cmd := &cobra.Command{
		Use:   "compare <left.xml> <right.xml>",
		Short: "Compare two documents; exit 0 when equivalent, 1 when not",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []xmlmatch.Option{xmlmatch.WithParallel(parallel)}
			if ignoreExpr != "" {
				opts = append(opts, xmlmatch.WithIgnore(ignoreExpr))
			}
			m, err := xmlmatch.New(opts...)
			if err != nil {
				return err
			}

			lhs, err := xload.File(args[0])
			if err != nil {
				return err
			}
			rhs, err := xload.File(args[1])
			if err != nil {
				return err
			}

			if m.MatchLoosely(lhs, rhs) {
				fmt.Fprintln(cmd.OutOrStdout(), "equivalent")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "not equivalent")
			return errVerdict
		},
	}

	cmd.Flags().StringVar(&ignoreExpr, "ignore", "", "expr predicate over (name, text, attrs, depth); matching subtrees are excluded")
	cmd.Flags().BoolVar(&parallel, "parallel", false, "hash root children concurrently")
	return cmd
}

func newRunCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "run <suite.yaml>",
		Short: "Run a suite of expected comparisons and print a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			suite, err := manifest.Load(args[0])
			if err != nil {
				return err
			}
			if dir == "" {
				dir = filepath.Dir(args[0])
			}

			matchers := map[string]*xmlmatch.Matcher{}
			results := make([]report.Result, 0, len(suite.Cases))
			for _, c := range suite.Cases {
				results = append(results, runCase(c, dir, matchers))
			}

			if !report.Summary(cmd.OutOrStdout(), suite.Name, results) {
				return errVerdict
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "directory the suite's file names are resolved against (default: the suite's own directory)")
	return cmd
}

func runCase(c manifest.Case, dir string, matchers map[string]*xmlmatch.Matcher) report.Result {
	res := report.Result{Left: c.Left, Right: c.Right, Expected: c.Equivalent}

	// A bad ignore expression fails its own case, not the whole run.
	m, err := matcherFor(c.Ignore, matchers)
	if err != nil {
		res.Err = err
		return res
	}

	lhs, err := xload.File(filepath.Join(dir, c.Left))
	if err != nil {
		res.Err = err
		return res
	}
	rhs, err := xload.File(filepath.Join(dir, c.Right))
	if err != nil {
		res.Err = err
		return res
	}

	res.Actual = m.MatchLoosely(lhs, rhs)
	return res
}

// matcherFor memoizes one matcher per distinct ignore expression, so a
// suite repeating the same expression compiles it once. Failed compiles
// are not cached: each case reports its own error.
func matcherFor(ignoreExpr string, matchers map[string]*xmlmatch.Matcher) (*xmlmatch.Matcher, error) {
	if m, ok := matchers[ignoreExpr]; ok {
		return m, nil
	}

	opts := []xmlmatch.Option{}
	if ignoreExpr != "" {
		opts = append(opts, xmlmatch.WithIgnore(ignoreExpr))
	}
	m, err := xmlmatch.New(opts...)
	if err != nil {
		return nil, err
	}
	matchers[ignoreExpr] = m
	return m, nil
}

func newKeyCmd() *cobra.Command {
	var ignoreExpr string

	cmd := &cobra.Command{
		Use:   "key <file.xml>",
		Short: "Print the root fingerprint of a document in hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []xmlmatch.Option{}
			if ignoreExpr != "" {
				opts = append(opts, xmlmatch.WithIgnore(ignoreExpr))
			}
			m, err := xmlmatch.New(opts...)
			if err != nil {
				return err
			}

			doc, err := xload.File(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), m.NodeKey(doc.Root))
			return nil
		},
	}

	cmd.Flags().StringVar(&ignoreExpr, "ignore", "", "expr predicate over (name, text, attrs, depth); matching subtrees are excluded")
	return cmd
}
