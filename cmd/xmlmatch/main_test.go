package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aqilarik/xmlmatch/xmlmatch"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCompareEquivalent(t *testing.T) {
	out, err := execute(t, "compare", "../../testdata/1.xml", "../../testdata/2.xml")
	require.NoError(t, err)
	require.Contains(t, out, "equivalent")
}

func TestCompareNotEquivalent(t *testing.T) {
	out, err := execute(t, "compare", "../../testdata/3.xml", "../../testdata/4.xml")
	require.ErrorIs(t, err, errVerdict)
	require.Contains(t, out, "not equivalent")
}

func TestCompareWithIgnore(t *testing.T) {
	_, err := execute(t, "compare", "../../testdata/13.xml", "../../testdata/14.xml")
	require.ErrorIs(t, err, errVerdict)

	_, err = execute(t, "compare", "../../testdata/13.xml", "../../testdata/14.xml",
		"--ignore", `name == "timestamp"`)
	require.NoError(t, err)
}

func TestCompareLoadFailure(t *testing.T) {
	_, err := execute(t, "compare", "../../testdata/1.xml", "../../testdata/missing.xml")
	require.Error(t, err)
	require.False(t, errors.Is(err, errVerdict))
}

func TestCompareBadIgnore(t *testing.T) {
	_, err := execute(t, "compare", "../../testdata/1.xml", "../../testdata/2.xml",
		"--ignore", "name ==")
	require.Error(t, err)
	require.False(t, errors.Is(err, errVerdict))
}

func TestRunSuite(t *testing.T) {
	out, err := execute(t, "run", "../../testdata/suite.yaml")
	require.NoError(t, err)
	require.Contains(t, out, "8/8 passed")
}

func TestMatcherForMemoizesPerExpression(t *testing.T) {
	matchers := map[string]*xmlmatch.Matcher{}

	m1, err := matcherFor(`name == "timestamp"`, matchers)
	require.NoError(t, err)
	m2, err := matcherFor(`name == "timestamp"`, matchers)
	require.NoError(t, err)
	require.Same(t, m1, m2)

	plain, err := matcherFor("", matchers)
	require.NoError(t, err)
	require.NotSame(t, m1, plain)
	require.Len(t, matchers, 2)

	// Compile failures are reported, never cached.
	_, err = matcherFor(`name ==`, matchers)
	require.Error(t, err)
	require.Len(t, matchers, 2)
}

func TestRunSuiteMissingFile(t *testing.T) {
	_, err := execute(t, "run", "../../testdata/nope.yaml")
	require.Error(t, err)
	require.False(t, errors.Is(err, errVerdict))
}

func TestKey(t *testing.T) {
	out1, err := execute(t, "key", "../../testdata/1.xml")
	require.NoError(t, err)
	out2, err := execute(t, "key", "../../testdata/2.xml")
	require.NoError(t, err)
	require.Equal(t, out1, out2)
	require.Len(t, bytes.TrimSpace([]byte(out1)), 16)

	out4, err := execute(t, "key", "../../testdata/4.xml")
	require.NoError(t, err)
	require.NotEqual(t, out1, out4)
}
