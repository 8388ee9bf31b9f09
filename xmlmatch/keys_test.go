package xmlmatch

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCombineLooselyCommutative(t *testing.T) {
	x := HashString("x")
	y := HashString("y")
	z := HashString("z")

	require.Equal(t, CombineLoosely(x, y), CombineLoosely(y, x))
	require.Equal(t, CombineLoosely(x, y, z), CombineLoosely(z, x, y))
	require.Equal(t, CombineLoosely(x, y, z), CombineLoosely(y, z, x))
}

func TestCombineLooselyIdentity(t *testing.T) {
	require.Equal(t, Key(0), CombineLoosely())

	x := HashString("x")
	require.Equal(t, x, CombineLoosely(x))
	require.Equal(t, x, CombineLoosely(0, x))
	require.Equal(t, Key(0), CombineLoosely(x, x))
}

func TestCombineUniquelyOrderSensitive(t *testing.T) {
	x := HashString("x")
	y := HashString("y")

	require.NotEqual(t, CombineUniquely(x, y), CombineUniquely(y, x))
	require.NotEqual(t, CombineUniquely(x, y, x), CombineUniquely(x, x, y))
}

func TestCombineUniquelyIncrementalEqualsBatch(t *testing.T) {
	contribs := []Key{HashString("a"), HashString("b"), HashString("c"), HashString("d")}

	batch := CombineUniquely(contribs...)

	// One contribution at a time into a zero accumulator, the mixing
	// step spelled out, must agree with the batch form.
	var acc Key
	for _, c := range contribs {
		acc ^= c + golden + (acc << 6) + (acc >> 2)
	}

	require.Equal(t, batch, acc)
	require.Equal(t, batch, CombineUniquely(contribs[0], contribs[1], contribs[2], contribs[3]))
}

func TestCombineUniquelyValueSensitive(t *testing.T) {
	x := HashString("x")
	y := HashString("y")

	require.NotEqual(t, CombineUniquely(x), CombineUniquely(y))
	require.NotEqual(t, CombineUniquely(x, y), CombineUniquely(x, x))
}

func TestHashStringDeterministic(t *testing.T) {
	require.Equal(t, HashString("node"), HashString("node"))
	require.NotEqual(t, HashString("node"), HashString("nodf"))
	require.NotEqual(t, HashString(""), HashString(" "))
}

func TestHashStringAvalanche(t *testing.T) {
	// A tiny input change should flip a large share of output bits.
	pairs := [][2]string{
		{"a", "b"},
		{"attribute", "attributf"},
		{"<root>", "<root>x"},
	}
	for _, p := range pairs {
		diff := bits.OnesCount64(uint64(HashString(p[0]) ^ HashString(p[1])))
		require.Greater(t, diff, 8, "%q vs %q flipped only %d bits", p[0], p[1], diff)
		require.Less(t, diff, 56, "%q vs %q flipped %d bits", p[0], p[1], diff)
	}
}

func TestKeyStringHex(t *testing.T) {
	require.Equal(t, "0000000000000000", Key(0).String())
	require.Equal(t, "00000000000000ff", Key(255).String())
	require.Equal(t, "9e3779b97f4a7c15", golden.String())
}
