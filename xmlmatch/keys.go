package xmlmatch

import "github.com/spaolacci/murmur3"

// Key is a fixed-width structural fingerprint of a subtree.
// It is a fast digest, not a cryptographic one: collisions are
// astronomically unlikely but possible, and accepted.
type Key uint64

// golden is the 64-bit golden-ratio constant. It keeps CombineUniquely
// away from trivial fixed points when the accumulator starts at zero.
const golden Key = 0x9e3779b97f4a7c15

// CombineUniquely folds contributions into one key such that the result
// depends on both the value and the position of every contribution.
// Folding one at a time into a zero accumulator equals folding as a batch.
func CombineUniquely(contribs ...Key) Key {
	var acc Key
	for _, c := range contribs {
		acc ^= c + golden + (acc << 6) + (acc >> 2)
	}
	return acc
}

// CombineLoosely XOR-reduces keys into one. Commutative and associative:
// any permutation of the inputs yields the same result. No inputs yield
// the identity (zero). Used wherever sibling order must not matter.
func CombineLoosely(keys ...Key) Key {
	var acc Key
	for _, k := range keys {
		acc ^= k
	}
	return acc
}

// HashString digests a string into the key space. Used uniformly for
// element names, inline text, and attribute names/values.
func HashString(s string) Key {
	return Key(murmur3.Sum64([]byte(s)))
}
