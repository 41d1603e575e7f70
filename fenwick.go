// Package fenwick operates Fenwick trees stored in caller-owned slices.
//
// A Fenwick tree, or binary indexed tree, is a space-efficient
// representation of a list of numbers that can efficiently update
// elements and calculate prefix sums.
//
// Compared to a plain slice, a Fenwick tree achieves better balance
// between element update and prefix sum calculation – both operations
// run in O(log n) time – while using the same amount of memory. This is
// achieved by storing, at each position, the sum over a range of the
// underlying list whose extent is determined by the position's binary
// expansion.
//
// This package owns no storage: every function operates on a slice the
// caller allocates and keeps. The tree for an n-element list is simply
// a zeroed slice of length n (or a plain-values slice passed through
// Init). Conceptually, with a as the underlying list:
//
//	fw := make([]int64, 10)       // a == [0 0 0 0 0 0 0 0 0 0]
//	fenwick.Update(fw, 0, 3)      // a[0] += 3
//	fenwick.PrefixSum(fw, 9)      // a[0] + … + a[9] == 3
//	fenwick.Update(fw, 5, 9)      // a[5] += 9
//	fenwick.PrefixSum(fw, 4)      // == 3
//	fenwick.PrefixSum(fw, 5)      // == 12
//
// Indexing is zero-based throughout. The traversal sequences the
// operations follow are available on their own in the zerobased and
// onebased packages, which is also how trees of higher dimension are
// composed.
//
// Nothing here is safe for concurrent use with writers: an Update
// touches up to ⌈log2 n⌉+1 positions and makes no atomicity promise
// across them, so callers sharing a tree must bring their own
// synchronization.
package fenwick

import (
	"golang.org/x/exp/constraints"

	"github.com/caio/go-fenwick/zerobased"
)

// Number constrains the element type of a tree: any integer or float
// type, i.e. anything with addition and an additive inverse.
type Number interface {
	constraints.Integer | constraints.Float
}

// Update adds delta to the element at index i.
//
// Conceptually performs a[i] += delta on the underlying list a. It
// writes exactly the positions yielded by zerobased.Up, each once, in
// increasing order. Panics if i is out of range.
func Update[E Number](tree []E, i int, delta E) {
	_ = tree[i]
	s := zerobased.Up(i, len(tree))
	for p, ok := s.Next(); ok; p, ok = s.Next() {
		tree[p] += delta
	}
}

// PrefixSum returns the sum of the elements up to and including index
// i.
//
// Conceptually computes a[0] + … + a[i] on the underlying list a,
// reading exactly the positions yielded by zerobased.Down. Panics if i
// is out of range.
func PrefixSum[E Number](tree []E, i int) E {
	_ = tree[i]
	var sum E
	s := zerobased.Down(i)
	for p, ok := s.Next(); ok; p, ok = s.Next() {
		sum += tree[p]
	}
	return sum
}

// RangeSum returns the sum of the elements from index i to index j-1.
//
// The two bounds walk down independently until they meet, so the cost
// is proportional to log of the range width rather than two full
// prefix sums. Returns zero when j <= i.
func RangeSum[E Number](tree []E, i, j int) E {
	var sum E
	for j > i {
		sum += tree[j-1]
		j -= LowBit(j)
	}
	for i > j {
		sum -= tree[i-1]
		i -= LowBit(i)
	}
	return sum
}

// Value returns the element at index i.
//
// Conceptually reads a[i] from the underlying list a. Panics if i is
// out of range.
func Value[E Number](tree []E, i int) E {
	sum := tree[i]
	j := i + 1
	j -= LowBit(j)
	for i > j {
		sum -= tree[i-1]
		i -= LowBit(i)
	}
	return sum
}

// Set sets the element at index i to v.
//
// Conceptually performs a[i] = v on the underlying list a. Panics if i
// is out of range.
func Set[E Number](tree []E, i int, v E) {
	Update(tree, i, v-Value(tree, i))
}

// Init transforms a slice of plain values into Fenwick form, in place
// and in O(n) time. Afterwards tree answers queries as if every element
// had been applied with Update to a zeroed slice.
func Init[E Number](tree []E) {
	for i := range tree {
		if j := zerobased.NextUp(i); j < len(tree) {
			tree[j] += tree[i]
		}
	}
}
