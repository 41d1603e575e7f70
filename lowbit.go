package fenwick

import "golang.org/x/exp/constraints"

// LowBit returns the value of the least significant set bit of x, i.e.
// x with all but the rightmost 1 of its binary representation cleared.
// LowBit(0) is 0. For signed types x must be non-negative.
//
// This is the quantity driving every Fenwick traversal; it equals
// 1 << trailing-zero-count for non-zero x.
func LowBit[T constraints.Integer](x T) T {
	return x & -x
}
