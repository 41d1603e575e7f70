// Package zerobased generates the index sequences for traversing
// Fenwick trees stored in zero-based arrays.
//
// A Fenwick tree, or binary indexed tree, stores range sums of an
// underlying list in a flat array of the same length; which ranges end
// up where is fully determined by the binary expansion of each
// position. Updating one element of the list and computing a prefix sum
// therefore reduce to two short walks over tree positions, derived from
// the starting index with nothing but bit manipulation. This package
// produces those walks; it never touches (or allocates) the tree
// itself, which stays entirely under the caller's control.
//
// Fenwick trees are traditionally described over one-based arrays,
// which keeps the index arithmetic tidy on paper. Go slices are
// zero-based, so this package folds the offset into the bit tricks
// themselves; package onebased provides the classical convention.
//
// The update ("up") sequence for index i visits every tree position
// whose range sum covers i, in increasing order. The query ("down")
// sequence for index i visits the positions whose range sums
// concatenate to the prefix a[0] + … + a[i], in decreasing order. Both
// walks take at most one step per bit of the index.
//
// Trees of higher dimension need no extra machinery: the coverage rule
// holds independently along each axis, so nesting one cursor per axis
// and touching every combination of yielded positions gives a
// D-dimensional tree with O((log n)^D) cost per operation. For two
// dimensions:
//
//	func update(tree [][]int64, i, j int, delta int64) {
//		ii := zerobased.Up(i, len(tree))
//		for x, ok := ii.Next(); ok; x, ok = ii.Next() {
//			jj := zerobased.Up(j, len(tree[x]))
//			for y, ok := jj.Next(); ok; y, ok = jj.Next() {
//				tree[x][y] += delta
//			}
//		}
//	}
//
//	func prefixSum(tree [][]int64, i, j int) int64 {
//		var sum int64
//		ii := zerobased.Down(i)
//		for x, ok := ii.Next(); ok; x, ok = ii.Next() {
//			jj := zerobased.Down(j)
//			for y, ok := jj.Next(); ok; y, ok = jj.Next() {
//				sum += tree[x][y]
//			}
//		}
//		return sum
//	}
package zerobased

// NextUp returns the tree position visited after i by the update
// traversal.
func NextUp(i int) int {
	return i | (i + 1)
}

// NextDown returns the tree position visited after i by the query
// traversal. The result is -1 once the traversal is exhausted.
func NextDown(i int) int {
	return (i & (i + 1)) - 1
}

// Up returns a cursor over the tree positions to touch when updating
// index i in a tree of the given length. Positions come out in strictly
// increasing order, starting at i, all below length.
//
// Cursors are plain values sharing no state: a copy iterates
// independently, and calling Up again with the same arguments replays
// the same sequence. Starting past the length (or below zero) yields an
// empty sequence.
func Up(i, length int) UpSeq {
	return UpSeq{pos: i, length: length}
}

// UpSeq is a finite cursor over update positions. See Up.
type UpSeq struct {
	pos, length int
}

// Next returns the next position of the traversal; ok is false once the
// sequence is exhausted.
func (s *UpSeq) Next() (pos int, ok bool) {
	if s.pos < 0 || s.pos >= s.length {
		return 0, false
	}
	pos = s.pos
	s.pos = NextUp(pos)
	return pos, true
}

// Down returns a cursor over the tree positions whose range sums add up
// to the prefix through index i. Positions come out in strictly
// decreasing order, starting at i; the walk bounds itself, so no length
// is needed. Starting below zero yields an empty sequence.
//
// Cursors are plain values sharing no state, exactly as with Up.
func Down(i int) DownSeq {
	return DownSeq{pos: i}
}

// DownSeq is a finite cursor over query positions. See Down.
type DownSeq struct {
	pos int
}

// Next returns the next position of the traversal; ok is false once the
// sequence is exhausted.
func (s *DownSeq) Next() (pos int, ok bool) {
	if s.pos < 0 {
		return 0, false
	}
	pos = s.pos
	s.pos = NextDown(pos)
	return pos, true
}
