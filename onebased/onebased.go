// Package onebased generates the index sequences for traversing
// Fenwick trees stored in classical one-based arrays.
//
// This is the convention Fenwick trees are usually described in: valid
// positions run from 1 through the array length, and the low bit of a
// position (see fenwick.LowBit) drives both walks directly. Package
// zerobased provides the same sequences with the offset folded in for
// Go's native slice indexing; either package composes to higher
// dimensions the same way, see the zerobased package documentation.
//
// The update ("up") sequence for position p visits every tree position
// whose range sum covers p, in increasing order. The query ("down")
// sequence for position p visits the positions whose range sums
// concatenate to the prefix a[1] + … + a[p], in decreasing order,
// stopping before 0.
package onebased

// NextUp returns the tree position visited after p by the update
// traversal: p plus the value of its lowest set bit.
func NextUp(p int) int {
	return p + p&-p
}

// NextDown returns the tree position visited after p by the query
// traversal: p with its lowest set bit cleared. The result is 0 once
// the traversal is exhausted.
func NextDown(p int) int {
	return p & (p - 1)
}

// Up returns a cursor over the tree positions to touch when updating
// position p in a tree of the given length. Positions come out in
// strictly increasing order, starting at p, all at most length.
//
// Cursors are plain values sharing no state: a copy iterates
// independently, and calling Up again with the same arguments replays
// the same sequence. Starting past the length (or below 1) yields an
// empty sequence.
func Up(p, length int) UpSeq {
	return UpSeq{pos: p, length: length}
}

// UpSeq is a finite cursor over update positions. See Up.
type UpSeq struct {
	pos, length int
}

// Next returns the next position of the traversal; ok is false once the
// sequence is exhausted.
func (s *UpSeq) Next() (pos int, ok bool) {
	if s.pos < 1 || s.pos > s.length {
		return 0, false
	}
	pos = s.pos
	s.pos = NextUp(pos)
	return pos, true
}

// Down returns a cursor over the tree positions whose range sums add up
// to the prefix through position p. Positions come out in strictly
// decreasing order, starting at p; the walk bounds itself, so no length
// is needed. Starting below 1 yields an empty sequence.
//
// Cursors are plain values sharing no state, exactly as with Up.
func Down(p int) DownSeq {
	return DownSeq{pos: p}
}

// DownSeq is a finite cursor over query positions. See Down.
type DownSeq struct {
	pos int
}

// Next returns the next position of the traversal; ok is false once the
// sequence is exhausted.
func (s *DownSeq) Next() (pos int, ok bool) {
	if s.pos < 1 {
		return 0, false
	}
	pos = s.pos
	s.pos = NextDown(pos)
	return pos, true
}
