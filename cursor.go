package bitpack

import "slices"

// Cursor provides sequential and skip-ahead iteration over a compressed
// Codec. Next and the linear SkipTo read one element per step through Get
// without materializing the array; the sorted SkipTo calls Decompress.
// A Cursor is not safe for concurrent use.
type Cursor struct {
	c   Codec
	pos int
}

// NewCursor returns a Cursor positioned before the first element of c. c
// must already be compressed.
func NewCursor(c Codec) *Cursor {
	return &Cursor{c: c}
}

// Pos returns the current position for sequential iteration.
func (cur *Cursor) Pos() int {
	return cur.pos
}

// Reset moves the cursor back to the beginning.
func (cur *Cursor) Reset() {
	cur.pos = 0
}

// Next returns the value at the current position and advances by one.
// ok is false once the cursor has passed the last element.
func (cur *Cursor) Next() (value uint32, pos int, ok bool) {
	if cur.pos >= cur.c.N() {
		return 0, 0, false
	}
	v, err := cur.c.Get(cur.pos)
	if err != nil {
		return 0, 0, false
	}
	pos = cur.pos
	cur.pos++
	return v, pos, true
}

// SkipTo advances the cursor to the first value >= req at or after the
// current position and returns it. If sorted is true the search uses a
// binary search over a materialized tail (Decompress is required either
// way to support binary search without a sorted-values index on Codec); if
// false it falls back to a linear scan via repeated Get calls, touching no
// more elements than the distance to the match.
func (cur *Cursor) SkipTo(req uint32, sorted bool) (value uint32, pos int, ok bool) {
	n := cur.c.N()
	if cur.pos >= n {
		return 0, 0, false
	}

	if sorted {
		tail := cur.c.Decompress()[cur.pos:]
		idx, found := slices.BinarySearch(tail, req)
		if !found && idx >= len(tail) {
			cur.pos = n
			return 0, 0, false
		}
		absPos := cur.pos + idx
		cur.pos = absPos + 1
		v, err := cur.c.Get(absPos)
		if err != nil {
			return 0, 0, false
		}
		return v, absPos, true
	}

	for cur.pos < n {
		v, err := cur.c.Get(cur.pos)
		if err != nil {
			return 0, 0, false
		}
		p := cur.pos
		cur.pos++
		if v >= req {
			return v, p, true
		}
	}
	return 0, 0, false
}
