package bimap

// Cursors are bidirectional traversal handles bound to one side's ordering.
// A cursor points either at a live record or at the end sentinel, and stays
// pinned to its record across splays, because record identity never changes
// when tree shape does. Flip converts a cursor to the opposite side's cursor
// over the same record in O(1).
//
// A cursor is invalidated the instant its record is erased; an invalidated
// cursor may only be compared or discarded, anything else is undefined.
// Cursors compare with ==: two cursors are equal when they belong to the
// same container and sit on the same record (or both at the end).

// LeftCursor traverses the container in Left-key order.
type LeftCursor[L, R any] struct {
	m *Bimap[L, R]
	n *node[L, R]
}

// RightCursor traverses the container in Right-key order.
type RightCursor[L, R any] struct {
	m *Bimap[L, R]
	n *node[L, R]
}

// BeginLeft returns a cursor at the smallest Left key, or the end cursor for
// an empty container.
func (m *Bimap[L, R]) BeginLeft() LeftCursor[L, R] {
	r := m.roots[axisLeft]
	if r == nil {
		return LeftCursor[L, R]{m: m}
	}
	return LeftCursor[L, R]{m: m, n: m.leftSide().sink(r, 0)}
}

// EndLeft returns the Left side's end sentinel cursor.
func (m *Bimap[L, R]) EndLeft() LeftCursor[L, R] {
	return LeftCursor[L, R]{m: m}
}

// BeginRight returns a cursor at the smallest Right key, or the end cursor
// for an empty container.
func (m *Bimap[L, R]) BeginRight() RightCursor[L, R] {
	r := m.roots[axisRight]
	if r == nil {
		return RightCursor[L, R]{m: m}
	}
	return RightCursor[L, R]{m: m, n: m.rightSide().sink(r, 0)}
}

// EndRight returns the Right side's end sentinel cursor.
func (m *Bimap[L, R]) EndRight() RightCursor[L, R] {
	return RightCursor[L, R]{m: m}
}

// FindLeft returns a cursor at the pair keyed by key on the Left side, or
// the end cursor when the key is absent.
func (m *Bimap[L, R]) FindLeft(key L) LeftCursor[L, R] {
	ls := m.leftSide()
	if t := ls.find(key); ls.matches(t, key) {
		return LeftCursor[L, R]{m: m, n: t}
	}
	return LeftCursor[L, R]{m: m}
}

// FindRight returns a cursor at the pair keyed by key on the Right side, or
// the end cursor when the key is absent.
func (m *Bimap[L, R]) FindRight(key R) RightCursor[L, R] {
	rs := m.rightSide()
	if t := rs.find(key); rs.matches(t, key) {
		return RightCursor[L, R]{m: m, n: t}
	}
	return RightCursor[L, R]{m: m}
}

// LowerBoundLeft returns a cursor at the first pair whose Left key is not
// less than key, or the end cursor.
func (m *Bimap[L, R]) LowerBoundLeft(key L) LeftCursor[L, R] {
	return LeftCursor[L, R]{m: m, n: m.leftSide().lowerBound(key)}
}

// UpperBoundLeft returns a cursor at the first pair whose Left key is
// strictly greater than key, or the end cursor.
func (m *Bimap[L, R]) UpperBoundLeft(key L) LeftCursor[L, R] {
	return LeftCursor[L, R]{m: m, n: m.leftSide().upperBound(key)}
}

// LowerBoundRight returns a cursor at the first pair whose Right key is not
// less than key, or the end cursor.
func (m *Bimap[L, R]) LowerBoundRight(key R) RightCursor[L, R] {
	return RightCursor[L, R]{m: m, n: m.rightSide().lowerBound(key)}
}

// UpperBoundRight returns a cursor at the first pair whose Right key is
// strictly greater than key, or the end cursor.
func (m *Bimap[L, R]) UpperBoundRight(key R) RightCursor[L, R] {
	return RightCursor[L, R]{m: m, n: m.rightSide().upperBound(key)}
}

// AscendLeft calls fn for every pair in ascending Left order until fn
// returns false.
func (m *Bimap[L, R]) AscendLeft(fn func(left L, right R) bool) {
	for c := m.BeginLeft(); c.Valid(); c.Next() {
		if !fn(c.n.left, c.n.right) {
			return
		}
	}
}

// AscendRight calls fn for every pair in ascending Right order until fn
// returns false.
func (m *Bimap[L, R]) AscendRight(fn func(right R, left L) bool) {
	for c := m.BeginRight(); c.Valid(); c.Next() {
		if !fn(c.n.right, c.n.left) {
			return
		}
	}
}

// Valid reports whether the cursor points at a record.
func (c LeftCursor[L, R]) Valid() bool { return c.n != nil }

// Value returns the Left key under the cursor. It must not be called on an
// end cursor.
func (c LeftCursor[L, R]) Value() L { return c.n.left }

// Pair returns both values of the record under the cursor.
func (c LeftCursor[L, R]) Pair() (L, R) { return c.n.left, c.n.right }

// Next advances to the in-order successor and reports whether the cursor
// still points at a record. Advancing the end cursor is a no-op.
func (c *LeftCursor[L, R]) Next() bool {
	if c.n == nil {
		return false
	}
	c.n = c.m.leftSide().next(c.n)
	return c.n != nil
}

// Prev retreats to the in-order predecessor. From the end cursor it moves to
// the largest Left key. It reports false, without moving, at the first
// record or on an empty container.
func (c *LeftCursor[L, R]) Prev() bool {
	if c.n == nil {
		r := c.m.roots[axisLeft]
		if r == nil {
			return false
		}
		c.n = c.m.leftSide().sink(r, 1)
		return true
	}
	p := c.m.leftSide().previous(c.n)
	if p == nil {
		return false
	}
	c.n = p
	return true
}

// Flip returns the Right-side cursor over the same record. Flipping the end
// cursor yields the Right side's end cursor.
func (c LeftCursor[L, R]) Flip() RightCursor[L, R] {
	return RightCursor[L, R]{m: c.m, n: c.n}
}

// Valid reports whether the cursor points at a record.
func (c RightCursor[L, R]) Valid() bool { return c.n != nil }

// Value returns the Right key under the cursor. It must not be called on an
// end cursor.
func (c RightCursor[L, R]) Value() R { return c.n.right }

// Pair returns both values of the record under the cursor.
func (c RightCursor[L, R]) Pair() (R, L) { return c.n.right, c.n.left }

// Next advances to the in-order successor and reports whether the cursor
// still points at a record. Advancing the end cursor is a no-op.
func (c *RightCursor[L, R]) Next() bool {
	if c.n == nil {
		return false
	}
	c.n = c.m.rightSide().next(c.n)
	return c.n != nil
}

// Prev retreats to the in-order predecessor. From the end cursor it moves to
// the largest Right key. It reports false, without moving, at the first
// record or on an empty container.
func (c *RightCursor[L, R]) Prev() bool {
	if c.n == nil {
		r := c.m.roots[axisRight]
		if r == nil {
			return false
		}
		c.n = c.m.rightSide().sink(r, 1)
		return true
	}
	p := c.m.rightSide().previous(c.n)
	if p == nil {
		return false
	}
	c.n = p
	return true
}

// Flip returns the Left-side cursor over the same record. Flipping the end
// cursor yields the Left side's end cursor.
func (c RightCursor[L, R]) Flip() LeftCursor[L, R] {
	return LeftCursor[L, R]{m: c.m, n: c.n}
}
