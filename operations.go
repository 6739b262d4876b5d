package bimap

// Mutating operations and keyed lookups. Each logical operation drives the
// splay engine twice, once per side, and keeps both views consistent: a
// record is either linked into both trees or into neither.

// Insert adds the pair (left, right) and returns a cursor to it. Insertion
// succeeds only if neither key is present on its side; if either is taken,
// Insert returns an end cursor and false, allocates nothing and leaves the
// size unchanged. The probing finds may still reshape both trees, which is a
// cache effect, not a semantic change.
func (m *Bimap[L, R]) Insert(left L, right R) (LeftCursor[L, R], bool) {
	ls, rs := m.leftSide(), m.rightSide()
	lf := ls.find(left)
	rf := rs.find(right)
	if ls.matches(lf, left) || rs.matches(rf, right) {
		return LeftCursor[L, R]{m: m}, false
	}

	n := &node[L, R]{left: left, right: right}
	ls.spliceRoot(n)
	rs.spliceRoot(n)
	m.count++
	return LeftCursor[L, R]{m: m, n: n}, true
}

// detach splices n out of both trees and drops it from the container. n must
// be a live record of m.
func (m *Bimap[L, R]) detach(n *node[L, R]) {
	ls, rs := m.leftSide(), m.rightSide()
	// The record participates in both trees, so it can be splayed to the
	// root of each before the merges.
	m.roots[axisLeft] = ls.splay(n)
	m.roots[axisRight] = rs.splay(n)
	ls.detachRoot()
	rs.detachRoot()
	m.count--
}

// EraseLeft removes the pair keyed by key on the Left side and reports
// whether a pair was removed.
func (m *Bimap[L, R]) EraseLeft(key L) bool {
	ls := m.leftSide()
	t := ls.find(key)
	if !ls.matches(t, key) {
		return false
	}
	m.detach(t)
	return true
}

// EraseRight removes the pair keyed by key on the Right side and reports
// whether a pair was removed.
func (m *Bimap[L, R]) EraseRight(key R) bool {
	rs := m.rightSide()
	t := rs.find(key)
	if !rs.matches(t, key) {
		return false
	}
	m.detach(t)
	return true
}

// EraseLeftAt removes the record under c and returns a cursor to its
// in-order successor on the Left side, or the end cursor. c must be a valid
// cursor of m; the end cursor is returned unchanged.
func (m *Bimap[L, R]) EraseLeftAt(c LeftCursor[L, R]) LeftCursor[L, R] {
	if c.n == nil {
		return c
	}
	succ := m.leftSide().next(c.n)
	m.detach(c.n)
	return LeftCursor[L, R]{m: m, n: succ}
}

// EraseRightAt removes the record under c and returns a cursor to its
// in-order successor on the Right side, or the end cursor.
func (m *Bimap[L, R]) EraseRightAt(c RightCursor[L, R]) RightCursor[L, R] {
	if c.n == nil {
		return c
	}
	succ := m.rightSide().next(c.n)
	m.detach(c.n)
	return RightCursor[L, R]{m: m, n: succ}
}

// EraseLeftRange removes every record in [first, last) in Left order and
// returns last.
func (m *Bimap[L, R]) EraseLeftRange(first, last LeftCursor[L, R]) LeftCursor[L, R] {
	for first != last && first.n != nil {
		first = m.EraseLeftAt(first)
	}
	return last
}

// EraseRightRange removes every record in [first, last) in Right order and
// returns last.
func (m *Bimap[L, R]) EraseRightRange(first, last RightCursor[L, R]) RightCursor[L, R] {
	for first != last && first.n != nil {
		first = m.EraseRightAt(first)
	}
	return last
}

// GetLeft returns the Right value paired with key. It returns ErrKeyNotFound
// when the key is absent.
func (m *Bimap[L, R]) GetLeft(key L) (R, error) {
	ls := m.leftSide()
	t := ls.find(key)
	if !ls.matches(t, key) {
		var zero R
		return zero, ErrKeyNotFound
	}
	return t.right, nil
}

// GetRight returns the Left value paired with key. It returns ErrKeyNotFound
// when the key is absent.
func (m *Bimap[L, R]) GetRight(key R) (L, error) {
	rs := m.rightSide()
	t := rs.find(key)
	if !rs.matches(t, key) {
		var zero L
		return zero, ErrKeyNotFound
	}
	return t.left, nil
}

// GetLeftOrDefault returns the Right value paired with key, synthesizing the
// pair (key, zero R) when the key is absent. Synthesis is refused with
// ErrDefaultInUse if the zero value is already bound to another Left key; no
// live pair is ever evicted on behalf of a default.
func (m *Bimap[L, R]) GetLeftOrDefault(key L) (R, error) {
	ls := m.leftSide()
	if t := ls.find(key); ls.matches(t, key) {
		return t.right, nil
	}

	var zero R
	rs := m.rightSide()
	if t := rs.find(zero); rs.matches(t, zero) {
		return zero, ErrDefaultInUse
	}
	// Both keys were just verified absent, so this cannot conflict.
	m.Insert(key, zero)
	return zero, nil
}

// GetRightOrDefault returns the Left value paired with key, synthesizing the
// pair (zero L, key) when the key is absent. Synthesis is refused with
// ErrDefaultInUse if the zero value is already bound to another Right key.
func (m *Bimap[L, R]) GetRightOrDefault(key R) (L, error) {
	rs := m.rightSide()
	if t := rs.find(key); rs.matches(t, key) {
		return t.left, nil
	}

	var zero L
	ls := m.leftSide()
	if t := ls.find(zero); ls.matches(t, zero) {
		return zero, ErrDefaultInUse
	}
	m.Insert(zero, key)
	return zero, nil
}
