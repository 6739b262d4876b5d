// Package bimap provides an in-memory bijective associative container: a set
// of (Left, Right) pairs in which every Left value and every Right value
// occur at most once, with amortized O(log n) lookup, insertion, deletion and
// ordered traversal from either side.
//
// The container is built on two splay trees sharing one physical record set.
// Each record is simultaneously a node of the Left-ordered and the
// Right-ordered tree, so converting a position on one side to the matching
// position on the other side is O(1).
//
// Splay trees reshape themselves on every access, so even logically
// read-only operations mutate the cached roots. All methods therefore take a
// pointer receiver and the container is not safe for concurrent use of any
// kind without external locking. A single operation may cost O(n) in the
// worst case; only the amortized cost over a sequence is O(log n).
package bimap

import "cmp"

// Bimap is a bijective map between Left keys of type L and Right keys of
// type R, ordered independently on both sides. The zero value is not usable;
// construct with New or NewWithLess.
type Bimap[L, R any] struct {
	roots     [2]*node[L, R]
	count     int
	leftLess  LessFunc[L]
	rightLess LessFunc[R]
	stats     Stats
}

// New returns an empty Bimap ordering both sides by <.
func New[L, R cmp.Ordered]() *Bimap[L, R] {
	return NewWithLess[L, R](lessOrdered[L], lessOrdered[R])
}

// NewWithLess returns an empty Bimap using the supplied strict weak orders.
// The comparators are fixed for the container's lifetime; they only change
// hands wholesale through Swap or Move.
func NewWithLess[L, R any](leftLess LessFunc[L], rightLess LessFunc[R]) *Bimap[L, R] {
	return &Bimap[L, R]{
		leftLess:  leftLess,
		rightLess: rightLess,
	}
}

func (m *Bimap[L, R]) leftSide() side[L, R, L] {
	return side[L, R, L]{
		axis:  axisLeft,
		root:  &m.roots[axisLeft],
		key:   func(n *node[L, R]) L { return n.left },
		less:  m.leftLess,
		stats: &m.stats,
	}
}

func (m *Bimap[L, R]) rightSide() side[L, R, R] {
	return side[L, R, R]{
		axis:  axisRight,
		root:  &m.roots[axisRight],
		key:   func(n *node[L, R]) R { return n.right },
		less:  m.rightLess,
		stats: &m.stats,
	}
}

// Len returns the number of pairs in the container.
func (m *Bimap[L, R]) Len() int { return m.count }

// Empty reports whether the container holds no pairs.
func (m *Bimap[L, R]) Empty() bool { return m.count == 0 }

// Equal reports whether m and other hold the same pairs: equal size and,
// walking both in left order, pairwise-equivalent Left and Right values
// under m's comparators. This is full-pair equality; two containers that
// agree on Left keys but map them to different Right values are not equal.
func (m *Bimap[L, R]) Equal(other *Bimap[L, R]) bool {
	if other == nil || m.count != other.count {
		return false
	}
	a, b := m.BeginLeft(), other.BeginLeft()
	for a.Valid() {
		if !equivalent(m.leftLess, a.n.left, b.n.left) ||
			!equivalent(m.rightLess, a.n.right, b.n.right) {
			return false
		}
		a.Next()
		b.Next()
	}
	return true
}

// Clone returns a deep copy of the container: the source is walked in left
// order and every pair re-inserted into a fresh Bimap through the regular
// insert path. The copy's Right-tree shape is whatever that insertion order
// produces; only content and ordering are part of the contract.
func (m *Bimap[L, R]) Clone() *Bimap[L, R] {
	out := NewWithLess[L, R](m.leftLess, m.rightLess)
	for c := m.BeginLeft(); c.Valid(); c.Next() {
		out.Insert(c.n.left, c.n.right)
	}
	return out
}

// Move transfers both roots, the count and the comparators into a fresh
// container and leaves m empty. Cursors bound to m before the move point at
// structure now owned by the result and must not be used through m.
func (m *Bimap[L, R]) Move() *Bimap[L, R] {
	out := &Bimap[L, R]{
		roots:     m.roots,
		count:     m.count,
		leftLess:  m.leftLess,
		rightLess: m.rightLess,
		stats:     m.stats,
	}
	m.roots = [2]*node[L, R]{}
	m.count = 0
	m.stats = Stats{}
	return out
}

// Swap exchanges the entire contents of m and other, comparators included.
func (m *Bimap[L, R]) Swap(other *Bimap[L, R]) {
	m.roots, other.roots = other.roots, m.roots
	m.count, other.count = other.count, m.count
	m.leftLess, other.leftLess = other.leftLess, m.leftLess
	m.rightLess, other.rightLess = other.rightLess, m.rightLess
	m.stats, other.stats = other.stats, m.stats
}

// Clear removes every pair. The traversal is iterative with an explicit
// stack so that a chain-shaped tree cannot overflow the goroutine stack, and
// each record's linkage is zeroed so stale cursors cannot silently walk a
// dead tree.
func (m *Bimap[L, R]) Clear() {
	var stack []*node[L, R]
	if r := m.roots[axisLeft]; r != nil {
		stack = append(stack, r)
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		lk := &n.links[axisLeft]
		if lk.child[0] != nil {
			stack = append(stack, lk.child[0])
		}
		if lk.child[1] != nil {
			stack = append(stack, lk.child[1])
		}
		n.links = [2]sideLinks[L, R]{}
	}
	m.roots = [2]*node[L, R]{}
	m.count = 0
}
