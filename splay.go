package bimap

// Splay engine. Every routine here operates on a single side of the shared
// record set through the side descriptor and never inspects the opposite
// axis. Splaying reshapes the tree on every access, including logically
// read-only ones; shape is a cache, content is the contract.

func (s side[L, R, K]) setParent(n, p *node[L, R]) {
	if n != nil {
		n.links[s.axis].parent = p
	}
}

// childDir returns the slot of p that holds c.
func (s side[L, R, K]) childDir(p, c *node[L, R]) int {
	if p.links[s.axis].child[1] == c {
		return 1
	}
	return 0
}

// rotate lifts x above its parent p, relinking the grandparent's child slot
// and the displaced subtree. Handedness is inferred from the slot x occupies.
func (s side[L, R, K]) rotate(x, p *node[L, R]) {
	g := p.links[s.axis].parent
	if g != nil {
		gl := &g.links[s.axis]
		if gl.child[0] == p {
			gl.child[0] = x
		} else {
			gl.child[1] = x
		}
	}

	d := s.childDir(p, x)
	inner := x.links[s.axis].child[1-d]
	p.links[s.axis].child[d] = inner
	s.setParent(inner, p)
	x.links[s.axis].child[1-d] = p

	x.links[s.axis].parent = g
	p.links[s.axis].parent = x
	s.stats.Rotations++
}

// splay rotates t up to the root of its tree: zig when the parent is the
// root, zig-zig when t and its parent occupy same-handed slots, zig-zag
// otherwise. Amortized O(log n) by the standard potential argument.
func (s side[L, R, K]) splay(t *node[L, R]) *node[L, R] {
	if t == nil {
		return nil
	}
	for {
		p := t.links[s.axis].parent
		if p == nil {
			break
		}
		g := p.links[s.axis].parent
		if g == nil {
			s.rotate(t, p)
			break
		}
		if s.childDir(p, t) == s.childDir(g, p) {
			// zig-zig rotates the parent first.
			s.rotate(p, g)
			s.rotate(t, p)
		} else {
			s.rotate(t, p)
			s.rotate(t, g)
		}
	}
	s.stats.Splays++
	if splayedToRootHook != nil {
		splayedToRootHook(t)
	}
	return t
}

// sink walks from t to the extreme node in direction d without splaying.
func (s side[L, R, K]) sink(t *node[L, R], d int) *node[L, R] {
	for t.links[s.axis].child[d] != nil {
		t = t.links[s.axis].child[d]
	}
	return t
}

// minimum returns the smallest node reachable from t, splayed to the root of
// t's parent chain. Splaying here keeps the amortized bound valid for the
// accesses that follow.
func (s side[L, R, K]) minimum(t *node[L, R]) *node[L, R] {
	return s.splay(s.sink(t, 0))
}

// findFrom descends from t toward key and splays the last visited node to
// the root of t's parent chain. When no exact match exists the splayed node
// is the nearest one on the search path, which doubles as a split point.
func (s side[L, R, K]) findFrom(t *node[L, R], key K) *node[L, R] {
	if t == nil {
		return nil
	}
	s.stats.Finds++
	for {
		lk := &t.links[s.axis]
		if s.less(key, s.key(t)) && lk.child[0] != nil {
			t = lk.child[0]
			continue
		}
		if s.less(s.key(t), key) && lk.child[1] != nil {
			t = lk.child[1]
			continue
		}
		break
	}
	return s.splay(t)
}

// find runs findFrom against the cached root and re-caches the result.
// It returns nil only for an empty tree.
func (s side[L, R, K]) find(key K) *node[L, R] {
	t := s.findFrom(*s.root, key)
	if t != nil {
		*s.root = t
	}
	return t
}

// split partitions the tree around key into a (keys ≤ key) and b (keys >
// key), leaving both halves detached from each other.
func (s side[L, R, K]) split(key K) (a, b *node[L, R]) {
	t := s.find(key)
	if t == nil {
		return nil, nil
	}
	lk := &t.links[s.axis]
	if !s.less(key, s.key(t)) {
		b = lk.child[1]
		s.setParent(b, nil)
		lk.child[1] = nil
		return t, b
	}
	a = lk.child[0]
	s.setParent(a, nil)
	lk.child[0] = nil
	return a, t
}

// merge joins two detached trees where every key in a precedes every key in
// b. The minimum of b is splayed to b's root and a attached as its left
// subtree.
func (s side[L, R, K]) merge(a, b *node[L, R]) *node[L, R] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	b = s.findFrom(b, s.key(a))
	b.links[s.axis].child[0] = a
	s.setParent(a, b)
	return b
}

// spliceRoot installs n as the tree's new root, splitting the current tree
// around n's key to form its children. n must not already be linked on this
// axis.
func (s side[L, R, K]) spliceRoot(n *node[L, R]) {
	a, b := s.split(s.key(n))
	lk := &n.links[s.axis]
	lk.child[0], lk.child[1] = a, b
	lk.parent = nil
	s.setParent(a, n)
	s.setParent(b, n)
	*s.root = n
}

// detachRoot unlinks the current root from this tree, merging its orphaned
// subtrees into the new root. The detached node's linkage on this axis is
// zeroed.
func (s side[L, R, K]) detachRoot() *node[L, R] {
	t := *s.root
	lk := &t.links[s.axis]
	s.setParent(lk.child[0], nil)
	s.setParent(lk.child[1], nil)
	*s.root = s.merge(lk.child[0], lk.child[1])
	lk.child[0], lk.child[1], lk.parent = nil, nil, nil
	return t
}

// step returns t's in-order neighbor in direction d (1 = successor,
// 0 = predecessor), or nil at the end of the ordering. No splaying.
func (s side[L, R, K]) step(t *node[L, R], d int) *node[L, R] {
	if c := t.links[s.axis].child[d]; c != nil {
		return s.sink(c, 1-d)
	}
	for {
		p := t.links[s.axis].parent
		if p == nil {
			return nil
		}
		if p.links[s.axis].child[1-d] == t {
			return p
		}
		t = p
	}
}

func (s side[L, R, K]) next(t *node[L, R]) *node[L, R] { return s.step(t, 1) }

func (s side[L, R, K]) previous(t *node[L, R]) *node[L, R] { return s.step(t, 0) }

// lowerBound returns the first node whose key is not less than key, splayed
// to the root, or nil when every key precedes key.
func (s side[L, R, K]) lowerBound(key K) *node[L, R] {
	t := s.find(key)
	if t == nil {
		return nil
	}
	if !s.less(s.key(t), key) {
		return t
	}
	if r := t.links[s.axis].child[1]; r != nil {
		m := s.minimum(r)
		*s.root = m
		return m
	}
	return nil
}

// upperBound returns the first node whose key is strictly greater than key,
// splayed to the root, or nil when no such node exists.
func (s side[L, R, K]) upperBound(key K) *node[L, R] {
	t := s.find(key)
	if t == nil {
		return nil
	}
	if s.less(key, s.key(t)) {
		return t
	}
	if r := t.links[s.axis].child[1]; r != nil {
		m := s.minimum(r)
		*s.root = m
		return m
	}
	return nil
}
