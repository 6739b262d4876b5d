package bimap

import "testing"

// assertBimapInvariants walks both trees and fails the test on any
// structural violation: per-side BST order under that side's comparator,
// parent/child link symmetry, identical record sets in both trees, and size
// agreement.
func assertBimapInvariants[L, R any](t *testing.T, m *Bimap[L, R]) {
	t.Helper()

	leftSet := collectTree(t, m.leftSide())
	rightSet := collectTree(t, m.rightSide())

	if len(leftSet) != m.Len() {
		t.Fatalf("left tree holds %d records, Len reports %d", len(leftSet), m.Len())
	}
	if len(rightSet) != m.Len() {
		t.Fatalf("right tree holds %d records, Len reports %d", len(rightSet), m.Len())
	}
	for n := range leftSet {
		if !rightSet[n] {
			t.Fatalf("record %p linked into the left tree but not the right tree", n)
		}
	}

	assertSideOrdered(t, m.leftSide())
	assertSideOrdered(t, m.rightSide())
}

func collectTree[L, R, K any](t *testing.T, s side[L, R, K]) map[*node[L, R]]bool {
	t.Helper()

	seen := make(map[*node[L, R]]bool)
	var stack []*node[L, R]
	if r := *s.root; r != nil {
		if r.links[s.axis].parent != nil {
			t.Fatalf("root has a parent on axis %d", s.axis)
		}
		stack = append(stack, r)
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[n] {
			t.Fatalf("cycle detected on axis %d", s.axis)
		}
		seen[n] = true
		for d := 0; d < 2; d++ {
			c := n.links[s.axis].child[d]
			if c == nil {
				continue
			}
			if c.links[s.axis].parent != n {
				t.Fatalf("broken parent link on axis %d", s.axis)
			}
			stack = append(stack, c)
		}
	}
	return seen
}

func assertSideOrdered[L, R, K any](t *testing.T, s side[L, R, K]) {
	t.Helper()

	r := *s.root
	if r == nil {
		return
	}
	n := s.sink(r, 0)
	for {
		nx := s.next(n)
		if nx == nil {
			return
		}
		if !s.less(s.key(n), s.key(nx)) {
			t.Fatalf("keys out of order on axis %d", s.axis)
		}
		n = nx
	}
}
