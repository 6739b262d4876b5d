package bimap

// Linkage axes. Every record carries one set of links per axis, so it is a
// node of the Left-ordered and the Right-ordered tree at the same time.
const (
	axisLeft  = 0
	axisRight = 1
)

// sideLinks is one tree position of a record: two child slots indexed by
// direction (0 = smaller side, 1 = greater side) and a parent pointer.
type sideLinks[L, R any] struct {
	child  [2]*node[L, R]
	parent *node[L, R]
}

// node holds one (Left, Right) pair together with its position in both
// trees. A node exists from a successful Insert until it is erased or the
// container is cleared, and is the container's only per-pair allocation.
type node[L, R any] struct {
	left  L
	right R
	links [2]sideLinks[L, R]
}

// side exposes one ordering of the shared record set to the splay engine:
// which linkage axis to follow, where the cached root lives, how to read
// that side's key, and the comparator. The engine is written once against
// this descriptor and instantiated for both sides.
type side[L, R, K any] struct {
	axis  int
	root  **node[L, R]
	key   func(*node[L, R]) K
	less  LessFunc[K]
	stats *Stats
}

// matches reports whether n is live and keyed exactly at key on this side.
func (s side[L, R, K]) matches(n *node[L, R], key K) bool {
	return n != nil && equivalent(s.less, s.key(n), key)
}
