package bimap

import (
	"cmp"
	"errors"
)

// LessFunc reports whether a orders strictly before b. It must describe a
// strict weak order. Two keys are treated as equivalent when neither orders
// before the other; equivalence derived this way is the only notion of key
// equality the container uses.
type LessFunc[T any] func(a, b T) bool

func lessOrdered[T cmp.Ordered](a, b T) bool { return a < b }

// equivalent reports whether a and b are the same key under less.
func equivalent[T any](less LessFunc[T], a, b T) bool {
	return !less(a, b) && !less(b, a)
}

var (
	// ErrKeyNotFound is returned by GetLeft and GetRight when the key is
	// absent. It is the only loud failure in the package; misses elsewhere
	// are reported through booleans or end cursors.
	ErrKeyNotFound = errors.New("key not found")

	// ErrDefaultInUse is returned by GetLeftOrDefault and GetRightOrDefault
	// when the zero value of the opposite side is already bound to another
	// key, so the pair cannot be synthesized without destroying a live
	// mapping.
	ErrDefaultInUse = errors.New("default value already bound to another key")
)
