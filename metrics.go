package bimap

// Stats counts engine work since construction (or the last Move/Swap, which
// transfer the counters along with the trees). The counters enable amortized
// cost analysis in benchmarks: rotations per operation stay logarithmic over
// a sequence even though a single find may rotate O(n) times.
//
// Plain integers, not atomics: the container is single-threaded by contract.
type Stats struct {
	// Finds counts descents through either tree, including the probing
	// finds of failed inserts.
	Finds int64
	// Splays counts splay-to-root completions.
	Splays int64
	// Rotations counts individual rotations performed by splays.
	Rotations int64
}

// Stats returns a snapshot of the operation counters.
func (m *Bimap[L, R]) Stats() Stats { return m.stats }
