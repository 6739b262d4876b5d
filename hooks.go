package bimap

// Test hooks (kept separate so instrumentation doesn't clutter logic).
var (
	// splayedToRootHook is invoked after a node has been splayed to the
	// root of one of the two trees.
	splayedToRootHook func(node any)
)
