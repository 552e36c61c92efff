package trie

// Trie owns the root node and the metadata the original core stuffs into
// the root's data slot: maxTau, bottom, and the per-depth frontier cache
// ("miles"). Keeping them as ordinary fields on Trie instead of type-punning
// through root.data sidesteps the empty-string hazard the original C core
// flags as a FIXME (inserting "" would return the root, and a later
// SetData call on that "terminal node" would have clobbered the
// metadata). InsertString still rejects the empty string explicitly, both
// because the spec requires it and because depth-0 can never be a terminal
// depth.
type Trie struct {
	root *Node

	maxTau int
	bottom int

	// miles[d] holds the frontier of nodes alive at query depth d during
	// the most recent search. Allocated lazily, in full, on first use.
	miles []*NodeArray
}

// New constructs an empty trie with the given maxTau (upper bound on any
// search's tau, must be in [0,8]) and bottom (the fixed depth, i.e. indexed
// string length, at which hits are emitted).
func New(maxTau, bottom int) (*Trie, error) {
	if maxTau < 0 || maxTau > maxTauLimit {
		recordError(ErrTauTooLarge)
		return nil, ErrTauTooLarge
	}
	if bottom < 1 || bottom >= M {
		recordError(ErrBottomOutOfRange)
		return nil, ErrBottomOutOfRange
	}
	return &Trie{
		root:   newNode(maxTau),
		maxTau: maxTau,
		bottom: bottom,
	}, nil
}

// MaxTau returns the trie's construction-time upper bound on tau.
func (t *Trie) MaxTau() int { return t.maxTau }

// Bottom returns the fixed depth at which hits are emitted.
func (t *Trie) Bottom() int { return t.bottom }

// Root returns the root node. Exposed for dash/diagnostic use; searches
// should go through Search.
func (t *Trie) Root() *Node { return t.root }

// ensureMiles lazily allocates the full miles array and seeds miles[0]
// with exactly the root, matching init_miles in the original core.
func (t *Trie) ensureMiles() {
	if t.miles != nil {
		return
	}
	miles := make([]*NodeArray, M)
	for i := range miles {
		miles[i] = NewNodeArray()
	}
	miles[0].Push(t.root)
	t.miles = miles
}
