package trie

// initialNarrayCap mirrors new_narray's starting capacity in the original
// core.
const initialNarrayCap = 32

// NodeArray is a growable stack of node references. It backs both the hit
// collector passed to Search and the per-depth frontier caches in
// Trie.miles.
type NodeArray struct {
	nodes []*Node
}

// NewNodeArray returns an empty node array with initial capacity 32.
func NewNodeArray() *NodeArray {
	return &NodeArray{nodes: make([]*Node, 0, initialNarrayCap)}
}

// Push appends node to the array. On allocation failure it records the
// error on the module-wide error indicator and silently drops the push,
// matching the original core's push(): a caller mid-traversal has no
// return path to react to a failed append, so the error must be surfaced
// out of band and the traversal continues with a possibly incomplete hit
// set.
func (a *NodeArray) Push(node *Node) {
	defer func() {
		if r := recover(); r != nil {
			recordError(ErrOutOfMemory)
		}
	}()
	a.nodes = append(a.nodes, node)
}

// Reset empties the array without releasing its backing storage, mirroring
// how miles[d].pos is zeroed while the allocation stays in place.
func (a *NodeArray) Reset() {
	a.nodes = a.nodes[:0]
}

// Len returns the number of nodes currently held.
func (a *NodeArray) Len() int {
	return len(a.nodes)
}

// At returns the node at index i.
func (a *NodeArray) At(i int) *Node {
	return a.nodes[i]
}

// Nodes returns the underlying slice of collected nodes. Callers must not
// retain it across a subsequent Reset or Push.
func (a *NodeArray) Nodes() []*Node {
	return a.nodes
}
