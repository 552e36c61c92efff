package trie

// Node is a single trie node. Slots 0..4 of children are indexed by symbol
// id; slot 5 (the eos id) is reserved: it never holds a child and is not
// visited by search, dash or destruction, which all stop at SymbolN.
type Node struct {
	children [6]*Node

	// path packs the last up to 8 edge symbols on the root-to-node path,
	// 4 bits per symbol, most recent symbol in the low nibble. Only the
	// low 4*min(depth,8) bits are meaningful.
	path uint32

	// data is the caller's opaque payload. Nil at interior nodes and at
	// leaves that have not been assigned a payload yet.
	data any

	// cache holds one anti-diagonal of the edit-distance DP band, width
	// 2*maxTau+3, centred on index maxTau+1.
	cache []uint8
}

// newNode allocates a node with the trivial-cost cache initialisation:
// cache[i] = |i - (maxTau+1)|, representing the cost of inserting i
// symbols from an empty prefix.
func newNode(maxTau int) *Node {
	width := 2*maxTau + 3
	n := &Node{cache: make([]uint8, width)}
	for i := 0; i < width; i++ {
		n.cache[i] = uint8(abs(i - (maxTau + 1)))
	}
	return n
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Data returns the node's payload.
func (n *Node) Data() any { return n.data }

// SetData assigns the node's payload. Callers should only call this on a
// node returned by InsertString.
func (n *Node) SetData(v any) { n.data = v }

// Path returns the packed root-to-node path word.
func (n *Node) Path() uint32 { return n.path }

// Child returns the child at the given symbol id, or nil.
func (n *Node) Child(symbol int) *Node {
	if symbol < 0 || symbol > SymbolN {
		return nil
	}
	return n.children[symbol]
}
