package trie

// dash follows node downward along the unique path that exactly matches
// the translated symbols in tail, and emits the landed node as a hit if it
// carries a payload. It aborts (no hit) as soon as a required child is
// missing or a symbol falls outside the alphabet, which includes every
// noMatch-translated query character: an "N" in the query, or any
// character outside {A,C,G,T,N}, can never complete a dash.
//
// This is the shortcut recursiveSearch takes once a child's minimum band
// distance and its centre cell both exactly equal tau: at that point no
// further mismatch or indel is affordable, so the only way the rest of the
// query can still match is character-for-character.
func dash(node *Node, tail []int8, hits *NodeArray) {
	for _, sym := range tail {
		if sym < 0 || sym > SymbolN {
			return
		}
		child := node.children[sym]
		if child == nil {
			return
		}
		node = child
	}
	if node.data != nil {
		hits.Push(node)
	}
}
