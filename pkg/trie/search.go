package trie

// Search appends to hits every node at depth Bottom() whose spelled string
// is within Levenshtein distance tau of query, and returns hits (possibly a
// freshly allocated one if hits was nil).
//
// start and trail implement the prefix-reuse protocol: start is the depth
// at which this query diverges from whichever query last populated the
// trie's frontier cache (0 if there is no shared prefix to reuse), and
// trail is the depth below which the caller does not expect the next query
// to keep sharing a prefix. Frontiers for depths in (start, trail] are
// recorded as they are visited so a later call with start' <= trail can
// resume from them instead of walking from the root.
func (t *Trie) Search(query string, tau int, hits *NodeArray, start, trail int) (*NodeArray, error) {
	if hits == nil {
		hits = NewNodeArray()
	}
	if tau > t.maxTau {
		recordError(ErrTauExceedsMax)
		return hits, ErrTauExceedsMax
	}
	if len(query) > MaxBarcodeLen {
		recordError(ErrQueryTooLong)
		return hits, ErrQueryTooLong
	}
	if start < 0 || start > trail || trail >= len(query) {
		recordError(ErrBadSearchBounds)
		return hits, ErrBadSearchBounds
	}

	t.ensureMiles()
	for i := start + 1; i <= trail; i++ {
		t.miles[i].Reset()
	}

	// Padded past len(query) with the noMatch sentinel so that recursion
	// overshooting the query length (possible when indexed strings are
	// longer than the query) reads deliberate mismatches instead of
	// running off the slice. Pruning always stops real recursion within
	// maxTau steps of the query's end, so maxTau+1 padding cells suffice.
	q := make([]int8, len(query)+2*t.maxTau+2)
	for i := len(query); i < len(q); i++ {
		q[i] = noMatch
	}
	lo := start - t.maxTau
	if lo < 0 {
		lo = 0
	}
	for i := lo; i < len(query); i++ {
		q[i] = altranslate(query[i])
	}

	frontier := t.miles[start]
	for i := 0; i < frontier.Len(); i++ {
		recursiveSearch(frontier.At(i), q, len(query), tau, start+1, t.maxTau, t.miles, trail, t.bottom, hits)
	}
	return hits, nil
}

func min8(a, b uint8) uint8 {
	if a < b {
		return a
	}
	return b
}

// recursiveSearch extends the DP band from node (at tree depth depth-1)
// into each of node's children (at tree depth depth), pruning, recording
// frontier caches, dashing, and emitting hits as it goes.
//
// common is the right-arm scratch: it depends
// only on node's packed path and the query column at depth, so it is
// computed once here and reused for every child, then discarded — a
// fixed-size stack array rather than the module-scoped buffer the original
// core uses, which both avoids a latent off-by-one (reading one past a
// 9-element static array when maxa reaches its ceiling of 8) and restores
// re-entrancy across recursive calls.
func recursiveSearch(node *Node, q []int8, qlen, tau, depth, maxTau int, miles []*NodeArray, trail, bottom int, hits *NodeArray) {
	center := maxTau + 1
	pc := node.cache
	maxa := depth - 1
	if tau < maxa {
		maxa = tau
	}

	var common [maxTauLimit + 2]uint8
	common[maxa+1] = uint8(maxa + 1)

	cmindist := uint8(255)
	path := node.path
	for a := maxa; a > 0; a-- {
		nib := int8((path >> uint(4*(a-1))) & 0xF)
		var mismatch uint8
		if nib != q[depth-1] {
			mismatch = 1
		}
		rmatch := pc[center+a] + mismatch
		rshift := min8(pc[center+a-1], common[a+1]) + 1
		common[a] = min8(rmatch, rshift)
		if common[a] < cmindist {
			cmindist = common[a]
		}
	}

	for i := 0; i <= SymbolN; i++ {
		child := node.children[i]
		if child == nil {
			continue
		}

		cc := child.cache
		copy(cc[center+1:center+1+maxa], common[1:1+maxa])
		mindist := cmindist

		for a := maxa; a > 0; a-- {
			var mismatch uint8
			if int8(i) != q[depth-a-1] {
				mismatch = 1
			}
			lmatch := pc[center-a] + mismatch
			lshift := min8(pc[center+1-a], cc[center-a-1]) + 1
			cc[center-a] = min8(lmatch, lshift)
			if cc[center-a] < mindist {
				mindist = cc[center-a]
			}
		}
		var cmismatch uint8
		if int8(i) != q[depth-1] {
			cmismatch = 1
		}
		cmatch := pc[center] + cmismatch
		cshift := min8(cc[center-1], cc[center+1]) + 1
		cc[center] = min8(cmatch, cshift)
		if cc[center] < mindist {
			mindist = cc[center]
		}

		if mindist > uint8(tau) {
			// Drop this child only; siblings may still be within range.
			continue
		}

		if depth <= trail {
			miles[depth].Push(child)
		}

		// Only a centre cell at exactly tau can still reach a within-tau
		// completion by exact matching; an off-diagonal cell at tau cannot.
		if int(mindist) == tau && cc[center] == uint8(tau) && depth > trail {
			end := qlen
			if end < depth {
				end = depth
			}
			dash(child, q[depth:end], hits)
			continue
		}

		if depth == bottom && cc[center] <= uint8(tau) {
			hits.Push(child)
		}

		recursiveSearch(child, q, qlen, tau, depth+1, maxTau, miles, trail, bottom, hits)
	}
}
