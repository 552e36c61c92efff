/*
Package inventory keeps an ordered mirror of every barcode handed to a
pkg/trie.Trie, for operations the trie itself has no use for: listing
by prefix and serving as ground truth for the bounded-distance
correctness oracle in pkg/trie's tests. It is never consulted by
Trie.Search.
*/
package inventory

import (
	"sort"

	"github.com/tchap/go-patricia/v2/patricia"
)

// Inventory is a secondary index over inserted barcodes, independent
// of the trie's own band-cache structure.
type Inventory struct {
	trie *patricia.Trie
}

// New creates an empty inventory.
func New() *Inventory {
	return &Inventory{trie: patricia.NewTrie()}
}

// Add records a barcode. Re-adding an existing barcode is a no-op.
func (inv *Inventory) Add(barcode string) {
	inv.trie.Insert(patricia.Prefix(barcode), true)
}

// Contains reports whether a barcode has been added.
func (inv *Inventory) Contains(barcode string) bool {
	return inv.trie.Get(patricia.Prefix(barcode)) != nil
}

// List returns every added barcode that starts with prefix, sorted
// lexicographically.
func (inv *Inventory) List(prefix string) []string {
	var out []string
	inv.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, _ patricia.Item) error {
		out = append(out, string(p))
		return nil
	})
	sort.Strings(out)
	return out
}

// All returns every added barcode, sorted lexicographically.
func (inv *Inventory) All() []string {
	var out []string
	inv.trie.Visit(func(p patricia.Prefix, _ patricia.Item) error {
		out = append(out, string(p))
		return nil
	})
	sort.Strings(out)
	return out
}

// Len returns the number of distinct barcodes added.
func (inv *Inventory) Len() int {
	n := 0
	inv.trie.Visit(func(_ patricia.Prefix, _ patricia.Item) error {
		n++
		return nil
	})
	return n
}
