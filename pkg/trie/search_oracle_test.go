package trie

import (
	"math/rand"
	"testing"

	"github.com/iyhaoo/starcode/pkg/inventory"
)

// naiveLevenshtein computes ordinary Levenshtein distance over the
// translated alphabet, serving as the correctness oracle named in the
// spec's testable properties: "compare against a naive O(|x|*|q|) DP over
// all indexed strings."
func naiveLevenshtein(a, b string) int {
	da := make([]int8, len(a))
	for i := range a {
		da[i] = translate(a[i])
	}
	db := make([]int8, len(b))
	for i := range b {
		db[i] = translate(b[i])
	}
	rows := len(da) + 1
	cols := len(db) + 1
	prev := make([]int, cols)
	for j := 0; j < cols; j++ {
		prev[j] = j
	}
	cur := make([]int, cols)
	for i := 1; i < rows; i++ {
		cur[0] = i
		for j := 1; j < cols; j++ {
			cost := 1
			if da[i-1] == db[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := cur[j-1] + 1
			sub := prev[j-1] + cost
			m := del
			if ins < m {
				m = ins
			}
			if sub < m {
				m = sub
			}
			cur[j] = m
		}
		prev, cur = cur, prev
	}
	return prev[cols-1]
}

func randomBarcode(rng *rand.Rand, n int) string {
	alphabet := "ACGT"
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(buf)
}

// TestBoundedDistanceCorrectness builds a random dictionary, mirrors it
// into a go-patricia trie for enumeration, and checks that for every
// indexed string x and every query q of the same length, x's terminal node
// is emitted by Search iff the Levenshtein distance between x and q is at
// most tau.
func TestBoundedDistanceCorrectness(t *testing.T) {
	const (
		bottom = 6
		maxTau = 2
		n      = 40
	)
	rng := rand.New(rand.NewSource(1))

	words := make(map[string]bool)
	inv := inventory.New()
	tr, err := New(maxTau, bottom)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	for len(words) < n {
		w := randomBarcode(rng, bottom)
		if words[w] {
			continue
		}
		words[w] = true
		inv.Add(w)
		node, err := tr.InsertString(w)
		if err != nil {
			t.Fatalf("InsertString(%q): %v", w, err)
		}
		node.SetData(w)
	}

	for q := 0; q < 15; q++ {
		query := randomBarcode(rng, bottom)
		for _, tau := range []int{0, 1, 2} {
			hits, err := tr.Search(query, tau, nil, 0, bottom-1)
			if err != nil {
				t.Fatalf("Search(%q, tau=%d): %v", query, tau, err)
			}
			got := hitWords(hits)

			want := make(map[string]bool)
			for _, w := range inv.All() {
				if naiveLevenshtein(w, query) <= tau {
					want[w] = true
				}
			}

			if len(got) != len(want) {
				t.Fatalf("query=%q tau=%d: got %v, want %v", query, tau, got, want)
			}
			for w := range want {
				if !got[w] {
					t.Errorf("query=%q tau=%d: missing %q (distance %d)", query, tau, w, naiveLevenshtein(w, query))
				}
			}
		}
	}
}
