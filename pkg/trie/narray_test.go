package trie

import "testing"

func TestNodeArrayGrowsPastInitialCapacity(t *testing.T) {
	a := NewNodeArray()
	n := &Node{}
	for i := 0; i < initialNarrayCap*3; i++ {
		a.Push(n)
	}
	if a.Len() != initialNarrayCap*3 {
		t.Fatalf("Len() = %d, want %d", a.Len(), initialNarrayCap*3)
	}
}

func TestNodeArrayResetKeepsBacking(t *testing.T) {
	a := NewNodeArray()
	n := &Node{}
	a.Push(n)
	a.Push(n)
	a.Reset()
	if a.Len() != 0 {
		t.Fatalf("Len() after Reset = %d, want 0", a.Len())
	}
	a.Push(n)
	if a.Len() != 1 {
		t.Fatalf("Len() after push following Reset = %d, want 1", a.Len())
	}
}
