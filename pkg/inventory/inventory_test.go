package inventory

import "testing"

func TestListReturnsSortedMatchesByPrefix(t *testing.T) {
	inv := New()
	for _, w := range []string{"ACGT", "ACGA", "ACCT", "TTTT"} {
		inv.Add(w)
	}
	got := inv.List("AC")
	want := []string{"ACCT", "ACGA", "ACGT"}
	if len(got) != len(want) {
		t.Fatalf("List(AC) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("List(AC)[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestContainsAndLen(t *testing.T) {
	inv := New()
	inv.Add("ACGT")
	inv.Add("ACGT")
	inv.Add("ACGA")
	if !inv.Contains("ACGT") || inv.Contains("TTTT") {
		t.Fatalf("Contains behaved unexpectedly")
	}
	if inv.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (re-adding ACGT must not double-count)", inv.Len())
	}
}
