package ingest

import (
	"strings"
	"testing"

	"github.com/iyhaoo/starcode/pkg/trie"
)

func TestLoadInsertsTrimmedNonEmptyLines(t *testing.T) {
	tr, err := trie.New(2, 8)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	input := "ACGT\n  ACGA  \n\nACCT\n"
	var attached []string
	stats, err := Load(tr, strings.NewReader(input), DefaultOptions(), func(n *trie.Node, line string) {
		n.SetData(line)
		attached = append(attached, line)
	})
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if stats.Inserted != 3 || stats.Skipped != 1 {
		t.Fatalf("stats = %+v, want Inserted=3 Skipped=1", stats)
	}
	if len(attached) != 3 {
		t.Fatalf("attach called %d times, want 3", len(attached))
	}
}

func TestLoadCountsDuplicatesWithoutReattaching(t *testing.T) {
	tr, _ := trie.New(1, 4)
	attachCount := 0
	attach := func(n *trie.Node, line string) {
		attachCount++
		n.SetData(line)
	}
	if _, err := Load(tr, strings.NewReader("ACGT\n"), DefaultOptions(), attach); err != nil {
		t.Fatalf("first load error: %v", err)
	}
	stats, err := Load(tr, strings.NewReader("ACGT\n"), DefaultOptions(), attach)
	if err != nil {
		t.Fatalf("second load error: %v", err)
	}
	if stats.Duplicate != 1 || stats.Inserted != 0 {
		t.Fatalf("stats = %+v, want Duplicate=1 Inserted=0", stats)
	}
	if attachCount != 1 {
		t.Fatalf("attach called %d times across both loads, want 1 (not reattached on duplicate)", attachCount)
	}
}

func TestLoadSkipsBadLinesWhenConfigured(t *testing.T) {
	tr, _ := trie.New(1, 4)
	stats, err := Load(tr, strings.NewReader("ACGT\nACGX\n"), Options{BatchSize: 10, SkipBadLines: true}, nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if stats.Inserted != 1 || stats.Skipped != 1 {
		t.Fatalf("stats = %+v, want Inserted=1 Skipped=1", stats)
	}
}

func TestLoadAbortsOnBadLineWhenNotConfiguredToSkip(t *testing.T) {
	tr, _ := trie.New(1, 4)
	_, err := Load(tr, strings.NewReader("ACGX\n"), Options{BatchSize: 10, SkipBadLines: false}, nil)
	if err == nil {
		t.Fatalf("expected an error for a bad symbol line with SkipBadLines=false")
	}
}
