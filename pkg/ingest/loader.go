/*
Package ingest loads a newline-delimited list of barcodes into a
pkg/trie.Trie. Unlike the teacher's binary chunked dictionary format,
barcode lists are small enough (millions of short fixed-alphabet
strings, not hundreds of thousands of ranked English words) to load in
a single streaming pass with no lazy chunk scheduling.
*/
package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/iyhaoo/starcode/pkg/trie"
)

// Stats summarises a completed load.
type Stats struct {
	Lines     int
	Inserted  int
	Skipped   int
	Duplicate int
}

// Options controls loader behavior.
type Options struct {
	// BatchSize controls how often progress is logged; it has no effect
	// on correctness, only on log volume for large files.
	BatchSize int
	// SkipBadLines, when true, logs and skips lines that fail to
	// insert (bad symbol, too long) instead of aborting the whole load.
	// Blank lines are always skipped, whatever this is set to.
	SkipBadLines bool
}

// DefaultOptions mirrors pkg/config.DefaultConfig's ingest defaults.
func DefaultOptions() Options {
	return Options{BatchSize: 4096, SkipBadLines: true}
}

// Load streams r line by line, inserting each non-empty trimmed line into
// t. The attach function, if non-nil, is called with each newly inserted
// node so the caller can set its payload (e.g. a source line number or
// sample count). A line counts as a duplicate, and attach is not called for
// it, only when its terminal node already carries a non-nil payload; with a
// nil attach, or one that sets no payload, repeated lines count as inserted.
func Load(t *trie.Trie, r io.Reader, opts Options, attach func(n *trie.Node, line string)) (Stats, error) {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultOptions().BatchSize
	}
	var stats Stats
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		stats.Lines++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			stats.Skipped++
			continue
		}

		node, err := t.InsertString(line)
		if err != nil {
			if opts.SkipBadLines {
				log.Warnf("ingest: skipping line %d (%q): %v", stats.Lines, line, err)
				stats.Skipped++
				continue
			}
			return stats, fmt.Errorf("ingest: line %d (%q): %w", stats.Lines, line, err)
		}

		if node.Data() != nil {
			stats.Duplicate++
		} else {
			stats.Inserted++
			if attach != nil {
				attach(node, line)
			}
		}

		if stats.Lines%opts.BatchSize == 0 {
			log.Debugf("ingest: %d lines read, %d inserted, %d duplicate, %d skipped", stats.Lines, stats.Inserted, stats.Duplicate, stats.Skipped)
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("ingest: reading input: %w", err)
	}
	log.Debugf("ingest: done, %d lines read, %d inserted, %d duplicate, %d skipped", stats.Lines, stats.Inserted, stats.Duplicate, stats.Skipped)
	return stats, nil
}
