//go:build test

package mem

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/iyhaoo/starcode/pkg/trie"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

const bottom = 8

var testBarcodes = []string{
	"ACGTACGT", "ACGTACGA", "ACGTACCT", "TTTTAAAA", "GGGGCCCC",
	"ACACACAC", "TGTGTGTG", "AAAACCCC", "CCCCGGGG", "GGGGTTTT",
}

func buildLeakTrie(t testing.TB) *trie.Trie {
	tr, err := trie.New(2, bottom)
	if err != nil {
		t.Fatalf("trie.New error: %v", err)
	}
	for _, w := range testBarcodes {
		node, err := tr.InsertString(w)
		if err != nil {
			t.Fatalf("InsertString(%q) error: %v", w, err)
		}
		node.SetData(w)
	}
	return tr
}

func TestMemoryLeakBasic(t *testing.T) {
	iterations := []int{100, 500, 1000, 2500, 5000}
	for _, iterCount := range iterations {
		t.Run(fmt.Sprintf("iterations_%d", iterCount), func(t *testing.T) {
			runBasicMemoryTest(t, iterCount)
		})
	}
}

// TestMemoryStabilityLongRun exercises many Destroy/rebuild cycles.
// Search on a shared trie from multiple goroutines is explicitly
// unsupported, so churn (not concurrency) is what this test stresses.
func TestMemoryStabilityLongRun(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping long-running memory stability test in short mode")
	}
	runLongRunMemoryTest(t, 50, 200)
}

func runBasicMemoryTest(t *testing.T, iterations int) {
	tr := buildLeakTrie(t)
	defer trie.Destroy(tr, func(any) {})

	var baseline runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&baseline)
	baselineGoroutines := runtime.NumGoroutine()

	for i := 0; i < iterations; i++ {
		for _, barcode := range testBarcodes {
			hits, err := tr.Search(barcode, 1, nil, 0, bottom-1)
			if err != nil {
				t.Fatalf("Search error: %v", err)
			}
			_ = hits
		}
	}

	var final runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&final)
	finalGoroutines := runtime.NumGoroutine()

	memDelta := int64(final.Alloc - baseline.Alloc)
	goroutineDelta := finalGoroutines - baselineGoroutines
	totalOps := iterations * len(testBarcodes)
	memPerOp := float64(memDelta) / float64(totalOps)

	t.Logf("iterations=%d ops=%d mem_delta=%d bytes mem_per_op=%.2f goroutine_delta=%d",
		iterations, totalOps, memDelta, memPerOp, goroutineDelta)

	if memPerOp > 1000 {
		t.Errorf("excessive memory usage per operation: %.2f bytes", memPerOp)
	}
	if goroutineDelta > 2 {
		t.Errorf("goroutine leak detected: %d goroutines leaked", goroutineDelta)
	}
}

func runLongRunMemoryTest(t *testing.T, cycles, opsPerCycle int) {
	memFile, err := os.Create("longrun_stability.prof")
	if err != nil {
		t.Fatalf("profile file creation failed: %v", err)
	}
	defer func() {
		memFile.Close()
		os.Remove("longrun_stability.prof")
	}()

	var baseline runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&baseline)
	baselineGoroutines := runtime.NumGoroutine()

	totalOps := 0
	maxMemDelta := int64(0)

	for cycle := 0; cycle < cycles; cycle++ {
		tr := buildLeakTrie(t)
		for op := 0; op < opsPerCycle; op++ {
			barcode := testBarcodes[op%len(testBarcodes)]
			hits, err := tr.Search(barcode, 1, nil, 0, bottom-1)
			if err != nil {
				t.Fatalf("Search error: %v", err)
			}
			_ = hits
			totalOps++
		}
		trie.Destroy(tr, func(any) {})

		if cycle%10 == 0 {
			var m runtime.MemStats
			runtime.GC()
			runtime.ReadMemStats(&m)

			memDelta := int64(m.Alloc - baseline.Alloc)
			goroutineDelta := runtime.NumGoroutine() - baselineGoroutines
			memPerOp := float64(memDelta) / float64(totalOps)
			if memDelta > maxMemDelta {
				maxMemDelta = memDelta
			}

			t.Logf("cycle=%d ops=%d mem_delta=%d bytes mem_per_op=%.2f goroutine_delta=%d",
				cycle, totalOps, memDelta, memPerOp, goroutineDelta)
		}
	}

	var final runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&final)
	finalGoroutines := runtime.NumGoroutine()

	finalMemDelta := int64(final.Alloc - baseline.Alloc)
	finalGoroutineDelta := finalGoroutines - baselineGoroutines
	finalMemPerOp := float64(finalMemDelta) / float64(totalOps)

	t.Logf("final_summary: cycles=%d total_ops=%d mem_delta=%d bytes mem_per_op=%.2f goroutine_delta=%d max_mem_delta=%d",
		cycles, totalOps, finalMemDelta, finalMemPerOp, finalGoroutineDelta, maxMemDelta)

	if err := pprof.WriteHeapProfile(memFile); err != nil {
		t.Errorf("heap profile write failed: %v", err)
	}

	if finalMemPerOp > 500 {
		t.Errorf("excessive memory usage per operation: %.2f bytes", finalMemPerOp)
	}
	if finalGoroutineDelta > 2 {
		t.Errorf("goroutine leak detected: %d goroutines leaked", finalGoroutineDelta)
	}
	if maxMemDelta > 10*1024*1024 {
		t.Errorf("excessive peak memory usage: %d bytes", maxMemDelta)
	}
}
