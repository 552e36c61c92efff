// Package cli provides an interactive REPL for inserting barcodes into
// a trie and issuing bounded searches against it, for debugging and
// manual exploration.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/iyhaoo/starcode/internal/utils"
	"github.com/iyhaoo/starcode/pkg/inventory"
	"github.com/iyhaoo/starcode/pkg/trie"
)

var (
	exactStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	nearStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// REPL reads barcodes and search queries from stdin and prints results
// to stdout, annotating each hit with its edit distance to the query. An
// in-memory inventory of the barcodes inserted through the REPL backs the
// list and stats commands.
type REPL struct {
	trie         *trie.Trie
	inv          *inventory.Inventory
	defaultTau   int
	showDistance bool
	requestCount int
}

// NewREPL creates a REPL driving t, with defaultTau used whenever a
// search command omits an explicit tau.
func NewREPL(t *trie.Trie, defaultTau int, showDistance bool) *REPL {
	return &REPL{
		trie:         t,
		inv:          inventory.New(),
		defaultTau:   defaultTau,
		showDistance: showDistance,
	}
}

// Start begins the REPL loop. Commands are:
//
//	insert <barcode>
//	search <barcode> [tau]
//	list <prefix>
//	stats
//
// A bare barcode with no command keyword is treated as "search <barcode>".
func (r *REPL) Start() error {
	log.Print("seqtrie REPL")
	log.Print("commands: insert <barcode> | search <barcode> [tau] | list <prefix> | stats | quit")
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}
		r.handleLine(line)
	}
}

func (r *REPL) handleLine(line string) {
	fields := strings.Fields(line)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case "insert":
		r.handleInsert(args)
	case "search":
		r.handleSearch(args)
	case "list":
		r.handleList(args)
	case "stats":
		r.handleStats()
	default:
		// no recognized keyword: treat the whole line as a search barcode
		r.handleSearch(fields)
	}
}

func (r *REPL) handleInsert(args []string) {
	if len(args) != 1 {
		r.printError("usage: insert <barcode>")
		return
	}
	barcode := strings.ToUpper(args[0])
	node, err := r.trie.InsertString(barcode)
	if err != nil {
		r.printError(err.Error())
		return
	}
	if node.Data() == nil {
		node.SetData(barcode)
		r.inv.Add(barcode)
		fmt.Printf("inserted %s\n", barcode)
	} else {
		fmt.Printf("%s already indexed\n", barcode)
	}
}

func (r *REPL) handleSearch(args []string) {
	if len(args) < 1 || len(args) > 2 {
		r.printError("usage: search <barcode> [tau]")
		return
	}
	barcode := strings.ToUpper(args[0])
	tau := r.defaultTau
	if len(args) == 2 {
		parsed, err := strconv.Atoi(args[1])
		if err != nil {
			r.printError(fmt.Sprintf("invalid tau %q", args[1]))
			return
		}
		tau = parsed
	}
	if len(barcode) == 0 {
		r.printError("empty barcode")
		return
	}

	r.requestCount++
	hits, err := r.trie.Search(barcode, tau, nil, 0, len(barcode)-1)
	if err != nil {
		r.printError(err.Error())
		return
	}

	if hits.Len() == 0 {
		fmt.Printf("no hits within tau=%d of %s\n", tau, barcode)
		return
	}

	fmt.Printf("%d hit(s) within tau=%d of %s:\n", hits.Len(), tau, barcode)
	for i := 0; i < hits.Len(); i++ {
		word, ok := hits.At(i).Data().(string)
		if !ok {
			continue
		}
		r.printHit(barcode, word)
	}
}

func (r *REPL) printHit(query, word string) {
	if !r.showDistance {
		fmt.Printf("  %s\n", word)
		return
	}
	d := utils.LevenshteinDistance(query, word)
	style := nearStyle
	if d == 0 {
		style = exactStyle
	}
	fmt.Printf("  %s (distance %d)\n", style.Render(word), d)
}

func (r *REPL) handleList(args []string) {
	prefix := ""
	if len(args) == 1 {
		prefix = strings.ToUpper(args[0])
	}
	words := r.inv.List(prefix)
	if len(words) == 0 {
		fmt.Println("no indexed barcodes match that prefix")
		return
	}
	for _, w := range words {
		fmt.Printf("  %s\n", w)
	}
}

func (r *REPL) handleStats() {
	fmt.Printf("indexed=%d maxTau=%d bottom=%d requests=%d\n",
		r.inv.Len(), r.trie.MaxTau(), r.trie.Bottom(), r.requestCount)
}

func (r *REPL) printError(msg string) {
	fmt.Println(errStyle.Render(msg))
}
