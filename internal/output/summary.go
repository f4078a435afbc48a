// Package output renders block summaries for the one-shot CLI command,
// either as a colored terminal view or as machine-readable JSON.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/rodaine/table"

	"github.com/dmagro/eth-block-summary/internal/summary"
)

var (
	cyan = color.New(color.FgCyan).SprintFunc()
	bold = color.New(color.Bold).SprintFunc()
)

// DisableColors turns off ANSI colors, e.g. for JSON output or pipes.
func DisableColors() {
	color.NoColor = true
}

// RenderSummaryTerminal outputs a block summary to the terminal.
func RenderSummaryTerminal(s summary.Summary) {
	fmt.Println()
	if s.BlockNumber != nil {
		fmt.Printf("%s\n", bold(fmt.Sprintf("Block #%d", *s.BlockNumber)))
	} else {
		fmt.Printf("%s\n", bold("Block (unknown height)"))
	}
	fmt.Println("═══════════════════════════════════════════════════════")
	if s.BlockHash != nil {
		fmt.Printf("  %s           %s\n", cyan("Hash:"), *s.BlockHash)
	}
	fmt.Printf("  %s   %d\n", cyan("Transactions:"), s.TotalTransactions)
	fmt.Println()

	renderTally("Senders", s.BySender)
	renderTally("Receivers", s.ByReceiver)
}

func renderTally(title string, tally map[string]int) {
	fmt.Println(bold(title))

	if len(tally) == 0 {
		fmt.Println("  (none)")
		fmt.Println()
		return
	}

	headerFmt := color.New(color.FgCyan, color.Underline).SprintfFunc()
	tbl := table.New("Address", "Txs")
	tbl.WithHeaderFormatter(headerFmt)

	for _, addr := range sortedByCount(tally) {
		tbl.AddRow(addr, tally[addr])
	}

	tbl.Print()
	fmt.Println()
}

// sortedByCount orders addresses by descending count, ties broken by
// address, so output is stable across runs.
func sortedByCount(tally map[string]int) []string {
	addrs := make([]string, 0, len(tally))
	for addr := range tally {
		addrs = append(addrs, addr)
	}
	sort.Slice(addrs, func(i, j int) bool {
		if tally[addrs[i]] != tally[addrs[j]] {
			return tally[addrs[i]] > tally[addrs[j]]
		}
		return addrs[i] < addrs[j]
	})
	return addrs
}

// RenderSummaryJSON outputs a block summary as indented JSON.
func RenderSummaryJSON(s summary.Summary) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(s)
}
