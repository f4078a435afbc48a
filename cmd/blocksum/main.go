// Package main implements the blocksum command, an HTTP service (and
// one-shot CLI) that fetches an Ethereum block over JSON-RPC and reports
// its transaction count and per-address send/receive tallies.
//
// Usage:
//
//	blocksum serve
//	blocksum block 21000000 --format json
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "blocksum",
		Short:        "Ethereum block summary service",
		Long:         "Fetch Ethereum blocks over JSON-RPC and summarize their transactions by sender and receiver.",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "Path to YAML config file (optional)")

	root.AddCommand(serveCmd())
	root.AddCommand(blockCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
