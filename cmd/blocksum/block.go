package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmagro/eth-block-summary/internal/config"
	"github.com/dmagro/eth-block-summary/internal/output"
	"github.com/dmagro/eth-block-summary/internal/rpc"
	"github.com/dmagro/eth-block-summary/internal/summary"
)

func blockCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "block [number]",
		Short: "Fetch and summarize a single block",
		Long: `Fetch one block from the configured RPC endpoint and print its
transaction summary. With no argument (or "latest") the current head is used.

Examples:
  blocksum block
  blocksum block 21000000
  blocksum block latest --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Root().PersistentFlags().GetString("config")

			var number *int64
			if len(args) == 1 && args[0] != summary.BlockLatest {
				n, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid block number %q", args[0])
				}
				number = &n
			}

			return runBlock(cfgPath, number, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "terminal", "Output format: terminal|json")

	return cmd
}

func runBlock(cfgPath string, number *int64, format string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	client := rpc.NewClient(cfg.RPCURL, cfg.Timeout)
	fetcher := summary.NewFetcher(client)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	block, err := fetcher.Fetch(ctx, number)
	if err != nil {
		return err
	}

	s := summary.Summarize(block)

	if format == "json" {
		output.DisableColors()
		return output.RenderSummaryJSON(s)
	}

	output.RenderSummaryTerminal(s)
	return nil
}
