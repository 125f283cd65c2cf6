package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gstoney/mcplay"
)

func statusCmd() *cobra.Command {
	var (
		addr    string
		proto   int32
		timeout time.Duration
		raw     bool
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Ping a server and print its status",
		Long: `Perform a server list ping against a running server.

Examples:
  mcplay status
  mcplay status --addr=127.0.0.1:25565 --protocol=404
  mcplay status --raw`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			fmt.Fprintf(os.Stderr, "Dialing %s for status retrieval...\n", addr)

			res, err := mcplay.Ping(ctx, addr, proto)
			if err != nil {
				return err
			}

			if raw {
				fmt.Println(res.Raw)
				return nil
			}

			out, err := json.MarshalIndent(res.Status, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			fmt.Printf("latency: %s\n", res.Latency.Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "localhost:25565", "Server address (host:port)")
	cmd.Flags().Int32Var(&proto, "protocol", 404, "Protocol version to announce")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "Give up after this long")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the status JSON as received")

	return cmd
}
