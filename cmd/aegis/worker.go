// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/internal/extract"
)

// workerCmd is the subprocess entry for high-fidelity extraction. The
// coordinator re-invokes the current binary with this subcommand so a
// crashing or hanging parse cannot take down the main process. Hidden:
// it is an internal protocol, not a user surface.
var workerCmd = &cobra.Command{
	Use:    "extract-worker [format]",
	Hidden: true,
	Args:   cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return extract.RunWorker(args[0], os.Stdin, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(workerCmd)
}
