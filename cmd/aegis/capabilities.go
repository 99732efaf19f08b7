// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/internal/capability"
	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/pkg/types"
)

var capabilitiesCmd = &cobra.Command{
	Use:   "capabilities",
	Short: "Probe optional dependencies and report availability",
	Long: `Capabilities probes each optional dependency (spell engine, parser
binary, model files) once and reports which are available. Scans run
the same probe at startup; missing capabilities disable the checkers
that need them.`,
	RunE: runCapabilities,
}

func init() {
	rootCmd.AddCommand(capabilitiesCmd)
}

func runCapabilities(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	caps := capability.Probe(ctx, types.ProbeConfig{
		DataDir: dataDir(cmd),
		Logger:  newLogger(cmd),
	})

	for _, name := range capability.Known() {
		state := "unavailable"
		if caps.Has(name) {
			state = "available"
		}
		fmt.Printf("%-24s  %s\n", name, state)
	}
	return nil
}
