// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/internal/capability"
	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/internal/checker"
	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/internal/checkers"
)

var checkersCmd = &cobra.Command{
	Use:   "checkers",
	Short: "List the installed checkers",
	Long: `Checkers prints every installed checker with its category, rule
prefix, and any optional dependencies it needs. Checkers whose
dependencies are unavailable are skipped during scans, never failed.`,
	RunE: runCheckers,
}

func init() {
	rootCmd.AddCommand(checkersCmd)
}

func runCheckers(cmd *cobra.Command, args []string) error {
	registry, err := checker.NewRegistry(checkers.Descriptors(), capability.Known())
	if err != nil {
		return err
	}

	fmt.Printf("%-14s  %-12s  %-8s  %s\n", "Key", "Category", "Rules", "Requires")
	fmt.Println(strings.Repeat("-", 60))
	for _, d := range registry.Descriptors() {
		requires := "-"
		if len(d.RequiredCapabilities) > 0 {
			requires = strings.Join(d.RequiredCapabilities, ", ")
		}
		fmt.Printf("%-14s  %-12s  %-8s  %s\n", d.Key, d.Category, d.RuleIDPrefix+"*", requires)
	}
	return nil
}
