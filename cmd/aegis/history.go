// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/internal/history"
	"github.com/nicholasgeorgeson-prog/AEGIS-sub012/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded scans",
	Long: `History lists scans recorded with 'aegis scan --record', newest
first. Use --file to follow one document's scores over time.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().String("history-db", "", "history database path (default aegis-history.db)")
	historyCmd.Flags().String("file", "", "show history for one document path")
	historyCmd.Flags().Int("limit", 0, "maximum entries (0 = default)")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("history-db")
	store, err := history.NewStore(types.HistoryConfig{DBPath: dbPath})
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	limit, _ := cmd.Flags().GetInt("limit")

	var entries []history.Entry
	if file, _ := cmd.Flags().GetString("file"); file != "" {
		entries, err = store.ForFile(ctx, file, limit)
	} else {
		entries, err = store.Recent(ctx, limit)
	}
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No recorded scans.")
		return nil
	}

	fmt.Printf("%-20s  %-30s  %-6s  %-5s  %-6s  %s\n",
		"Scanned", "Path", "Score", "Grade", "Issues", "Method")
	fmt.Println(strings.Repeat("-", 84))
	for _, e := range entries {
		path := e.Path
		if len(path) > 30 {
			path = "..." + path[len(path)-27:]
		}
		fmt.Printf("%-20s  %-30s  %-6d  %-5s  %-6d  %s\n",
			e.ScannedAt.Format("2006-01-02 15:04:05"), path,
			e.Score, e.Grade, e.IssueCount, e.Method)
	}
	return nil
}
