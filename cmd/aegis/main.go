// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the aegis CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the aegis CLI.
var rootCmd = &cobra.Command{
	Use:   "aegis",
	Short: "Document quality review",
	Long: `aegis extracts text and structure from office documents and runs a
set of deterministic quality checkers over the result, producing a
scored report. Extraction degrades gracefully: a high-fidelity isolated
worker, then in-process format parsers, then a raw-text pass that never
fails.

Each stage is a subcommand: extract, scan, checkers, capabilities, and
history.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./aegis.yaml or ~/.config/aegis/config.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "data", "directory holding model files and dictionaries")
	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("aegis")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "aegis"))
		}
	}

	viper.SetEnvPrefix("AEGIS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger builds the shared slog logger. Debug level when --verbose,
// warnings and up otherwise, always to stderr so stdout stays parseable.
func newLogger(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// dataDir resolves the model directory from flag, config file, or default.
func dataDir(cmd *cobra.Command) string {
	if cmd.Flags().Changed("data-dir") {
		dir, _ := cmd.Flags().GetString("data-dir")
		return dir
	}
	if dir := viper.GetString("data_dir"); dir != "" {
		return dir
	}
	dir, _ := cmd.Flags().GetString("data-dir")
	return dir
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
