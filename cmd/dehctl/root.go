package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/dehkit/pkg/dsdh"
	"github.com/joshuapare/dehkit/seed"
)

var (
	// Global flags
	seedPath string
	verbose  bool
	quiet    bool
	jsonOut  bool
)

var rootCmd = &cobra.Command{
	Use:   "dehctl",
	Short: "Inspect and extend DSDHacked content tables",
	Long: `dehctl loads a content seed (the built-in vanilla excerpt by default)
and lets you inspect the state, sprite, sound, music and object tables,
grow them the way a patch would, resolve names and verify references.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().
		StringVar(&seedPath, "seed", "", "YAML seed file (default: built-in vanilla tables)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newLogger returns a stderr logger when verbose, otherwise a discarding one.
func newLogger() *slog.Logger {
	if !verbose || quiet {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// loadSeed reads --seed, or the vanilla tables when it is unset.
func loadSeed() (*seed.Seed, error) {
	if seedPath == "" {
		return seed.Vanilla(), nil
	}
	printVerbose("Loading seed: %s\n", seedPath)
	sd, err := seed.LoadFile(seedPath)
	if err != nil {
		return nil, err
	}
	if err := sd.Validate(); err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}
	return sd, nil
}

// openTables loads the seed and starts a table session on it.
func openTables() (*dsdh.Tables, error) {
	sd, err := loadSeed()
	if err != nil {
		return nil, err
	}
	return dsdh.InitTables(sd, dsdh.WithLogger(newLogger())), nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
