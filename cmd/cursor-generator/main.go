// Package main provides the CLI entrypoint for cursor-generator.
//
// cursor-generator reads cursor types that implement a few primitive
// methods and generates the complete cursor protocol for them:
//   - gen writes the derived methods into a generated file
//   - check prints what would be derived and why
//   - init writes a starter configuration pinned to the detected categories
//
// It is meant to be run from go:generate lines:
//
//	//go:generate go run cursor-generator/cmd/cursor-generator gen -c cursor.yaml
package main

import (
	"os"

	"github.com/spf13/cobra"

	"cursor-generator/internal/logging"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "cursor-generator",
	Short: "Generate cursor protocol methods from primitive operations",
	Long: `cursor-generator inspects cursor types that provide Dereference and
Increment or Advance, plus any of Decrement, EqualTo and DistanceTo, and
generates every other cursor operation from them in a fixed fallback order.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.SetGlobalLogger(logging.NewConsoleLogger(cmd.ErrOrStderr(), logLevel))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
