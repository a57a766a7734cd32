// Package main provides the CLI entrypoint for smallcat.
//
// smallcat loads finite categories from YAML descriptions and:
//   - renders them (show)
//   - checks the identity, unit and associativity laws (check)
//   - resolves declared composites (compose, iso)
//   - splits a record object into sub-categories (split)
//   - prints the built-in toy categories (toy)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "smallcat",
	Short: "Model, check and split small finite categories",
	Long: `smallcat works on categories described in YAML: a list of objects and a
list of arrows, where composition is declared explicitly ("h equals f;g")
rather than derived.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.OutputPaths = []string{"stderr"}
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		} else {
			config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		}

		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		logger = l

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(showCmd, checkCmd, composeCmd, isoCmd, splitCmd, toyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
