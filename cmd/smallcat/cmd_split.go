package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"smallcat/internal/catfile"
	"smallcat/internal/split"
)

var splitFlags struct {
	object     string
	strategy   string
	rules      []string
	fallback   string
	threshold  float64
	identities bool
	out        string
}

var splitCmd = &cobra.Command{
	Use:   "split FILE",
	Short: "Split a record object into sub-categories",
	Long: `Split partitions the attribute arrows of an object (arrows leaving it for
another object) into groups and prints one sub-category per group.

Without --object, the splits declared in the file are run. With --object,
the split is taken from the flags:

  smallcat split people.yaml --object Person --rule name=name --fallback age`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

func init() {
	fl := splitCmd.Flags()
	fl.StringVar(&splitFlags.object, "object", "", "Object whose attributes are split")
	fl.StringVar(&splitFlags.strategy, "strategy", "", "Classifier: rules, token or similarity (default rules when --rule is set, else token)")
	fl.StringArrayVar(&splitFlags.rules, "rule", nil, "Rule GROUP=SUBSTRING, first match wins (repeatable)")
	fl.StringVar(&splitFlags.fallback, "fallback", "", "Group for arrows no rule matches")
	fl.Float64Var(&splitFlags.threshold, "threshold", catfile.DefaultThreshold, "Similarity threshold for the similarity strategy")
	fl.BoolVar(&splitFlags.identities, "identities", false, "Carry or synthesize identity arrows in each piece")
	fl.StringVar(&splitFlags.out, "out", "", "Directory to write one YAML file per piece")
}

func runSplit(cmd *cobra.Command, args []string) error {
	f, c, err := loadCategory(args[0])
	if err != nil {
		return err
	}

	defs := f.Splits

	if splitFlags.object != "" {
		def, err := splitFromFlags()
		if err != nil {
			return err
		}

		defs = []catfile.SplitDef{def}
	}

	if len(defs) == 0 {
		return errors.New("no split declared in the file; use --object")
	}

	if splitFlags.out != "" {
		if err := os.MkdirAll(splitFlags.out, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	base := strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))

	for _, def := range defs {
		pieces, err := def.Run(c, split.WithLogger(logger))
		if err != nil {
			return err
		}

		for _, p := range pieces {
			fmt.Fprintf(out, "# %s/%s\n%s\n", def.Object, p.Key, p.Category)

			if splitFlags.out == "" {
				continue
			}

			name := fmt.Sprintf("%s-%s-%s", displayName(f, base), def.Object, p.Key)
			path := filepath.Join(splitFlags.out, name+".yaml")

			if err := catfile.WriteFile(catfile.FromCategory(name, p.Category), path); err != nil {
				return err
			}

			logger.Info("piece written", zap.String("path", path))
		}
	}

	return nil
}

func splitFromFlags() (catfile.SplitDef, error) {
	def := catfile.SplitDef{
		Object:     splitFlags.object,
		Strategy:   splitFlags.strategy,
		Fallback:   splitFlags.fallback,
		Threshold:  splitFlags.threshold,
		Identities: splitFlags.identities,
	}

	for _, r := range splitFlags.rules {
		group, substr, ok := strings.Cut(r, "=")
		if !ok || group == "" || substr == "" {
			return catfile.SplitDef{}, fmt.Errorf("invalid --rule %q (expected GROUP=SUBSTRING)", r)
		}

		def.Rules = append(def.Rules, catfile.RuleDef{Group: group, Contains: substr})
	}

	if def.Strategy == "" {
		def.Strategy = catfile.StrategyToken
		if len(def.Rules) > 0 {
			def.Strategy = catfile.StrategyRules
		}
	}

	return def, nil
}
