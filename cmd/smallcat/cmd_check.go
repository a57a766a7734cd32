package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"smallcat/internal/laws"
)

var checkInfos bool

var checkCmd = &cobra.Command{
	Use:   "check FILE...",
	Short: "Check the category laws",
	Long: `Check that every object has a unique identity, that identities are units
for every arrow, and that declared composition is associative.

Compositions that are not declared on either side of an associativity
check are listed as infos with --infos; they do not fail the check.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkInfos, "infos", false, "Also list undeclared composites")
}

func runCheck(cmd *cobra.Command, args []string) error {
	named := make([]laws.Named, 0, len(args))

	for _, path := range args {
		f, c, err := loadCategory(path)
		if err != nil {
			return err
		}

		named = append(named, laws.Named{Name: displayName(f, path), Category: c})
	}

	res, err := laws.VerifyAll(cmd.Context(), named)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	for _, d := range res.Errors {
		fmt.Fprintf(out, "error: %s\n", d)
	}

	if checkInfos {
		for _, d := range res.Infos {
			fmt.Fprintf(out, "info: %s\n", d)
		}
	}

	logger.Info("check finished",
		zap.Int("categories", len(named)),
		zap.Int("errors", len(res.Errors)),
		zap.Int("infos", len(res.Infos)))

	if res.HasErrors() {
		return fmt.Errorf("%d law violation(s)", len(res.Errors))
	}

	fmt.Fprintf(out, "ok: %d categor%s checked\n", len(named), plural(len(named), "y", "ies"))

	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}

	return many
}
