package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"smallcat/internal/catfile"
	"smallcat/internal/toy"
)

var toyYAML bool

var toyCmd = &cobra.Command{
	Use:       "toy NAME",
	Short:     "Print a built-in toy category (" + strings.Join(toy.Names(), ", ") + ")",
	Args:      cobra.ExactArgs(1),
	ValidArgs: toy.Names(),
	RunE:      runToy,
}

func init() {
	toyCmd.Flags().BoolVar(&toyYAML, "yaml", false, "Print as a YAML description")
}

func runToy(cmd *cobra.Command, args []string) error {
	c, err := toy.ByName(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if toyYAML {
		data, err := catfile.Marshal(catfile.FromCategory(args[0], c))
		if err != nil {
			return err
		}

		_, err = out.Write(data)

		return err
	}

	fmt.Fprintln(out, c)

	return nil
}
