package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"smallcat/internal/catfile"
)

var showYAML bool

var showCmd = &cobra.Command{
	Use:   "show FILE",
	Short: "Render a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showYAML, "yaml", false, "Print the normalized YAML description instead")
}

func runShow(cmd *cobra.Command, args []string) error {
	f, c, err := loadCategory(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if showYAML {
		data, err := catfile.Marshal(catfile.FromCategory(f.Name, c))
		if err != nil {
			return err
		}

		_, err = out.Write(data)

		return err
	}

	fmt.Fprintln(out, c)

	return nil
}
