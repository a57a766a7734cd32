package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var composeCmd = &cobra.Command{
	Use:   "compose FILE F G",
	Short: "Resolve the declared composite F;G",
	Args:  cobra.ExactArgs(3),
	RunE:  runCompose,
}

var isoCmd = &cobra.Command{
	Use:   "iso FILE A B",
	Short: "Report whether arrows run both ways between A and B",
	Args:  cobra.ExactArgs(3),
	RunE:  runIso,
}

func runCompose(cmd *cobra.Command, args []string) error {
	_, c, err := loadCategory(args[0])
	if err != nil {
		return err
	}

	f, err := c.Arrow(args[1])
	if err != nil {
		return err
	}

	g, err := c.Arrow(args[2])
	if err != nil {
		return err
	}

	h, err := c.Compose(f, g)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s;%s = %s\n", f.Name(), g.Name(), h)

	return nil
}

func runIso(cmd *cobra.Command, args []string) error {
	_, c, err := loadCategory(args[0])
	if err != nil {
		return err
	}

	for _, name := range args[1:] {
		if _, err := c.Object(name); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s and %s are isomorphic: %v\n", args[1], args[2], c.IsIsomorphism(args[1], args[2]))

	return nil
}
