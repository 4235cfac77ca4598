package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/skewlife/torus"
)

// genlCmd implements §4.J's genl subcommand: for each area N given on the
// command line, print every inequivalent skew-toroidal shape of that area,
// one "mx my syx" line at a time.
var genlCmd = &cobra.Command{
	Use:   "genl N...",
	Short: "list every inequivalent skew-toroidal shape of each given area",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, a := range args {
			n, err := strconv.ParseInt(a, 10, 64)
			if err != nil {
				return fmt.Errorf("genl: %q is not an integer: %w", a, err)
			}
			for _, shape := range torus.Enumerate(n) {
				fmt.Fprintln(cmd.OutOrStdout(), shape.String())
			}
		}
		return nil
	},
}
