package main

import "github.com/spf13/cobra"

var (
	verbose bool
	threads int
)

var rootCmd = &cobra.Command{
	Use:           "skewlife",
	Short:         "enumerate, search, sample, and classify skew-toroidal Life orbits",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")
	rootCmd.PersistentFlags().IntVarP(&threads, "threads", "j", 0, "worker count (default: number of CPUs)")
	rootCmd.AddCommand(genlCmd, gensCmd, randCmd, printrCmd)
}
