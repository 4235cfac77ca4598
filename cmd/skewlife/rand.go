package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/skewlife/internal/logging"
	"github.com/katalvlaran/skewlife/sampler"
)

// randCmd implements §4.J's rand subcommand: randomly sample trajectories
// across every lattice in [MIN_AREA, MAX_AREA], printing each orbit as it's
// found (each sampler worker skips orbits it has already reported, but
// different workers can report the same one). Per §5, the sampler has no natural
// termination and runs until the process is signalled.
var randCmd = &cobra.Command{
	Use:   "rand MIN_AREA MAX_AREA",
	Short: "randomly sample trajectories across every lattice in [MIN_AREA, MAX_AREA] until terminated",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		minArea, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("rand: %q is not an integer: %w", args[0], err)
		}
		maxArea, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("rand: %q is not an integer: %w", args[1], err)
		}

		log := logging.New(verbose)
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cfg := sampler.Config{MinArea: minArea, MaxArea: maxArea, Threads: threads}
		for r := range sampler.Run(ctx, log, cfg) {
			data, err := gojson.Marshal(r)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
		}
		return nil
	},
}
