package main

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/skewlife/engine"
	"github.com/katalvlaran/skewlife/internal/logging"
	"github.com/katalvlaran/skewlife/record"
	"github.com/katalvlaran/skewlife/search"
	"github.com/katalvlaran/skewlife/spacetime"
	"github.com/katalvlaran/skewlife/symmetry"
	"github.com/katalvlaran/skewlife/torus"
)

// gensCmd implements §4.J's gens subcommand: read "mx my syx" lattices from
// stdin, one per line, and for each run the full exhaustive-search pipeline
// (search.Run -> symmetry.Accept -> spacetime.Analyze), printing every
// distinct discovered orbit as a JSON record.Result line.
var gensCmd = &cobra.Command{
	Use:   "gens",
	Short: "exhaustively search each lattice read from stdin (\"mx my syx\" per line)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logging.New(verbose)

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			shape, err := parseShape(line)
			if err != nil {
				return err
			}
			if err := runGens(cmd, log, shape); err != nil {
				return err
			}
		}
		return scanner.Err()
	},
}

func parseShape(line string) (torus.Shape, error) {
	parts := strings.Fields(line)
	if len(parts) != 3 {
		return torus.Shape{}, fmt.Errorf("gens: expected \"mx my syx\", got %q", line)
	}

	vals := make([]int64, 3)
	for i, p := range parts {
		v, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return torus.Shape{}, fmt.Errorf("gens: %q is not an integer: %w", p, err)
		}
		vals[i] = v
	}
	return torus.Shape{MX: vals[0], MY: vals[1], SYX: vals[2]}, nil
}

// runGens drives one lattice through the pipeline, mirroring gens2: search
// the whole configuration space, drop orbits the symmetry filter rejects,
// reconstruct each survivor's full space-time lattice, dedupe by value, and
// print the sorted result set.
func runGens(cmd *cobra.Command, log zerolog.Logger, shape torus.Shape) error {
	return logging.Time(log, fmt.Sprintf("lattice %s", shape), func() error {
		eng, ok := engine.CompileMask[engine.U64](shape)
		if !ok {
			return fmt.Errorf("gens: lattice %s has %d cells, too large for exhaustive search", shape, shape.Area())
		}

		found, err := search.Run(cmd.Context(), log, shape, threads)
		if err != nil {
			return err
		}

		seen := make(map[string]struct{})
		var results []record.Result
		for _, f := range found {
			if !symmetry.Accept(eng, f.State, f.Period) {
				continue
			}

			gen0 := eng.Decode(f.State)
			for _, orbit := range spacetime.Analyze(shape, int64(f.Period), gen0) {
				r := record.Result{Lattice: orbit.Lattice, Cells: orbit.Cells}
				key := recordKey(r)
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				results = append(results, r)
			}
		}

		sort.Slice(results, func(i, j int) bool { return recordKey(results[i]) < recordKey(results[j]) })

		log.Info().Str("lattice", shape.String()).Int("results", len(results)).Msg("lattice done")
		for _, r := range results {
			data, err := gojson.Marshal(r)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
		}
		return nil
	})
}

func recordKey(r record.Result) string {
	data, err := gojson.Marshal(r)
	if err != nil {
		return fmt.Sprintf("%+v", r)
	}
	return string(data)
}
