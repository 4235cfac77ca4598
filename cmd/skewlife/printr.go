package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/skewlife/classify"
	"github.com/katalvlaran/skewlife/record"
)

// printrCmd implements §4.J's printr subcommand: read record.Result JSON
// lines from the given files (or stdin, via "-" or when no files are
// given), classify and render each, skipping any record already seen.
var printrCmd = &cobra.Command{
	Use:   "printr [FILE...]",
	Short: "classify and render every record from the given files (default: stdin)",
	RunE: func(cmd *cobra.Command, args []string) error {
		dedup := classify.NewDeduper()

		if len(args) == 0 {
			return printrSource(cmd, dedup, "-")
		}
		for _, arg := range args {
			fmt.Fprintf(cmd.OutOrStdout(), "Starting %s...\n", arg)
			if err := printrSource(cmd, dedup, arg); err != nil {
				return err
			}
		}
		return nil
	},
}

func printrSource(cmd *cobra.Command, dedup *classify.Deduper, path string) error {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("printr: %w", err)
		}
		defer f.Close()
		r = f
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		var res record.Result
		if err := gojson.Unmarshal([]byte(line), &res); err != nil {
			return fmt.Errorf("printr: %w", err)
		}
		if dedup.SeenBefore(res) {
			continue
		}
		if err := classify.Print(cmd.OutOrStdout(), res); err != nil {
			return err
		}
	}
	return scanner.Err()
}
