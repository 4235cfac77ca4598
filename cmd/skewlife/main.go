// Command skewlife enumerates, searches, samples, and classifies periodic
// configurations of the magic-count Life-like rule on skew-toroidal
// lattices, via four subcommands: genl, gens, rand, printr.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
