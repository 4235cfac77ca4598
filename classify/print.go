package classify

import (
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"

	"github.com/katalvlaran/skewlife/record"
)

// Print writes r's classification to w: a one-line "<lattice, cells>: label"
// summary, followed by a rendered cell grid for every classification that
// calls for one (spaceships, waves, jumping wicks, and any oscillator or
// oscillator wick with a period above 2). Agars never get a grid.
func Print(w io.Writer, r record.Result) error {
	c := Classify(r.Lattice)
	if _, err := fmt.Fprintf(w, "%s: %s\n", describe(r), c.Label); err != nil {
		return err
	}
	if c.ShowCells {
		_, err := io.WriteString(w, Render(r.Cells, c.Shifts))
		return err
	}
	return nil
}

func describe(r record.Result) string {
	data, err := gojson.Marshal(r)
	if err != nil {
		return fmt.Sprintf("%+v", r)
	}
	return string(data)
}

// Deduper suppresses records already printed, mirroring printr's `already`
// set: the exact same [lattice, cells] record seen a second time (from a
// re-run search, or a sampler discovering the same orbit twice) is rendered
// only once, in first-occurrence order.
type Deduper struct {
	seen map[string]struct{}
}

// NewDeduper returns an empty Deduper.
func NewDeduper() *Deduper {
	return &Deduper{seen: make(map[string]struct{})}
}

// SeenBefore reports whether r (by wire-format value, not pointer identity)
// has already been passed to SeenBefore on this Deduper, recording it as
// seen if not.
func (d *Deduper) SeenBefore(r record.Result) bool {
	key := describe(r)
	if _, ok := d.seen[key]; ok {
		return true
	}
	d.seen[key] = struct{}{}
	return false
}
