package record

import (
	gojson "github.com/goccy/go-json"

	"github.com/katalvlaran/skewlife/geom"
)

// Result is one discovered (or sampled) trajectory: the space-time lattice it
// closes on, plus the live cells of one time-slice of the orbit, sorted
// lexicographically. gens/rand each emit a stream of these, one per
// line; printr reads them back.
type Result struct {
	Lattice geom.Generator3
	Cells   []geom.Vec2
}

// MarshalJSON writes the [lattice, cells] tuple: lattice as the nested
// [outer_or_null, inner] encoding of Generator3, cells as an array of
// [x, y] pairs in r.Cells's order (MarshalJSON does not sort them).
func (r Result) MarshalJSON() ([]byte, error) {
	cells := make([][2]int64, len(r.Cells))
	for i, c := range r.Cells {
		cells[i] = [2]int64{c.X, c.Y}
	}
	wire := [2]interface{}{wireG3(r.Lattice), cells}
	return gojson.Marshal(wire)
}

// UnmarshalJSON parses the [lattice, cells] tuple back into a Result.
func (r *Result) UnmarshalJSON(data []byte) error {
	var raw [2]gojson.RawMessage
	if err := gojson.Unmarshal(data, &raw); err != nil {
		return err
	}

	lattice, err := unmarshalG3(raw[0])
	if err != nil {
		return err
	}

	var pairs [][2]int64
	if err := gojson.Unmarshal(raw[1], &pairs); err != nil {
		return err
	}
	cells := make([]geom.Vec2, len(pairs))
	for i, p := range pairs {
		cells[i] = geom.Vec2{X: p[0], Y: p[1]}
	}

	r.Lattice = lattice
	r.Cells = cells
	return nil
}

// wireG3 builds the [outer_or_null, inner] encoding of a Generator3: outer is
// a 3-element array or null, inner recurses into Generator2.
func wireG3(g geom.Generator3) [2]interface{} {
	var outer interface{}
	if g.HasOuter {
		outer = [3]int64{g.Outer.X, g.Outer.Y, g.Outer.T}
	}
	return [2]interface{}{outer, wireG2(g.Inner)}
}

func wireG2(g geom.Generator2) [2]interface{} {
	var outer interface{}
	if g.HasOuter {
		outer = [2]int64{g.Outer.X, g.Outer.Y}
	}
	return [2]interface{}{outer, wireG1(g.Inner)}
}

// wireG1 is the innermost link: an outer-or-null 1-element array followed by
// the empty-array terminator standing in for Rust's unit type.
func wireG1(g geom.Generator1) [2]interface{} {
	var outer interface{}
	if g.HasOuter {
		outer = [1]int64{g.Outer.X}
	}
	return [2]interface{}{outer, [0]int{}}
}

func unmarshalG3(data []byte) (geom.Generator3, error) {
	var raw [2]gojson.RawMessage
	if err := gojson.Unmarshal(data, &raw); err != nil {
		return geom.Generator3{}, err
	}

	var outer *[3]int64
	if err := gojson.Unmarshal(raw[0], &outer); err != nil {
		return geom.Generator3{}, err
	}

	inner, err := unmarshalG2(raw[1])
	if err != nil {
		return geom.Generator3{}, err
	}

	g := geom.Generator3{Inner: inner}
	if outer != nil {
		g.HasOuter = true
		g.Outer = geom.Vec3{X: outer[0], Y: outer[1], T: outer[2]}
	}
	return g, nil
}

func unmarshalG2(data []byte) (geom.Generator2, error) {
	var raw [2]gojson.RawMessage
	if err := gojson.Unmarshal(data, &raw); err != nil {
		return geom.Generator2{}, err
	}

	var outer *[2]int64
	if err := gojson.Unmarshal(raw[0], &outer); err != nil {
		return geom.Generator2{}, err
	}

	inner, err := unmarshalG1(raw[1])
	if err != nil {
		return geom.Generator2{}, err
	}

	g := geom.Generator2{Inner: inner}
	if outer != nil {
		g.HasOuter = true
		g.Outer = geom.Vec2{X: outer[0], Y: outer[1]}
	}
	return g, nil
}

// unmarshalG1 reads the [outer_or_null, []] pair; the terminator is not
// inspected, matching the leniency MarshalJSON's output always satisfies.
func unmarshalG1(data []byte) (geom.Generator1, error) {
	var raw [2]gojson.RawMessage
	if err := gojson.Unmarshal(data, &raw); err != nil {
		return geom.Generator1{}, err
	}

	var outer *[1]int64
	if err := gojson.Unmarshal(raw[0], &outer); err != nil {
		return geom.Generator1{}, err
	}

	g := geom.Generator1{}
	if outer != nil {
		g.HasOuter = true
		g.Outer = geom.Vec1{X: outer[0]}
	}
	return g, nil
}
