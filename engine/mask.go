package engine

// Mask counts how many of a state's set bits fall in the neighbourhood a
// single cell was compiled with. Concrete shapes below let MaskEngine keep
// its per-cell representation as small as the neighbourhood actually needs
// instead of a worst-case allocation — the torus wrap-around can fold two or
// three distinct neighbour offsets onto the same source cell (see CompileMask),
// so one word isn't always enough.
type Mask[T Word[T]] interface {
	Count(s T) int
}

// Mask1 holds a neighbourhood that fit in a single word: the common case,
// and the one the tick loop should hit for all but the smallest tori.
type Mask1[T Word[T]] struct{ W T }

func (m Mask1[T]) Count(s T) int { return m.W.And(s).PopCount() }

// MaskPair and MaskTriple hold neighbourhoods where wrap-around collapsed
// enough distinct offsets onto the same cell that a second or third word
// was needed to keep every occurrence countable.
type MaskPair[T Word[T]] struct{ A, B T }

func (m MaskPair[T]) Count(s T) int {
	return m.A.And(s).PopCount() + m.B.And(s).PopCount()
}

type MaskTriple[T Word[T]] struct{ A, B, C T }

func (m MaskTriple[T]) Count(s T) int {
	return m.A.And(s).PopCount() + m.B.And(s).PopCount() + m.C.And(s).PopCount()
}

// MaskVec is the fallback for neighbourhoods needing more than three words
// (only reachable on pathologically small tori; the Moore neighbourhood has
// at most 8 distinct offsets, so len(MaskVec) <= 8 always).
type MaskVec[T Word[T]] []T

func (m MaskVec[T]) Count(s T) int {
	n := 0
	for _, w := range m {
		n += w.And(s).PopCount()
	}
	return n
}

// addBit records a collapsing neighbour at bit idx in raw, adding a new
// word only when every existing word already has idx set — the same
// "distribute across separate mask words" rule spec §4.C describes.
func addBit[T Word[T]](raw []T, idx int) []T {
	for i, w := range raw {
		if !w.Bit(idx) {
			raw[i] = w.WithBit(idx)
			return raw
		}
	}
	var zero T
	return append(raw, zero.WithBit(idx))
}

// shapeMasks flattens each cell's variable-length raw word list into the
// smallest fixed Mask shape that fits every cell, per spec §4.C's remasking
// rule ("if all cells fit one word of a shape, use it").
func shapeMasks[T Word[T]](raw [][]T) []Mask[T] {
	maxLen := 0
	for _, r := range raw {
		if len(r) > maxLen {
			maxLen = len(r)
		}
	}

	out := make([]Mask[T], len(raw))
	for i, r := range raw {
		switch maxLen {
		case 1:
			out[i] = Mask1[T]{W: r[0]}
		case 2:
			var b T
			if len(r) > 1 {
				b = r[1]
			}
			out[i] = MaskPair[T]{A: r[0], B: b}
		case 3:
			var b, c T
			if len(r) > 1 {
				b = r[1]
			}
			if len(r) > 2 {
				c = r[2]
			}
			out[i] = MaskTriple[T]{A: r[0], B: b, C: c}
		default:
			out[i] = MaskVec[T](r)
		}
	}
	return out
}
