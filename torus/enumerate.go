package torus

// pair carries a Bezout coefficient pair alongside the integers in egcdPair's
// extended-Euclid recurrence — the same combine-while-you-reduce trick
// geom.HermiteCanonicalize2/3 use for generator vectors, specialized here to
// plain (s, t) coefficients since that's all the transpose identity needs.
type pair struct{ a, b int64 }

func (p pair) scale(k int64) pair       { return pair{p.a * k, p.b * k} }
func (p pair) addmul(k int64, o pair) pair { return pair{p.a + k*o.a, p.b + k*o.b} }

// egcdPair returns gcd(a, b) together with the two carried coefficient
// pairs, mirroring geom's generic egcd but specialized to avoid exporting
// that machinery just for this one use.
func egcdPair(a, b int64, ra, rb pair) (int64, pair, pair) {
	if a < 0 {
		a = -a
		ra = ra.scale(-1)
	}
	if b < 0 {
		b = -b
		rb = rb.scale(-1)
	}
	for a > 0 {
		q := b / a
		b -= q * a
		rb = rb.addmul(-q, ra)
		a, b = b, a
		ra, rb = rb, ra
	}
	return b, ra, rb
}

// floorMod reduces a modulo m into [0, m), m > 0.
func floorMod(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// lessTriple is the lexicographic order spec §4.B picks the canonical
// representative by: (-mx, my, syx).
func lessTriple(a, b [3]int64) bool {
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// Enumerate returns each inequivalent skew torus of area n exactly once, per
// spec §4.B: every (mx, my) factor pair of n, every syx in [0, mx) with
// 2*syx <= mx (reflection symmetry syx <-> mx-syx handled by only emitting
// the smaller half), with the transpose symmetry (swap axes, recompute syx
// via the extended Euclidean identity d = s*syx + t*mx) collapsed by keeping
// only the lexicographically smallest (-mx, my, syx) representative.
func Enumerate(n int64) []Shape {
	var out []Shape
	for mx := int64(1); mx <= n; mx++ {
		if n%mx != 0 {
			continue
		}
		my := n / mx

		for syx := int64(0); syx < mx; syx++ {
			if 2*syx > mx {
				continue
			}

			d, _, rb := egcdPair(syx, mx, pair{1, 0}, pair{0, 1})
			s := rb.a

			tMX := my * mx / d
			tH := d
			tSYX := s * my
			tSYX = floorMod(tSYX, tMX)
			if alt := tMX - tSYX; alt < tSYX {
				tSYX = alt
			}

			if lessTriple([3]int64{-tMX, tH, tSYX}, [3]int64{-mx, my, syx}) {
				continue
			}

			out = append(out, Shape{MX: mx, MY: my, SYX: syx})
		}
	}
	return out
}
