package classify

import (
	"strings"

	"github.com/katalvlaran/skewlife/geom"
)

// Render tiles cells across shifts (per Classification.Shifts) and draws the
// union as a dotted ASCII grid: '*' for a live cell, '.' for dead, one row
// per line, bounded tightly to the tiled cells' own min/max extent.
func Render(cells []geom.Vec2, shifts []geom.Vec2) string {
	live := map[geom.Vec2]struct{}{}
	for _, d := range shifts {
		for _, c := range cells {
			live[geom.Vec2{X: c.X + d.X, Y: c.Y + d.Y}] = struct{}{}
		}
	}
	if len(live) == 0 {
		return ""
	}

	first := true
	var minX, maxX, minY, maxY int64
	for p := range live {
		if first {
			minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
			first = false
			continue
		}
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	var b strings.Builder
	for y := minY; y <= maxY; y++ {
		b.WriteString("   ")
		for x := minX; x <= maxX; x++ {
			if _, ok := live[geom.Vec2{X: x, Y: y}]; ok {
				b.WriteByte('*')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
