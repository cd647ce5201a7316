package world

// Octant transforms for recursive shadowcasting.
var multipliers = [4][8]int{
	{1, 0, 0, -1, -1, 0, 0, 1},
	{0, 1, -1, 0, 0, -1, 1, 0},
	{0, 1, 1, 0, 0, -1, -1, 0},
	{1, 0, 0, 1, -1, 0, 0, -1},
}

// FieldOfView returns the points visible from origin within radius, using
// recursive shadowcasting with walls as opaque. Opaque tiles that are seen
// are included; nothing behind them is. Results are clipped to the map and
// contain each point once. A radius of zero or less sees only the origin.
func (m *Map) FieldOfView(origin Point, radius int) []Point {
	if !m.InBounds(origin.X, origin.Y) {
		return nil
	}

	seen := make(map[int]struct{})
	out := []Point{origin}
	seen[m.Index(origin.X, origin.Y)] = struct{}{}
	if radius <= 0 {
		return out
	}

	mark := func(x, y int) {
		idx := y*m.Width + x
		if _, ok := seen[idx]; ok {
			return
		}
		seen[idx] = struct{}{}
		out = append(out, Point{X: x, Y: y})
	}

	for oct := 0; oct < 8; oct++ {
		m.castLight(origin.X, origin.Y, 1, 1.0, 0.0, radius,
			multipliers[0][oct], multipliers[1][oct],
			multipliers[2][oct], multipliers[3][oct], mark)
	}
	return out
}

func (m *Map) castLight(cx, cy, row int, start, end float64, radius, xx, xy, yx, yy int, mark func(x, y int)) {
	if start < end {
		return
	}

	radiusSq := radius * radius
	newStart := start

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false

		for {
			dx++
			if dx > 0 {
				break
			}

			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)
			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			x := cx + dx*xx + dy*xy
			y := cy + dx*yx + dy*yy
			if m.InBounds(x, y) && dx*dx+dy*dy <= radiusSq {
				mark(x, y)
			}

			if blocked {
				if m.IsOpaque(x, y) {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else if m.IsOpaque(x, y) && j < radius {
				blocked = true
				m.castLight(cx, cy, j+1, start, lSlope, radius, xx, xy, yx, yy, mark)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
