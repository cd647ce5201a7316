package world

import "github.com/zyedidia/generic/mapset"

// Reachable returns every floor tile reachable from start through
// orthogonal steps. Entities are ignored; only the static layout counts.
func (m *Map) Reachable(start Point) mapset.Set[Point] {
	visited := mapset.New[Point]()
	if !m.IsPassable(start.X, start.Y) {
		return visited
	}

	queue := []Point{start}
	visited.Put(start)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, next := range []Point{
			current.Add(0, -1), current.Add(1, 0), current.Add(0, 1), current.Add(-1, 0),
		} {
			if visited.Has(next) || !m.IsPassable(next.X, next.Y) {
				continue
			}
			visited.Put(next)
			queue = append(queue, next)
		}
	}
	return visited
}

// Connected reports whether every room center and the exit can be reached
// from the start point.
func (m *Map) Connected() bool {
	reachable := m.Reachable(m.StartPoint())
	for _, room := range m.Rooms {
		if !reachable.Has(room.CenterPoint()) {
			return false
		}
	}
	return reachable.Has(m.Exit)
}
