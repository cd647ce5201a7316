// Package world provides the dungeon map, its generator and field-of-view.
package world

// Tile is the kind of a single map cell.
type Tile rune

const (
	// TileWall is opaque and impassable.
	TileWall Tile = '#'
	// TileFloor is transparent and walkable.
	TileFloor Tile = '.'
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileFloor
}

// IsOpaque returns true if the tile blocks line of sight.
func (t Tile) IsOpaque() bool {
	return t == TileWall
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Add returns p offset by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// DistanceSq returns the squared euclidean distance between two points.
func (p Point) DistanceSq(o Point) int {
	dx, dy := p.X-o.X, p.Y-o.Y
	return dx*dx + dy*dy
}

// Adjacent reports whether o is one of the eight neighbours of p.
func (p Point) Adjacent(o Point) bool {
	return p != o && p.DistanceSq(o) <= 2
}
