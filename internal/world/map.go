package world

import (
	"fmt"

	"github.com/samdwyer/asciiquest/internal/ecs"
)

const (
	// Default map dimensions
	DefaultWidth  = 80
	DefaultHeight = 50
)

// Map is the tile grid of one dungeon level. All per-tile slices are
// parallel to Tiles and indexed by y*Width+x.
type Map struct {
	Width  int
	Height int
	Depth  int
	Tiles  []Tile
	Rooms  []Room

	Revealed []bool // ever seen by the player
	Visible  []bool // seen by the player this tick
	Blocked  []bool // derived each tick by map indexing

	// TileContent lists every entity standing on a tile. It is rebuilt by
	// map indexing and never persisted.
	TileContent [][]ecs.Entity

	// Exit is the level-exit point, the center of the last room.
	Exit Point
}

// NewMap creates a map of the given size filled with walls.
func NewMap(width, height, depth int) *Map {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("world: invalid map size %dx%d", width, height))
	}
	n := width * height
	tiles := make([]Tile, n)
	for i := range tiles {
		tiles[i] = TileWall
	}
	return &Map{
		Width:       width,
		Height:      height,
		Depth:       depth,
		Tiles:       tiles,
		Rooms:       make([]Room, 0),
		Revealed:    make([]bool, n),
		Visible:     make([]bool, n),
		Blocked:     make([]bool, n),
		TileContent: make([][]ecs.Entity, n),
	}
}

// InBounds reports whether (x, y) lies on the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Index converts a coordinate to a slice index. Out-of-range coordinates
// are a programming error and panic; use InBounds to check first.
func (m *Map) Index(x, y int) int {
	if !m.InBounds(x, y) {
		panic(fmt.Sprintf("world: index (%d,%d) outside %dx%d map", x, y, m.Width, m.Height))
	}
	return y*m.Width + x
}

// PointOf converts a slice index back to a coordinate.
func (m *Map) PointOf(idx int) Point {
	return Point{X: idx % m.Width, Y: idx / m.Width}
}

// TileAt returns the tile at the given position; outside the map is wall.
func (m *Map) TileAt(x, y int) Tile {
	if !m.InBounds(x, y) {
		return TileWall
	}
	return m.Tiles[y*m.Width+x]
}

// IsPassable returns true if the given position is floor.
func (m *Map) IsPassable(x, y int) bool {
	return m.TileAt(x, y).IsPassable()
}

// IsOpaque reports whether (x, y) blocks sight. Outside the map is opaque.
func (m *Map) IsOpaque(x, y int) bool {
	return m.TileAt(x, y).IsOpaque()
}

// IsBlocked reports whether movement into (x, y) is prevented this tick.
func (m *Map) IsBlocked(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.Blocked[y*m.Width+x]
}

// PopulateBlocked resets Blocked to the static wall layout.
func (m *Map) PopulateBlocked() {
	for i, t := range m.Tiles {
		m.Blocked[i] = t == TileWall
	}
}

// ClearContent empties every TileContent list, keeping the backing arrays.
func (m *Map) ClearContent() {
	for i := range m.TileContent {
		m.TileContent[i] = m.TileContent[i][:0]
	}
}

// ResetVisible marks every tile as not visible this tick.
func (m *Map) ResetVisible() {
	clear(m.Visible)
}

// RoomIndexAt returns the index of the room containing the position, or -1 if not in a room.
func (m *Map) RoomIndexAt(x, y int) int {
	for i, room := range m.Rooms {
		if room.Contains(x, y) {
			return i
		}
	}
	return -1
}

// StartPoint is where the player enters the level: the first room's center.
func (m *Map) StartPoint() Point {
	if len(m.Rooms) == 0 {
		return Point{X: m.Width / 2, Y: m.Height / 2}
	}
	return m.Rooms[0].CenterPoint()
}
