package world

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/asciiquest/internal/telemetry"
)

// Generator parameters
const (
	defaultAttempts    = 30
	defaultMinRoomSize = 6
	defaultMaxRoomSize = 10
)

// Generator builds rooms-and-corridors levels.
type Generator struct {
	Attempts    int // room placement attempts
	TargetRooms int // stop early once this many rooms exist; 0 means no target
	MinRoomSize int
	MaxRoomSize int
}

// DefaultGenerator is the generator used when no configuration overrides it.
var DefaultGenerator = Generator{
	Attempts:    defaultAttempts,
	MinRoomSize: defaultMinRoomSize,
	MaxRoomSize: defaultMaxRoomSize,
}

// Generate creates a new level. Rooms never overlap, each accepted room is
// joined to the previous one by an L-shaped corridor, and carving never
// touches the outer wall ring.
func (g Generator) Generate(ctx context.Context, width, height, depth int, rng *rand.Rand) *Map {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	if width < 3 || height < 3 {
		panic(fmt.Sprintf("world: map %dx%d too small to carve", width, height))
	}
	g = g.withDefaults()
	startTime := time.Now()

	m := NewMap(width, height, depth)
	for i := 0; i < g.Attempts; i++ {
		if g.TargetRooms > 0 && len(m.Rooms) >= g.TargetRooms {
			break
		}

		room, ok := g.sampleRoom(width, height, rng)
		if !ok || m.overlapsRoom(room) {
			continue
		}

		m.carveRoom(room)
		if n := len(m.Rooms); n > 0 {
			m.carveCorridor(m.Rooms[n-1], room, rng)
		}
		m.Rooms = append(m.Rooms, room)
	}

	if len(m.Rooms) == 0 {
		// Nothing fitted; fall back to one room filling the interior.
		room := Room{X: 1, Y: 1, Width: width - 2, Height: height - 2}
		m.carveRoom(room)
		m.Rooms = append(m.Rooms, room)
	}
	m.Exit = m.Rooms[len(m.Rooms)-1].CenterPoint()

	span.SetAttributes(
		attribute.Int("dungeon.width", width),
		attribute.Int("dungeon.height", height),
		attribute.Int("dungeon.depth", depth),
		attribute.Int("dungeon.room_count", len(m.Rooms)),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return m
}

// NewRoomsAndCorridors generates a level with DefaultGenerator.
func NewRoomsAndCorridors(ctx context.Context, width, height, depth int, rng *rand.Rand) *Map {
	return DefaultGenerator.Generate(ctx, width, height, depth, rng)
}

func (g Generator) withDefaults() Generator {
	if g.Attempts <= 0 {
		g.Attempts = defaultAttempts
	}
	if g.MinRoomSize <= 0 {
		g.MinRoomSize = defaultMinRoomSize
	}
	if g.MaxRoomSize < g.MinRoomSize {
		g.MaxRoomSize = g.MinRoomSize
	}
	return g
}

// sampleRoom picks a random room that keeps a one-tile margin from the edges.
func (g Generator) sampleRoom(width, height int, rng *rand.Rand) (Room, bool) {
	w := g.MinRoomSize + rng.Intn(g.MaxRoomSize-g.MinRoomSize+1)
	h := g.MinRoomSize + rng.Intn(g.MaxRoomSize-g.MinRoomSize+1)

	// x ranges over [1, width-w-1] so the room ends at width-2 at most.
	spanX := width - w - 1
	spanY := height - h - 1
	if spanX <= 0 || spanY <= 0 {
		return Room{}, false
	}
	return Room{
		X:      1 + rng.Intn(spanX),
		Y:      1 + rng.Intn(spanY),
		Width:  w,
		Height: h,
	}, true
}

// overlapsRoom reports whether room, grown by one tile, touches an accepted room.
func (m *Map) overlapsRoom(room Room) bool {
	grown := Room{X: room.X - 1, Y: room.Y - 1, Width: room.Width + 2, Height: room.Height + 2}
	for _, other := range m.Rooms {
		if grown.Intersects(other) {
			return true
		}
	}
	return false
}

// carveRoom sets all tiles within the room to floor.
func (m *Map) carveRoom(room Room) {
	for y := room.Y; y < room.Y+room.Height; y++ {
		for x := room.X; x < room.X+room.Width; x++ {
			m.carve(x, y)
		}
	}
}

// carveCorridor joins two room centers with one horizontal and one vertical
// segment, in random order.
func (m *Map) carveCorridor(from, to Room, rng *rand.Rand) {
	x1, y1 := from.Center()
	x2, y2 := to.Center()

	if rng.Intn(2) == 0 {
		m.carveHorizontalTunnel(x1, x2, y1)
		m.carveVerticalTunnel(y1, y2, x2)
	} else {
		m.carveVerticalTunnel(y1, y2, x1)
		m.carveHorizontalTunnel(x1, x2, y2)
	}
}

func (m *Map) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		m.carve(x, y)
	}
}

func (m *Map) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		m.carve(x, y)
	}
}

// carve turns an interior tile into floor; the outer ring is left alone.
func (m *Map) carve(x, y int) {
	if x > 0 && x < m.Width-1 && y > 0 && y < m.Height-1 {
		m.Tiles[y*m.Width+x] = TileFloor
	}
}
