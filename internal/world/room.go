package world

import "math/rand"

// Room is a rectangular carved area. Every tile inside it is floor.
type Room struct {
	X, Y          int // top-left corner
	Width, Height int
}

// Center returns the center coordinates of the room.
func (r Room) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// CenterPoint is Center as a Point.
func (r Room) CenterPoint() Point {
	x, y := r.Center()
	return Point{X: x, Y: y}
}

// Contains returns true if the given point is inside the room.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersects returns true if this room overlaps with another room.
func (r Room) Intersects(other Room) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// RandomPoint picks a uniformly random tile inside the room.
func (r Room) RandomPoint(rng *rand.Rand) Point {
	return Point{
		X: r.X + rng.Intn(r.Width),
		Y: r.Y + rng.Intn(r.Height),
	}
}

// Area returns the number of tiles in the room.
func (r Room) Area() int {
	return r.Width * r.Height
}
