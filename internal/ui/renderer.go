package ui

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/asciiquest/internal/component"
	"github.com/samdwyer/asciiquest/internal/ecs"
	"github.com/samdwyer/asciiquest/internal/systems"
	"github.com/samdwyer/asciiquest/internal/world"
)

// logLines is how many recent messages the status panel shows.
const logLines = 5

// Renderer draws the map, visible entities and the status panel.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a renderer for screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws one frame of s.
func (r *Renderer) Render(s *systems.Session) {
	r.screen.Clear()
	r.drawMap(s.Map)
	r.drawEntities(s)
	r.drawStatus(s)
	r.screen.Show()
}

func (r *Renderer) drawMap(m *world.Map) {
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			idx := m.Index(x, y)
			if !m.Revealed[idx] {
				continue
			}
			tile := m.Tiles[idx]
			r.screen.SetContent(x, y, tile.Rune(), tileStyle(tile, m.Visible[idx]))
		}
	}
}

// tileStyle greys out tiles that were seen before but are not in view.
func tileStyle(tile world.Tile, visible bool) tcell.Style {
	if !visible {
		return tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	}
	switch tile {
	case world.TileWall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	case world.TileFloor:
		return tcell.StyleDefault.Foreground(tcell.ColorTeal)
	default:
		return tcell.StyleDefault
	}
}

// drawEntities draws entities on visible tiles. Higher render orders are
// drawn first so the lowest order ends up on top.
func (r *Renderer) drawEntities(s *systems.Session) {
	w := s.World
	ents := w.Query().With(w.Positions).With(w.Renderables).Execute()
	sort.SliceStable(ents, func(i, j int) bool {
		a, _ := w.Renderables.Get(ents[i])
		b, _ := w.Renderables.Get(ents[j])
		return a.RenderOrder > b.RenderOrder
	})
	for _, e := range ents {
		pos, _ := w.Positions.Get(e)
		if !s.Map.InBounds(pos.X, pos.Y) || !s.Map.Visible[s.Map.Index(pos.X, pos.Y)] {
			continue
		}
		rend, _ := w.Renderables.Get(e)
		r.screen.SetContent(pos.X, pos.Y, rend.Glyph, renderStyle(rend))
	}
}

func renderStyle(rend component.Renderable) tcell.Style {
	return tcell.StyleDefault.Foreground(rend.FG).Background(rend.BG)
}

func (r *Renderer) drawStatus(s *systems.Session) {
	top := s.Map.Height
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	x := r.screen.DrawText(0, top, fmt.Sprintf("Depth: %d", s.Map.Depth), tcell.StyleDefault.Foreground(tcell.ColorYellow))
	if stats, ok := s.World.Stats.Get(s.Player); ok {
		r.screen.DrawText(x+2, top, fmt.Sprintf("HP: %d / %d", stats.HP, stats.MaxHP), hpStyle(stats))
	}
	for i, line := range s.Log.Last(logLines) {
		r.screen.DrawText(0, top+1+i, line, style)
	}
}

func hpStyle(stats component.CombatStats) tcell.Style {
	if stats.HP*4 <= stats.MaxHP {
		return tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	}
	return tcell.StyleDefault.Foreground(tcell.ColorYellow)
}

// drawItemList draws a titled box listing items as "(a) Name".
func (r *Renderer) drawItemList(s *systems.Session, title string, items []ecs.Entity) {
	width := len(title) + 4
	for _, it := range items {
		width = max(width, len(s.World.NameOf(it))+8)
	}
	height := len(items) + 3
	x := max(0, (s.Map.Width-width)/2)
	y := max(0, (s.Map.Height-height)/2)

	frame := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	r.screen.Fill(x, y, width, height, frame)
	r.screen.DrawText(x+2, y, title, frame.Foreground(tcell.ColorYellow))
	for i, it := range items {
		r.screen.DrawText(x+2, y+1+i, fmt.Sprintf("(%c) %s", 'a'+i, s.World.NameOf(it)), frame)
	}
	r.screen.DrawText(x+2, y+height-1, "ESCAPE to cancel", frame.Foreground(tcell.ColorYellow))
}
