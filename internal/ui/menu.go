package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/asciiquest/internal/ecs"
	"github.com/samdwyer/asciiquest/internal/game"
	"github.com/samdwyer/asciiquest/internal/systems"
	"github.com/samdwyer/asciiquest/internal/world"
)

// Menus draws the modal screens over the last frame and reads one key
// per call.
type Menus struct {
	screen   *Screen
	renderer *Renderer

	// cursor is the targeting reticle, nil when targeting is closed.
	cursor *world.Point
}

// NewMenus creates menus drawing through renderer.
func NewMenus(screen *Screen, renderer *Renderer) *Menus {
	return &Menus{screen: screen, renderer: renderer}
}

// Inventory lets the player pick a carried item to use.
func (m *Menus) Inventory(s *systems.Session) game.MenuResult {
	return m.itemMenu(s, "Inventory")
}

// DropItem lets the player pick a carried item to drop.
func (m *Menus) DropItem(s *systems.Session) game.MenuResult {
	return m.itemMenu(s, "Drop Which Item?")
}

func (m *Menus) itemMenu(s *systems.Session, title string) game.MenuResult {
	items := s.World.Backpack(s.Player)
	m.renderer.drawItemList(s, title, items)
	m.screen.Show()

	ev, ok := m.screen.PollEvent().(*tcell.EventKey)
	if !ok {
		return game.MenuResult{Kind: game.MenuNoResponse}
	}
	return pickItem(ev, items)
}

// pickItem maps a letter to the item at that position in items.
func pickItem(ev *tcell.EventKey, items []ecs.Entity) game.MenuResult {
	if ev.Key() == tcell.KeyEscape {
		return game.MenuResult{Kind: game.MenuCancel}
	}
	if ev.Key() != tcell.KeyRune {
		return game.MenuResult{Kind: game.MenuNoResponse}
	}
	i := int(ev.Rune() - 'a')
	if i < 0 || i >= len(items) {
		return game.MenuResult{Kind: game.MenuNoResponse}
	}
	return game.MenuResult{Kind: game.MenuSelected, Item: items[i]}
}

// Targeting shows the tiles in range and moves a reticle over them.
// Enter selects the reticle tile.
func (m *Menus) Targeting(s *systems.Session, rng int) game.MenuResult {
	if m.cursor == nil {
		start := s.PlayerPos
		m.cursor = &start
	}
	m.drawTargets(s, rng)
	m.screen.Show()

	ev, ok := m.screen.PollEvent().(*tcell.EventKey)
	if !ok {
		return game.MenuResult{Kind: game.MenuNoResponse}
	}
	res, next := steerCursor(ev, *m.cursor)
	m.cursor = &next
	if res.Kind != game.MenuNoResponse {
		m.cursor = nil
	}
	return res
}

func (m *Menus) drawTargets(s *systems.Session, rng int) {
	vis, ok := s.World.Visions.Get(s.Player)
	if !ok {
		return
	}
	inRange := tcell.StyleDefault.Background(tcell.ColorDarkBlue)
	for _, p := range vis.VisibleTiles {
		if p.DistanceSq(s.PlayerPos) <= rng*rng {
			m.screen.SetContent(p.X, p.Y, s.Map.TileAt(p.X, p.Y).Rune(), inRange)
		}
	}
	m.screen.SetContent(m.cursor.X, m.cursor.Y, 'X', tcell.StyleDefault.Background(tcell.ColorAqua).Foreground(tcell.ColorBlack))
	m.screen.DrawText(0, s.Map.Height, "Select Target:", tcell.StyleDefault.Foreground(tcell.ColorYellow))
}

// steerCursor applies one key to the reticle at cur.
func steerCursor(ev *tcell.EventKey, cur world.Point) (game.MenuResult, world.Point) {
	switch ev.Key() {
	case tcell.KeyEscape:
		return game.MenuResult{Kind: game.MenuCancel}, cur
	case tcell.KeyEnter:
		target := cur
		return game.MenuResult{Kind: game.MenuSelected, Target: &target}, cur
	}

	cmd := commandForKey(ev)
	if cmd.Kind == game.CmdMove {
		cur = cur.Add(cmd.DX, cmd.DY)
	}
	return game.MenuResult{Kind: game.MenuNoResponse}, cur
}
