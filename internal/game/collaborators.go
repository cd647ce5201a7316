package game

import (
	"github.com/samdwyer/asciiquest/internal/ecs"
	"github.com/samdwyer/asciiquest/internal/systems"
	"github.com/samdwyer/asciiquest/internal/world"
)

// Renderer draws the session once per tick.
type Renderer interface {
	Render(s *systems.Session)
}

// CommandKind is what the player asked for.
type CommandKind int

const (
	CmdNone CommandKind = iota
	CmdMove
	CmdWait
	CmdPickup
	CmdInventory
	CmdDrop
	CmdDescend
	CmdQuit
)

// Command is one player command. DX and DY are set for CmdMove.
type Command struct {
	Kind   CommandKind
	DX, DY int
}

// InputMapper turns raw input into commands. NextCommand returns CmdNone
// when no recognized input is pending.
type InputMapper interface {
	NextCommand() Command
}

// MenuResultKind is the outcome of a modal menu.
type MenuResultKind int

const (
	// MenuNoResponse means the menu is still open.
	MenuNoResponse MenuResultKind = iota
	// MenuCancel closes the menu without acting.
	MenuCancel
	// MenuSelected commits a choice.
	MenuSelected
)

// MenuResult is what a menu returns each tick.
type MenuResult struct {
	Kind   MenuResultKind
	Item   ecs.Entity
	Target *world.Point
}

// Menus are the modal inventory, drop and targeting screens.
type Menus interface {
	Inventory(s *systems.Session) MenuResult
	DropItem(s *systems.Session) MenuResult
	Targeting(s *systems.Session, rng int) MenuResult
}
