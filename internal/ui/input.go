package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/asciiquest/internal/game"
)

// Input reads key presses from the screen and maps them to commands.
type Input struct {
	screen *Screen
}

// NewInput creates an input mapper reading from screen.
func NewInput(screen *Screen) *Input {
	return &Input{screen: screen}
}

// NextCommand blocks for one event and returns its command.
func (in *Input) NextCommand() game.Command {
	switch ev := in.screen.PollEvent().(type) {
	case *tcell.EventKey:
		return commandForKey(ev)
	case *tcell.EventResize:
		in.screen.Sync()
	}
	return game.Command{}
}

func move(dx, dy int) game.Command {
	return game.Command{Kind: game.CmdMove, DX: dx, DY: dy}
}

// commandForKey accepts arrows, vi keys and the number pad.
func commandForKey(ev *tcell.EventKey) game.Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.Command{Kind: game.CmdQuit}
	case tcell.KeyUp:
		return move(0, -1)
	case tcell.KeyDown:
		return move(0, 1)
	case tcell.KeyLeft:
		return move(-1, 0)
	case tcell.KeyRight:
		return move(1, 0)
	case tcell.KeyHome:
		return move(-1, -1)
	case tcell.KeyPgUp:
		return move(1, -1)
	case tcell.KeyEnd:
		return move(-1, 1)
	case tcell.KeyPgDn:
		return move(1, 1)
	case tcell.KeyRune:
	default:
		return game.Command{}
	}

	switch ev.Rune() {
	case 'k', '8':
		return move(0, -1)
	case 'j', '2':
		return move(0, 1)
	case 'h', '4':
		return move(-1, 0)
	case 'l', '6':
		return move(1, 0)
	case 'y', '7':
		return move(-1, -1)
	case 'u', '9':
		return move(1, -1)
	case 'b', '1':
		return move(-1, 1)
	case 'n', '3':
		return move(1, 1)
	case '.', '5', ' ':
		return game.Command{Kind: game.CmdWait}
	case 'g', ',':
		return game.Command{Kind: game.CmdPickup}
	case 'i':
		return game.Command{Kind: game.CmdInventory}
	case 'd':
		return game.Command{Kind: game.CmdDrop}
	case '>':
		return game.Command{Kind: game.CmdDescend}
	case 'q', 'Q':
		return game.Command{Kind: game.CmdQuit}
	}
	return game.Command{}
}
