// Package game drives the simulation: the turn state machine, the player's
// actions and level transitions.
package game

import "github.com/samdwyer/asciiquest/internal/ecs"

// State is a node of the turn state machine.
type State int

const (
	// StatePreRun runs the pipeline once before the first input of a level.
	StatePreRun State = iota
	// StateAwaitingInput waits for a player command.
	StateAwaitingInput
	// StatePlayerTurn resolves the player's action.
	StatePlayerTurn
	// StateMonsterTurn lets monsters reply.
	StateMonsterTurn
	// StateShowInventory shows the use-item menu.
	StateShowInventory
	// StateShowDropItem shows the drop-item menu.
	StateShowDropItem
	// StateShowTargeting asks for a target point for a ranged item.
	StateShowTargeting
	// StateNextLevel builds the next level.
	StateNextLevel
)

var stateNames = [...]string{
	StatePreRun:        "pre_run",
	StateAwaitingInput: "awaiting_input",
	StatePlayerTurn:    "player_turn",
	StateMonsterTurn:   "monster_turn",
	StateShowInventory: "show_inventory",
	StateShowDropItem:  "show_drop_item",
	StateShowTargeting: "show_targeting",
	StateNextLevel:     "next_level",
}

// String returns the state's name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// RunState is the current state plus the targeting payload, which is only
// meaningful in StateShowTargeting.
type RunState struct {
	State State
	Range int
	Item  ecs.Entity
}
