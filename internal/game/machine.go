package game

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/asciiquest/internal/logger"
)

// Transition event names.
const (
	eventStart          = "start"
	eventAct            = "act"
	eventEndPlayerTurn  = "end_player_turn"
	eventEndMonsterTurn = "end_monster_turn"
	eventOpenInventory  = "open_inventory"
	eventOpenDrop       = "open_drop"
	eventTarget         = "target"
	eventCancel         = "cancel"
	eventCommit         = "commit"
	eventDescend        = "descend"
	eventRegenerate     = "regenerate"
)

// edge is a legal (from, to) pair and the event that performs it.
type edge struct {
	from, to State
}

var edges = map[edge]string{
	{StatePreRun, StateAwaitingInput}:        eventStart,
	{StateAwaitingInput, StatePlayerTurn}:    eventAct,
	{StatePlayerTurn, StateMonsterTurn}:      eventEndPlayerTurn,
	{StateMonsterTurn, StateAwaitingInput}:   eventEndMonsterTurn,
	{StateAwaitingInput, StateShowInventory}: eventOpenInventory,
	{StateAwaitingInput, StateShowDropItem}:  eventOpenDrop,
	{StateShowInventory, StateShowTargeting}: eventTarget,
	{StateShowInventory, StateAwaitingInput}: eventCancel,
	{StateShowDropItem, StateAwaitingInput}:  eventCancel,
	{StateShowTargeting, StateAwaitingInput}: eventCancel,
	{StateShowInventory, StatePlayerTurn}:    eventCommit,
	{StateShowDropItem, StatePlayerTurn}:     eventCommit,
	{StateShowTargeting, StatePlayerTurn}:    eventCommit,
	{StatePlayerTurn, StateNextLevel}:        eventDescend,
	{StateMonsterTurn, StateNextLevel}:       eventDescend,
	{StateNextLevel, StatePreRun}:            eventRegenerate,
}

// machine wraps the fsm holding the current state.
type machine struct {
	fsm *fsm.FSM
}

func newMachine() *machine {
	byEvent := make(map[string][]string)
	dst := make(map[string]string)
	for e, name := range edges {
		byEvent[name] = append(byEvent[name], e.from.String())
		dst[name] = e.to.String()
	}

	var events fsm.Events
	for name, src := range byEvent {
		events = append(events, fsm.EventDesc{Name: name, Src: src, Dst: dst[name]})
	}

	return &machine{fsm: fsm.NewFSM(
		StatePreRun.String(),
		events,
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				logger.Log.WithFields(logrus.Fields{
					"event": e.Event,
					"from":  e.Src,
					"to":    e.Dst,
				}).Debug("state transition")
			},
		},
	)}
}

// current returns the machine's state name.
func (m *machine) current() string {
	return m.fsm.Current()
}

// transition moves the machine from one state to another. A pair with no
// edge is a programming error reported to the caller.
func (m *machine) transition(ctx context.Context, from, to State) error {
	name, ok := edges[edge{from, to}]
	if !ok {
		return fmt.Errorf("illegal transition %s -> %s", from, to)
	}
	if err := m.fsm.Event(ctx, name); err != nil {
		return fmt.Errorf("transition %s -> %s: %w", from, to, err)
	}
	return nil
}
