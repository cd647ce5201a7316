package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/asciiquest/internal/component"
	"github.com/samdwyer/asciiquest/internal/entity"
	"github.com/samdwyer/asciiquest/internal/gamedata"
	"github.com/samdwyer/asciiquest/internal/gamelog"
	"github.com/samdwyer/asciiquest/internal/logger"
	"github.com/samdwyer/asciiquest/internal/systems"
	"github.com/samdwyer/asciiquest/internal/telemetry"
	"github.com/samdwyer/asciiquest/internal/world"
)

// Game holds the entire game state.
type Game struct {
	cfg       Config
	catalog   *gamedata.Catalog
	generator world.Generator
	pipeline  *systems.Pipeline
	session   *systems.Session
	machine   *machine
	run       RunState

	renderer Renderer
	input    InputMapper
	menus    Menus

	descendRequested bool
	quit             bool
}

// New creates a game on its first level, in StatePreRun.
func New(ctx context.Context, cfg Config, catalog *gamedata.Catalog, renderer Renderer, input InputMapper, menus Menus) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	strategy, err := systems.StrategyByName(cfg.AIStrategy)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &Game{
		cfg:       cfg,
		catalog:   catalog,
		generator: cfg.generator(),
		pipeline:  systems.NewPipeline(strategy),
		machine:   newMachine(),
		run:       RunState{State: StatePreRun},
		renderer:  renderer,
		input:     input,
		menus:     menus,
		session: &systems.Session{
			World: entity.NewWorld(),
			Log:   gamelog.New(cfg.LocaleDir, cfg.Language),
			RNG:   rand.New(rand.NewSource(seed)),
		},
	}

	s := g.session
	s.Map = g.buildLevel(ctx, 1)
	start := s.Map.StartPoint()
	s.Player = entity.SpawnPlayer(s.World, &catalog.Player, start)
	s.PlayerPos = start

	s.Log.Add("Welcome to Ascii Quest")
	s.Log.Add("An acrid smell fills your nostrils")

	span.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.Int("dungeon.rooms", len(s.Map.Rooms)),
		attribute.Int("player.start_x", start.X),
		attribute.Int("player.start_y", start.Y),
	)
	logger.Log.WithField("seed", seed).Info("game created")
	return g, nil
}

// Session exposes the shared simulation state.
func (g *Game) Session() *systems.Session {
	return g.session
}

// State returns the current run state.
func (g *Game) State() RunState {
	return g.run
}

// Done reports whether the player asked to quit.
func (g *Game) Done() bool {
	return g.quit
}

// Run ticks until the player quits or ctx is cancelled.
func (g *Game) Run(ctx context.Context) error {
	for !g.quit {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.Tick(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Tick renders, performs exactly the work of the current state, commits the
// next state and then sweeps the dead.
func (g *Game) Tick(ctx context.Context) error {
	if g.renderer != nil {
		g.renderer.Render(g.session)
	}

	next := g.run
	switch g.run.State {
	case StatePreRun:
		g.runSystems(ctx, systems.PhaseSetup)
		next = RunState{State: StateAwaitingInput}

	case StateAwaitingInput:
		next = g.playerInput()

	case StatePlayerTurn:
		g.runSystems(ctx, systems.PhasePlayer)
		next = RunState{State: StateMonsterTurn}
		if g.exitReached() {
			next = RunState{State: StateNextLevel}
		}

	case StateMonsterTurn:
		g.runSystems(ctx, systems.PhaseMonster)
		next = RunState{State: StateAwaitingInput}
		if g.exitReached() {
			next = RunState{State: StateNextLevel}
		}

	case StateShowInventory:
		next = g.inventoryMenu()

	case StateShowDropItem:
		next = g.dropMenu()

	case StateShowTargeting:
		next = g.targetingMenu()

	case StateNextLevel:
		g.gotoNextLevel(ctx)
		next = RunState{State: StatePreRun}
	}

	if err := g.commit(ctx, next); err != nil {
		return err
	}
	systems.DeleteTheDead(g.session)
	return nil
}

// commit moves to next. Staying in the same state needs no transition.
func (g *Game) commit(ctx context.Context, next RunState) error {
	if next.State != g.run.State {
		if err := g.machine.transition(ctx, g.run.State, next.State); err != nil {
			return fmt.Errorf("tick: %w", err)
		}
	}
	g.run = next
	return nil
}

func (g *Game) runSystems(ctx context.Context, phase systems.Phase) {
	g.session.Phase = phase
	g.pipeline.Run(ctx, g.session)
}

func (g *Game) playerInput() RunState {
	stay := g.run
	cmd := g.input.NextCommand()

	if g.session.PlayerDead && cmd.Kind != CmdQuit {
		return stay
	}

	switch cmd.Kind {
	case CmdMove:
		g.TryMovePlayer(cmd.DX, cmd.DY)
	case CmdWait:
	case CmdPickup:
		g.GetItem()
	case CmdInventory:
		return RunState{State: StateShowInventory}
	case CmdDrop:
		return RunState{State: StateShowDropItem}
	case CmdDescend:
		if !g.TryDescend() {
			return stay
		}
	case CmdQuit:
		g.quit = true
		return stay
	default:
		return stay
	}
	return RunState{State: StatePlayerTurn}
}

func (g *Game) inventoryMenu() RunState {
	res := g.menus.Inventory(g.session)
	switch res.Kind {
	case MenuCancel:
		return RunState{State: StateAwaitingInput}
	case MenuSelected:
		w := g.session.World
		if ranged, ok := w.Rangeds.Get(res.Item); ok {
			return RunState{State: StateShowTargeting, Range: ranged.Range, Item: res.Item}
		}
		w.WantsToUseItem.Set(g.session.Player, component.WantsToUseItem{Item: res.Item})
		return RunState{State: StatePlayerTurn}
	default:
		return g.run
	}
}

func (g *Game) dropMenu() RunState {
	res := g.menus.DropItem(g.session)
	switch res.Kind {
	case MenuCancel:
		return RunState{State: StateAwaitingInput}
	case MenuSelected:
		g.session.World.WantsToDropItem.Set(g.session.Player, component.WantsToDropItem{Item: res.Item})
		return RunState{State: StatePlayerTurn}
	default:
		return g.run
	}
}

func (g *Game) targetingMenu() RunState {
	res := g.menus.Targeting(g.session, g.run.Range)
	switch res.Kind {
	case MenuCancel:
		return RunState{State: StateAwaitingInput}
	case MenuSelected:
		if res.Target == nil || !g.InTargetRange(*res.Target, g.run.Range) {
			g.session.Log.Add("That target is out of range.")
			return g.run
		}
		target := *res.Target
		g.session.World.WantsToUseItem.Set(g.session.Player, component.WantsToUseItem{
			Item:   g.run.Item,
			Target: &target,
		})
		return RunState{State: StatePlayerTurn}
	default:
		return g.run
	}
}
