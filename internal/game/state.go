package game

import (
	"cavecrawl/internal/component"
	"cavecrawl/internal/ecs"
	"cavecrawl/internal/factory"
	"cavecrawl/internal/gamemap"
	"cavecrawl/internal/generate"
	"cavecrawl/internal/system"
	"cavecrawl/internal/telemetry"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/leonelquinteros/gotext"
	"go.opentelemetry.io/otel/attribute"
)

// Phase is the simulation's state machine position.
type Phase uint8

const (
	PhaseMainMenu Phase = iota
	PhaseGenerate
	PhaseWorldUpdate
	PhaseTurn
	PhaseDescend
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMainMenu:
		return "main-menu"
	case PhaseGenerate:
		return "generate"
	case PhaseWorldUpdate:
		return "world-update"
	case PhaseTurn:
		return "turn"
	case PhaseDescend:
		return "descend"
	case PhaseGameOver:
		return "game-over"
	}
	return "unknown"
}

// RunSummary describes the last finished run.
type RunSummary struct {
	Floor int
	Level int
	Died  bool
	Turns int
}

// errNoPlayer means a populated floor had no cell for the player.
var errNoPlayer = errors.New("floor has no player")

// maxSettleTicks bounds Advance; a healthy floor needs one tick per actor.
const maxSettleTicks = 10000

// Options configures New.
type Options struct {
	Rand        *rand.Rand   // nil seeds from the clock
	Logger      *slog.Logger // nil discards
	MaxAttempts int          // generator batch size, 0 for the default
}

// State is the whole simulation. It is owned by one goroutine; frontends
// feed it intents through Tick or Advance and read it through accessors.
type State struct {
	Phase Phase
	World *ecs.World
	Map   *gamemap.WorldMap // nil outside a floor
	Order *system.InitiativeOrder
	Data  *GameData
	Logs  *Logs

	// Turns counts world updates in the current run.
	Turns   int
	LastRun *RunSummary
	Layout  *generate.Layout

	player          ecs.EntityID
	current         ecs.EntityID
	playerParalyzed bool
	queue           *system.EventQueue
	rng             *rand.Rand
	logger          *slog.Logger
	maxAttempts     int
}

// New creates a simulation sitting in the main menu.
func New(opts Options) *State {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &State{
		Phase:       PhaseMainMenu,
		World:       ecs.NewWorld(),
		Data:        NewGameData(),
		Logs:        &Logs{},
		queue:       system.NewEventQueue(),
		rng:         rng,
		logger:      logger,
		maxAttempts: opts.MaxAttempts,
	}
}

// Tick advances the state machine by one phase step.
func (s *State) Tick(ctx context.Context, intent Intent) error {
	switch s.Phase {
	case PhaseMainMenu:
		if _, ok := intent.(IntentStart); ok {
			s.Data = NewGameData()
			s.Turns = 0
			s.Phase = PhaseGenerate
		}
	case PhaseGenerate:
		return s.generateFloor(ctx)
	case PhaseWorldUpdate:
		s.worldUpdate(ctx)
	case PhaseTurn:
		s.turn(intent)
	case PhaseDescend:
		s.descend()
	case PhaseGameOver:
		s.gameOver()
	}
	return nil
}

// Advance feeds intent to the current phase, then keeps ticking until the
// player must act again or the run returned to the main menu.
func (s *State) Advance(ctx context.Context, intent Intent) error {
	if err := s.Tick(ctx, intent); err != nil {
		return err
	}
	for range maxSettleTicks {
		if s.AwaitingInput() || s.Phase == PhaseMainMenu {
			return nil
		}
		if err := s.Tick(ctx, IntentNone{}); err != nil {
			return err
		}
	}
	return fmt.Errorf("simulation did not settle after %d ticks in phase %v", maxSettleTicks, s.Phase)
}

// AwaitingInput reports whether the next Tick needs a player intent.
func (s *State) AwaitingInput() bool {
	return s.Phase == PhaseTurn && s.current == s.player && !s.playerParalyzed
}

func (s *State) generateFloor(ctx context.Context) error {
	cfg := levelConfig(s.Data.Floor, s.rng, s.maxAttempts)
	layout, err := generate.Generate(ctx, cfg)
	if err != nil {
		return fmt.Errorf("floor %d: %w", s.Data.Floor, err)
	}
	result := generate.Populate(layout, cfg)

	m, player := factory.Materialize(s.World, result, s.Data.PreviousHP)
	if player == ecs.NilEntity {
		return fmt.Errorf("floor %d: %w", s.Data.Floor, errNoPlayer)
	}
	s.Map, s.player, s.current = m, player, ecs.NilEntity
	s.Order = system.NewInitiativeOrder()
	s.Layout = layout
	s.logger.Info("floor generated",
		"floor", s.Data.Floor,
		"attempts", layout.Attempts,
		"cave_size", layout.CaveSize,
		"zones", layout.ZoneCount,
		"relaxed", layout.Relaxed,
		"spawns", len(result.Spawns),
		"discarded", result.Discarded,
	)
	s.Logs.Narrate(gotext.Get("You enter floor %d of the caves.", s.Data.Floor))
	s.Phase = PhaseWorldUpdate
	return nil
}

// worldUpdate rebuilds flags, hands the turn to the next actor and
// recomputes the player's view.
func (s *State) worldUpdate(ctx context.Context) {
	_, span := telemetry.Tracer("game").Start(ctx, "turn.world_update")
	defer span.End()

	s.Map.RecomputeFlags(s.World)
	current, ok := s.Order.Advance(s.World)
	if !ok {
		s.finishRun(true)
		return
	}
	s.current = current
	s.playerParalyzed = current == s.player && system.TickParalysis(s.World, current)
	system.UpdateFOV(s.World, s.Map, s.player)
	s.Turns++
	span.SetAttributes(
		attribute.Int("turn.number", s.Turns),
		attribute.String("turn.actor", current.String()),
	)
	s.Phase = PhaseTurn
}

// turn lets the current actor emit at most one event and drains the queue.
func (s *State) turn(intent Intent) {
	if !s.World.Alive(s.current) {
		s.Phase = PhaseWorldUpdate
		return
	}
	switch {
	case s.current != s.player:
		s.queue.Push(system.EnemyTurn(s.World, s.Map, s.current))
	case s.playerParalyzed:
		s.queue.Push(system.Wait(s.player))
	default:
		for _, e := range s.playerIntent(intent) {
			s.queue.Push(e)
		}
	}
	if s.queue.Len() == 0 {
		return
	}

	p := system.Pipeline{
		World:    s.World,
		Map:      s.Map,
		Order:    s.Order,
		Ledger:   s.Data,
		Narrator: s.Logs,
		Logger:   s.logger,
	}
	out := p.Drain(s.queue)
	switch {
	case out.Quit:
		s.finishRun(false)
	case !s.World.Alive(s.player):
		s.finishRun(true)
	case out.Descend:
		s.Phase = PhaseDescend
	case out.Applied > 0:
		s.Phase = PhaseWorldUpdate
	}
}

func (s *State) finishRun(died bool) {
	s.LastRun = &RunSummary{Floor: s.Data.Floor, Level: s.Data.Level, Died: died, Turns: s.Turns}
	s.logger.Info("run finished", "floor", s.Data.Floor, "level", s.Data.Level, "died", died, "turns", s.Turns)
	s.Phase = PhaseGameOver
}

// descend carries the player's health to the next floor and clears this one.
func (s *State) descend() {
	if hp, ok := s.World.Get(s.player, component.CHealth).(component.Health); ok {
		s.Data.PreviousHP = &hp
	}
	s.despawnAll()
	s.Data.Floor++
	s.Data.clearInventory()
	s.Logs.Clear()
	s.Phase = PhaseGenerate
}

// gameOver wipes the run and returns to the menu.
func (s *State) gameOver() {
	s.despawnAll()
	s.Data = NewGameData()
	s.Logs.Clear()
	s.Phase = PhaseMainMenu
}

func (s *State) despawnAll() {
	for _, id := range s.World.Entities() {
		s.World.DestroyEntity(id)
	}
	s.Map, s.Order, s.Layout = nil, nil, nil
	s.player, s.current = ecs.NilEntity, ecs.NilEntity
	s.playerParalyzed = false
}
