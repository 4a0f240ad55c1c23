package game

import (
	"cavecrawl/internal/component"
	"cavecrawl/internal/ecs"
	"cavecrawl/internal/factory"
	"cavecrawl/internal/gamemap"
	"cavecrawl/internal/system"
	"context"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestState builds a floor from rows ('#' wall, '>' stairs, 'P' player,
// 'o' orc) and leaves the state ready for its first world update.
func newTestState(t *testing.T, hp *component.Health, rows ...string) *State {
	t.Helper()
	s := New(Options{Rand: rand.New(rand.NewSource(1))})
	m := gamemap.New(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, ch := range row {
			p := component.Position{X: x, Y: y}
			kind := component.TileFloor
			switch ch {
			case '#':
				kind = component.TileWall
			case '>':
				kind = component.TileStairsDown
				m.Stairs = p
			}
			m.AddEntity(factory.NewTile(s.World, kind, p), p)
			switch ch {
			case 'P':
				s.player = factory.NewPlayer(s.World, p, hp)
				m.AddEntity(s.player, p)
			case 'o':
				m.AddEntity(factory.NewOrc(s.World, p), p)
			}
		}
	}
	require.NotEqual(t, ecs.NilEntity, s.player, "rows need a player")
	s.Map = m
	s.Order = system.NewInitiativeOrder()
	s.Phase = PhaseWorldUpdate
	return s
}

// carry gives the player an item that is already off the map.
func carry(s *State, slot int, kind component.ItemKind) ecs.EntityID {
	id := factory.NewItem(s.World, kind, component.Position{})
	s.World.Remove(id, component.CPosition)
	s.Data.Inventory[slot] = id
	return id
}

func advance(t *testing.T, s *State, intents ...Intent) {
	t.Helper()
	for _, in := range intents {
		require.NoError(t, s.Advance(context.Background(), in))
	}
}

func orcAt(t *testing.T, s *State, p component.Position) ecs.EntityID {
	t.Helper()
	id, ok := s.Map.FirstWith(s.World, p, component.CEnemyAI)
	require.True(t, ok, "no orc at %v", p)
	return id
}

func TestPotionHealsPlayerUnderCursor(t *testing.T) {
	s := newTestState(t, &component.Health{Current: 4, Max: 8},
		"#####",
		"#P..#",
		"#####",
	)
	potion := carry(s, 0, component.ItemHealthPotion)
	advance(t, s, IntentNone{})
	require.True(t, s.AwaitingInput())
	before := len(s.Logs.Lines())

	pos, _ := s.PlayerPosition()
	advance(t, s, IntentSelect{Slot: 0}, IntentUse{Cursor: pos})

	hp, _ := s.PlayerHealth()
	assert.Equal(t, component.Health{Current: 8, Max: 8}, hp)
	assert.Equal(t, ecs.NilEntity, s.Data.Inventory[0])
	assert.Equal(t, -1, s.Data.Selected)
	assert.False(t, s.World.Alive(potion))
	lines := s.Logs.Lines()
	require.Len(t, lines, before+1)
	assert.Contains(t, lines[0], "healed")
}

func TestUseWithoutTargetKeepsItem(t *testing.T) {
	s := newTestState(t, nil,
		"######",
		"#P...#",
		"######",
	)
	scroll := carry(s, 2, component.ItemScrollOfLightning)
	advance(t, s, IntentNone{}, IntentSelect{Slot: 2})
	turns := s.Turns

	advance(t, s, IntentUse{Cursor: component.Position{X: 3, Y: 1}})
	assert.Equal(t, scroll, s.Data.Inventory[2])
	assert.Equal(t, 2, s.Data.Selected)
	assert.Equal(t, turns, s.Turns, "a use without target must not end the turn")
}

func TestUseOutOfViewIgnored(t *testing.T) {
	s := newTestState(t, nil,
		"##########",
		"#P#.....o#",
		"##########",
	)
	carry(s, 0, component.ItemScrollOfLightning)
	advance(t, s, IntentNone{}, IntentSelect{Slot: 0})

	orc := orcAt(t, s, component.Position{X: 8, Y: 1})
	advance(t, s, IntentUse{Cursor: component.Position{X: 8, Y: 1}})
	assert.NotEqual(t, ecs.NilEntity, s.Data.Inventory[0])
	hp := s.World.MustGet(orc, component.CHealth).(component.Health)
	assert.Equal(t, factory.OrcMaxHP, hp.Current)
}

func TestFireballHitsBlock(t *testing.T) {
	s := newTestState(t, nil,
		"#######",
		"#P...o#",
		"#....o#",
		"#######",
	)
	carry(s, 0, component.ItemScrollOfFireball)
	a := orcAt(t, s, component.Position{X: 5, Y: 1})
	b := orcAt(t, s, component.Position{X: 5, Y: 2})

	advance(t, s, IntentNone{})
	require.True(t, s.AwaitingInput())
	advance(t, s, IntentSelect{Slot: 0}, IntentUse{Cursor: component.Position{X: 4, Y: 1}})

	for _, id := range []ecs.EntityID{a, b} {
		hp := s.World.MustGet(id, component.CHealth).(component.Health)
		assert.Equal(t, factory.OrcMaxHP-1, hp.Current)
	}
	assert.Equal(t, ecs.NilEntity, s.Data.Inventory[0])
}

func TestParalysisScrollOnOrc(t *testing.T) {
	s := newTestState(t, nil,
		"######",
		"#P..o#",
		"######",
	)
	carry(s, 0, component.ItemScrollOfParalysis)
	orc := orcAt(t, s, component.Position{X: 4, Y: 1})
	advance(t, s, IntentNone{})
	advance(t, s, IntentSelect{Slot: 0}, IntentUse{Cursor: component.Position{X: 4, Y: 1}})

	// The orc spent one of its four turns since being hit.
	p, ok := s.World.Get(orc, component.CParalyzed).(component.Paralyzed)
	require.True(t, ok)
	assert.Equal(t, 3, p.TurnsRemaining)
	assert.Equal(t, component.Position{X: 4, Y: 1}, s.World.MustGet(orc, component.CPosition))
}

func TestPlayerParalysisForcesWaits(t *testing.T) {
	s := newTestState(t, nil,
		"#####",
		"#P..#",
		"#####",
	)
	s.World.Add(s.player, component.Paralyzed{TurnsRemaining: 4})

	advance(t, s, IntentNone{})
	assert.True(t, s.AwaitingInput())
	assert.Equal(t, 4, s.Turns, "three forced waits, control on the fourth turn")
	assert.False(t, s.World.Has(s.player, component.CParalyzed))
}

func TestDropOntoFloorAndWall(t *testing.T) {
	s := newTestState(t, nil,
		"######",
		"#P...#",
		"######",
	)
	potion := carry(s, 0, component.ItemHealthPotion)
	scroll := carry(s, 1, component.ItemScrollOfFireball)
	advance(t, s, IntentNone{})

	floor := component.Position{X: 3, Y: 1}
	advance(t, s, IntentSelect{Slot: 0}, IntentDrop{Cursor: floor})
	assert.Equal(t, floor, s.World.MustGet(potion, component.CPosition))
	assert.Contains(t, s.Map.EntitiesAt(floor), potion)

	advance(t, s, IntentSelect{Slot: 1}, IntentDrop{Cursor: component.Position{X: 2, Y: 0}})
	assert.False(t, s.World.Alive(scroll))
	assert.Equal(t, [InventorySize]ecs.EntityID{}, s.Data.Inventory)
}

func TestPickUpThenFullInventory(t *testing.T) {
	s := newTestState(t, nil,
		"#####",
		"#P..#",
		"#####",
	)
	pos := component.Position{X: 1, Y: 1}
	first := factory.NewItem(s.World, component.ItemHealthPotion, pos)
	s.Map.AddEntity(first, pos)
	advance(t, s, IntentNone{}, IntentPickUp{})
	assert.Equal(t, first, s.Data.Inventory[0])
	assert.NotContains(t, s.Map.EntitiesAt(pos), first)

	for i := 1; i < InventorySize; i++ {
		carry(s, i, component.ItemHealthPotion)
	}
	extra := factory.NewItem(s.World, component.ItemHealthPotion, pos)
	s.Map.AddEntity(extra, pos)
	turns := s.Turns
	advance(t, s, IntentPickUp{})
	assert.Contains(t, s.Map.EntitiesAt(pos), extra)
	assert.Equal(t, "Your inventory is full.", s.Logs.Lines()[0])
	assert.Equal(t, turns, s.Turns)
}

func TestMeleeKillGrantsXP(t *testing.T) {
	s := newTestState(t, nil,
		"#####",
		"#Po.#",
		"#####",
	)
	orc := orcAt(t, s, component.Position{X: 2, Y: 1})
	advance(t, s, IntentNone{})
	for s.World.Alive(orc) {
		advance(t, s, IntentMove{DX: 1})
	}
	assert.Equal(t, 1, s.Data.CurrentXP)
	assert.Equal(t, "Orc dies.", s.Logs.Lines()[0])
	assert.Equal(t, []ecs.EntityID{s.player}, s.Order.Order())
}

func TestDescendCarriesHealth(t *testing.T) {
	s := newTestState(t, &component.Health{Current: 5, Max: 8},
		"#####",
		"#P>.#",
		"#####",
	)
	carry(s, 0, component.ItemScrollOfLightning)
	s.Logs.Narrate("old news")
	advance(t, s, IntentNone{})

	ctx := context.Background()
	require.NoError(t, s.Tick(ctx, IntentMove{DX: 1}))
	require.Equal(t, PhaseDescend, s.Phase)
	require.NoError(t, s.Tick(ctx, IntentNone{}))
	require.Equal(t, PhaseGenerate, s.Phase)
	assert.Equal(t, 2, s.Data.Floor)
	assert.Equal(t, &component.Health{Current: 5, Max: 8}, s.Data.PreviousHP)
	assert.Equal(t, [InventorySize]ecs.EntityID{}, s.Data.Inventory)
	assert.Empty(t, s.Logs.Lines())
	assert.Zero(t, s.World.Count())

	require.NoError(t, s.Tick(ctx, IntentNone{}))
	require.Equal(t, PhaseWorldUpdate, s.Phase)
	hp, ok := s.PlayerHealth()
	require.True(t, ok)
	assert.Equal(t, component.Health{Current: 5, Max: 8}, hp)
	assert.Len(t, s.Logs.Lines(), 1)
}

func TestQuitResetsToMenu(t *testing.T) {
	s := New(Options{Rand: rand.New(rand.NewSource(3))})
	advance(t, s, IntentStart{})
	require.True(t, s.AwaitingInput())
	require.NotNil(t, s.Map)

	advance(t, s, IntentQuit{})
	assert.Equal(t, PhaseMainMenu, s.Phase)
	assert.Zero(t, s.World.Count())
	assert.Nil(t, s.Map)
	assert.Equal(t, NewGameData(), s.Data)
	assert.Empty(t, s.Logs.Lines())
	require.NotNil(t, s.LastRun)
	assert.False(t, s.LastRun.Died)
}

func TestMenuIgnoresOtherIntents(t *testing.T) {
	s := New(Options{Rand: rand.New(rand.NewSource(3))})
	advance(t, s, IntentMove{DX: 1}, IntentPickUp{})
	assert.Equal(t, PhaseMainMenu, s.Phase)
	assert.Zero(t, s.World.Count())
}

// checkInvariants asserts the occupancy and initiative invariants.
func checkInvariants(t *testing.T, s *State) {
	t.Helper()
	seen := make(map[ecs.EntityID]int)
	s.Map.Entities.Each(func(x, y int, ids *[]ecs.EntityID) {
		for _, id := range *ids {
			seen[id]++
			require.True(t, s.World.Alive(id), "dead %v indexed at %d,%d", id, x, y)
			p := s.World.MustGet(id, component.CPosition).(component.Position)
			require.Equal(t, component.Position{X: x, Y: y}, p, "entity %v", id)
		}
	})
	for _, id := range s.World.Query(component.CPosition) {
		require.Equal(t, 1, seen[id], "entity %v indexed %d times", id, seen[id])
	}

	actors := append(s.World.Query(component.CTagPlayer), s.World.Query(component.CEnemyAI)...)
	slices.Sort(actors)
	order := s.Order.Order()
	slices.Sort(order)
	require.Equal(t, actors, order)
}

func TestRandomPlayKeepsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	s := New(Options{Rand: rand.New(rand.NewSource(5))})
	moves := []Intent{
		IntentMove{DX: 1}, IntentMove{DX: -1}, IntentMove{DY: 1}, IntentMove{DY: -1},
		IntentPickUp{},
	}
	runs := 0
	for range 400 {
		if s.Phase == PhaseMainMenu {
			runs++
			advance(t, s, IntentStart{})
			continue
		}
		advance(t, s, moves[rng.Intn(len(moves))])
		if s.Map != nil {
			checkInvariants(t, s)
		}
	}
	assert.GreaterOrEqual(t, runs, 1)
}

func TestCursorDetails(t *testing.T) {
	s := newTestState(t, nil,
		"#####",
		"#P.o#",
		"#####",
	)
	advance(t, s, IntentNone{})
	assert.Equal(t, "Orc (3/3)", s.CursorDetails(component.Position{X: 3, Y: 1}))
	assert.Equal(t, "", s.CursorDetails(component.Position{X: 2, Y: 1}))
	assert.True(t, strings.HasPrefix(s.CursorDetails(component.Position{X: 1, Y: 1}), "Player"))
}
