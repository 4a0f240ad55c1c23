package factory

import (
	"cavecrawl/internal/component"
	"cavecrawl/internal/ecs"
	"cavecrawl/internal/generate"
	"testing"
)

func TestNewPlayerComponents(t *testing.T) {
	w := ecs.NewWorld()
	id := NewPlayer(w, component.Position{X: 5, Y: 3}, nil)

	if !w.Alive(id) {
		t.Fatal("player entity must be alive")
	}
	if p := w.MustGet(id, component.CPosition).(component.Position); p.X != 5 || p.Y != 3 {
		t.Errorf("position = (%d,%d); want (5,3)", p.X, p.Y)
	}
	hp := w.MustGet(id, component.CHealth).(component.Health)
	if hp.Current != PlayerMaxHP || hp.Max != PlayerMaxHP {
		t.Errorf("health = %d/%d; want %d/%d", hp.Current, hp.Max, PlayerMaxHP, PlayerMaxHP)
	}
	for _, ct := range []ecs.ComponentType{component.CTagPlayer, component.CBlocksMovement, component.CName} {
		if !w.Has(id, ct) {
			t.Errorf("player missing component %d", ct)
		}
	}
}

func TestNewPlayerCarriesHealth(t *testing.T) {
	w := ecs.NewWorld()
	id := NewPlayer(w, component.Position{}, &component.Health{Current: 5, Max: 8})
	if hp := w.MustGet(id, component.CHealth).(component.Health); hp.Current != 5 || hp.Max != 8 {
		t.Errorf("carried health = %d/%d; want 5/8", hp.Current, hp.Max)
	}
}

func TestNewOrc(t *testing.T) {
	w := ecs.NewWorld()
	id := NewOrc(w, component.Position{X: 1, Y: 1})
	ai, ok := w.Get(id, component.CEnemyAI).(component.EnemyAI)
	if !ok {
		t.Fatal("orc must have CEnemyAI")
	}
	if ai.SightRange != EnemySightRange || ai.Damage != OrcDamage {
		t.Errorf("ai = %+v", ai)
	}
	if hp := w.MustGet(id, component.CHealth).(component.Health); hp.Max != OrcMaxHP {
		t.Errorf("orc max hp = %d; want %d", hp.Max, OrcMaxHP)
	}
}

func TestNewItemPotency(t *testing.T) {
	w := ecs.NewWorld()
	for _, kind := range component.ItemKinds {
		id := NewItem(w, kind, component.Position{})
		item := w.MustGet(id, component.CItem).(component.Item)
		if item.Kind != kind || item.Potency != kind.DefaultPotency() {
			t.Errorf("%v: got %+v", kind, item)
		}
		if r := w.MustGet(id, component.CRenderable).(component.Renderable); r.Glyph == "" {
			t.Errorf("%v: empty glyph", kind)
		}
	}
}

func TestWallBlocksEverything(t *testing.T) {
	w := ecs.NewWorld()
	id := NewTile(w, component.TileWall, component.Position{})
	for _, ct := range []ecs.ComponentType{component.CBlocksMovement, component.CBlocksVision, component.CBlocksPathfinding, component.CTile} {
		if !w.Has(id, ct) {
			t.Errorf("wall missing component %d", ct)
		}
	}
	floor := NewTile(w, component.TileFloor, component.Position{})
	if w.Has(floor, component.CBlocksMovement) {
		t.Error("floor must not block movement")
	}
}

func TestMaterializeIndexesEveryEntity(t *testing.T) {
	w := ecs.NewWorld()
	result := generate.PopulateResult{
		MapSize: 10,
		Stairs:  component.Position{X: 3, Y: 3},
		Tiles: []generate.TileSpawn{
			{Kind: component.TileFloor, Pos: component.Position{X: 2, Y: 2}},
			{Kind: component.TileStairsDown, Pos: component.Position{X: 3, Y: 3}},
			{Kind: component.TileWall, Pos: component.Position{X: 1, Y: 1}},
		},
		Spawns: []generate.Spawn{
			{Kind: generate.SpawnPlayer, Pos: component.Position{X: 2, Y: 2}},
			{Kind: generate.SpawnItem, Item: component.ItemScrollOfFireball, Pos: component.Position{X: 4, Y: 4}},
		},
	}
	m, player := Materialize(w, result, nil)

	if player == ecs.NilEntity || !w.Has(player, component.CTagPlayer) {
		t.Fatal("Materialize must return the player")
	}
	if m.Stairs != result.Stairs {
		t.Errorf("stairs = %v; want %v", m.Stairs, result.Stairs)
	}
	for _, id := range w.Query(component.CPosition) {
		p := w.MustGet(id, component.CPosition).(component.Position)
		if got := m.Locate(id); len(got) != 1 || got[0] != p {
			t.Errorf("%v at %v indexed at %v", id, p, got)
		}
	}
	if w.Count() != 5 {
		t.Errorf("entity count = %d; want 5", w.Count())
	}
}
