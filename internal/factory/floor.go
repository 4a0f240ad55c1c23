package factory

import (
	"cavecrawl/internal/component"
	"cavecrawl/internal/ecs"
	"cavecrawl/internal/gamemap"
	"cavecrawl/internal/generate"
)

// Materialize creates every tile and spawn of a populated floor and indexes
// them into a fresh WorldMap. carried is forwarded to NewPlayer. The player
// id is NilEntity when the layout had no room for it.
func Materialize(w *ecs.World, result generate.PopulateResult, carried *component.Health) (*gamemap.WorldMap, ecs.EntityID) {
	m := gamemap.New(result.MapSize, result.MapSize)
	m.Stairs = result.Stairs

	for _, t := range result.Tiles {
		m.AddEntity(NewTile(w, t.Kind, t.Pos), t.Pos)
	}

	player := ecs.NilEntity
	for _, s := range result.Spawns {
		var id ecs.EntityID
		switch s.Kind {
		case generate.SpawnPlayer:
			id = NewPlayer(w, s.Pos, carried)
			player = id
		case generate.SpawnEnemy:
			id = NewOrc(w, s.Pos)
		case generate.SpawnItem:
			id = NewItem(w, s.Item, s.Pos)
		}
		m.AddEntity(id, s.Pos)
	}
	return m, player
}
