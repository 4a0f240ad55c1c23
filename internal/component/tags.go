package component

import "cavecrawl/internal/ecs"

const (
	CTagPlayer         ecs.ComponentType = 8
	CInitiative        ecs.ComponentType = 9
	CBlocksMovement    ecs.ComponentType = 10
	CBlocksVision      ecs.ComponentType = 11
	CBlocksPathfinding ecs.ComponentType = 12
	CTile              ecs.ComponentType = 13
)

// TagPlayer marks the player-controlled entity.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }

// Initiative marks the actor whose turn it currently is.
type Initiative struct{}

func (Initiative) Type() ecs.ComponentType { return CInitiative }

// BlocksMovement marks an entity that occupies its cell.
type BlocksMovement struct{}

func (BlocksMovement) Type() ecs.ComponentType { return CBlocksMovement }

// BlocksVision marks an entity that stops FOV rays.
type BlocksVision struct{}

func (BlocksVision) Type() ecs.ComponentType { return CBlocksVision }

// BlocksPathfinding marks permanent terrain A* never routes through.
type BlocksPathfinding struct{}

func (BlocksPathfinding) Type() ecs.ComponentType { return CBlocksPathfinding }

// TileKind identifies a terrain entity.
type TileKind uint8

const (
	TileFloor TileKind = iota
	TileWall
	TileStairsDown
)

// Tile marks terrain. Tiles are remembered once explored, unlike other entities.
type Tile struct {
	Kind TileKind
}

func (Tile) Type() ecs.ComponentType { return CTile }
