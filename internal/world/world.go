package world

import (
	"math"

	"blockworld/internal/blocks"
	"blockworld/internal/components"
	"blockworld/internal/config"
	"blockworld/internal/engine"
	"blockworld/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Cell is a block-grid coordinate. Cell Z grows upward like world Z, so the
// generated layers occupy Z = 0, -1, -2, ...
type Cell struct {
	X, Y, Z int
}

var faceNeighbors = [6]Cell{
	{X: 1}, {X: -1},
	{Y: 1}, {Y: -1},
	{Z: 1}, {Z: -1},
}

func (c Cell) Add(o Cell) Cell {
	return Cell{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z}
}

// BlockEvent describes a block placed or removed by the player.
type BlockEvent struct {
	Block    *engine.GameObject
	Material blocks.Material
	Cell     Cell
}

// BlockTag marks every block object in the scene.
const BlockTag = "block"

type World struct {
	Scene    *engine.Scene
	Physics  *physics.PhysicsWorld
	Registry *blocks.Registry
	Renderer *Renderer

	BlockSize      float32
	Origin         rl.Vector3
	RemoveReach    float32
	PlaceReach     float32
	PreventOverlap bool

	OnBlockPlaced  engine.EventWithArg[BlockEvent]
	OnBlockRemoved engine.EventWithArg[BlockEvent]

	settings config.WorldConfig
	cells    map[Cell][]*engine.GameObject
	exposed  map[*engine.GameObject]struct{}
	counts   map[blocks.Material]int
}

// New builds an empty world. Nothing here touches the GPU; call
// Initialize once a window exists.
func New(cfg *config.Config) *World {
	return &World{
		Scene:          engine.NewScene("Main"),
		Physics:        physics.NewPhysicsWorld(),
		Registry:       blocks.NewRegistry(),
		Renderer:       NewRenderer(),
		BlockSize:      cfg.World.BlockSize,
		Origin:         rl.Vector3{X: cfg.World.Origin[0], Y: cfg.World.Origin[1], Z: cfg.World.Origin[2]},
		RemoveReach:    cfg.Interaction.RemoveReach,
		PlaceReach:     cfg.Interaction.PlaceReach,
		PreventOverlap: cfg.Interaction.PreventOverlap,
		settings:       cfg.World,
		cells:          make(map[Cell][]*engine.GameObject),
		exposed:        make(map[*engine.GameObject]struct{}),
		counts:         make(map[blocks.Material]int),
	}
}

// CellOf snaps a world position to the nearest grid cell.
func (w *World) CellOf(pos rl.Vector3) Cell {
	rel := rl.Vector3Subtract(pos, w.Origin)
	return Cell{
		X: int(math.Round(float64(rel.X / w.BlockSize))),
		Y: int(math.Round(float64(rel.Y / w.BlockSize))),
		Z: int(math.Round(float64(rel.Z / w.BlockSize))),
	}
}

// PositionOf returns the world position of a cell's center.
func (w *World) PositionOf(c Cell) rl.Vector3 {
	return rl.Vector3{
		X: w.Origin.X + float32(c.X)*w.BlockSize,
		Y: w.Origin.Y + float32(c.Y)*w.BlockSize,
		Z: w.Origin.Z + float32(c.Z)*w.BlockSize,
	}
}

func (w *World) Occupied(c Cell) bool {
	return w.BlockAt(c) != nil
}

// BlockAt returns the first block in a cell, or nil.
func (w *World) BlockAt(c Cell) *engine.GameObject {
	if objs := w.cells[c]; len(objs) > 0 {
		return objs[0]
	}
	return nil
}

// Count returns the number of blocks in the world.
func (w *World) Count() int {
	return w.Physics.Len()
}

func (w *World) CountOf(m blocks.Material) int {
	return w.counts[m]
}

// VisibleBlocks returns blocks with at least one open face. Buried blocks
// can never be seen and are skipped by the renderer.
func (w *World) VisibleBlocks() []*engine.GameObject {
	out := make([]*engine.GameObject, 0, len(w.exposed))
	for g := range w.exposed {
		out = append(out, g)
	}
	return out
}

func (w *World) ExposedCount() int {
	return len(w.exposed)
}

// SpawnBlock creates a block of material m in the cell containing pos.
// With PreventOverlap an occupied cell rejects the block.
func (w *World) SpawnBlock(m blocks.Material, pos rl.Vector3) (*engine.GameObject, bool) {
	if !m.Valid() {
		return nil, false
	}
	cell := w.CellOf(pos)
	if w.PreventOverlap && w.Occupied(cell) {
		return nil, false
	}

	block := engine.NewGameObject(m.String() + "-block")
	block.Tags = []string{BlockTag, m.String()}
	block.Transform.Position = w.PositionOf(cell)

	block.AddComponent(components.NewBlock(m))
	block.AddComponent(components.NewModelRenderer(w.Registry.Template(m)))
	collider := components.NewBoxCollider(rl.Vector3{X: w.BlockSize, Y: w.BlockSize, Z: w.BlockSize})
	block.AddComponent(collider)

	w.Scene.AddGameObject(block)
	collider.ID = w.Physics.Add(collider.GetAABB(), block.UID)

	w.cells[cell] = append(w.cells[cell], block)
	w.counts[m]++
	w.refreshAround(cell)
	return block, true
}

// RemoveBlock destroys a block: its collider mapping first, then the object.
func (w *World) RemoveBlock(block *engine.GameObject) bool {
	if block == nil || block.Scene != w.Scene {
		return false
	}
	collider := engine.GetComponent[*components.BoxCollider](block)
	info := engine.GetComponent[*components.Block](block)
	if collider == nil || info == nil {
		return false
	}

	w.Physics.Remove(collider.ID)
	collider.ID = 0
	w.Scene.RemoveGameObject(block)

	cell := w.CellOf(block.Transform.Position)
	objs := w.cells[cell]
	for i, g := range objs {
		if g == block {
			objs = append(objs[:i], objs[i+1:]...)
			break
		}
	}
	if len(objs) == 0 {
		delete(w.cells, cell)
	} else {
		w.cells[cell] = objs
	}
	delete(w.exposed, block)
	w.counts[info.Material]--
	w.refreshAround(cell)
	return true
}

// MaterialOf returns the material of a block object.
func MaterialOf(block *engine.GameObject) (blocks.Material, bool) {
	if block == nil {
		return 0, false
	}
	info := engine.GetComponent[*components.Block](block)
	if info == nil {
		return 0, false
	}
	return info.Material, true
}

func (w *World) refreshAround(c Cell) {
	w.refreshCell(c)
	for _, n := range faceNeighbors {
		w.refreshCell(c.Add(n))
	}
}

func (w *World) refreshCell(c Cell) {
	objs := w.cells[c]
	if len(objs) == 0 {
		return
	}
	open := false
	for _, n := range faceNeighbors {
		if !w.Occupied(c.Add(n)) {
			open = true
			break
		}
	}
	for _, g := range objs {
		if open {
			w.exposed[g] = struct{}{}
		} else {
			delete(w.exposed, g)
		}
	}
}

// Initialize loads GPU resources: block templates and the renderer.
func (w *World) Initialize(cfg *config.Config) error {
	paths, err := cfg.Assets.ModelPaths()
	if err != nil {
		return err
	}
	if err := w.Registry.Load(paths, w.BlockSize); err != nil {
		return err
	}
	return w.Renderer.Initialize(cfg, w.Registry)
}

func (w *World) Unload() {
	w.Renderer.Unload()
	w.Registry.Unload()
}
