package world

import (
	"testing"

	"blockworld/internal/blocks"
	"blockworld/internal/config"
	"blockworld/internal/engine"
	"blockworld/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorld(t *testing.T, edit func(*config.Config)) *World {
	t.Helper()
	cfg := config.Default()
	if edit != nil {
		edit(cfg)
	}
	require.NoError(t, cfg.Validate())
	return New(cfg)
}

// spawnAt puts a single block at pos and returns the world.
func spawnAt(t *testing.T, pos rl.Vector3) *World {
	t.Helper()
	w := newTestWorld(t, nil)
	_, ok := w.SpawnBlock(blocks.Stone, pos)
	require.True(t, ok)
	return w
}

func TestGenerateFlatDefault(t *testing.T) {
	w := newTestWorld(t, nil)

	assert.Equal(t, 16000, w.Generate())
	assert.Equal(t, 16000, w.Count())
	assert.Equal(t, 16000, w.Scene.Len())
	assert.Equal(t, 1600, w.CountOf(blocks.Grass))
	assert.Equal(t, 14400, w.CountOf(blocks.Dirt))

	first := w.BlockAt(Cell{X: 0, Y: 0, Z: 0})
	require.NotNil(t, first)
	assert.Equal(t, rl.Vector3{X: -20, Y: -20, Z: 0}, first.Transform.Position)

	last := w.BlockAt(Cell{X: 39, Y: 39, Z: -9})
	require.NotNil(t, last)
	assert.Equal(t, rl.Vector3{X: 58, Y: 58, Z: -18}, last.Transform.Position)

	for _, g := range w.Scene.GameObjects {
		assert.True(t, g.HasTag("block"))
		m, ok := MaterialOf(g)
		require.True(t, ok)
		if g.Transform.Position.Z == 0 {
			assert.Equal(t, blocks.Grass, m)
			assert.True(t, g.HasTag("grass"))
		} else {
			assert.Equal(t, blocks.Dirt, m)
			assert.True(t, g.HasTag("dirt"))
		}
	}
}

func TestGenerateSpawnsLayerByLayer(t *testing.T) {
	w := newTestWorld(t, func(c *config.Config) {
		c.World.Width, c.World.Depth, c.World.Layers = 3, 2, 2
	})
	require.Equal(t, 12, w.Generate())

	want := []Cell{}
	for z := 0; z < 2; z++ {
		for y := 0; y < 2; y++ {
			for x := 0; x < 3; x++ {
				want = append(want, Cell{X: x, Y: y, Z: -z})
			}
		}
	}
	got := make([]Cell, 0, len(want))
	for _, g := range w.Scene.GameObjects {
		got = append(got, w.CellOf(g.Transform.Position))
	}
	assert.Equal(t, want, got)
}

func TestGenerateTracksExposedBlocks(t *testing.T) {
	w := newTestWorld(t, nil)
	w.Generate()

	// Everything but the 38x38x8 interior touches air.
	assert.Equal(t, 16000-38*38*8, w.ExposedCount())
	assert.Len(t, w.VisibleBlocks(), w.ExposedCount())
}

func TestRemoveUncoversNeighbor(t *testing.T) {
	w := newTestWorld(t, func(c *config.Config) {
		c.World.Width, c.World.Depth, c.World.Layers = 3, 3, 3
	})
	require.Equal(t, 27, w.Generate())
	assert.Equal(t, 26, w.ExposedCount())

	require.True(t, w.RemoveBlock(w.BlockAt(Cell{X: 1, Y: 1, Z: 0})))
	assert.Equal(t, 26, w.Count())
	assert.Equal(t, 26, w.ExposedCount())
	assert.False(t, w.Occupied(Cell{X: 1, Y: 1, Z: 0}))

	center := w.BlockAt(Cell{X: 1, Y: 1, Z: -1})
	require.NotNil(t, center)
	assert.Contains(t, w.VisibleBlocks(), center)
}

func TestGenerateRollingIsDeterministic(t *testing.T) {
	edit := func(c *config.Config) {
		c.World.Terrain = config.TerrainRolling
		c.World.Width, c.World.Depth, c.World.Layers = 8, 8, 3
		c.World.Seed = 7
		c.World.Amplitude = 3
		c.World.Frequency = 0.3
	}
	a := newTestWorld(t, edit)
	b := newTestWorld(t, edit)

	n := a.Generate()
	assert.Equal(t, n, b.Generate())
	assert.GreaterOrEqual(t, n, 8*8*3)
	assert.LessOrEqual(t, n, 8*8*6)

	// One grass block tops every column; the bottom layer is unchanged.
	assert.Equal(t, 64, a.CountOf(blocks.Grass))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			assert.True(t, a.Occupied(Cell{X: x, Y: y, Z: -2}))
			assert.False(t, a.Occupied(Cell{X: x, Y: y, Z: -3}))
		}
	}
}

func TestSpawnBlockSnapsToGrid(t *testing.T) {
	w := newTestWorld(t, nil)

	g, ok := w.SpawnBlock(blocks.Sand, rl.Vector3{X: 0.7, Y: -0.4, Z: 1.2})
	require.True(t, ok)
	assert.Equal(t, rl.Vector3{X: 0, Y: 0, Z: 2}, g.Transform.Position)

	_, ok = w.SpawnBlock(blocks.Stone, rl.Vector3{X: 0, Y: 0, Z: 2})
	assert.False(t, ok, "occupied cell must reject a second block")
	assert.Equal(t, 1, w.Count())

	_, ok = w.SpawnBlock(blocks.Material(99), rl.Vector3{})
	assert.False(t, ok)
}

func TestRemoveReach(t *testing.T) {
	forward := rl.Vector3{Y: 1}

	w := spawnAt(t, rl.Vector3{})
	eye := rl.Vector3{Y: -11.9}
	assert.True(t, w.Remove(w.Pick(eye, forward, 64), eye))
	assert.Equal(t, 0, w.Count())
	assert.Equal(t, 0, w.Scene.Len())

	w = spawnAt(t, rl.Vector3{})
	eye = rl.Vector3{Y: -12.1}
	hits := w.Pick(eye, forward, 64)
	require.Len(t, hits, 1)
	assert.False(t, w.Remove(hits, eye))
	assert.Equal(t, 1, w.Count())
}

func TestRemoveTakesNearestHit(t *testing.T) {
	w := spawnAt(t, rl.Vector3{})
	_, ok := w.SpawnBlock(blocks.Dirt, rl.Vector3{Y: 4})
	require.True(t, ok)

	eye := rl.Vector3{Y: -6}
	hits := w.Pick(eye, rl.Vector3{Y: 1}, 64)
	require.Len(t, hits, 2)
	require.True(t, w.Remove(hits, eye))

	assert.False(t, w.Occupied(w.CellOf(rl.Vector3{})))
	assert.True(t, w.Occupied(w.CellOf(rl.Vector3{Y: 4})))
}

func TestPlaceReach(t *testing.T) {
	down := rl.Vector3{Z: -1}

	w := spawnAt(t, rl.Vector3{})
	eye := rl.Vector3{Z: 13.9}
	hits := w.Pick(eye, down, 64)
	require.Len(t, hits, 1)
	assert.Equal(t, rl.Vector3{Z: 1}, hits[0].Normal)

	g, ok := w.Place(hits, eye, blocks.Slime)
	require.True(t, ok)
	assert.Equal(t, rl.Vector3{Z: 2}, g.Transform.Position)
	m, _ := MaterialOf(g)
	assert.Equal(t, blocks.Slime, m)
	assert.Equal(t, 2, w.Count())

	w = spawnAt(t, rl.Vector3{})
	eye = rl.Vector3{Z: 14.1}
	g, ok = w.Place(w.Pick(eye, down, 64), eye, blocks.Slime)
	assert.False(t, ok)
	assert.Nil(t, g)
	assert.Equal(t, 1, w.Count())
}

func TestPlaceIntoOccupiedCell(t *testing.T) {
	eye := rl.Vector3{Z: 10}

	w := spawnAt(t, rl.Vector3{})
	hits := w.Pick(eye, rl.Vector3{Z: -1}, 64)
	_, ok := w.Place(hits, eye, blocks.Grass)
	require.True(t, ok)
	_, ok = w.Place(hits, eye, blocks.Grass)
	assert.False(t, ok)
	assert.Equal(t, 2, w.Count())

	free := newTestWorld(t, func(c *config.Config) { c.Interaction.PreventOverlap = false })
	_, ok = free.SpawnBlock(blocks.Stone, rl.Vector3{})
	require.True(t, ok)
	hits = free.Pick(eye, rl.Vector3{Z: -1}, 64)
	_, ok = free.Place(hits, eye, blocks.Grass)
	require.True(t, ok)
	_, ok = free.Place(hits, eye, blocks.Grass)
	assert.True(t, ok)
	assert.Equal(t, 3, free.Count())
}

func TestEmptyResultSet(t *testing.T) {
	w := spawnAt(t, rl.Vector3{})
	eye := rl.Vector3{Y: -4}

	hits := w.Pick(eye, rl.Vector3{Y: -1}, 64)
	assert.Empty(t, hits)
	assert.False(t, w.Remove(hits, eye))
	g, ok := w.Place(hits, eye, blocks.Grass)
	assert.False(t, ok)
	assert.Nil(t, g)
	assert.Nil(t, w.Target(hits, eye))
	assert.Equal(t, 1, w.Count())
}

func TestStaleHitDoesNotResolve(t *testing.T) {
	w := spawnAt(t, rl.Vector3{})
	eye := rl.Vector3{Y: -4}
	hits := w.Pick(eye, rl.Vector3{Y: 1}, 64)
	require.True(t, w.Remove(hits, eye))

	assert.Nil(t, w.Resolve(hits[0]))
	assert.Nil(t, w.Resolve(physics.RaycastHit{Collider: 12345}))
	assert.False(t, w.Remove(hits, eye))
}

func TestBlockEvents(t *testing.T) {
	w := spawnAt(t, rl.Vector3{})

	var placed, removed []BlockEvent
	w.OnBlockPlaced.AddListener(func(e BlockEvent) { placed = append(placed, e) })
	w.OnBlockRemoved.AddListener(func(e BlockEvent) { removed = append(removed, e) })

	eye := rl.Vector3{Z: 6}
	g, ok := w.Place(w.Pick(eye, rl.Vector3{Z: -1}, 64), eye, blocks.Sand)
	require.True(t, ok)
	require.Len(t, placed, 1)
	assert.Equal(t, blocks.Sand, placed[0].Material)
	assert.Same(t, g, placed[0].Block)
	assert.Equal(t, w.CellOf(g.Transform.Position), placed[0].Cell)

	require.True(t, w.Remove(w.Pick(eye, rl.Vector3{Z: -1}, 64), eye))
	require.Len(t, removed, 1)
	assert.Equal(t, blocks.Sand, removed[0].Material)
	assert.Same(t, g, removed[0].Block)

	// Generation and direct spawns are silent.
	w.SpawnBlock(blocks.Dirt, rl.Vector3{X: 10})
	assert.Len(t, placed, 1)
}

func TestTargetWithinRemoveReach(t *testing.T) {
	w := spawnAt(t, rl.Vector3{})
	forward := rl.Vector3{Y: 1}

	eye := rl.Vector3{Y: -5}
	assert.NotNil(t, w.Target(w.Pick(eye, forward, 64), eye))

	eye = rl.Vector3{Y: -13}
	assert.Nil(t, w.Target(w.Pick(eye, forward, 64), eye))
}

func TestResolveIgnoresNonBlocks(t *testing.T) {
	w := newTestWorld(t, nil)
	marker := engine.NewGameObject("marker")
	w.Scene.AddGameObject(marker)
	id := w.Physics.Add(physics.NewAABBFromCenter(rl.Vector3{}, rl.Vector3{X: 2, Y: 2, Z: 2}), marker.UID)

	assert.Nil(t, w.Resolve(physics.RaycastHit{Collider: id}))

	eye := rl.Vector3{Z: 5}
	hits := w.Pick(eye, rl.Vector3{Z: -1}, 64)
	require.Len(t, hits, 1)
	assert.False(t, w.Remove(hits, eye))
	assert.Same(t, marker, w.Scene.FindByUID(marker.UID))
}
