package world

import (
	"blockworld/internal/blocks"
	"blockworld/internal/engine"
	"blockworld/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// nearest picks the closest hit. RaycastAll already sorts, but the result
// set may come from elsewhere.
func nearest(hits []physics.RaycastHit) (physics.RaycastHit, bool) {
	if len(hits) == 0 {
		return physics.RaycastHit{}, false
	}
	best := hits[0]
	for _, h := range hits[1:] {
		if h.Distance < best.Distance {
			best = h
		}
	}
	return best, true
}

// Resolve maps a hit to the block that owns the struck collider.
func (w *World) Resolve(hit physics.RaycastHit) *engine.GameObject {
	uid, ok := w.Physics.Owner(hit.Collider)
	if !ok {
		return nil
	}
	g := w.Scene.FindByUID(uid)
	if g == nil || !g.HasTag(BlockTag) {
		return nil
	}
	return g
}

// Pick casts the view ray and returns every block hit, nearest first.
func (w *World) Pick(eye, direction rl.Vector3, maxDistance float32) []physics.RaycastHit {
	return w.Physics.RaycastAll(eye, direction, maxDistance)
}

// Target returns the nearest struck block if it is within remove reach.
func (w *World) Target(hits []physics.RaycastHit, eye rl.Vector3) *engine.GameObject {
	hit, ok := nearest(hits)
	if !ok {
		return nil
	}
	block := w.Resolve(hit)
	if block == nil || block.DistanceTo(eye) >= w.RemoveReach {
		return nil
	}
	return block
}

// Remove destroys the nearest struck block when its center is closer to the
// eye than RemoveReach.
func (w *World) Remove(hits []physics.RaycastHit, eye rl.Vector3) bool {
	block := w.Target(hits, eye)
	if block == nil {
		return false
	}
	m, _ := MaterialOf(block)
	cell := w.CellOf(block.Transform.Position)
	if !w.RemoveBlock(block) {
		return false
	}
	w.OnBlockRemoved.Invoke(BlockEvent{Block: block, Material: m, Cell: cell})
	return true
}

// Place puts a block of material m against the struck face of the nearest
// hit block, one block width along the face normal, when the struck block's
// center is closer to the eye than PlaceReach.
func (w *World) Place(hits []physics.RaycastHit, eye rl.Vector3, m blocks.Material) (*engine.GameObject, bool) {
	hit, ok := nearest(hits)
	if !ok {
		return nil, false
	}
	struck := w.Resolve(hit)
	if struck == nil || struck.DistanceTo(eye) >= w.PlaceReach {
		return nil, false
	}

	pos := rl.Vector3Add(struck.Transform.Position, rl.Vector3Scale(hit.Normal, w.BlockSize))
	block, ok := w.SpawnBlock(m, pos)
	if !ok {
		return nil, false
	}
	w.OnBlockPlaced.Invoke(BlockEvent{Block: block, Material: m, Cell: w.CellOf(pos)})
	return block, true
}
