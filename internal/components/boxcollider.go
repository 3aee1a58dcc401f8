package components

import (
	"blockworld/internal/engine"
	"blockworld/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// BoxCollider is an axis-aligned box around the object's position. ID is set
// once the box is registered with a physics.PhysicsWorld.
type BoxCollider struct {
	engine.BaseComponent
	Size rl.Vector3
	ID   physics.ColliderID
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{Size: size}
}

func (b *BoxCollider) GetAABB() physics.AABB {
	g := b.GetGameObject()
	return physics.NewAABBFromCenter(g.Transform.Position, b.Size)
}
