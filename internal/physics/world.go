package physics

// ColliderID identifies a collision shape registered with a PhysicsWorld.
// Zero is never issued.
type ColliderID uint64

type collider struct {
	id    ColliderID
	box   AABB
	owner uint64
}

// PhysicsWorld holds static box colliders and the explicit mapping from each
// collider to the UID of the entity that owns it.
type PhysicsWorld struct {
	colliders []collider
	index     map[ColliderID]int
	nextID    ColliderID
}

func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{
		colliders: make([]collider, 0),
		index:     make(map[ColliderID]int),
	}
}

// Add registers a box owned by the entity with the given UID.
func (p *PhysicsWorld) Add(box AABB, owner uint64) ColliderID {
	p.nextID++
	id := p.nextID
	p.index[id] = len(p.colliders)
	p.colliders = append(p.colliders, collider{id: id, box: box, owner: owner})
	return id
}

// Remove unregisters a collider. Colliders are unordered, so the last one is
// swapped into the freed slot.
func (p *PhysicsWorld) Remove(id ColliderID) bool {
	i, ok := p.index[id]
	if !ok {
		return false
	}
	last := len(p.colliders) - 1
	if i != last {
		p.colliders[i] = p.colliders[last]
		p.index[p.colliders[i].id] = i
	}
	p.colliders = p.colliders[:last]
	delete(p.index, id)
	return true
}

// Owner resolves a collider to its owning entity UID.
func (p *PhysicsWorld) Owner(id ColliderID) (uint64, bool) {
	i, ok := p.index[id]
	if !ok {
		return 0, false
	}
	return p.colliders[i].owner, true
}

func (p *PhysicsWorld) Len() int {
	return len(p.colliders)
}
