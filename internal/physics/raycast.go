package physics

import (
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	Collider ColliderID
	Point    rl.Vector3
	Normal   rl.Vector3 // outward face normal of the struck box
	Distance float32
}

// RaycastAll returns every collider intersected within maxDistance, nearest first.
func (p *PhysicsWorld) RaycastAll(origin, direction rl.Vector3, maxDistance float32) []RaycastHit {
	if rl.Vector3LengthSqr(direction) == 0 {
		return nil
	}
	direction = rl.Vector3Normalize(direction)

	var hits []RaycastHit
	for _, c := range p.colliders {
		if hit, ok := raycastBox(origin, direction, c.box, maxDistance); ok {
			hit.Collider = c.id
			hits = append(hits, hit)
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Distance < hits[j].Distance
	})
	return hits
}

// raycastBox is a slab test. direction must be normalized. The normal comes
// from the slab that bounds the reported t, so hits on shared edges still
// report the face the ray crossed.
func raycastBox(origin, direction rl.Vector3, box AABB, maxDistance float32) (RaycastHit, bool) {
	o := [3]float32{origin.X, origin.Y, origin.Z}
	d := [3]float32{direction.X, direction.Y, direction.Z}
	lo := [3]float32{box.Min.X, box.Min.Y, box.Min.Z}
	hi := [3]float32{box.Max.X, box.Max.Y, box.Max.Z}

	tmin := float32(-1e30)
	tmax := float32(1e30)
	enterAxis, exitAxis := -1, -1

	for axis := 0; axis < 3; axis++ {
		if d[axis] == 0 {
			if o[axis] < lo[axis] || o[axis] > hi[axis] {
				return RaycastHit{}, false
			}
			continue
		}
		t1 := (lo[axis] - o[axis]) / d[axis]
		t2 := (hi[axis] - o[axis]) / d[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin, enterAxis = t1, axis
		}
		if t2 < tmax {
			tmax, exitAxis = t2, axis
		}
		if tmin > tmax {
			return RaycastHit{}, false
		}
	}

	if tmax < 0 || tmin > maxDistance {
		return RaycastHit{}, false
	}

	// Origin inside the box: report the exit face.
	t, axis, side := tmin, enterAxis, float32(-1)
	if t < 0 {
		t, axis, side = tmax, exitAxis, 1
	}
	if t > maxDistance {
		return RaycastHit{}, false
	}

	// Entering, the face normal opposes the ray; leaving, it follows it.
	var n [3]float32
	n[axis] = side * sign(d[axis])

	return RaycastHit{
		Point:    rl.Vector3Add(origin, rl.Vector3Scale(direction, t)),
		Normal:   rl.Vector3{X: n[0], Y: n[1], Z: n[2]},
		Distance: t,
	}, true
}

func sign(x float32) float32 {
	if x < 0 {
		return -1
	}
	return 1
}
