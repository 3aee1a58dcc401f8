package world

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frustum holds the six view planes: left, right, bottom, top, near, far.
type Frustum struct {
	planes [6]Plane
}

// Plane is ax + by + cz + d = 0 with a unit normal pointing inward.
type Plane struct {
	normal   rl.Vector3
	distance float32
}

// ExtractFrustum derives the planes from the camera's view-projection matrix
// (Gribb/Hartmann). aspect is width / height.
func ExtractFrustum(camera rl.Camera3D, aspect, near, far float32) Frustum {
	view := rl.GetCameraMatrix(camera)

	var proj rl.Matrix
	if camera.Projection == rl.CameraPerspective {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, near, far)
	} else {
		halfH := camera.Fovy / 2.0
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, near, far)
	}
	vp := rl.MatrixMultiply(view, proj)

	rows := [4][4]float32{
		{vp.M0, vp.M4, vp.M8, vp.M12},
		{vp.M1, vp.M5, vp.M9, vp.M13},
		{vp.M2, vp.M6, vp.M10, vp.M14},
		{vp.M3, vp.M7, vp.M11, vp.M15},
	}

	var f Frustum
	for i := 0; i < 3; i++ {
		f.planes[i*2] = planeFrom(rows[3], rows[i], 1)
		f.planes[i*2+1] = planeFrom(rows[3], rows[i], -1)
	}
	return f
}

func planeFrom(w, r [4]float32, s float32) Plane {
	return normalizePlane(Plane{
		normal: rl.Vector3{
			X: w[0] + s*r[0],
			Y: w[1] + s*r[1],
			Z: w[2] + s*r[2],
		},
		distance: w[3] + s*r[3],
	})
}

func normalizePlane(p Plane) Plane {
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return Plane{
		normal:   rl.Vector3Scale(p.normal, 1.0/length),
		distance: p.distance / length,
	}
}

// ContainsSphere reports whether a sphere is inside or touches the frustum.
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for i := range f.planes {
		dist := rl.Vector3DotProduct(f.planes[i].normal, center) + f.planes[i].distance
		if dist < -radius {
			return false
		}
	}
	return true
}
