package components

import (
	"math"

	"blockworld/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// renderPitchLimit keeps the view direction off the Up axis, where the
// look-at basis degenerates. Provider pitch itself may reach +/-90.
const renderPitchLimit = 89.5

type Camera struct {
	engine.BaseComponent
	FOV  float32 // horizontal, degrees
	Near float32
	Far  float32
}

func NewCamera() *Camera {
	return &Camera{
		FOV:  80.0,
		Near: 0.01,
		Far:  1000.0,
	}
}

// VerticalFOV converts the horizontal field of view for a viewport aspect
// ratio (width / height). raylib's Camera3D expects the vertical one.
func (c *Camera) VerticalFOV(aspect float32) float32 {
	if aspect <= 0 {
		return c.FOV
	}
	half := float64(c.FOV) * math.Pi / 360
	return float32(2 * math.Atan(math.Tan(half)/float64(aspect)) * 180 / math.Pi)
}

// GetRaylibCamera builds a Z-up raylib camera from the LookProvider on the
// same object.
func (c *Camera) GetRaylibCamera(aspect float32) rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}

	eye := g.Transform.Position
	dir := rl.Vector3{Y: 1}
	if lp := engine.FindComponent[engine.LookProvider](g); lp != nil {
		eye.Z += lp.GetEyeHeight()
		heading, pitch := lp.GetLookAngles()
		x, y, z := forwardVector(heading, clamp(pitch, -renderPitchLimit, renderPitchLimit))
		dir = rl.Vector3{X: x, Y: y, Z: z}
	}

	return rl.Camera3D{
		Position:   eye,
		Target:     rl.Vector3Add(eye, dir),
		Up:         rl.Vector3{X: 0, Y: 0, Z: 1},
		Fovy:       c.VerticalFOV(aspect),
		Projection: rl.CameraPerspective,
	}
}
