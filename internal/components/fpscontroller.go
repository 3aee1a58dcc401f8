package components

import (
	"math"

	"blockworld/internal/engine"
	"blockworld/internal/input"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	MinPitch = -90
	MaxPitch = 90
)

// FPSController flies its GameObject: WASD on the horizontal plane relative
// to heading, space/shift straight up and down, no gravity or collision.
type FPSController struct {
	engine.BaseComponent
	Heading         float32 // degrees about +Z, 0 faces +Y
	Pitch           float32 // degrees, clamped to [MinPitch, MaxPitch]
	MoveSpeed       float32 // units per second
	LookSensitivity float32
	EyeHeight       float32
}

func NewFPSController() *FPSController {
	return &FPSController{
		MoveSpeed:       10.0,
		LookSensitivity: 10.0,
	}
}

// MoveDelta returns the displacement for one frame with the given keys held.
func (f *FPSController) MoveDelta(keys input.KeyState, deltaTime float32) rl.Vector3 {
	h := float64(f.Heading) * math.Pi / 180
	sin := float32(math.Sin(h))
	cos := float32(math.Cos(h))
	step := deltaTime * f.MoveSpeed

	var d rl.Vector3
	if keys.Forward {
		d.X -= step * sin
		d.Y += step * cos
	}
	if keys.Backward {
		d.X += step * sin
		d.Y -= step * cos
	}
	if keys.Left {
		d.X -= step * cos
		d.Y -= step * sin
	}
	if keys.Right {
		d.X += step * cos
		d.Y += step * sin
	}
	if keys.Up {
		d.Z += step
	}
	if keys.Down {
		d.Z -= step
	}
	return d
}

// Move applies MoveDelta to the GameObject's position.
func (f *FPSController) Move(keys input.KeyState, deltaTime float32) {
	g := f.GetGameObject()
	if g == nil {
		return
	}
	g.Transform.Position = rl.Vector3Add(g.Transform.Position, f.MoveDelta(keys, deltaTime))
}

// Look turns by a mouse delta in pixels. Moving right turns right, moving
// down looks down. Turn rate scales with frame time.
func (f *FPSController) Look(dx, dy, deltaTime float32) {
	f.Heading = wrapDegrees(f.Heading - dx*deltaTime*f.LookSensitivity)
	f.Pitch = clamp(f.Pitch-dy*deltaTime*f.LookSensitivity, MinPitch, MaxPitch)
}

// GetLookDirection is the unit view vector, used for the pick ray.
func (f *FPSController) GetLookDirection() (x, y, z float32) {
	return forwardVector(f.Heading, f.Pitch)
}

// GetLookAngles implements engine.LookProvider.
func (f *FPSController) GetLookAngles() (heading, pitch float32) {
	return f.Heading, f.Pitch
}

// GetEyeHeight implements engine.LookProvider.
func (f *FPSController) GetEyeHeight() float32 {
	return f.EyeHeight
}

// Eye returns the world position the view ray starts from.
func (f *FPSController) Eye() rl.Vector3 {
	g := f.GetGameObject()
	if g == nil {
		return rl.Vector3{}
	}
	eye := g.Transform.Position
	eye.Z += f.EyeHeight
	return eye
}

func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// wrapDegrees maps a heading into [0, 360).
func wrapDegrees(d float32) float32 {
	w := float32(math.Mod(float64(d), 360))
	if w < 0 {
		w += 360
	}
	return w
}
