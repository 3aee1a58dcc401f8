package components

import (
	"math"

	"blockworld/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DirectionalLight shines along the forward vector of a heading/pitch
// orientation, the same convention the player camera uses.
type DirectionalLight struct {
	engine.BaseComponent
	Heading   float32
	Pitch     float32
	Color     rl.Color
	Intensity float32
	Ambient   float32
}

func NewDirectionalLight(heading, pitch, ambient float32) *DirectionalLight {
	return &DirectionalLight{
		Heading:   heading,
		Pitch:     pitch,
		Color:     rl.White,
		Intensity: 1.0,
		Ambient:   ambient,
	}
}

func (l *DirectionalLight) Direction() rl.Vector3 {
	x, y, z := forwardVector(l.Heading, l.Pitch)
	return rl.Vector3{X: x, Y: y, Z: z}
}

func (l *DirectionalLight) GetColorFloat() []float32 {
	return []float32{
		float32(l.Color.R) / 255.0 * l.Intensity,
		float32(l.Color.G) / 255.0 * l.Intensity,
		float32(l.Color.B) / 255.0 * l.Intensity,
		1.0,
	}
}

func (l *DirectionalLight) GetAmbientFloat() []float32 {
	return []float32{l.Ambient, l.Ambient, l.Ambient, 1.0}
}

// forwardVector is the unit vector for a Z-up heading/pitch in degrees.
// Heading 0 faces +Y and increases counter-clockwise seen from above.
func forwardVector(heading, pitch float32) (x, y, z float32) {
	h := float64(heading) * math.Pi / 180
	p := float64(pitch) * math.Pi / 180
	return float32(-math.Sin(h) * math.Cos(p)),
		float32(math.Cos(h) * math.Cos(p)),
		float32(math.Sin(p))
}
