package blocks

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Material is the type of a block.
type Material uint8

const (
	Grass Material = iota
	Dirt
	Sand
	Stone
	Slime
	materialCount
)

var materialNames = [materialCount]string{
	Grass: "grass",
	Dirt:  "dirt",
	Sand:  "sand",
	Stone: "stone",
	Slime: "slime",
}

// Fallback colors for blocks without a model file.
var materialColors = [materialCount]rl.Color{
	Grass: rl.NewColor(96, 160, 64, 255),
	Dirt:  rl.NewColor(134, 96, 67, 255),
	Sand:  rl.NewColor(219, 207, 163, 255),
	Stone: rl.NewColor(125, 125, 125, 255),
	Slime: rl.NewColor(118, 190, 109, 255),
}

// Materials returns all materials in hotbar order (keys 1-5).
func Materials() []Material {
	return []Material{Grass, Dirt, Sand, Stone, Slime}
}

func (m Material) Valid() bool {
	return m < materialCount
}

func (m Material) String() string {
	if !m.Valid() {
		return fmt.Sprintf("material(%d)", uint8(m))
	}
	return materialNames[m]
}

func (m Material) Color() rl.Color {
	if !m.Valid() {
		return rl.Magenta
	}
	return materialColors[m]
}

// ParseMaterial accepts a material name in any case.
func ParseMaterial(name string) (Material, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range materialNames {
		if n == name {
			return Material(i), nil
		}
	}
	return 0, fmt.Errorf("unknown material %q", name)
}
