package blocks

import (
	"fmt"
	"math"

	"blockworld/internal/assets"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Template is the single model shared by every block of a material.
type Template struct {
	Material  Material
	Model     rl.Model
	Tint      rl.Color
	generated bool // cube mesh owned by the template, not the asset cache
	loaded    bool
}

// Loaded reports whether the template has a GPU model behind it.
func (t *Template) Loaded() bool {
	return t.loaded
}

// Registry holds one Template per material.
type Registry struct {
	templates [materialCount]*Template
}

// NewRegistry returns templates with no models; Load fills them once a
// window (GL context) exists.
func NewRegistry() *Registry {
	r := &Registry{}
	for _, m := range Materials() {
		r.templates[m] = &Template{Material: m, Tint: rl.White}
	}
	return r
}

// Load loads a model per material from paths. Materials with no path get a
// generated cube of edge size in the material's color. glTF models are Y-up
// and are rotated onto the Z-up world.
func (r *Registry) Load(paths map[Material]string, size float32) error {
	for _, m := range Materials() {
		t := r.templates[m]
		if path := paths[m]; path != "" {
			model, err := assets.LoadModel(path)
			if err != nil {
				return fmt.Errorf("block %s: %w", m, err)
			}
			model.Transform = rl.MatrixRotateX(math.Pi / 2)
			t.Model = model
			t.Tint = rl.White
		} else {
			mesh := rl.GenMeshCube(size, size, size)
			t.Model = rl.LoadModelFromMesh(mesh)
			t.Model.Materials.Maps.Color = m.Color()
			t.Tint = rl.White
			t.generated = true
		}
		t.loaded = true
	}
	return nil
}

func (r *Registry) Template(m Material) *Template {
	if !m.Valid() {
		return nil
	}
	return r.templates[m]
}

func (r *Registry) Templates() []*Template {
	out := make([]*Template, 0, len(r.templates))
	for _, t := range r.templates {
		out = append(out, t)
	}
	return out
}

// Unload frees generated cubes. File models belong to the asset cache.
func (r *Registry) Unload() {
	for _, t := range r.templates {
		if t.generated && t.loaded {
			rl.UnloadModel(t.Model)
		}
		t.loaded = false
		t.generated = false
	}
}
