package components

import (
	"blockworld/internal/blocks"
	"blockworld/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ModelRenderer draws a shared block template at its object's position. The
// template model is never copied or unloaded here; every block of a material
// references the same one.
type ModelRenderer struct {
	engine.BaseComponent
	Template *blocks.Template
}

func NewModelRenderer(t *blocks.Template) *ModelRenderer {
	return &ModelRenderer{Template: t}
}

func (m *ModelRenderer) Draw() {
	g := m.GetGameObject()
	if g == nil || !g.Active || m.Template == nil || !m.Template.Loaded() {
		return
	}
	rl.DrawModel(m.Template.Model, g.Transform.Position, 1.0, m.Template.Tint)
}
