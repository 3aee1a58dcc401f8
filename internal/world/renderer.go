package world

import (
	_ "embed"
	"fmt"
	"log"
	"math"
	"unsafe"

	"blockworld/internal/assets"
	"blockworld/internal/blocks"
	"blockworld/internal/components"
	"blockworld/internal/config"
	"blockworld/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

//go:embed shaders/lighting.vs
var lightingVS string

//go:embed shaders/lighting.fs
var lightingFS string

// SkyBlue is the clear color when no skybox is configured.
var SkyBlue = rl.NewColor(135, 206, 235, 255)

// outlineGrow keeps the target outline from z-fighting the block faces.
const outlineGrow = 0.02

type Renderer struct {
	Shader rl.Shader
	Light  *components.DirectionalLight

	Skybox      rl.Model
	SkyboxScale float32
	hasSkybox   bool
	Background  rl.Color

	Near, Far float32

	// Drawn is the number of blocks submitted last frame.
	Drawn int

	blockSize float32
	viewLoc   int32
	ready     bool
}

func NewRenderer() *Renderer {
	return &Renderer{
		Background: SkyBlue,
		Near:       0.01,
		Far:        1000,
	}
}

// Initialize compiles the lighting shader, binds it to every block template
// and loads the skybox if one is configured.
func (r *Renderer) Initialize(cfg *config.Config, registry *blocks.Registry) error {
	r.blockSize = cfg.World.BlockSize

	r.Shader = rl.LoadShaderFromMemory(lightingVS, lightingFS)
	if !rl.IsShaderValid(r.Shader) {
		return fmt.Errorf("renderer: lighting shader failed to compile")
	}
	r.viewLoc = rl.GetShaderLocation(r.Shader, "viewPos")

	r.SetLight(components.NewDirectionalLight(cfg.Lighting.SunHeading, cfg.Lighting.SunPitch, cfg.Lighting.Ambient))

	for _, t := range registry.Templates() {
		if !t.Loaded() {
			continue
		}
		materials := unsafe.Slice(t.Model.Materials, t.Model.MaterialCount)
		for i := range materials {
			materials[i].Shader = r.Shader
		}
	}

	if cfg.Assets.Skybox != "" {
		sky, err := assets.LoadModel(cfg.Assets.Skybox)
		if err != nil {
			return fmt.Errorf("skybox: %w", err)
		}
		sky.Transform = rl.MatrixRotateX(math.Pi / 2)
		r.Skybox = sky
		r.SkyboxScale = cfg.Assets.SkyboxScale
		r.hasSkybox = true
	}

	r.ready = true
	log.Printf("renderer: initialized (skybox: %v)", r.hasSkybox)
	return nil
}

func (r *Renderer) SetLight(light *components.DirectionalLight) {
	r.Light = light
	r.updateShaderUniforms()
}

func (r *Renderer) updateShaderUniforms() {
	if r.Light == nil {
		return
	}
	dir := r.Light.Direction()

	lightDirLoc := rl.GetShaderLocation(r.Shader, "lightDir")
	rl.SetShaderValue(r.Shader, lightDirLoc, []float32{dir.X, dir.Y, dir.Z}, rl.ShaderUniformVec3)

	lightColorLoc := rl.GetShaderLocation(r.Shader, "lightColor")
	rl.SetShaderValue(r.Shader, lightColorLoc, r.Light.GetColorFloat(), rl.ShaderUniformVec4)

	ambientLoc := rl.GetShaderLocation(r.Shader, "ambient")
	rl.SetShaderValue(r.Shader, ambientLoc, r.Light.GetAmbientFloat(), rl.ShaderUniformVec4)
}

// Draw renders one frame of the world: background, exposed blocks inside
// the view frustum and an outline around target. The caller owns
// BeginDrawing/EndDrawing.
func (r *Renderer) Draw(view rl.Camera3D, aspect float32, visible []*engine.GameObject, target *engine.GameObject) {
	rl.ClearBackground(r.Background)
	if !r.ready {
		return
	}

	rl.SetShaderValue(r.Shader, r.viewLoc, []float32{view.Position.X, view.Position.Y, view.Position.Z}, rl.ShaderUniformVec3)

	rl.BeginMode3D(view)

	if r.hasSkybox {
		rl.DisableBackfaceCulling()
		rl.DisableDepthMask()
		rl.DrawModel(r.Skybox, view.Position, r.SkyboxScale, rl.White)
		rl.EnableDepthMask()
		rl.EnableBackfaceCulling()
	}

	frustum := ExtractFrustum(view, aspect, r.Near, r.Far)
	radius := r.blockSize * 0.8660254 // half diagonal of the cube

	r.Drawn = 0
	for _, g := range visible {
		if !frustum.ContainsSphere(g.Transform.Position, radius) {
			continue
		}
		if mr := engine.GetComponent[*components.ModelRenderer](g); mr != nil {
			mr.Draw()
			r.Drawn++
		}
	}

	if target != nil {
		s := r.blockSize + outlineGrow
		rl.DrawCubeWires(target.Transform.Position, s, s, s, rl.Black)
	}

	rl.EndMode3D()
}

// Unload frees the shader. Models belong to the registry and asset cache.
func (r *Renderer) Unload() {
	if !r.ready {
		return
	}
	rl.UnloadShader(r.Shader)
	r.ready = false
	r.hasSkybox = false
}
