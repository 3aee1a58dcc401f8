package game

import (
	"fmt"
	"log"
	"time"

	"blockworld/internal/assets"
	"blockworld/internal/audio"
	"blockworld/internal/components"
	"blockworld/internal/config"
	"blockworld/internal/engine"
	"blockworld/internal/input"
	"blockworld/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	Config    *config.Config
	Player    *engine.GameObject
	World     *world.World
	Session   *input.Session
	Audio     *audio.Manager
	HUD       *HUD
	DebugMode bool

	target *engine.GameObject

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

// New builds the game state. No window or audio device is opened until Run.
func New(cfg *config.Config) *Game {
	g := &Game{
		Config:  cfg,
		World:   world.New(cfg),
		Session: input.NewSession(cfg.Interaction.Material()),
		HUD:     NewHUD(),
	}
	g.createPlayer()
	return g
}

func (g *Game) Run() error {
	w := g.Config.Window
	flags := uint32(rl.FlagWindowHighdpi)
	if w.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	if w.VSync {
		flags |= rl.FlagVsyncHint
	}
	if w.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(w.Width, w.Height, w.Title)
	defer rl.CloseWindow()

	// Escape releases the mouse; the window only closes from its close button.
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(w.TargetFPS)

	if w.Icon != "" {
		icon, err := assets.LoadImage(w.Icon)
		if err != nil {
			return fmt.Errorf("window icon: %w", err)
		}
		rl.SetWindowIcon(*icon)
		rl.UnloadImage(icon)
	}

	// GPU resources need the GL context created by InitWindow.
	if err := g.World.Initialize(g.Config); err != nil {
		return err
	}
	defer g.World.Unload()
	defer assets.Unload()

	if err := g.HUD.Load(g.Config.Assets.Crosshair); err != nil {
		return err
	}

	g.World.Generate()

	g.Audio = audio.NewManager(g.Config.Audio)
	defer g.Audio.Close()
	g.World.OnBlockRemoved.AddListener(func(world.BlockEvent) { g.Audio.Play(audio.Break) })
	g.World.OnBlockPlaced.AddListener(func(world.BlockEvent) { g.Audio.Play(audio.Place) })

	g.applyCapture()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
	return nil
}

func (g *Game) createPlayer() {
	st := g.Config.Camera

	g.Player = engine.NewGameObject("Player")
	g.Player.Transform.Position = rl.Vector3{X: st.Start[0], Y: st.Start[1], Z: st.Start[2]}

	fps := components.NewFPSController()
	fps.MoveSpeed = st.MoveSpeed
	fps.LookSensitivity = st.LookSensitivity
	g.Player.AddComponent(fps)

	cam := components.NewCamera()
	cam.FOV = st.FOV
	g.Player.AddComponent(cam)
	g.World.Renderer.Near, g.World.Renderer.Far = cam.Near, cam.Far

	g.Player.Start()
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	frame := input.Poll(g.Session.Captured(), g.HUD.Bounds())
	if g.step(frame, deltaTime).CaptureChanged {
		g.applyCapture()
	}

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

// step advances one frame of gameplay from already-polled input.
func (g *Game) step(frame input.Frame, deltaTime float32) input.Actions {
	if frame.ToggleDebug {
		g.DebugMode = !g.DebugMode
	}

	actions := g.Session.Apply(frame)
	if actions.Selected {
		g.Audio.Play(audio.Select)
	}

	g.Player.Update(deltaTime)
	fps := engine.GetComponent[*components.FPSController](g.Player)
	if fps == nil {
		return actions
	}
	if actions.Look {
		fps.Look(frame.MouseDeltaX, frame.MouseDeltaY, deltaTime)
	}
	fps.Move(frame.Keys, deltaTime)

	eye := fps.Eye()
	x, y, z := fps.GetLookDirection()
	dir := rl.Vector3{X: x, Y: y, Z: z}
	reach := g.Config.Interaction.PickDistance

	hits := g.World.Pick(eye, dir, reach)
	if actions.Remove && g.World.Remove(hits, eye) {
		hits = g.World.Pick(eye, dir, reach)
	}
	if actions.Place {
		if _, ok := g.World.Place(hits, eye, g.Session.Selected); ok {
			hits = g.World.Pick(eye, dir, reach)
		}
	}
	g.target = g.World.Target(hits, eye)
	return actions
}

func (g *Game) applyCapture() {
	if g.Session.Captured() {
		rl.DisableCursor()
	} else {
		rl.EnableCursor()
	}
	log.Printf("input: mouse %s", g.Session.Mode)
}

func (g *Game) Draw() {
	cam := engine.GetComponent[*components.Camera](g.Player)
	if cam == nil {
		return
	}

	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())
	camera := cam.GetRaylibCamera(aspect)

	rl.BeginDrawing()

	drawStart := time.Now()
	g.World.Renderer.Draw(camera, aspect, g.World.VisibleBlocks(), g.target)
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	if g.HUD.Draw(g.Session) {
		g.Audio.Play(audio.Select)
	}
	if g.DebugMode {
		g.HUD.DrawDebug(g.debugStats())
	}
	rl.EndDrawing()
}

func (g *Game) debugStats() DebugStats {
	fps := engine.GetComponent[*components.FPSController](g.Player)
	s := DebugStats{
		FPS:      rl.GetFPS(),
		Position: g.Player.Transform.Position,
		Blocks:   g.World.Count(),
		Exposed:  g.World.ExposedCount(),
		Drawn:    g.World.Renderer.Drawn,
		UpdateMs: g.updateMs,
		DrawMs:   g.drawMs,
		Selected: g.Session.Selected,
		Mode:     g.Session.Mode,
	}
	s.SelectedCount = g.World.CountOf(s.Selected)
	if fps != nil {
		s.Heading, s.Pitch = fps.Heading, fps.Pitch
	}
	return s
}
