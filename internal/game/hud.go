package game

import (
	"fmt"
	"strings"

	"blockworld/internal/assets"
	"blockworld/internal/blocks"
	"blockworld/internal/input"

	"github.com/dustin/go-humanize"
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	hotbarSlotWidth  = 88
	hotbarSlotHeight = 36
	hotbarPadding    = 2 // raygui's default toggle group padding
	hotbarMargin     = 24
	crosshairSize    = 8
)

var (
	colorHudText  = rl.NewColor(240, 240, 240, 255)
	colorHudShade = rl.NewColor(0, 0, 0, 140)
)

// DebugStats is what the F1 overlay shows.
type DebugStats struct {
	FPS      int32
	Position rl.Vector3
	Heading  float32
	Pitch    float32
	Blocks   int
	Exposed  int
	Drawn    int
	UpdateMs float64
	DrawMs   float64
	Selected blocks.Material
	// SelectedCount is how many blocks of the selected material exist.
	SelectedCount int
	Mode          input.CaptureMode
}

type HUD struct {
	Crosshair    rl.Texture2D
	hasCrosshair bool
	labels       string
}

func NewHUD() *HUD {
	return &HUD{labels: hotbarLabels()}
}

// Load styles raygui and loads the crosshair image, if any.
func (h *HUD) Load(crosshair string) error {
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 16)
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(rl.NewColor(108, 99, 255, 255)))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(rl.White))

	if crosshair == "" {
		return nil
	}
	tex, err := assets.LoadTexture(crosshair)
	if err != nil {
		return fmt.Errorf("crosshair: %w", err)
	}
	h.Crosshair = tex
	h.hasCrosshair = true
	return nil
}

// Bounds is the screen area of the hotbar.
func (h *HUD) Bounds() rl.Rectangle {
	return hotbarBounds(float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
}

// Draw draws the hotbar, crosshair and pause hint. It reports whether the
// hotbar changed the selected material.
func (h *HUD) Draw(s *input.Session) bool {
	sw, sh := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	bar := hotbarBounds(sw, sh)

	// Swatches above each slot.
	for i, m := range blocks.Materials() {
		x := bar.X + float32(i)*(hotbarSlotWidth+hotbarPadding)
		rl.DrawRectangleRec(rl.Rectangle{X: x, Y: bar.Y - 8, Width: hotbarSlotWidth, Height: 6}, m.Color())
	}

	// The hotbar is display-only while the mouse is captured.
	if s.Captured() {
		gui.Lock()
	}
	slot := rl.Rectangle{X: bar.X, Y: bar.Y, Width: hotbarSlotWidth, Height: hotbarSlotHeight}
	active := gui.ToggleGroup(slot, h.labels, int32(s.Selected))
	if s.Captured() {
		gui.Unlock()
	}

	changed := false
	if m := blocks.Material(active); m != s.Selected && m.Valid() && !s.Captured() {
		s.Selected = m
		changed = true
	}

	h.drawCrosshair(sw, sh)

	if !s.Captured() {
		panel := rl.Rectangle{X: sw/2 - 160, Y: sh/2 - 40, Width: 320, Height: 80}
		gui.Panel(panel, "Paused")
		gui.Label(rl.Rectangle{X: panel.X + 16, Y: panel.Y + 36, Width: panel.Width - 32, Height: 32}, "Click to resume, Esc to release")
	}
	return changed
}

func (h *HUD) drawCrosshair(sw, sh float32) {
	cx, cy := sw/2, sh/2
	if h.hasCrosshair {
		rl.DrawTexture(h.Crosshair, int32(cx)-h.Crosshair.Width/2, int32(cy)-h.Crosshair.Height/2, rl.White)
		return
	}
	x, y := int32(cx), int32(cy)
	rl.DrawLine(x-crosshairSize, y, x+crosshairSize, y, rl.White)
	rl.DrawLine(x, y-crosshairSize, x, y+crosshairSize, rl.White)
}

func (h *HUD) DrawDebug(stats DebugStats) {
	lines := debugLines(stats)
	height := int32(len(lines))*20 + 12
	rl.DrawRectangle(6, 6, 360, height, colorHudShade)
	for i, line := range lines {
		rl.DrawText(line, 12, 12+int32(i)*20, 16, colorHudText)
	}
}

func debugLines(s DebugStats) []string {
	return []string{
		fmt.Sprintf("FPS: %d", s.FPS),
		fmt.Sprintf("Pos: (%.1f, %.1f, %.1f)", s.Position.X, s.Position.Y, s.Position.Z),
		fmt.Sprintf("Heading: %.1f  Pitch: %.1f", s.Heading, s.Pitch),
		fmt.Sprintf("Blocks: %s (%s exposed, %s drawn)",
			humanize.Comma(int64(s.Blocks)), humanize.Comma(int64(s.Exposed)), humanize.Comma(int64(s.Drawn))),
		fmt.Sprintf("Material: %s (%s in world)  Mouse: %s", s.Selected, humanize.Comma(int64(s.SelectedCount)), s.Mode),
		fmt.Sprintf("Update: %.2f ms  Draw: %.2f ms", s.UpdateMs, s.DrawMs),
	}
}

// hotbarLabels is the raygui toggle group text, one entry per material.
func hotbarLabels() string {
	ms := blocks.Materials()
	names := make([]string, len(ms))
	for i, m := range ms {
		n := m.String()
		names[i] = fmt.Sprintf("%d %s", i+1, strings.ToUpper(n[:1])+n[1:])
	}
	return strings.Join(names, ";")
}

func hotbarBounds(screenW, screenH float32) rl.Rectangle {
	n := float32(len(blocks.Materials()))
	w := n*hotbarSlotWidth + (n-1)*hotbarPadding
	return rl.Rectangle{
		X:      (screenW - w) / 2,
		Y:      screenH - hotbarSlotHeight - hotbarMargin,
		Width:  w,
		Height: hotbarSlotHeight,
	}
}
