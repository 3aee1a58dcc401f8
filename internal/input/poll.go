package input

import (
	"blockworld/internal/blocks"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Fixed bindings; there is no remapping.
var (
	keyForward  int32 = rl.KeyW
	keyBackward int32 = rl.KeyS
	keyLeft     int32 = rl.KeyA
	keyRight    int32 = rl.KeyD
	keyUp       int32 = rl.KeySpace
	keyDown     int32 = rl.KeyLeftShift
	keyRelease  int32 = rl.KeyEscape
	keyDebug    int32 = rl.KeyF1
)

var selectKeys = []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree, rl.KeyFour, rl.KeyFive}

// Poll reads raylib's input state for the current frame. hud is the screen
// rectangle of the hotbar; it only matters while the cursor is visible.
func Poll(captured bool, hud rl.Rectangle) Frame {
	f := Frame{
		Keys: KeyState{
			Forward:  rl.IsKeyDown(keyForward),
			Backward: rl.IsKeyDown(keyBackward),
			Left:     rl.IsKeyDown(keyLeft),
			Right:    rl.IsKeyDown(keyRight),
			Up:       rl.IsKeyDown(keyUp),
			Down:     rl.IsKeyDown(keyDown),
		},
		RemovePressed:  rl.IsMouseButtonPressed(rl.MouseButtonLeft),
		PlacePressed:   rl.IsMouseButtonPressed(rl.MouseButtonRight),
		ReleasePressed: rl.IsKeyPressed(keyRelease),
		ToggleDebug:    rl.IsKeyPressed(keyDebug),
	}

	delta := rl.GetMouseDelta()
	f.MouseDeltaX = delta.X
	f.MouseDeltaY = delta.Y

	materials := blocks.Materials()
	for i, key := range selectKeys {
		if rl.IsKeyPressed(key) {
			f.Select = materials[i]
			f.HasSelect = true
		}
	}

	if !captured {
		f.PointerOverHUD = rl.CheckCollisionPointRec(rl.GetMousePosition(), hud)
	}
	return f
}
