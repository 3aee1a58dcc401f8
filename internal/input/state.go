package input

import "blockworld/internal/blocks"

// KeyState is the set of held movement keys for one frame.
type KeyState struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Up       bool
	Down     bool
}

// Frame is everything the game reads from input devices in one tick.
// It is produced by Poll and consumed by value.
type Frame struct {
	Keys           KeyState
	MouseDeltaX    float32
	MouseDeltaY    float32
	RemovePressed  bool // left mouse button went down this frame
	PlacePressed   bool // right mouse button went down this frame
	ReleasePressed bool // escape went down this frame
	ToggleDebug    bool
	// Select is the material chosen by a number key this frame, if any.
	Select    blocks.Material
	HasSelect bool
	// PointerOverHUD is set while the cursor is visible and over the hotbar.
	PointerOverHUD bool
}
