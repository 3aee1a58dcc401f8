package input

import "blockworld/internal/blocks"

// CaptureMode is the mouse capture state.
type CaptureMode int

const (
	Released CaptureMode = iota
	Captured
)

func (m CaptureMode) String() string {
	if m == Captured {
		return "captured"
	}
	return "released"
}

// Session is the per-player interaction state carried across frames.
type Session struct {
	Selected blocks.Material
	Mode     CaptureMode
	// lookSuspended drops the mouse delta of the frame capture started on;
	// a freshly locked cursor reports a jump.
	lookSuspended bool
}

// NewSession starts captured, as the game does at startup.
func NewSession(selected blocks.Material) *Session {
	return &Session{Selected: selected, Mode: Captured, lookSuspended: true}
}

// Actions is what a frame asks the game to do after session rules apply.
type Actions struct {
	CaptureChanged bool
	Look           bool
	Remove         bool
	Place          bool
	Selected       bool
}

// Apply advances the session with one frame of input.
//
//	Released -> Captured on left click (not over the HUD)
//	Captured -> Released on escape
//
// A left click also removes the targeted block, after capturing. Clicks
// over the visible hotbar belong to the HUD.
func (s *Session) Apply(f Frame) Actions {
	var a Actions

	if f.HasSelect && f.Select.Valid() && f.Select != s.Selected {
		s.Selected = f.Select
		a.Selected = true
	}

	switch s.Mode {
	case Captured:
		if f.ReleasePressed {
			s.Mode = Released
			a.CaptureChanged = true
		}
	case Released:
		if f.RemovePressed && !f.PointerOverHUD {
			s.Mode = Captured
			s.lookSuspended = true
			a.CaptureChanged = true
		}
	}

	if s.Mode == Captured {
		a.Look = !s.lookSuspended
		s.lookSuspended = false
	}
	if !f.PointerOverHUD {
		a.Remove = f.RemovePressed
		a.Place = f.PlacePressed
	}
	return a
}

func (s *Session) Captured() bool {
	return s.Mode == Captured
}
