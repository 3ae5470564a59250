package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow - soft drop
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionFire           // Space - fire at screen centre / start a round
	ActionConfirm        // Enter - confirm selection, start
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Visibility is the host view's visibility signal. Hosts translate their
// platform notion (terminal focus, window focus, viewport intersection) into
// these values; games never see the platform API.
type Visibility int

const (
	VisibilityUnchanged Visibility = iota
	VisibilityVisible
	VisibilityHidden
)

// String returns a human-readable name for the signal.
func (v Visibility) String() string {
	switch v {
	case VisibilityVisible:
		return "Visible"
	case VisibilityHidden:
		return "Hidden"
	default:
		return "Unchanged"
	}
}

// Pointer is the last known pointer position over the drawing surface,
// in cell coordinates relative to the surface's top-left corner.
type Pointer struct {
	Pos    Vec2
	Inside bool // false after the pointer left the surface
}

// InputFrame represents the input state for a single simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Clicks are primary-button presses (or touches) since the last frame,
	// in cell coordinates.
	Clicks []Vec2

	// Pointer is the hover position, nil when no move event arrived.
	Pointer *Pointer

	// Visibility carries a Visible/Hidden transition, if one happened.
	Visibility Visibility

	// Frames is the elapsed time since the previous frame expressed in
	// reference frames (1.0 at the reference rate). Zero means one frame.
	Frames float64
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Click records a pointer press at the given cell position.
func (f *InputFrame) Click(x, y float64) {
	f.Clicks = append(f.Clicks, Vec2{X: x, Y: y})
}

// Elapsed returns Frames, defaulting to a single reference frame.
func (f InputFrame) Elapsed() float64 {
	if f.Frames <= 0 {
		return 1
	}
	return f.Frames
}

// Clear resets all per-frame input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicks = f.Clicks[:0]
	f.Pointer = nil
	f.Visibility = VisibilityUnchanged
	f.Frames = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Clicks = append([]Vec2(nil), f.Clicks...)
	if f.Pointer != nil {
		p := *f.Pointer
		clone.Pointer = &p
	}
	clone.Visibility = f.Visibility
	clone.Frames = f.Frames
	return clone
}
