package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space, W, Up - flap; also starts and restarts a session
	ActionPause          // P - pause/unpause game
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputSource is the control capability a game reads once per tick.
// Every Pressed method is edge-triggered and consumed on read: a second
// call without a new press returns false.
type InputSource interface {
	JumpPressed() bool
	PausePressed() bool
	// Consume drops all pending edges and held state.
	Consume()
}

// EdgeInput turns raw key and pointer events into edge-triggered actions.
// A key held down produces a single edge until it is released; pointer
// presses behave the same way.
type EdgeInput struct {
	held    map[Action]bool
	edges   map[Action]bool
	pointer bool // pointer button currently down
	clicked bool // pointer press edge not yet consumed
}

// NewEdgeInput creates an input source with no pending edges.
func NewEdgeInput() *EdgeInput {
	return &EdgeInput{
		held:  make(map[Action]bool),
		edges: make(map[Action]bool),
	}
}

// KeyDown records a key press. Repeated KeyDown calls without a KeyUp
// in between do not produce new edges.
func (in *EdgeInput) KeyDown(a Action) {
	if a == ActionNone {
		return
	}
	if !in.held[a] {
		in.edges[a] = true
	}
	in.held[a] = true
}

// KeyUp records a key release.
func (in *EdgeInput) KeyUp(a Action) {
	delete(in.held, a)
}

// Tap records a press immediately followed by a release. Terminals report
// key presses without releases, so each key message is a full tap and a
// held key arrives as repeated taps; callers filter auto-repeat before
// calling Tap.
func (in *EdgeInput) Tap(a Action) {
	in.KeyDown(a)
	in.KeyUp(a)
}

// PointerDown records a pointer (mouse or touch) press.
func (in *EdgeInput) PointerDown() {
	if !in.pointer {
		in.clicked = true
	}
	in.pointer = true
}

// PointerUp records a pointer release.
func (in *EdgeInput) PointerUp() {
	in.pointer = false
}

// JumpPressed reports a jump edge from either the keyboard or the pointer
// and clears both.
func (in *EdgeInput) JumpPressed() bool {
	pressed := in.take(ActionJump) || in.clicked
	in.clicked = false
	return pressed
}

// PausePressed reports and clears a pause edge.
func (in *EdgeInput) PausePressed() bool {
	return in.take(ActionPause)
}

// Pressed reports and clears the edge for any action.
func (in *EdgeInput) Pressed(a Action) bool {
	return in.take(a)
}

// Consume drops all pending edges and held state.
func (in *EdgeInput) Consume() {
	clear(in.held)
	clear(in.edges)
	in.pointer = false
	in.clicked = false
}

func (in *EdgeInput) take(a Action) bool {
	pressed := in.edges[a]
	delete(in.edges, a)
	return pressed
}

var _ InputSource = (*EdgeInput)(nil)
