package core

// Action represents a semantic game action, abstracted from physical
// key presses. The platform maps keys to actions; the game consumes
// actions only. Terminals deliver no key-release events, so movement
// actions are per-tick intents sustained by key repeat, not
// press/release latches.
type Action int

const (
	ActionNone       Action = iota
	ActionTurnLeft          // Left arrow, A - rotate toward 90° (left)
	ActionTurnRight         // Right arrow, D - rotate toward 270° (right)
	ActionThrustFwd         // Up arrow, W - accelerate along heading
	ActionThrustBack        // Down arrow, S - accelerate against heading
	ActionFire              // Space - fire a bullet
	ActionConfirm           // Enter - advance start/level/game-over screens
	ActionBack              // B, Escape - leave game back to caller
	ActionRestart           // R - restart after game over
	ActionQuit              // Q, Ctrl+C - exit session
	ActionPause             // P - pause/unpause play
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTurnLeft:
		return "TurnLeft"
	case ActionTurnRight:
		return "TurnRight"
	case ActionThrustFwd:
		return "ThrustForward"
	case ActionThrustBack:
		return "ThrustBack"
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

// InputFrame represents the input state for a single simulation tick:
// all actions triggered since the previous tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this
	// frame. A map allows checking multiple actions without order
	// dependency.
	Actions map[Action]bool
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

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
