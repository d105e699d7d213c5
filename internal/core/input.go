package core

// Action represents a semantic operator action, abstracted from physical key presses.
type Action int

const (
	ActionNone            Action = iota
	ActionCycleColor             // C - advance to the next palette color
	ActionCycleBrightness        // B - advance to the next brightness tier
	ActionHelp                   // ? - toggle the full help view
	ActionQuit                   // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionCycleColor:
		return "CycleColor"
	case ActionCycleBrightness:
		return "CycleBrightness"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
