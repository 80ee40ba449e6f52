package input

// Button is a bitmask of held mouse buttons
type Button uint8

const (
	ButtonNone      Button = 0
	ButtonPrimary   Button = 1 << 0 // usually left
	ButtonSecondary Button = 1 << 1 // usually right, requests rotation
	ButtonMiddle    Button = 1 << 2
)

// String returns human-readable button name
func (b Button) String() string {
	switch b {
	case ButtonNone:
		return "None"
	case ButtonPrimary:
		return "Primary"
	case ButtonSecondary:
		return "Secondary"
	case ButtonMiddle:
		return "Middle"
	default:
		return "Multiple"
	}
}

// MouseTracker turns level-triggered mouse reports (position + held buttons)
// into edge-triggered events. Terminals report the full button mask on every
// sample, so presses and releases are derived from mask transitions
type MouseTracker struct {
	buttons Button
	x, y    float64
	seen    bool
}

// Buttons returns the mask from the last sample
func (m *MouseTracker) Buttons() Button {
	return m.buttons
}

// Sample consumes one report and returns the events it implies, in order
// Motion is reported before the button transition at the same sample
func (m *MouseTracker) Sample(x, y float64, buttons Button) []Event {
	var out []Event

	moved := !m.seen || x != m.x || y != m.y
	if moved {
		out = append(out, Move(x, y, false))
	}

	prev := m.buttons
	pressed := buttons &^ prev

	switch {
	case prev != ButtonNone && buttons == ButtonNone:
		out = append(out, Release())
	case pressed != ButtonNone:
		// A second button while one is held still activates; the paper ignores it
		out = append(out, Activate(x, y, pressed&ButtonSecondary != 0))
	}

	m.x, m.y = x, y
	m.buttons = buttons
	m.seen = true
	return out
}

// Reset forgets held buttons, e.g. after the host loses focus
func (m *MouseTracker) Reset() []Event {
	if m.buttons == ButtonNone {
		return nil
	}
	m.buttons = ButtonNone
	return []Event{Release()}
}
