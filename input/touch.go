package input

import "github.com/lixenwraith/paperdesk/vmath"

// TouchPhase is the lifecycle stage of a touch report
type TouchPhase uint8

const (
	TouchStart TouchPhase = iota
	TouchMove
	TouchEnd
)

// String returns human-readable phase name
func (p TouchPhase) String() string {
	switch p {
	case TouchStart:
		return "Start"
	case TouchMove:
		return "Move"
	case TouchEnd:
		return "End"
	default:
		return "Unknown"
	}
}

// TouchTracker turns touch reports into events
// Contacts lists every touch currently on the surface; the first one drives the
// pointer and anchors rotation, as moves only ever follow the first contact
type TouchTracker struct {
	active int
}

// Active returns the number of contacts seen in the last report
func (t *TouchTracker) Active() int {
	return t.active
}

// Sample consumes one touch report
// changed is the index of the contact that just landed on a start; the activation
// targets whatever lies under it. Out of range falls back to the first contact.
// Rotation is requested only when a start already has more than one contact;
// lifting or adding fingers mid-hold never switches mode
func (t *TouchTracker) Sample(phase TouchPhase, contacts []vmath.Vec2, changed int) []Event {
	switch phase {
	case TouchStart:
		t.active = len(contacts)
		if len(contacts) == 0 {
			return nil
		}
		if changed < 0 || changed >= len(contacts) {
			changed = 0
		}
		first, hit := contacts[0], contacts[changed]
		ev := Activate(first.X, first.Y, len(contacts) > 1)
		ev.HitX, ev.HitY = hit.X, hit.Y
		return []Event{ev}

	case TouchMove:
		t.active = len(contacts)
		if len(contacts) == 0 {
			return nil
		}
		first := contacts[0]
		return []Event{Move(first.X, first.Y, len(contacts) > 1)}

	case TouchEnd:
		// Every lifted finger releases, even with contacts remaining
		t.active = len(contacts)
		return []Event{Release()}
	}
	return nil
}
