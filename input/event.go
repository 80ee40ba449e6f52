// Package input normalizes mouse and touch samples into one event stream and
// dispatches it to papers
package input

// Kind is the abstract event type shared by mouse and touch
type Kind uint8

const (
	KindNone Kind = iota
	KindActivate
	KindMove
	KindRelease
)

// String returns human-readable kind name
func (k Kind) String() string {
	switch k {
	case KindActivate:
		return "Activate"
	case KindMove:
		return "Move"
	case KindRelease:
		return "Release"
	default:
		return "None"
	}
}

// Event is one normalized input sample in surface coordinates
type Event struct {
	Kind Kind
	X, Y float64

	// Rotate requests rotation mode on Activate
	// Mouse: secondary button pressed. Touch: more than one contact at start
	Rotate bool

	// MultiTouch reports more than one active contact on Move
	MultiTouch bool

	// HitX, HitY is where an Activate landed; resolvers hit-test here
	// Usually equal to X, Y. A second finger landing on a paper hits there while
	// the first finger stays the anchor
	HitX, HitY float64

	// Target scopes an Activate to a named subscriber. Empty means resolve by position
	Target string
}

// Activate builds an activation event
func Activate(x, y float64, rotate bool) Event {
	return Event{Kind: KindActivate, X: x, Y: y, HitX: x, HitY: y, Rotate: rotate}
}

// Move builds a move event
func Move(x, y float64, multiTouch bool) Event {
	return Event{Kind: KindMove, X: x, Y: y, MultiTouch: multiTouch}
}

// Release builds a release event
func Release() Event {
	return Event{Kind: KindRelease}
}
