package input

// Subscriber receives normalized input. Papers implement it
type Subscriber interface {
	Activate(x, y float64, rotate bool)
	Move(x, y float64, multiTouch bool)
	Release()
}

// Resolver picks the subscriber an activation lands on
type Resolver interface {
	// Resolve returns the target of ev, false when nothing is under the pointer
	Resolve(ev Event) (Subscriber, bool)
}

// ResolverFunc adapts a function to Resolver
type ResolverFunc func(ev Event) (Subscriber, bool)

// Resolve calls f(ev)
func (f ResolverFunc) Resolve(ev Event) (Subscriber, bool) {
	return f(ev)
}

// Bus dispatches events to subscribers
//
// Architecture:
//   - Single-threaded dispatch, handlers run to completion
//   - Activate goes to exactly one subscriber chosen by the Resolver
//   - Move and Release are broadcast to every subscriber in registration order
//     so a drag keeps going after the pointer leaves the paper
type Bus struct {
	subscribers []Subscriber
	resolver    Resolver
}

// NewBus creates a bus routing activations through resolver
func NewBus(resolver Resolver) *Bus {
	return &Bus{resolver: resolver}
}

// Subscribe adds s to the broadcast list
func (b *Bus) Subscribe(s Subscriber) {
	b.subscribers = append(b.subscribers, s)
}

// Dispatch delivers one event
// For Activate it returns the subscriber the event was routed to, or nil
func (b *Bus) Dispatch(ev Event) Subscriber {
	switch ev.Kind {
	case KindActivate:
		if b.resolver == nil {
			return nil
		}
		s, ok := b.resolver.Resolve(ev)
		if !ok || s == nil {
			return nil
		}
		s.Activate(ev.X, ev.Y, ev.Rotate)
		return s

	case KindMove:
		for _, s := range b.subscribers {
			s.Move(ev.X, ev.Y, ev.MultiTouch)
		}

	case KindRelease:
		for _, s := range b.subscribers {
			s.Release()
		}
	}
	return nil
}

// DispatchAll delivers events in order
func (b *Bus) DispatchAll(events []Event) {
	for _, ev := range events {
		b.Dispatch(ev)
	}
}
