package proto

import "slices"

// EventType identifies the kind of change an Event describes.
type EventType string

// Event types
const (
	PropertyAdded    EventType = "property_added"
	PropertyDeleted  EventType = "property_deleted"
	PrototypeAdded   EventType = "prototype_added"
	PrototypeRemoved EventType = "prototype_removed"
)

// Event describes one mutation of an Object. Prop is empty for delegate
// list events, whose Value is the delegate that was added or removed.
type Event struct {
	Type  EventType
	Prop  string
	Value any
}

// Listener receives events from the objects it is registered with.
// Listeners are registered and removed by identity, so implementations
// should be pointer types.
type Listener interface {
	HandleEvent(obj *Object, e Event) error
}

type funcListener struct {
	fn func(obj *Object, e Event) error
}

func (l *funcListener) HandleEvent(obj *Object, e Event) error {
	return l.fn(obj, e)
}

// NewListener wraps fn as a Listener. Each call returns a distinct
// Listener, so keep the result to Ignore it later.
func NewListener(fn func(obj *Object, e Event) error) Listener {
	return &funcListener{fn: fn}
}

// bus dispatches events synchronously to listeners in registration order.
// A listener error stops dispatch and is returned to the mutating caller.
type bus struct {
	owner     *Object
	listeners []Listener
}

func (b *bus) index(l Listener) int {
	return slices.IndexFunc(b.listeners, func(x Listener) bool {
		return same(x, l)
	})
}

func (b *bus) listen(l Listener) {
	if l == nil || b.index(l) >= 0 {
		return
	}
	b.listeners = append(b.listeners, l)
}

func (b *bus) ignore(l Listener) {
	if i := b.index(l); i >= 0 {
		b.listeners = slices.Delete(b.listeners, i, i+1)
	}
}

func (b *bus) fire(e Event) error {
	for _, l := range slices.Clone(b.listeners) {
		if err := l.HandleEvent(b.owner, e); err != nil {
			b.owner.log.Warn().Err(err).Str("event", string(e.Type)).Msg("listener failed")
			return err
		}
	}
	return nil
}
