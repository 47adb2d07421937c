package proto

import (
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog"

	"github.com/deepnoodle-ai/gizmo/store"
)

// Object is a delegating object. Reads of names it does not define itself
// are resolved against its delegates, left to right and depth first. Writes
// and deletes only ever touch the object's own properties.
//
// A nil value is treated as undefined: Get falls through to the delegates
// when the own property holds nil, and Set of a name holding nil reports the
// name as added.
type Object struct {
	id        uuid.UUID
	own       *store.Store
	delegates *Delegates
	bus       *bus
	log       zerolog.Logger
}

// New creates a delegating object with no delegates.
func New(opts ...Option) *Object {
	cfg := collectOptions(opts...)
	o := &Object{
		id:  cfg.id,
		own: cfg.base,
		log: cfg.logger.With().Str("object", cfg.id.String()).Logger(),
	}
	o.delegates = &Delegates{owner: o}
	o.bus = &bus{owner: o}
	return o
}

// ID returns the object's unique identifier.
func (o *Object) ID() uuid.UUID {
	return o.id
}

// Delegates returns the object's delegate list. This is the same value
// exposed through the CapabilityKey property.
func (o *Object) Delegates() *Delegates {
	return o.delegates
}

// Get returns the value of name. The object's own non-nil value wins;
// otherwise each delegate is asked in order and the first defined value is
// returned.
func (o *Object) Get(name string) (any, bool) {
	if name == CapabilityKey {
		return o.delegates, true
	}
	if v, ok := o.own.Get(name); ok && v != nil {
		return v, true
	}
	for _, d := range o.delegates.snapshot() {
		if v, ok := d.Get(name); ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// Set writes value to the object's own properties and fires PropertyAdded
// when name was previously undefined. Assigning CapabilityKey is ignored.
// A non-nil error comes from a listener; the write has already happened.
func (o *Object) Set(name string, value any) error {
	if name == CapabilityKey {
		return nil
	}
	prev, _ := o.own.Set(name, value)
	if prev != nil {
		return nil
	}
	return o.bus.fire(Event{Type: PropertyAdded, Prop: name, Value: value})
}

// Delete removes name from the object's own properties and fires
// PropertyDeleted with the removed value. Names only defined by a delegate
// are left alone and fire nothing. A non-nil error comes from a listener;
// the delete has already happened.
func (o *Object) Delete(name string) error {
	if name == CapabilityKey {
		return nil
	}
	prev, ok := o.own.Delete(name)
	if !ok || prev == nil {
		return nil
	}
	return o.bus.fire(Event{Type: PropertyDeleted, Prop: name, Value: prev})
}

// Has reports whether the object itself defines name. Delegates are not
// consulted, so Has can be false for a name that Get resolves.
func (o *Object) Has(name string) bool {
	return name == CapabilityKey || o.own.Has(name)
}

// Keys returns the object's own property names in insertion order.
func (o *Object) Keys() []string {
	return o.own.Keys()
}

func (o *Object) String() string {
	return fmt.Sprintf("object(%s)", o.id)
}
