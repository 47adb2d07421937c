// Package proto provides delegating objects: keyed property objects whose
// reads fall back, in order, to a mutable list of other objects.
//
// A delegate is anything implementing Getter. Delegates that also carry a
// delegate list of their own (see Delegator) take part in transitive
// membership checks, cycle prevention and recursive iteration. Any other
// Getter is opaque and only answers property reads.
//
// For example:
//
//	base := proto.New(proto.WithBase(map[string]any{"greeting": "hello"}))
//	obj := proto.New()
//	if err := obj.Delegates().Add(base); err != nil {
//		// handle error
//	}
//	v, _ := obj.Get("greeting") // "hello"
//
// Objects are not safe for concurrent use. Callers that share an object
// across goroutines must synchronize access themselves.
package proto

import (
	"fmt"
	"reflect"
)

// CapabilityKey is the reserved property name through which an Object
// exposes its delegate list. It cannot be assigned or deleted and is never
// listed by Keys.
const CapabilityKey = "prototypes"

// Getter is the read surface every delegate provides. Get returns false
// when the name is not defined or holds nil.
type Getter interface {
	Get(name string) (any, bool)
}

// Trap is the full property surface of a delegating object.
type Trap interface {
	Getter

	// Set writes to the object's own properties.
	Set(name string, value any) error

	// Delete removes one of the object's own properties.
	Delete(name string) error

	// Has reports whether the object itself defines name.
	Has(name string) bool

	// Keys returns the object's own property names in insertion order.
	Keys() []string
}

// Delegator is implemented by delegates that carry their own delegate list.
type Delegator interface {
	Getter
	Delegates() *Delegates
}

var (
	_ Trap      = (*Object)(nil)
	_ Delegator = (*Object)(nil)
	_ Trap      = (*Plain)(nil)
)

// DelegatesOf returns the delegate list carried by g, if it has one. A false
// result means g is an opaque delegate.
func DelegatesOf(g Getter) (*Delegates, bool) {
	d, ok := g.(Delegator)
	if !ok {
		return nil, false
	}
	list := d.Delegates()
	if list == nil {
		return nil, false
	}
	return list, true
}

// Lookup reads name from g and converts the result to T.
func Lookup[T any](g Getter, name string) (T, bool) {
	var zero T
	v, ok := g.Get(name)
	if !ok {
		return zero, false
	}
	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// same reports whether a and b are the same value by identity. Values whose
// dynamic type cannot be compared are never the same as anything.
func same(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() || !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}

func isNil(g Getter) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}

func describe(g Getter) string {
	if o, ok := g.(*Object); ok {
		return o.id.String()
	}
	return fmt.Sprintf("%T", g)
}
