package gizmo

import (
	"slices"

	"github.com/hashicorp/go-multierror"

	"github.com/deepnoodle-ai/gizmo/errz"
	"github.com/deepnoodle-ai/gizmo/proto"
)

// Initializer runs one step of a construction. up holds one Ancestor per
// ancestor definition, in the order they were given to Compose.
type Initializer func(ctx *Context, up []Ancestor, args ...any) error

// Definition is an immutable, reusable constructor blueprint. Build it with
// Compose; the zero value has no initializer and fails to construct.
type Definition struct {
	ancestors []*Definition
	init      Initializer
}

// Compose returns a Definition that runs init with a wrapper for each of
// the given ancestors.
func Compose(init Initializer, ancestors ...*Definition) (*Definition, error) {
	var result *multierror.Error
	if init == nil {
		result = multierror.Append(result,
			errz.New(errz.InvalidDefinition, "initializer is nil"))
	}
	for i, a := range ancestors {
		if a == nil {
			result = multierror.Append(result,
				errz.Newf(errz.InvalidDefinition, "ancestor %d is nil", i))
		}
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return &Definition{ancestors: slices.Clone(ancestors), init: init}, nil
}

// MustCompose is like Compose but panics on error. It is intended for
// package-level definitions.
func MustCompose(init Initializer, ancestors ...*Definition) *Definition {
	d, err := Compose(init, ancestors...)
	if err != nil {
		panic(err)
	}
	return d
}

// Ancestors returns the ancestor definitions in composition order.
func (d *Definition) Ancestors() []*Definition {
	return slices.Clone(d.ancestors)
}

// Construct runs the definition as a top-level construction: a fresh
// Context is bound to self and shared with every ancestor reached.
func (d *Definition) Construct(self Receiver, args ...any) error {
	if self == nil {
		return errz.New(errz.InvalidDefinition, "receiver is nil")
	}
	return d.invoke(newContext(self), args)
}

// New constructs a plain object. Use Create for a delegating object.
func (d *Definition) New(args ...any) (*proto.Plain, error) {
	p := proto.NewPlain(nil)
	if err := d.Construct(p, args...); err != nil {
		return nil, err
	}
	return p, nil
}

func (d *Definition) invoke(ctx *Context, args []any) error {
	if d == nil || d.init == nil {
		return errz.New(errz.InvalidDefinition, "definition has no initializer")
	}
	up := make([]Ancestor, len(d.ancestors))
	for i, a := range d.ancestors {
		up[i] = Ancestor{def: a, ctx: ctx}
	}
	return d.init(ctx, up, args...)
}

// Ancestor runs one ancestor definition inside an ongoing construction.
// Ancestors are only handed out to initializers; the zero value fails.
type Ancestor struct {
	def *Definition
	ctx *Context
}

// Call runs the ancestor against the current receiver and Context,
// forwarding args to its initializer.
func (a Ancestor) Call(args ...any) error {
	if a.ctx == nil {
		return errz.New(errz.InvalidDefinition, "ancestor is not bound to a construction")
	}
	return a.def.invoke(a.ctx, args)
}

// Definition returns the ancestor's definition.
func (a Ancestor) Definition() *Definition {
	return a.def
}
