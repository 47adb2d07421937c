package gizmo

import "github.com/deepnoodle-ai/gizmo/store"

// Context holds protected state for one construction. Every initializer run
// during a single Construct or Create call receives the same *Context, and
// closures that capture it keep it alive after construction returns.
type Context struct {
	self   Receiver
	fields *store.Store
}

func newContext(self Receiver) *Context {
	return &Context{self: self, fields: store.New()}
}

// Self returns the object being constructed.
func (c *Context) Self() Receiver {
	return c.self
}

// Get returns a protected field.
func (c *Context) Get(name string) (any, bool) {
	return c.fields.Get(name)
}

// Set stores a protected field.
func (c *Context) Set(name string, value any) {
	c.fields.Set(name, value)
}

// Delete removes a protected field.
func (c *Context) Delete(name string) {
	c.fields.Delete(name)
}

// Has reports whether a protected field is present.
func (c *Context) Has(name string) bool {
	return c.fields.Has(name)
}

// Keys returns the protected field names in insertion order.
func (c *Context) Keys() []string {
	return c.fields.Keys()
}
