package proto

import "github.com/deepnoodle-ai/gizmo/store"

// Plain is an ordinary keyed object. It can be used as an opaque delegate,
// which only answers property reads, or as a plain construction receiver.
type Plain struct {
	values *store.Store
}

// NewPlain returns a Plain holding a shallow copy of m.
func NewPlain(m map[string]any) *Plain {
	return &Plain{values: store.FromMap(m)}
}

func (p *Plain) Get(name string) (any, bool) {
	v, ok := p.values.Get(name)
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (p *Plain) Set(name string, value any) error {
	p.values.Set(name, value)
	return nil
}

func (p *Plain) Delete(name string) error {
	p.values.Delete(name)
	return nil
}

func (p *Plain) Has(name string) bool {
	return p.values.Has(name)
}

func (p *Plain) Keys() []string {
	return p.values.Keys()
}

func (p *Plain) String() string {
	return "plain" + p.values.String()
}
