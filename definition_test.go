package gizmo_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deepnoodle-ai/gizmo"
	"github.com/deepnoodle-ai/gizmo/errz"
	"github.com/deepnoodle-ai/gizmo/proto"
)

type opts struct {
	foo, bar, fizz string
}

var c1 = gizmo.MustCompose(func(ctx *gizmo.Context, up []gizmo.Ancestor, args ...any) error {
	o := args[0].(opts)
	bar := o.bar
	ctx.Set("foo", o.foo)
	self := ctx.Self()
	return errors.Join(
		self.Set("getOur", func() *gizmo.Context { return ctx }),
		self.Set("getFoo", func() any { v, _ := ctx.Get("foo"); return v }),
		self.Set("getBar", func() string { return bar }),
	)
})

var c2 = gizmo.MustCompose(func(ctx *gizmo.Context, up []gizmo.Ancestor, args ...any) error {
	if err := up[0].Call(args...); err != nil {
		return err
	}
	return ctx.Self().Set("getOur2", func() *gizmo.Context { return ctx })
}, c1)

var c3 = gizmo.MustCompose(func(ctx *gizmo.Context, up []gizmo.Ancestor, args ...any) error {
	fizz := args[0].(opts).fizz
	self := ctx.Self()
	return errors.Join(
		self.Set("getFizz", func() string { return fizz }),
		self.Set("getOur3", func() *gizmo.Context { return ctx }),
	)
})

var c4 = gizmo.MustCompose(func(ctx *gizmo.Context, up []gizmo.Ancestor, args ...any) error {
	if err := up[0].Call(args...); err != nil {
		return err
	}
	return up[1].Call(args...)
}, c2, c3)

func call[T any](t *testing.T, g proto.Getter, name string) T {
	t.Helper()
	fn, ok := proto.Lookup[func() T](g, name)
	require.True(t, ok, "missing method %q", name)
	return fn()
}

func TestSingleDefinition(t *testing.T) {
	obj, err := gizmo.Create(c1, opts{foo: "this is foo", bar: "this is bar"})
	require.Nil(t, err)
	require.Equal(t, "this is foo", call[any](t, obj, "getFoo"))
	require.Equal(t, "this is bar", call[string](t, obj, "getBar"))
	require.NotNil(t, call[*gizmo.Context](t, obj, "getOur"))
}

func TestInstancesDoNotShareContext(t *testing.T) {
	o1, err := gizmo.Create(c1, opts{foo: "one"})
	require.Nil(t, err)
	o2, err := gizmo.Create(c1, opts{foo: "two"})
	require.Nil(t, err)

	require.NotSame(t, call[*gizmo.Context](t, o1, "getOur"), call[*gizmo.Context](t, o2, "getOur"))
	require.Equal(t, "one", call[any](t, o1, "getFoo"))
	require.Equal(t, "two", call[any](t, o2, "getFoo"))
}

func TestAncestorSharesContext(t *testing.T) {
	obj, err := gizmo.Create(c2, opts{foo: "this is foo"})
	require.Nil(t, err)
	require.Same(t, call[*gizmo.Context](t, obj, "getOur"), call[*gizmo.Context](t, obj, "getOur2"))
	require.Equal(t, "this is foo", call[any](t, obj, "getFoo"))
}

func TestMultipleAncestorsShareContext(t *testing.T) {
	obj, err := gizmo.Create(c4, opts{foo: "this is foo", bar: "this is bar", fizz: "this is fizz"})
	require.Nil(t, err)

	our := call[*gizmo.Context](t, obj, "getOur")
	require.Same(t, our, call[*gizmo.Context](t, obj, "getOur2"))
	require.Same(t, our, call[*gizmo.Context](t, obj, "getOur3"))
	require.Same(t, obj, our.Self())
	require.Equal(t, "this is fizz", call[string](t, obj, "getFizz"))
}

func TestDiamondComposition(t *testing.T) {
	var seen []*gizmo.Context
	p := gizmo.MustCompose(func(ctx *gizmo.Context, up []gizmo.Ancestor, args ...any) error {
		seen = append(seen, ctx)
		ctx.Set("secret", args[0])
		return nil
	})
	left := gizmo.MustCompose(func(ctx *gizmo.Context, up []gizmo.Ancestor, args ...any) error {
		seen = append(seen, ctx)
		if err := up[0].Call("from left"); err != nil {
			return err
		}
		return ctx.Self().Set("leftSecret", func() any { v, _ := ctx.Get("secret"); return v })
	}, p)
	right := gizmo.MustCompose(func(ctx *gizmo.Context, up []gizmo.Ancestor, args ...any) error {
		seen = append(seen, ctx)
		if err := up[0].Call("from right"); err != nil {
			return err
		}
		return ctx.Self().Set("rightSecret", func() any { v, _ := ctx.Get("secret"); return v })
	}, p)
	d := gizmo.MustCompose(func(ctx *gizmo.Context, up []gizmo.Ancestor, args ...any) error {
		seen = append(seen, ctx)
		if err := up[0].Call(); err != nil {
			return err
		}
		return up[1].Call()
	}, left, right)

	obj, err := gizmo.Create(d)
	require.Nil(t, err)

	require.Len(t, seen, 5)
	for _, ctx := range seen {
		require.Same(t, seen[0], ctx)
	}
	// p ran twice against the one Context; the last write wins for both views
	require.Equal(t, "from right", call[any](t, obj, "leftSecret"))
	require.Equal(t, "from right", call[any](t, obj, "rightSecret"))
}

func TestClosureCapturesArgument(t *testing.T) {
	def := gizmo.MustCompose(func(ctx *gizmo.Context, up []gizmo.Ancestor, args ...any) error {
		foo := args[0]
		return ctx.Self().Set("getFoo", func() any { return foo })
	})
	obj, err := gizmo.Create(def, "X")
	require.Nil(t, err)
	require.Equal(t, "X", call[any](t, obj, "getFoo"))
}

func TestSelfMethodsCallEachOther(t *testing.T) {
	c5 := gizmo.MustCompose(func(ctx *gizmo.Context, up []gizmo.Ancestor, args ...any) error {
		foo := args[0].(opts).foo
		return ctx.Self().Set("getFoo", func() string { return foo })
	})
	c6 := gizmo.MustCompose(func(ctx *gizmo.Context, up []gizmo.Ancestor, args ...any) error {
		bar := args[0].(opts).bar
		if err := up[0].Call(args...); err != nil {
			return err
		}
		self := ctx.Self()
		return self.Set("getFooBar", func() string {
			getFoo, _ := proto.Lookup[func() string](self, "getFoo")
			return getFoo() + ":" + bar
		})
	}, c5)

	obj, err := gizmo.Create(c6, opts{foo: "this is foo", bar: "this is bar"})
	require.Nil(t, err)
	require.Equal(t, "this is foo", call[string](t, obj, "getFoo"))
	require.Equal(t, "this is foo:this is bar", call[string](t, obj, "getFooBar"))
}

func TestSkippedAncestorLeavesObjectIncomplete(t *testing.T) {
	def := gizmo.MustCompose(func(ctx *gizmo.Context, up []gizmo.Ancestor, args ...any) error {
		return ctx.Self().Set("own", true)
	}, c1)
	obj, err := gizmo.Create(def)
	require.Nil(t, err)
	require.True(t, obj.Has("own"))
	require.False(t, obj.Has("getFoo"))
}

func TestAncestorWrappersFollowCompositionOrder(t *testing.T) {
	var order []string
	named := func(name string) *gizmo.Definition {
		return gizmo.MustCompose(func(ctx *gizmo.Context, up []gizmo.Ancestor, args ...any) error {
			order = append(order, name)
			return nil
		})
	}
	a, b := named("a"), named("b")
	def := gizmo.MustCompose(func(ctx *gizmo.Context, up []gizmo.Ancestor, args ...any) error {
		require.Len(t, up, 2)
		require.Same(t, a, up[0].Definition())
		require.Same(t, b, up[1].Definition())
		// reversed and repeated on purpose
		for _, i := range []int{1, 0, 1} {
			if err := up[i].Call(); err != nil {
				return err
			}
		}
		return nil
	}, a, b)

	_, err := def.New()
	require.Nil(t, err)
	require.Equal(t, []string{"b", "a", "b"}, order)
	require.Equal(t, []*gizmo.Definition{a, b}, def.Ancestors())
}

func TestInitializerErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	failing := gizmo.MustCompose(func(ctx *gizmo.Context, up []gizmo.Ancestor, args ...any) error {
		return boom
	})
	def := gizmo.MustCompose(func(ctx *gizmo.Context, up []gizmo.Ancestor, args ...any) error {
		return up[0].Call()
	}, failing)

	obj, err := gizmo.Create(def)
	require.ErrorIs(t, err, boom)
	require.Nil(t, obj)

	_, err = def.New()
	require.ErrorIs(t, err, boom)
}

func TestComposeRejectsMissingParts(t *testing.T) {
	_, err := gizmo.Compose(nil, c1, nil, nil)
	require.Error(t, err)
	require.ErrorIs(t, err, errz.ErrInvalidDefinition)
	require.Contains(t, err.Error(), "initializer is nil")
	require.Contains(t, err.Error(), "ancestor 1 is nil")
	require.Contains(t, err.Error(), "ancestor 2 is nil")

	require.Panics(t, func() {
		gizmo.MustCompose(nil)
	})
}

func TestConstructRejectsNilReceiver(t *testing.T) {
	err := c1.Construct(nil, opts{})
	require.ErrorIs(t, err, errz.ErrInvalidDefinition)
}

func TestNewBuildsPlainObject(t *testing.T) {
	obj, err := c4.New(opts{foo: "this is foo", fizz: "this is fizz"})
	require.Nil(t, err)
	require.Equal(t, "this is foo", call[any](t, obj, "getFoo"))
	require.Equal(t, "this is fizz", call[string](t, obj, "getFizz"))
	require.Same(t, call[*gizmo.Context](t, obj, "getOur"), call[*gizmo.Context](t, obj, "getOur3"))
}

func TestConstructIntoExistingObject(t *testing.T) {
	obj := proto.New(proto.WithBase(map[string]any{"preset": 1}))
	require.Nil(t, c1.Construct(obj, opts{foo: "into existing"}))
	require.Equal(t, "into existing", call[any](t, obj, "getFoo"))
	require.Equal(t, []string{"preset", "getOur", "getFoo", "getBar"}, obj.Keys())
}

func TestContextFields(t *testing.T) {
	var captured *gizmo.Context
	def := gizmo.MustCompose(func(ctx *gizmo.Context, up []gizmo.Ancestor, args ...any) error {
		captured = ctx
		ctx.Set("a", 1)
		ctx.Set("b", 2)
		ctx.Delete("a")
		return nil
	})
	_, err := def.New()
	require.Nil(t, err)
	require.False(t, captured.Has("a"))
	v, ok := captured.Get("b")
	require.True(t, ok)
	require.Equal(t, 2, v)
	require.Equal(t, []string{"b"}, captured.Keys())
}

func TestZeroValuesFailToConstruct(t *testing.T) {
	var def gizmo.Definition
	err := def.Construct(proto.New())
	require.ErrorIs(t, err, errz.ErrInvalidDefinition)

	_, err = def.New()
	require.ErrorIs(t, err, errz.ErrInvalidDefinition)

	var up gizmo.Ancestor
	require.ErrorIs(t, up.Call(), errz.ErrInvalidDefinition)
}
