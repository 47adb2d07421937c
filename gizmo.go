// Package gizmo builds objects from several independent initializers that
// share one protected Context, and creates them as delegating objects.
//
// A Definition is composed from a final Initializer and zero or more
// ancestor definitions. The initializer receives the Context, one Ancestor
// per ancestor definition, and the caller's arguments. Calling an Ancestor
// runs that ancestor against the same receiver and the same Context, so
// ancestors reached along more than one path still share state:
//
//	var Named = gizmo.MustCompose(func(ctx *gizmo.Context, up []gizmo.Ancestor, args ...any) error {
//		ctx.Set("name", args[0])
//		return ctx.Self().Set("name", func() any { v, _ := ctx.Get("name"); return v })
//	})
//
//	var Greeter = gizmo.MustCompose(func(ctx *gizmo.Context, up []gizmo.Ancestor, args ...any) error {
//		if err := up[0].Call(args...); err != nil {
//			return err
//		}
//		return ctx.Self().Set("greet", func() string {
//			v, _ := ctx.Get("name")
//			return fmt.Sprintf("hello, %v", v)
//		})
//	}, Named)
//
//	obj, err := gizmo.Create(Greeter, "world")
//
// Nothing checks that an initializer calls its ancestors, calls them once,
// or calls them in any particular order. Skipping one yields an object that
// is missing whatever that ancestor would have set.
package gizmo

import "github.com/deepnoodle-ai/gizmo/proto"

// Receiver is the object an initializer builds. Objects returned by Create
// are *proto.Object; Definition.New uses a *proto.Plain.
type Receiver = proto.Trap
