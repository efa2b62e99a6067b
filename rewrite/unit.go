package rewrite

import (
	"fmt"
	"time"

	"github.com/deepnoodle-ai/irmeta/errz"
	"github.com/deepnoodle-ai/irmeta/host"
	"github.com/gofrs/uuid"
)

// Generation is one plugin contribution to a host phase. The host invokes
// Generate with the phase's root and threads the result onward.
type Generation[R any] interface {
	// ID uniquely identifies the unit.
	ID() uuid.UUID

	// Name describes the unit in logs and diagnostics.
	Name() string

	// Universe returns the universe of the roots the unit accepts.
	Universe() Universe

	// Generate runs the unit against root and returns the resulting root.
	// Implementations must not modify root.
	Generate(plugin *host.PluginContext, compiler *host.CompilerContext, root R) R
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

// Unit is the Generation produced by registering a hook: a full bottom-up
// traversal with one binding.
type Unit[E, R any] struct {
	id     uuid.UUID
	name   string
	schema Schema[E, R]
	bind   Binding[E, R]
}

// NewUnit returns a unit that rewrites with bind over schema.
func NewUnit[E, R any](name string, schema Schema[E, R], bind Binding[E, R]) *Unit[E, R] {
	return &Unit[E, R]{
		id:     newID(),
		name:   name,
		schema: schema,
		bind:   bind,
	}
}

// ID implements Generation.
func (u *Unit[E, R]) ID() uuid.UUID { return u.id }

// Name implements Generation.
func (u *Unit[E, R]) Name() string { return u.name }

// Universe implements Generation.
func (u *Unit[E, R]) Universe() Universe { return u.schema.Universe() }

// Generate implements Generation.
func (u *Unit[E, R]) Generate(plugin *host.PluginContext, compiler *host.CompilerContext, root R) R {
	out, _ := u.Run(plugin, compiler, root)
	return out
}

// Run is Generate that also returns traversal statistics.
func (u *Unit[E, R]) Run(plugin *host.PluginContext, compiler *host.CompilerContext, root R) (R, Stats) {
	ctx := MakeContext(plugin, compiler, root)
	ctx.forUnit(u.name, u.id, u.schema.Universe())

	start := time.Now()
	out, stats := rewriteStats(u.schema, ctx, u.schema.Lift(root), u.bind)
	ctx.Logger.Debug().
		Int("visited", stats.Visited).
		Int("matched", stats.Matched).
		Int("replaced", stats.Replaced).
		Dur("elapsed", time.Since(start)).
		Msg("rewrite complete")

	result, ok := any(out).(R)
	if !ok {
		panic(&errz.SlotError{
			Parent: "root",
			Slot:   u.name,
			Want:   fmt.Sprintf("%T", root),
			Got:    fmt.Sprintf("%T", out),
		})
	}
	return result, stats
}

// Func adapts a plain function to the Generation interface, for units that
// do not have the shape of a hook (dumps, whole-tree analyses).
type Func[R any] struct {
	id       uuid.UUID
	name     string
	universe Universe
	f        func(ctx *Context[R]) R
}

// NewFunc returns a Generation that calls f with a fresh context.
func NewFunc[R any](name string, universe Universe, f func(ctx *Context[R]) R) *Func[R] {
	return &Func[R]{id: newID(), name: name, universe: universe, f: f}
}

// ID implements Generation.
func (g *Func[R]) ID() uuid.UUID { return g.id }

// Name implements Generation.
func (g *Func[R]) Name() string { return g.name }

// Universe implements Generation.
func (g *Func[R]) Universe() Universe { return g.universe }

// Generate implements Generation.
func (g *Func[R]) Generate(plugin *host.PluginContext, compiler *host.CompilerContext, root R) R {
	ctx := MakeContext(plugin, compiler, root)
	ctx.forUnit(g.name, g.id, g.universe)
	return g.f(ctx)
}

// Chain composes units left-to-right into a single Generation. Each unit
// receives the output of the previous one.
func Chain[R any](name string, universe Universe, units ...Generation[R]) Generation[R] {
	return NewFunc(name, universe, func(ctx *Context[R]) R {
		root := ctx.Root
		for _, u := range units {
			root = u.Generate(ctx.Plugin, ctx.Compiler, root)
		}
		return root
	})
}
