// Package irgen registers plugin callbacks against the IR.
//
// Each function in this package takes a callback for one node kind (or one
// family of kinds, such as Loop) and returns a unit the host runs during
// code generation. The unit walks the whole module bottom-up and offers the
// callback every node of that kind, after the node's children have been
// rewritten. The callback returns rewrite.Keep to leave the node alone or
// rewrite.Replace with a substitute.
//
// The substitute type is fixed per kind. Kinds that only ever sit in a slot
// of their own type (Field, Variable, TypeParameter, ...) must be replaced by
// the same type; everything else may be replaced by any node of its category.
// Family hooks such as Declaration can return a node that does not fit the
// concrete slot the original occupied; the traversal panics with an
// *errz.SlotError when that happens.
package irgen

import (
	"github.com/deepnoodle-ai/irmeta/ir"
	"github.com/deepnoodle-ai/irmeta/rewrite"
)

// Context is the context handed to IR callbacks.
type Context = rewrite.Context[*ir.ModuleFragment]

// Unit is a registered IR hook.
type Unit = rewrite.Unit[ir.Element, *ir.ModuleFragment]

func register[N ir.Element, S ir.Element](name string, f func(*Context, N) rewrite.Result[S]) *Unit {
	up := func(s S) ir.Element { return s }
	return rewrite.NewUnit("ir:"+name, ir.Schema, rewrite.Bind(f, up))
}

// Generation returns a unit that runs f once against the module instead of
// traversing it. f receives the context, whose Root is the module, and
// returns the module to hand to the next unit.
func Generation(name string, f func(ctx *Context) *ir.ModuleFragment) *rewrite.Func[*ir.ModuleFragment] {
	return rewrite.NewFunc(name, rewrite.IR, f)
}

// Chain composes units into one. Each unit receives the module produced by
// the previous one.
func Chain(name string, units ...rewrite.Generation[*ir.ModuleFragment]) rewrite.Generation[*ir.ModuleFragment] {
	return rewrite.Chain(name, rewrite.IR, units...)
}
