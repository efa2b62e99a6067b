// Package analysis registers plugin callbacks against the syntax tree.
//
// It mirrors package irgen for the analysis phase: each function takes a
// callback for one node kind and returns a unit that rewrites the module
// bottom-up, offering the callback every node of that kind.
package analysis

import (
	"github.com/deepnoodle-ai/irmeta/ast"
	"github.com/deepnoodle-ai/irmeta/rewrite"
)

// Context is the context handed to syntax tree callbacks.
type Context = rewrite.Context[*ast.Module]

// Unit is a registered syntax tree hook.
type Unit = rewrite.Unit[ast.Node, *ast.Module]

func register[N ast.Node, S ast.Node](name string, f func(*Context, N) rewrite.Result[S]) *Unit {
	up := func(s S) ast.Node { return s }
	return rewrite.NewUnit("analysis:"+name, ast.Schema, rewrite.Bind(f, up))
}

// Func is a unit that runs once against the module instead of traversing it.
type Func = rewrite.Func[*ast.Module]

// Generation returns a unit that runs f once against the module.
func Generation(name string, f func(ctx *Context) *ast.Module) *Func {
	return rewrite.NewFunc(name, rewrite.SyntaxTree, f)
}

// Chain composes units into one. Each unit receives the module produced by
// the previous one.
func Chain(name string, units ...rewrite.Generation[*ast.Module]) rewrite.Generation[*ast.Module] {
	return rewrite.Chain(name, rewrite.SyntaxTree, units...)
}
