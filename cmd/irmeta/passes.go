package main

import (
	"sort"

	"github.com/deepnoodle-ai/irmeta/host"
	"github.com/deepnoodle-ai/irmeta/ir"
	"github.com/deepnoodle-ai/irmeta/irgen"
	"github.com/deepnoodle-ai/irmeta/plugin"
	"github.com/deepnoodle-ai/irmeta/rewrite"
)

// pass is a built-in plugin the rewrite command can run.
type pass struct {
	help  string
	build func() *plugin.Plugin
}

var passes = map[string]pass{
	"fold": {
		help: "fold integer plus, minus and times calls on constants",
		build: func() *plugin.Plugin {
			return &plugin.Plugin{
				Name:     "fold",
				Requires: ">= 1.0",
				IR:       []rewrite.Generation[*ir.ModuleFragment]{irgen.Call(foldCall)},
			}
		},
	},
	"strip-casts": {
		help: "remove implicit casts and coercions to Unit",
		build: func() *plugin.Plugin {
			return &plugin.Plugin{
				Name:     "strip-casts",
				Requires: ">= 1.0",
				IR:       []rewrite.Generation[*ir.ModuleFragment]{irgen.TypeOperatorCall(stripImplicit)},
			}
		},
	},
	"check-errors": {
		help: "report every error expression and declaration as an error",
		build: func() *plugin.Plugin {
			return &plugin.Plugin{
				Name: "check-errors",
				IR: []rewrite.Generation[*ir.ModuleFragment]{
					irgen.Erroneous(func(ctx *irgen.Context, e ir.Erroneous) rewrite.Result[ir.Expression] {
						switch x := e.(type) {
						case *ir.ErrorExpression:
							ctx.Report(host.Error, "error expression: %s", x.Description)
						case *ir.ErrorCallExpression:
							ctx.Report(host.Error, "error call: %s", x.Description)
						}
						return rewrite.Keep[ir.Expression]()
					}),
					irgen.ErrorDeclaration(func(ctx *irgen.Context, _ *ir.ErrorDeclaration) rewrite.Result[ir.Declaration] {
						ctx.Report(host.Error, "error declaration")
						return rewrite.Keep[ir.Declaration]()
					}),
				},
			}
		},
	},
	"stats": {
		help: "report the number of nodes of each kind",
		build: func() *plugin.Plugin {
			return &plugin.Plugin{
				Name: "stats",
				IR: []rewrite.Generation[*ir.ModuleFragment]{
					irgen.Generation("stats", func(ctx *irgen.Context) *ir.ModuleFragment {
						ctx.Report(host.Info, "%s", kindSummary(ctx.Root))
						return ctx.Root
					}),
				},
			}
		},
	},
}

func passNames() []string {
	names := make([]string, 0, len(passes))
	for name := range passes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var arithmetic = map[string]func(a, b int64) int64{
	"plus":  func(a, b int64) int64 { return a + b },
	"minus": func(a, b int64) int64 { return a - b },
	"times": func(a, b int64) int64 { return a * b },
}

func intValue(e ir.Expression) (int64, bool) {
	c, ok := e.(*ir.Const)
	if !ok || c.ConstKind != ir.ConstInt {
		return 0, false
	}
	v, ok := c.Value.(int64)
	return v, ok
}

// foldCall replaces 1.plus(2) with 3. Children are folded first, so nested
// arithmetic collapses in a single traversal. Int is 32 bits wide, so results
// wrap on overflow.
func foldCall(_ *irgen.Context, call *ir.Call) rewrite.Result[ir.Expression] {
	op, ok := arithmetic[call.Symbol]
	if !ok || len(call.Arguments) != 1 || call.ExtensionReceiver != nil {
		return rewrite.Keep[ir.Expression]()
	}
	a, ok := intValue(call.DispatchReceiver)
	if !ok {
		return rewrite.Keep[ir.Expression]()
	}
	b, ok := intValue(call.Arguments[0])
	if !ok {
		return rewrite.Keep[ir.Expression]()
	}
	folded := ir.IntConst(int64(int32(op(a, b))))
	folded.Range = call.Range
	return rewrite.Replace[ir.Expression](folded)
}

func stripImplicit(_ *irgen.Context, call *ir.TypeOperatorCall) rewrite.Result[ir.Expression] {
	if !call.Operator.Implicit() || call.Argument == nil {
		return rewrite.Keep[ir.Expression]()
	}
	return rewrite.Replace(call.Argument)
}
