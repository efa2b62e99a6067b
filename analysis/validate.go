package analysis

import (
	"github.com/deepnoodle-ai/irmeta/ast"
	"github.com/deepnoodle-ai/irmeta/host"
)

// Validate returns a unit that runs the validators over the module and
// reports each violation as an error diagnostic. The module is returned
// unchanged.
func Validate(validators ...ast.Validator) *Func {
	return Generation("analysis:Validate", func(ctx *Context) *ast.Module {
		for _, v := range validators {
			for _, e := range v.Validate(ctx.Root) {
				ctx.Report(host.Error, "%s", e.Error())
			}
		}
		return ctx.Root
	})
}
