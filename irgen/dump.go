package irgen

import (
	"io"

	"github.com/deepnoodle-ai/irmeta/dump"
	"github.com/deepnoodle-ai/irmeta/host"
	"github.com/deepnoodle-ai/irmeta/ir"
	"github.com/deepnoodle-ai/irmeta/rewrite"
)

// Dump returns a unit that writes dump.Tree of the module to w and passes the
// module on unchanged.
func Dump(w io.Writer) *rewrite.Func[*ir.ModuleFragment] {
	return Generation("ir:Dump", func(ctx *Context) *ir.ModuleFragment {
		write(ctx, w, dump.Tree(ctx.Root))
		return ctx.Root
	})
}

// DumpReadable returns a unit that writes dump.Readable of the module to w and
// passes the module on unchanged.
func DumpReadable(w io.Writer, opts dump.Options) *rewrite.Func[*ir.ModuleFragment] {
	return Generation("ir:DumpReadable", func(ctx *Context) *ir.ModuleFragment {
		write(ctx, w, dump.Readable(ctx.Root, opts))
		return ctx.Root
	})
}

func write(ctx *Context, w io.Writer, text string) {
	if _, err := io.WriteString(w, text); err != nil {
		ctx.Logger.Error().Err(err).Msg("failed to write dump")
		ctx.Report(host.Error, "writing dump: %v", err)
	}
}
