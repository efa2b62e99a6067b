package plugin_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/deepnoodle-ai/irmeta/analysis"
	"github.com/deepnoodle-ai/irmeta/ast"
	"github.com/deepnoodle-ai/irmeta/ast/asttest"
	"github.com/deepnoodle-ai/irmeta/errz"
	"github.com/deepnoodle-ai/irmeta/host"
	"github.com/deepnoodle-ai/irmeta/ir"
	"github.com/deepnoodle-ai/irmeta/ir/irtest"
	"github.com/deepnoodle-ai/irmeta/irgen"
	"github.com/deepnoodle-ai/irmeta/plugin"
	"github.com/deepnoodle-ai/irmeta/rewrite"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// mapInts rewrites every Int constant with f.
func mapInts(f func(int64) int64) *irgen.Unit {
	return irgen.Const(func(_ *irgen.Context, c *ir.Const) rewrite.Result[ir.Expression] {
		v, ok := c.Value.(int64)
		if !ok {
			return rewrite.Keep[ir.Expression]()
		}
		return rewrite.Replace[ir.Expression](ir.IntConst(f(v)))
	})
}

func arguments(m *ir.ModuleFragment) []any {
	var values []any
	ir.Inspect(m, func(e ir.Element) bool {
		if c, ok := e.(*ir.Const); ok {
			values = append(values, c.Value)
		}
		return true
	})
	return values
}

func structured(t *testing.T, err error) []*errz.StructuredError {
	t.Helper()
	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	var out []*errz.StructuredError
	for _, e := range merr.Errors {
		var se *errz.StructuredError
		require.True(t, errors.As(e, &se), "unexpected error %v", e)
		out = append(out, se)
	}
	return out
}

func TestRegister(t *testing.T) {
	r := plugin.NewRunner(plugin.WithHostVersion(semver.MustParse("1.9.0")))
	err := r.Register(
		&plugin.Plugin{Name: "ok", Requires: ">= 1.8, < 2"},
		&plugin.Plugin{Name: "future", Requires: ">= 2.0"},
		&plugin.Plugin{Name: "garbled", Requires: "not a constraint"},
		&plugin.Plugin{Name: "ok"},
		&plugin.Plugin{Name: "any"},
	)
	errs := structured(t, err)
	require.Len(t, errs, 3)

	require.Equal(t, errz.ErrVersion, errs[0].Kind)
	require.Equal(t, "future", errs[0].Location.Plugin)
	require.Contains(t, errs[0].Error(), "host version 1.9.0 does not satisfy >= 2.0")

	require.Equal(t, errz.ErrVersion, errs[1].Kind)
	require.Equal(t, "garbled", errs[1].Location.Plugin)
	require.NotNil(t, errs[1].Cause)

	require.Equal(t, errz.ErrConfig, errs[2].Kind)
	require.Equal(t, "config error: plugin ok is already registered [ok]", errs[2].Error())

	var names []string
	for _, p := range r.Plugins() {
		names = append(names, p.Name)
	}
	require.Equal(t, []string{"ok", "any"}, names)
	_, ok := r.Plugin("future")
	require.False(t, ok)
}

func TestRegisterWithoutHostVersion(t *testing.T) {
	r := plugin.NewRunner()
	require.NoError(t, r.Register(&plugin.Plugin{Name: "p", Requires: ">= 99"}))
	require.Error(t, r.Register(&plugin.Plugin{Name: "q", Requires: "garbage"}))
	require.Nil(t, r.HostVersion())
}

func TestCheckUniverse(t *testing.T) {
	odd := rewrite.NewFunc("odd", rewrite.SyntaxTree, func(ctx *irgen.Context) *ir.ModuleFragment {
		return ctx.Root
	})
	p := &plugin.Plugin{Name: "p", IR: []rewrite.Generation[*ir.ModuleFragment]{odd}}
	errs := structured(t, p.Check(nil))
	require.Len(t, errs, 1)
	require.Equal(t, errz.ErrConfig, errs[0].Kind)
	require.Equal(t, errz.Location{Plugin: "p", Unit: "odd"}, errs[0].Location)

	errs = structured(t, (&plugin.Plugin{}).Check(nil))
	require.Equal(t, "config error: plugin has no name", errs[0].Error())
}

func TestRunIRThreadsInOrder(t *testing.T) {
	r := plugin.NewRunner()
	require.NoError(t, r.Register(
		&plugin.Plugin{Name: "inc", IR: []rewrite.Generation[*ir.ModuleFragment]{
			mapInts(func(v int64) int64 { return v + 1 }),
		}},
		&plugin.Plugin{Name: "double", IR: []rewrite.Generation[*ir.ModuleFragment]{
			mapInts(func(v int64) int64 { return v * 2 }),
			mapInts(func(v int64) int64 { return v * 10 }),
		}},
	))
	root := irtest.ScenarioCall()
	out, err := r.RunIR(context.Background(), root)
	require.NoError(t, err)
	require.Equal(t, 3, out.Units)
	require.Equal(t, []any{int64(40), int64(60)}, arguments(out.Root))
	require.Equal(t, []any{int64(1), int64(2)}, arguments(root))
	require.Empty(t, out.Messages)
}

func TestRunAggregatesErrors(t *testing.T) {
	reportAll := func(severity host.Severity) *irgen.Unit {
		return irgen.Const(func(ctx *irgen.Context, c *ir.Const) rewrite.Result[ir.Expression] {
			ctx.Report(severity, "constant %v", c.Value)
			return rewrite.Keep[ir.Expression]()
		})
	}
	ran := false
	last := irgen.Generation("last", func(ctx *irgen.Context) *ir.ModuleFragment {
		ran = true
		return ctx.Root
	})
	units := []rewrite.Generation[*ir.ModuleFragment]{reportAll(host.Warning), reportAll(host.Error), last}

	r := plugin.NewRunner()
	require.NoError(t, r.Register(&plugin.Plugin{Name: "lint", IR: units}))
	out, err := r.RunIR(context.Background(), irtest.ScenarioCall())

	errs := structured(t, err)
	require.Len(t, errs, 2)
	require.Equal(t, "phase error: constant 1 [lint/ir:Const]", errs[0].Error())
	require.Equal(t, errz.ErrPhase, errs[1].Kind)
	require.Len(t, out.Messages, 4)
	require.Equal(t, host.Warning, out.Messages[0].Severity)
	require.True(t, ran)
	require.Equal(t, 3, out.Units)

	ran = false
	r = plugin.NewRunner(plugin.WithFailFast())
	require.NoError(t, r.Register(&plugin.Plugin{Name: "lint", IR: units}))
	out, err = r.RunIR(context.Background(), irtest.ScenarioCall())
	require.Error(t, err)
	require.False(t, ran)
	require.Equal(t, 2, out.Units)
}

func TestRunCancelled(t *testing.T) {
	r := plugin.NewRunner()
	require.NoError(t, r.Register(&plugin.Plugin{Name: "p", IR: []rewrite.Generation[*ir.ModuleFragment]{
		mapInts(func(v int64) int64 { return v }),
	}}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	root := irtest.ScenarioCall()
	out, err := r.RunIR(ctx, root)
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 0, out.Units)
	require.Same(t, root, out.Root)
}

func TestRunAnalysis(t *testing.T) {
	var owners []string
	collect := analysis.TypeParameterListOwner(func(ctx *analysis.Context, o ast.TypeParameterListOwner) rewrite.Result[ast.Decl] {
		if ctx.Compiler.Configuration["verbose"] == true {
			owners = append(owners, o.Name())
		}
		return rewrite.Keep[ast.Decl]()
	})
	counted := 0
	count := analysis.Generation("count", func(ctx *analysis.Context) *ast.Module {
		ctx.Plugin.Data["seen"] = len(owners)
		counted = len(owners)
		return ctx.Root
	})
	p := &plugin.Plugin{
		Name:     "owners",
		Version:  semver.MustParse("0.3.0"),
		Analysis: []rewrite.Generation[*ast.Module]{collect, count},
		Data:     map[string]any{},
	}
	r := plugin.NewRunner(plugin.WithConfigValue("verbose", true))
	require.NoError(t, r.Register(p))

	root := asttest.Sample()
	out, err := r.RunAnalysis(context.Background(), root)
	require.NoError(t, err)
	require.Same(t, root, out.Root)
	require.Equal(t, 7, counted)
	require.Equal(t, 7, p.Data["seen"])
	require.Equal(t, "owners@0.3.0", p.String())
}

func TestRunLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	r := plugin.NewRunner(plugin.WithLogger(logger), plugin.WithConfiguration(map[string]any{"a": 1}))
	require.NoError(t, r.Register(&plugin.Plugin{Name: "p", IR: []rewrite.Generation[*ir.ModuleFragment]{
		mapInts(func(v int64) int64 { return v }),
	}}))
	_, err := r.RunIR(context.Background(), irtest.ScenarioCall())
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, `"message":"plugin registered"`)
	require.Contains(t, out, `"message":"unit started"`)
	require.Contains(t, out, `"message":"rewrite complete"`)
	require.Contains(t, out, `"unit":"ir:Const"`)
	require.Contains(t, out, `"message":"phase complete"`)
}
