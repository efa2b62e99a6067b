package main

import (
	"bytes"
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/deepnoodle-ai/irmeta/dump"
	"github.com/deepnoodle-ai/irmeta/errz"
	"github.com/deepnoodle-ai/irmeta/ir"
	"github.com/deepnoodle-ai/irmeta/ir/irtest"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func arithmeticModule() *ir.ModuleFragment {
	return ir.NewModule("m", "a.kt", ir.NewFunction("f", ir.TypeInt,
		&ir.Call{
			Type:             ir.TypeInt,
			Symbol:           "plus",
			DispatchReceiver: ir.IntConst(1),
			Arguments: []ir.Expression{&ir.Call{
				Type:             ir.TypeInt,
				Symbol:           "times",
				DispatchReceiver: ir.IntConst(2),
				Arguments:        []ir.Expression{ir.IntConst(3)},
			}},
		},
	))
}

func writeModule(t *testing.T, m *ir.ModuleFragment) string {
	t.Helper()
	data, err := ir.Marshal(m)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "module.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	viper.Reset()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--no-color"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRender(t *testing.T) {
	m := irtest.ScenarioCall()

	tree, err := render(m, "tree", dump.Options{}, false)
	require.NoError(t, err)
	require.Equal(t, dump.Tree(m), tree)

	readable, err := render(m, "readable", dump.Options{}, false)
	require.NoError(t, err)
	require.Equal(t, dump.Readable(m, dump.Options{}), readable)

	js, err := render(m, "json", dump.Options{}, false)
	require.NoError(t, err)
	decoded, err := ir.UnmarshalModule([]byte(js))
	require.NoError(t, err)
	require.Equal(t, m, decoded)

	_, err = render(m, "yaml", dump.Options{}, false)
	require.EqualError(t, err, "config error: unknown output format: yaml")
}

func TestReadModule(t *testing.T) {
	path := writeModule(t, irtest.ScenarioCall())
	m, err := readModule(path, nil)
	require.NoError(t, err)
	require.Equal(t, irtest.ScenarioCall(), m)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	m, err = readModule("-", bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, "scenario", m.Name)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"kind":"File"}`), 0o644))
	_, err = readModule(bad, nil)
	var se *errz.StructuredError
	require.ErrorAs(t, err, &se)
	require.Equal(t, errz.ErrDecode, se.Kind)
	require.Equal(t, bad, se.Location.File)
}

func TestPasses(t *testing.T) {
	runner, err := newRunner(zerolog.Nop(), defaultHostVersion, []string{"fold", "stats"})
	require.NoError(t, err)
	result, err := runner.RunIR(context.Background(), arithmeticModule())
	require.NoError(t, err)
	require.Equal(t, "// MODULE: m\n// FILE: a.kt\n\nfun f(): Int {\n    7\n}\n",
		dump.Readable(result.Root, dump.Options{}))
	require.Len(t, result.Messages, 1)
	require.Equal(t, "info: stats: MODULE_FRAGMENT=1 FILE=1 SIMPLE_FUNCTION=1 BLOCK_BODY=1 CONST=1",
		result.Messages[0].String())

	_, err = newRunner(zerolog.Nop(), defaultHostVersion, []string{"nope"})
	require.EqualError(t, err, `config error: unknown pass "nope"`)

	_, err = newRunner(zerolog.Nop(), "0.9.0", []string{"fold"})
	require.ErrorContains(t, err, "host version 0.9.0 does not satisfy >= 1.0")

	_, err = newRunner(zerolog.Nop(), "latest", nil)
	require.ErrorContains(t, err, `invalid host version "latest"`)
}

func TestFoldWrapsInt(t *testing.T) {
	tests := []struct {
		symbol string
		a, b   int64
		want   int64
	}{
		{"plus", 2, 3, 5},
		{"plus", math.MaxInt32, 1, math.MinInt32},
		{"minus", math.MinInt32, 1, math.MaxInt32},
		{"times", 65536, 65536, 0},
		{"times", -4, 5, -20},
	}
	for _, tt := range tests {
		call := &ir.Call{
			Type:             ir.TypeInt,
			Symbol:           tt.symbol,
			DispatchReceiver: ir.IntConst(tt.a),
			Arguments:        []ir.Expression{ir.IntConst(tt.b)},
		}
		folded, ok := foldCall(nil, call).Get()
		require.True(t, ok)
		c := folded.(*ir.Const)
		require.Equal(t, ir.ConstInt, c.ConstKind)
		require.Equal(t, tt.want, c.Value, "%d %s %d", tt.a, tt.symbol, tt.b)
	}
}

func TestStripCasts(t *testing.T) {
	m := ir.NewModule("m", "a.kt", ir.NewFunction("f", ir.TypeInt,
		&ir.TypeOperatorCall{
			Type:        ir.TypeInt,
			Operator:    ir.OpImplicitCast,
			TypeOperand: ir.TypeInt,
			Argument:    &ir.GetValue{Type: ir.TypeAny, Symbol: "x"},
		},
	))
	runner, err := newRunner(zerolog.Nop(), defaultHostVersion, []string{"strip-casts"})
	require.NoError(t, err)
	result, err := runner.RunIR(context.Background(), m)
	require.NoError(t, err)
	require.Equal(t, 0, ir.Count(result.Root, ir.KindTypeOperatorCall))
	require.Equal(t, 1, ir.Count(m, ir.KindTypeOperatorCall))
}

func TestCheckErrors(t *testing.T) {
	m := ir.NewModule("m", "a.kt",
		&ir.ErrorDeclaration{},
		ir.NewFunction("f", ir.TypeInt, &ir.ErrorExpression{Type: ir.TypeAny, Description: "unresolved x"}),
	)
	runner, err := newRunner(zerolog.Nop(), defaultHostVersion, []string{"check-errors"})
	require.NoError(t, err)
	result, err := runner.RunIR(context.Background(), m)
	require.Error(t, err)
	require.Contains(t, err.Error(), "error expression: unresolved x")
	require.Contains(t, err.Error(), "error declaration")
	require.Len(t, result.Messages, 2)

	var buf bytes.Buffer
	printMessages(&buf, result.Messages)
	require.Equal(t, "error: ir:Erroneous: error expression: unresolved x\nerror: ir:ErrorDeclaration: error declaration\n", buf.String())
}

func TestDumpCommand(t *testing.T) {
	path := writeModule(t, irtest.ScenarioCall())

	out, err := execute(t, "", "dump", path)
	require.NoError(t, err)
	require.Equal(t, dump.Tree(irtest.ScenarioCall()), out)

	out, err = execute(t, "", "dump", "-o", "readable", path)
	require.NoError(t, err)
	require.Contains(t, out, "x.plus(1, 2)")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out, err = execute(t, string(data), "dump", "-o", "json")
	require.NoError(t, err)
	require.Contains(t, out, `"kind": "ModuleFragment"`)

	_, err = execute(t, string(data), "dump", "--watch")
	require.EqualError(t, err, "config error: --watch requires a file argument")
}

func TestRewriteCommand(t *testing.T) {
	path := writeModule(t, arithmeticModule())
	out, err := execute(t, "", "rewrite", "-p", "fold", "-o", "tree", path)
	require.NoError(t, err)
	require.Contains(t, out, "CONST type:Int constKind:Int value:7")
	require.NotContains(t, out, "CALL")

	cast := ir.NewModule("m", "a.kt", ir.NewFunction("f", ir.TypeInt,
		&ir.TypeOperatorCall{
			Type:        ir.TypeInt,
			Operator:    ir.OpImplicitCast,
			TypeOperand: ir.TypeInt,
			Argument:    &ir.GetValue{Type: ir.TypeAny, Symbol: "x"},
		},
	))
	out, err = execute(t, "", "rewrite", "-p", "fold", "-o", "readable", "--implicit-casts", writeModule(t, cast))
	require.NoError(t, err)
	require.Contains(t, out, "x /*as Int */")

	out, err = execute(t, "", "rewrite", "--list")
	require.NoError(t, err)
	require.Contains(t, out, "fold")
	require.Contains(t, out, "strip-casts")
}

func TestConfigFile(t *testing.T) {
	config := filepath.Join(t.TempDir(), "irmeta.yaml")
	require.NoError(t, os.WriteFile(config, []byte("host-version: 0.5.0\n"), 0o644))
	path := writeModule(t, arithmeticModule())
	_, err := execute(t, "", "--config", config, "rewrite", "-p", "fold", path)
	require.ErrorContains(t, err, "does not satisfy")

	_, err = execute(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "kinds")
	require.ErrorContains(t, err, "reading config")
}

func TestKindsCommand(t *testing.T) {
	out, err := execute(t, "", "kinds")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(ir.Kinds()))
	require.Contains(t, out, "MODULE_FRAGMENT")

	out, err = execute(t, "", "kinds", "--syntax")
	require.NoError(t, err)
	require.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 19)

	out, err = execute(t, "", "version", "-o", "json")
	require.NoError(t, err)
	require.Contains(t, out, `"version": "dev"`)
}

func TestUseColorOnlyForTerminals(t *testing.T) {
	require.False(t, useColor(&bytes.Buffer{}))
}

func TestWatchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var changes atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- watchFile(ctx, path, zerolog.Nop(), func() { changes.Add(1) })
	}()

	require.Eventually(t, func() bool {
		_ = os.WriteFile(path, []byte("{}"), 0o644)
		return changes.Load() > 0
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
