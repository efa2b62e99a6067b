package dump_test

import (
	"strings"
	"testing"

	"github.com/deepnoodle-ai/irmeta/dump"
	"github.com/deepnoodle-ai/irmeta/ir"
	"github.com/deepnoodle-ai/irmeta/ir/irtest"
	"github.com/stretchr/testify/require"
)

func TestTree(t *testing.T) {
	expected := strings.Join([]string{
		"MODULE_FRAGMENT name:scenario",
		"└─ Files[0]: FILE path:call.kt",
		"   └─ Declarations[0]: SIMPLE_FUNCTION name:f returnType:Int",
		"      └─ Body: BLOCK_BODY",
		"         └─ Statements[0]: CALL type:Int symbol:plus",
		"            ├─ DispatchReceiver: GET_VALUE type:Int symbol:x",
		"            ├─ Arguments[0]: CONST type:Int constKind:Int value:1",
		"            └─ Arguments[1]: CONST type:Int constKind:Int value:2",
	}, "\n") + "\n"
	require.Equal(t, expected, dump.Tree(irtest.ScenarioCall()))
}

func TestTreeStyled(t *testing.T) {
	out := dump.TreeStyled(ir.IntConst(1), func(tag string) string { return "[" + tag + "]" })
	require.Equal(t, "[CONST] type:Int constKind:Int value:1\n", out)
}

func TestTreeDoWhileOrder(t *testing.T) {
	out := dump.Tree(&ir.DoWhileLoop{
		Body:      &ir.GetValue{Symbol: "body"},
		Condition: &ir.GetValue{Symbol: "cond"},
	})
	require.Equal(t, "DO_WHILE_LOOP\n├─ Body: GET_VALUE symbol:body\n└─ Condition: GET_VALUE symbol:cond\n", out)
}

func TestTreeConstLiterals(t *testing.T) {
	tests := []struct {
		c    *ir.Const
		want string
	}{
		{ir.StringConst("a b"), `CONST type:String constKind:String value:"a b"`},
		{ir.NullConst(), "CONST type:Nothing?"},
		{ir.BoolConst(false), "CONST type:Boolean constKind:Boolean value:false"},
		{&ir.Const{ConstKind: ir.ConstLong, Value: int64(3)}, "CONST constKind:Long value:3L"},
		{&ir.Const{ConstKind: ir.ConstChar, Value: 'x'}, "CONST constKind:Char value:'x'"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want+"\n", dump.Tree(tt.c))
	}
}

func TestReadable(t *testing.T) {
	expected := "// MODULE: scenario\n// FILE: call.kt\n\nfun f(): Int {\n    x.plus(1, 2)\n}\n"
	require.Equal(t, expected, dump.Readable(irtest.ScenarioCall(), dump.Options{}))
}

func TestDeterministic(t *testing.T) {
	opts := dump.Options{PrintRegionsPerFile: true, ShowImplicitCasts: true}
	first := irtest.Everything()
	second := irtest.Everything()

	require.Equal(t, dump.Tree(first), dump.Tree(first))
	require.Equal(t, dump.Tree(first), dump.Tree(second))
	require.Equal(t, dump.Readable(first, opts), dump.Readable(second, opts))

	data, err := ir.Marshal(first)
	require.NoError(t, err)
	decoded, err := ir.UnmarshalModule(data)
	require.NoError(t, err)
	require.Equal(t, dump.Tree(first), dump.Tree(decoded))
}

func TestEverythingRenders(t *testing.T) {
	root := irtest.Everything()
	tree := dump.Tree(root)
	for _, k := range ir.Kinds() {
		require.Contains(t, tree, k.Tag())
	}
	out := dump.Readable(root, dump.Options{})
	require.Contains(t, out, "class Box<T : Any> : Any {")
	require.Contains(t, out, "enum class Color {")
	require.Contains(t, out, "typealias Boxes<E> = List<Box>")
	require.Contains(t, out, "outer@ while (flag) {")
	require.Contains(t, out, "if (x is Int) kotlin.Unit else Color.RED")
	require.Contains(t, out, "listOf([4, *arr])")
}

func TestReadableOptions(t *testing.T) {
	cast := &ir.TypeOperatorCall{
		Operator:    ir.OpImplicitCast,
		Argument:    &ir.GetValue{Symbol: "x"},
		TypeOperand: ir.TypeInt,
	}
	require.Equal(t, "x\n", dump.Readable(cast, dump.Options{}))
	require.Equal(t, "x /*as Int */\n", dump.Readable(cast, dump.Options{ShowImplicitCasts: true}))

	this := &ir.GetValue{Symbol: "<this>"}
	require.Equal(t, "this\n", dump.Readable(this, dump.Options{}))
	require.Equal(t, "<this>\n", dump.Readable(this, dump.Options{PrintSyntheticNames: true}))

	bad := &ir.ErrorExpression{Type: ir.TypeAny, Description: "oops"}
	require.Equal(t, "error(\"oops\")\n", dump.Readable(bad, dump.Options{}))
	require.Equal(t, "error(\"oops\") /* Any */\n", dump.Readable(bad, dump.Options{VerboseErrorTypes: true}))

	file := &ir.File{Path: "a.kt"}
	require.Equal(t, "// FILE: a.kt\n", dump.Readable(file, dump.Options{}))
	require.Equal(t, "// region file: a.kt\n// endregion\n", dump.Readable(file, dump.Options{PrintRegionsPerFile: true}))

	outer := &ir.Class{Name: "Outer", Declarations: []ir.Declaration{
		&ir.Class{Name: "Inner", TypeParameters: []*ir.TypeParameter{{Name: "T"}}},
	}}
	require.Equal(t, "class Outer {\n    class Inner { }\n}\n", dump.Readable(outer, dump.Options{}))
	require.Equal(t, "class Outer {\n    class Inner<T> { }\n}\n",
		dump.Readable(outer, dump.Options{PrintTypeParametersInAssociatedObjects: true}))
}
