package ir_test

import (
	"errors"
	"testing"

	"github.com/deepnoodle-ai/irmeta/errz"
	"github.com/deepnoodle-ai/irmeta/ir"
	"github.com/deepnoodle-ai/irmeta/ir/irtest"
	"github.com/stretchr/testify/require"
)

func TestCodecRoundTrip(t *testing.T) {
	root := irtest.Everything()

	data, err := ir.Marshal(root)
	require.NoError(t, err)

	decoded, err := ir.UnmarshalModule(data)
	require.NoError(t, err)
	require.Equal(t, root, decoded)

	again, err := ir.Marshal(decoded)
	require.NoError(t, err)
	require.Equal(t, string(data), string(again))
}

func TestMarshalShape(t *testing.T) {
	data, err := ir.Marshal(&ir.Call{Symbol: "f", Arguments: []ir.Expression{ir.IntConst(1)}})
	require.NoError(t, err)
	require.JSONEq(t, `{
		"kind": "Call",
		"Symbol": "f",
		"Arguments": [{"kind": "Const", "Type": {"name": "Int"}, "ConstKind": 3, "Value": 1}]
	}`, string(data))
}

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		msg   string
	}{
		{"not json", `{`, "invalid IR document"},
		{"no kind", `{"Name": "m"}`, "invalid IR document"},
		{"unknown kind", `{"kind": "Lambda"}`, "invalid IR document"},
		{"wrong slot", `{"kind": "Class", "TypeParameters": [{"kind": "Const"}]}`, "invalid IR document"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ir.Unmarshal([]byte(tt.input))
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.msg)
			var serr *errz.StructuredError
			require.True(t, errors.As(err, &serr))
			require.Equal(t, errz.ErrDecode, serr.Kind)
		})
	}
}

func TestUnmarshalModuleRejectsOtherRoots(t *testing.T) {
	_, err := ir.UnmarshalModule([]byte(`{"kind": "File", "Path": "a.kt"}`))
	require.EqualError(t, err, "decode error: root is File, want ModuleFragment")
}

func TestUnmarshalConstValues(t *testing.T) {
	e, err := ir.Unmarshal([]byte(`{"kind": "Const", "ConstKind": 4, "Value": 9007199254740993}`))
	require.NoError(t, err)
	require.Equal(t, int64(9007199254740993), e.(*ir.Const).Value)

	e, err = ir.Unmarshal([]byte(`{"kind": "Const", "ConstKind": 7, "Value": 1.5}`))
	require.NoError(t, err)
	require.Equal(t, 1.5, e.(*ir.Const).Value)
}
