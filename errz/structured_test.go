package errz

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorKindString(t *testing.T) {
	require.Equal(t, "version error", ErrVersion.String())
	require.Equal(t, "phase error", ErrPhase.String())
	require.Equal(t, "decode error", ErrDecode.String())
	require.Equal(t, "slot error", ErrSlot.String())
	require.Equal(t, "config error", ErrConfig.String())
	require.Equal(t, "error", ErrorKind(99).String())
}

func TestStructuredError(t *testing.T) {
	err := New(ErrPhase, "unit failed")
	require.Equal(t, "phase error: unit failed", err.Error())

	err = Newf(ErrVersion, "host %s", "1.2.0").WithLocation(Location{Plugin: "refined", Unit: "irCall"})
	require.Equal(t, "version error: host 1.2.0 [refined/irCall]", err.Error())
}

func TestStructuredErrorUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := New(ErrDecode, "bad tree").WithCause(cause)
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.FriendlyErrorMessage(), "caused by: boom")
}

func TestLocationString(t *testing.T) {
	require.Equal(t, "", Location{}.String())
	require.Equal(t, "main.kt", Location{File: "main.kt"}.String())
	require.Equal(t, "p/u (main.kt)", Location{Plugin: "p", Unit: "u", File: "main.kt"}.String())
}

func TestSlotError(t *testing.T) {
	err := &SlotError{Parent: "Class", Slot: "TypeParameters", Want: "*ir.TypeParameter", Got: "*ir.Class"}
	require.Equal(t, "slot error: Class.TypeParameters requires *ir.TypeParameter, got *ir.Class", err.Error())
	s := err.Structured()
	require.Equal(t, ErrSlot, s.Kind)
	require.Equal(t, []string{"Class", "TypeParameters"}, s.Trail)
}
