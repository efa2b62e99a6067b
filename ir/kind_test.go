package ir_test

import (
	"testing"

	"github.com/deepnoodle-ai/irmeta/ir"
	"github.com/stretchr/testify/require"
)

func TestKindNames(t *testing.T) {
	require.Equal(t, "WhileLoop", ir.KindWhileLoop.String())
	require.Equal(t, "WHILE_LOOP", ir.KindWhileLoop.Tag())
	require.Equal(t, "LOCAL_DELEGATED_PROPERTY_REFERENCE", ir.KindLocalDelegatedPropertyReference.Tag())
	require.Equal(t, "INVALID", ir.KindCount.Tag())
	require.Equal(t, ir.KindInvalid.String(), ir.Kind(-1).String())
}

func TestKindOf(t *testing.T) {
	for _, k := range ir.Kinds() {
		got, ok := ir.KindOf(k.String())
		require.True(t, ok, k.String())
		require.Equal(t, k, got)
	}
	_, ok := ir.KindOf("Lambda")
	require.False(t, ok)
	_, ok = ir.KindOf(ir.KindInvalid.String())
	require.False(t, ok)
}

func TestKindsAreDistinct(t *testing.T) {
	kinds := ir.Kinds()
	require.Len(t, kinds, int(ir.KindCount)-1)
	tags := map[string]bool{}
	for _, k := range kinds {
		require.False(t, tags[k.Tag()], "duplicate tag %s", k.Tag())
		tags[k.Tag()] = true
	}
}
