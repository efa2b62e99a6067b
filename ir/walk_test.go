package ir_test

import (
	"testing"

	"github.com/deepnoodle-ai/irmeta/ir"
	"github.com/deepnoodle-ai/irmeta/ir/irtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspect(t *testing.T) {
	root := irtest.ScenarioCall()

	var visited []string
	ir.Inspect(root, func(e ir.Element) bool {
		visited = append(visited, e.Kind().String())
		return true
	})

	expected := []string{"ModuleFragment", "File", "SimpleFunction", "BlockBody", "Call", "GetValue", "Const", "Const"}
	require.Equal(t, expected, visited)
}

func TestInspectPrune(t *testing.T) {
	root := irtest.ScenarioCall()

	var count int
	ir.Inspect(root, func(e ir.Element) bool {
		count++
		_, isCall := e.(*ir.Call)
		return !isCall
	})
	// Children of the call are skipped.
	assert.Equal(t, 5, count)
}

func TestPreorderStopsEarly(t *testing.T) {
	var kinds []ir.Kind
	for e := range ir.Preorder(irtest.Everything()) {
		kinds = append(kinds, e.Kind())
		if len(kinds) == 3 {
			break
		}
	}
	require.Equal(t, []ir.Kind{ir.KindModuleFragment, ir.KindFile, ir.KindClass}, kinds)
}

func TestCount(t *testing.T) {
	root := irtest.ScenarioCall()
	assert.Equal(t, 2, ir.Count(root, ir.KindConst))
	assert.Equal(t, 1, ir.Count(root, ir.KindCall))
	assert.Equal(t, 0, ir.Count(root, ir.KindWhen))
}

type kindCounter map[ir.Kind]int

func (c kindCounter) Visit(e ir.Element) ir.Visitor {
	c[e.Kind()]++
	return c
}

func TestWalk(t *testing.T) {
	counts := kindCounter{}
	ir.Walk(counts, irtest.Everything())
	assert.Equal(t, 1, counts[ir.KindModuleFragment])
	assert.Equal(t, 3, counts[ir.KindClass])
	assert.Equal(t, 1, counts[ir.KindWhen])
	assert.Equal(t, 1, counts[ir.KindElseBranch])
}
