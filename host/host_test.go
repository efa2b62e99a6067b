package host

import (
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/require"
)

func TestMessageCollector(t *testing.T) {
	var c MessageCollector
	require.False(t, c.HasErrors())
	require.Equal(t, 0, c.Len())

	c.Report(Message{Severity: Warning, Source: "irCall", Text: "deprecated"})
	require.False(t, c.HasErrors())
	c.Report(Message{Severity: Error, Text: "refinement violated"})
	require.True(t, c.HasErrors())

	msgs := c.Messages()
	require.Len(t, msgs, 2)
	require.Equal(t, "warning: irCall: deprecated", msgs[0].String())
	require.Equal(t, "error: refinement violated", msgs[1].String())

	require.Len(t, c.Since(1), 1)
	require.Nil(t, c.Since(2))
}

func TestSeverityString(t *testing.T) {
	require.Equal(t, "info", Info.String())
	require.Equal(t, "severity(7)", Severity(7).String())
}

func TestNewCompilerContext(t *testing.T) {
	ctx := NewCompilerContext(semver.MustParse("1.9.0"))
	require.Equal(t, "1.9.0", ctx.Version.String())
	require.NotNil(t, ctx.Messages)
	require.NotNil(t, ctx.Configuration)
}
