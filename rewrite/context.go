package rewrite

import (
	"fmt"

	"github.com/deepnoodle-ai/irmeta/host"
	"github.com/gofrs/uuid"
	"github.com/rs/zerolog"
)

// Universe identifies one of the two disjoint node families.
type Universe int

const (
	// SyntaxTree is the analysis-phase syntax tree (package ast).
	SyntaxTree Universe = iota
	// IR is the codegen-phase intermediate representation (package ir).
	IR
)

func (u Universe) String() string {
	switch u {
	case SyntaxTree:
		return "syntax"
	case IR:
		return "ir"
	default:
		return fmt.Sprintf("universe(%d)", int(u))
	}
}

// Context is the bundle of host state handed to every callback of one
// traversal. A unit builds it once per invocation and every callback of that
// traversal observes the same pointer.
type Context[R any] struct {
	// Plugin is the plugin on whose behalf the unit runs.
	Plugin *host.PluginContext
	// Compiler is the host compiler state for the current phase.
	Compiler *host.CompilerContext
	// Root is the tree root the traversal started from, before any rewrite.
	Root R
	// Logger is tagged with the unit name and id.
	Logger zerolog.Logger

	unitName string
	unitID   uuid.UUID
}

// MakeContext captures the host handles and the root. It has no side effects.
func MakeContext[R any](plugin *host.PluginContext, compiler *host.CompilerContext, root R) *Context[R] {
	ctx := &Context[R]{
		Plugin:   plugin,
		Compiler: compiler,
		Root:     root,
		Logger:   zerolog.Nop(),
	}
	if compiler != nil {
		ctx.Logger = compiler.Logger
	}
	return ctx
}

// UnitName returns the name of the unit running the traversal.
func (c *Context[R]) UnitName() string {
	return c.unitName
}

// UnitID returns the id of the unit running the traversal.
func (c *Context[R]) UnitID() uuid.UUID {
	return c.unitID
}

// Report records a diagnostic attributed to the current unit.
func (c *Context[R]) Report(severity host.Severity, format string, args ...any) {
	if c.Compiler == nil || c.Compiler.Messages == nil {
		return
	}
	c.Compiler.Messages.Report(host.Message{
		Severity: severity,
		Source:   c.unitName,
		Text:     fmt.Sprintf(format, args...),
	})
}

func (c *Context[R]) forUnit(name string, id uuid.UUID, universe Universe) {
	c.unitName = name
	c.unitID = id
	c.Logger = c.Logger.With().
		Str("unit", name).
		Str("unit_id", id.String()).
		Stringer("universe", universe).
		Logger()
}
