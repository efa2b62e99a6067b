// Package host defines the handles a host compiler passes to generation
// units. The rewrite engine threads them into every context unchanged and
// never inspects them.
package host

import (
	"fmt"
	"sync"

	"github.com/Masterminds/semver/v3"
	"github.com/rs/zerolog"
)

// Severity classifies a diagnostic reported by a plugin.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Message is a single diagnostic.
type Message struct {
	Severity Severity
	Source   string // unit that reported the message
	Text     string
}

func (m Message) String() string {
	if m.Source == "" {
		return fmt.Sprintf("%s: %s", m.Severity, m.Text)
	}
	return fmt.Sprintf("%s: %s: %s", m.Severity, m.Source, m.Text)
}

// MessageCollector gathers diagnostics reported during a phase. It is safe
// for concurrent use so independent units may share one collector.
type MessageCollector struct {
	mu       sync.Mutex
	messages []Message
}

// Report records a diagnostic.
func (c *MessageCollector) Report(m Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, m)
}

// Messages returns a copy of every recorded diagnostic in report order.
func (c *MessageCollector) Messages() []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// HasErrors returns true if any error-severity diagnostic was recorded.
func (c *MessageCollector) HasErrors() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, m := range c.messages {
		if m.Severity == Error {
			return true
		}
	}
	return false
}

// Since returns the diagnostics recorded after the first n.
func (c *MessageCollector) Since(n int) []Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n >= len(c.messages) {
		return nil
	}
	out := make([]Message, len(c.messages)-n)
	copy(out, c.messages[n:])
	return out
}

// Len returns the number of recorded diagnostics.
func (c *MessageCollector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages)
}

// CompilerContext is the host compiler's state for one phase invocation.
type CompilerContext struct {
	// Version of the host compiler; plugins may constrain it.
	Version *semver.Version
	// Messages receives diagnostics reported from callbacks.
	Messages *MessageCollector
	// Configuration holds host-defined key/value settings.
	Configuration map[string]any
	// Logger is the host's logger. Units derive per-unit loggers from it.
	Logger zerolog.Logger
}

// NewCompilerContext returns a context for the given host version with an
// empty message collector and a disabled logger.
func NewCompilerContext(version *semver.Version) *CompilerContext {
	return &CompilerContext{
		Version:       version,
		Messages:      &MessageCollector{},
		Configuration: map[string]any{},
		Logger:        zerolog.Nop(),
	}
}

// PluginContext identifies the plugin on whose behalf a unit runs.
type PluginContext struct {
	Name    string
	Version *semver.Version
	// Data is opaque plugin-owned state shared by the plugin's units.
	Data map[string]any
}
