// Package errz defines the structured errors reported by the rewrite engine,
// the plugin runner and the CLI.
package errz

import (
	"bytes"
	"fmt"
	"strings"
)

// ErrorKind represents the category of an error.
type ErrorKind int

const (
	// ErrVersion indicates a plugin is incompatible with the host compiler.
	ErrVersion ErrorKind = iota
	// ErrPhase indicates a generation unit reported error diagnostics.
	ErrPhase
	// ErrDecode indicates a tree could not be decoded.
	ErrDecode
	// ErrSlot indicates a replacement node does not fit the slot of its parent.
	ErrSlot
	// ErrConfig indicates invalid runner or CLI configuration.
	ErrConfig
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrVersion:
		return "version error"
	case ErrPhase:
		return "phase error"
	case ErrDecode:
		return "decode error"
	case ErrSlot:
		return "slot error"
	case ErrConfig:
		return "config error"
	default:
		return "error"
	}
}

// Location identifies where in the pipeline an error was raised.
type Location struct {
	Plugin string // plugin name, if known
	Unit   string // generation unit name, if known
	File   string // IR or source file path, if known
}

// IsZero returns true if the location has not been set.
func (l Location) IsZero() bool {
	return l.Plugin == "" && l.Unit == "" && l.File == ""
}

// String returns a compact rendering such as "plugin/unit (file)".
func (l Location) String() string {
	var parts []string
	if l.Plugin != "" {
		parts = append(parts, l.Plugin)
	}
	if l.Unit != "" {
		parts = append(parts, l.Unit)
	}
	s := strings.Join(parts, "/")
	if l.File != "" {
		if s == "" {
			return l.File
		}
		s += " (" + l.File + ")"
	}
	return s
}

// StructuredError is a rich error type carrying the pipeline location and the
// trail of node kinds leading to the failure.
type StructuredError struct {
	Message  string
	Kind     ErrorKind
	Location Location
	Trail    []string
	Cause    error
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Location.IsZero() {
		return fmt.Sprintf("%s: %s", e.Kind.String(), e.Message)
	}
	return fmt.Sprintf("%s: %s [%s]", e.Kind.String(), e.Message, e.Location.String())
}

// Unwrap returns the underlying cause of the error.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// FriendlyErrorMessage returns a multi-line message including the node trail.
func (e *StructuredError) FriendlyErrorMessage() string {
	var msg bytes.Buffer
	msg.WriteString(e.Error())
	msg.WriteString("\n")
	if len(e.Trail) > 0 {
		msg.WriteString("  at ")
		msg.WriteString(strings.Join(e.Trail, " > "))
		msg.WriteString("\n")
	}
	if e.Cause != nil {
		msg.WriteString("  caused by: ")
		msg.WriteString(e.Cause.Error())
		msg.WriteString("\n")
	}
	return msg.String()
}

// New creates a new StructuredError.
func New(kind ErrorKind, message string) *StructuredError {
	return &StructuredError{Message: message, Kind: kind}
}

// Newf creates a new StructuredError with a formatted message.
func Newf(kind ErrorKind, format string, args ...any) *StructuredError {
	return &StructuredError{Message: fmt.Sprintf(format, args...), Kind: kind}
}

// WithCause wraps the error with a cause.
func (e *StructuredError) WithCause(cause error) *StructuredError {
	e.Cause = cause
	return e
}

// WithLocation sets the pipeline location of the error.
func (e *StructuredError) WithLocation(loc Location) *StructuredError {
	e.Location = loc
	return e
}
