package errz

import "fmt"

// SlotError is raised (as a panic value) when a hook bound to an ancestor
// kind returns a replacement that cannot occupy the concrete slot of its
// parent, e.g. a declaration hook returning a class where a type parameter
// is required. Hooks bound to concrete kinds cannot trigger it.
type SlotError struct {
	Parent string // kind of the parent being rebuilt
	Slot   string // field name of the slot
	Want   string // Go type the slot requires
	Got    string // Go type of the replacement
}

// Error implements the error interface.
func (e *SlotError) Error() string {
	return fmt.Sprintf("%s: %s.%s requires %s, got %s", ErrSlot, e.Parent, e.Slot, e.Want, e.Got)
}

// Structured converts the slot error into a StructuredError.
func (e *SlotError) Structured() *StructuredError {
	return &StructuredError{
		Message: e.Error(),
		Kind:    ErrSlot,
		Trail:   []string{e.Parent, e.Slot},
	}
}
