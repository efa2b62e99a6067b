package ast

import (
	"fmt"
	"strings"
)

// ValidationError describes a well-formedness violation.
type ValidationError struct {
	Message  string   // description of the violation
	Node     Node     // the offending node
	Position Position // source location
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Position.Line == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s at %s", e.Message, e.Position)
}

// ValidationErrors wraps multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError
}

// Error implements the error interface.
func (e *ValidationErrors) Error() string {
	switch len(e.Errors) {
	case 0:
		return "no validation errors"
	case 1:
		return e.Errors[0].Error()
	default:
		var b strings.Builder
		fmt.Fprintf(&b, "%d validation errors:\n", len(e.Errors))
		for _, err := range e.Errors {
			fmt.Fprintf(&b, "  - %s\n", err.Error())
		}
		return b.String()
	}
}

// Unwrap returns the first error for errors.Is/As compatibility.
func (e *ValidationErrors) Unwrap() error {
	if len(e.Errors) > 0 {
		return &e.Errors[0]
	}
	return nil
}

// Validator inspects a tree and returns validation errors. Validators must
// not modify the tree.
type Validator interface {
	Validate(root Node) []ValidationError
}

// ValidatorFunc is an adapter to use a function as a Validator.
type ValidatorFunc func(Node) []ValidationError

// Validate implements the Validator interface.
func (f ValidatorFunc) Validate(root Node) []ValidationError {
	return f(root)
}

// Validate runs every validator over root and returns a *ValidationErrors if
// any of them reported a violation.
func Validate(root Node, validators ...Validator) error {
	var errs []ValidationError
	for _, v := range validators {
		errs = append(errs, v.Validate(root)...)
	}
	if len(errs) == 0 {
		return nil
	}
	return &ValidationErrors{Errors: errs}
}

// TypeParameterValidator checks the type parameters of every owner: names
// must be unique and each where-clause subject must name one of them.
var TypeParameterValidator Validator = ValidatorFunc(validateTypeParameters)

// NoBadExprValidator rejects trees that still contain parse errors.
var NoBadExprValidator Validator = ValidatorFunc(func(root Node) []ValidationError {
	var errs []ValidationError
	Inspect(root, func(n Node) bool {
		if _, ok := n.(*BadExpr); ok {
			errs = append(errs, ValidationError{Message: "malformed expression", Node: n, Position: n.Pos()})
		}
		return true
	})
	return errs
})

func validateTypeParameters(root Node) []ValidationError {
	c := &typeParameterChecker{}
	Walk(c, root)
	return c.errs
}

type typeParameterChecker struct {
	errs []ValidationError
}

func (c *typeParameterChecker) Visit(n Node) Visitor {
	switch n.(type) {
	case *TypeParameterList, *TypeConstraintList, *TypeRef:
		return nil
	}
	if owner, ok := n.(TypeParameterListOwner); ok {
		c.check(owner)
	}
	return c
}

func (c *typeParameterChecker) check(owner TypeParameterListOwner) {
	declared := map[string]bool{}
	for _, p := range owner.TypeParameters() {
		if declared[p.Ident] {
			c.errs = append(c.errs, ValidationError{
				Message:  fmt.Sprintf("%s: duplicate type parameter %s", owner.Name(), p.Ident),
				Node:     p,
				Position: p.Pos(),
			})
		}
		declared[p.Ident] = true
	}
	for _, tc := range owner.TypeConstraints() {
		if !declared[tc.Subject] {
			c.errs = append(c.errs, ValidationError{
				Message:  fmt.Sprintf("%s: %s is not a type parameter", owner.Name(), tc.Subject),
				Node:     tc,
				Position: tc.Pos(),
			})
		}
	}
}
