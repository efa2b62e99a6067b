// Package dump renders IR trees as text.
//
// Tree prints the node structure with one line per node. Readable prints
// source-like text. Both are deterministic: the same tree and options always
// produce the same bytes.
package dump

import (
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/deepnoodle-ai/irmeta/ir"
)

// Style decorates a kind tag, for example with terminal colors.
type Style func(tag string) string

// Tree renders e as an indented tree of kind tags and attributes.
func Tree(e ir.Element) string {
	return TreeStyled(e, nil)
}

// TreeStyled is Tree with each kind tag passed through style.
func TreeStyled(e ir.Element, style Style) string {
	if style == nil {
		style = func(tag string) string { return tag }
	}
	t := &treePrinter{style: style}
	if e == nil {
		return "<nil>\n"
	}
	t.line("", "", e)
	t.children(e, "")
	return t.out.String()
}

type treePrinter struct {
	out   strings.Builder
	style Style
}

type slot struct {
	label string
	node  ir.Element
}

func (t *treePrinter) line(prefix, label string, e ir.Element) {
	t.out.WriteString(prefix)
	if label != "" {
		t.out.WriteString(label)
		t.out.WriteString(": ")
	}
	t.out.WriteString(t.style(e.Kind().Tag()))
	for _, a := range attributes(e) {
		t.out.WriteByte(' ')
		t.out.WriteString(a)
	}
	t.out.WriteByte('\n')
}

func (t *treePrinter) children(e ir.Element, indent string) {
	slots := slotsOf(e)
	for i, s := range slots {
		connector, childIndent := "├─ ", indent+"│  "
		if i == len(slots)-1 {
			connector, childIndent = "└─ ", indent+"   "
		}
		t.line(indent+connector, s.label, s.node)
		t.children(s.node, childIndent)
	}
}

var (
	elementType = reflect.TypeFor[ir.Element]()
	rangeType   = reflect.TypeFor[ir.Range]()
)

// slotsOf lists the non-nil children of e with their field labels, in the
// order a rewrite visits them.
func slotsOf(e ir.Element) []slot {
	v := reflect.ValueOf(e).Elem()
	t := v.Type()
	var out []slot
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := v.Field(i)
		switch {
		case f.Type.Implements(elementType):
			if !fv.IsNil() {
				out = append(out, slot{f.Name, fv.Interface().(ir.Element)})
			}
		case f.Type.Kind() == reflect.Slice && f.Type.Elem().Implements(elementType):
			for j := 0; j < fv.Len(); j++ {
				if item := fv.Index(j); !item.IsNil() {
					out = append(out, slot{fmt.Sprintf("%s[%d]", f.Name, j), item.Interface().(ir.Element)})
				}
			}
		}
	}
	// Children of a do-while loop are visited body first.
	if loop, ok := e.(*ir.DoWhileLoop); ok && loop.Body != nil && loop.Condition != nil {
		out[0], out[1] = out[1], out[0]
	}
	return out
}

// attributes returns "name:value" pairs for the non-node, non-zero fields of
// e in declaration order.
func attributes(e ir.Element) []string {
	v := reflect.ValueOf(e).Elem()
	t := v.Type()
	var out []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Type == rangeType || f.Type.Implements(elementType) {
			continue
		}
		if f.Type.Kind() == reflect.Slice && f.Type.Elem().Implements(elementType) {
			continue
		}
		fv := v.Field(i)
		if fv.IsZero() {
			continue
		}
		out = append(out, lowerFirst(f.Name)+":"+attribute(e, fv))
	}
	return out
}

func attribute(e ir.Element, fv reflect.Value) string {
	if c, ok := e.(*ir.Const); ok && fv.Kind() == reflect.Interface {
		return constLiteral(c)
	}
	switch x := fv.Interface().(type) {
	case ir.Type:
		return x.String()
	case []ir.Type:
		return typeList(x)
	case string:
		if strings.ContainsAny(x, " \t\n\"") || x == "" {
			return fmt.Sprintf("%q", x)
		}
		return x
	default:
		return fmt.Sprint(x)
	}
}

func typeList(types []ir.Type) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func lowerFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[n:]
}

// constLiteral renders the value of c the way it would be written in source.
func constLiteral(c *ir.Const) string {
	switch v := c.Value.(type) {
	case nil:
		return "null"
	case string:
		return fmt.Sprintf("%q", v)
	case rune:
		if c.ConstKind == ir.ConstChar {
			return fmt.Sprintf("%q", v)
		}
		return fmt.Sprint(v)
	case int64:
		if c.ConstKind == ir.ConstLong {
			return fmt.Sprintf("%dL", v)
		}
		return fmt.Sprint(v)
	case float64:
		if c.ConstKind == ir.ConstFloat {
			return fmt.Sprintf("%gF", v)
		}
		return fmt.Sprint(v)
	default:
		return fmt.Sprint(v)
	}
}
