package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/deepnoodle-ai/irmeta/errz"
)

// prototypes holds one zero node per kind, indexed by Kind.
var prototypes = [KindCount]Element{
	KindModuleFragment:                  &ModuleFragment{},
	KindFile:                            &File{},
	KindClass:                           &Class{},
	KindSimpleFunction:                  &SimpleFunction{},
	KindConstructor:                     &Constructor{},
	KindProperty:                        &Property{},
	KindField:                           &Field{},
	KindLocalDelegatedProperty:          &LocalDelegatedProperty{},
	KindEnumEntry:                       &EnumEntry{},
	KindAnonymousInitializer:            &AnonymousInitializer{},
	KindVariable:                        &Variable{},
	KindTypeParameter:                   &TypeParameter{},
	KindValueParameter:                  &ValueParameter{},
	KindTypeAlias:                       &TypeAlias{},
	KindErrorDeclaration:                &ErrorDeclaration{},
	KindExpressionBody:                  &ExpressionBody{},
	KindBlockBody:                       &BlockBody{},
	KindSyntheticBody:                   &SyntheticBody{},
	KindConst:                           &Const{},
	KindVararg:                          &Vararg{},
	KindSpreadElement:                   &SpreadElement{},
	KindBlock:                           &Block{},
	KindComposite:                       &Composite{},
	KindStringConcatenation:             &StringConcatenation{},
	KindGetObjectValue:                  &GetObjectValue{},
	KindGetEnumValue:                    &GetEnumValue{},
	KindGetValue:                        &GetValue{},
	KindSetValue:                        &SetValue{},
	KindGetField:                        &GetField{},
	KindSetField:                        &SetField{},
	KindCall:                            &Call{},
	KindConstructorCall:                 &ConstructorCall{},
	KindDelegatingConstructorCall:       &DelegatingConstructorCall{},
	KindEnumConstructorCall:             &EnumConstructorCall{},
	KindGetClass:                        &GetClass{},
	KindFunctionReference:               &FunctionReference{},
	KindPropertyReference:               &PropertyReference{},
	KindLocalDelegatedPropertyReference: &LocalDelegatedPropertyReference{},
	KindClassReference:                  &ClassReference{},
	KindInstanceInitializerCall:         &InstanceInitializerCall{},
	KindTypeOperatorCall:                &TypeOperatorCall{},
	KindWhen:                            &When{},
	KindCondBranch:                      &CondBranch{},
	KindElseBranch:                      &ElseBranch{},
	KindWhileLoop:                       &WhileLoop{},
	KindDoWhileLoop:                     &DoWhileLoop{},
	KindTry:                             &Try{},
	KindCatch:                           &Catch{},
	KindBreak:                           &Break{},
	KindContinue:                        &Continue{},
	KindReturn:                          &Return{},
	KindThrow:                           &Throw{},
	KindSuspendableExpression:           &SuspendableExpression{},
	KindSuspensionPoint:                 &SuspensionPoint{},
	KindDynamicOperatorExpression:       &DynamicOperatorExpression{},
	KindDynamicMemberExpression:         &DynamicMemberExpression{},
	KindErrorExpression:                 &ErrorExpression{},
	KindErrorCallExpression:             &ErrorCallExpression{},
}

// New returns a fresh zero node of kind k, or nil for an invalid kind.
func New(k Kind) Element {
	if k <= KindInvalid || k >= KindCount {
		return nil
	}
	return reflect.New(reflect.TypeOf(prototypes[k]).Elem()).Interface().(Element)
}

var elementType = reflect.TypeFor[Element]()

func isNodeType(t reflect.Type) bool {
	return t.Implements(elementType)
}

// Marshal encodes a tree as JSON. Each node becomes an object with a "kind"
// member and one member per non-empty field. Output is deterministic.
func Marshal(e Element) ([]byte, error) {
	return json.Marshal(encode(e))
}

// MarshalIndent is Marshal with indentation.
func MarshalIndent(e Element, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(encode(e), prefix, indent)
}

func encode(e Element) any {
	if e == nil {
		return nil
	}
	v := reflect.ValueOf(e)
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return nil
	}
	v = v.Elem()
	out := map[string]any{"kind": e.Kind().String()}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := v.Field(i)
		if fv.IsZero() {
			continue
		}
		switch {
		case isNodeType(f.Type):
			out[f.Name] = encode(fv.Interface().(Element))
		case f.Type.Kind() == reflect.Slice && isNodeType(f.Type.Elem()):
			items := make([]any, fv.Len())
			for j := range items {
				if item := fv.Index(j); !item.IsNil() {
					items[j] = encode(item.Interface().(Element))
				}
			}
			out[f.Name] = items
		default:
			out[f.Name] = fv.Interface()
		}
	}
	return out
}

// Unmarshal decodes a tree produced by Marshal.
func Unmarshal(data []byte) (Element, error) {
	e, err := decode(json.RawMessage(data))
	if err != nil {
		return nil, errz.New(errz.ErrDecode, "invalid IR document").WithCause(err)
	}
	return e, nil
}

// UnmarshalModule decodes a tree whose root must be a ModuleFragment.
func UnmarshalModule(data []byte) (*ModuleFragment, error) {
	e, err := Unmarshal(data)
	if err != nil {
		return nil, err
	}
	m, ok := e.(*ModuleFragment)
	if !ok {
		return nil, errz.Newf(errz.ErrDecode, "root is %s, want ModuleFragment", kindName(e))
	}
	return m, nil
}

func kindName(e Element) string {
	if e == nil {
		return "null"
	}
	return e.Kind().String()
}

func decode(raw json.RawMessage) (Element, error) {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	var name string
	if err := json.Unmarshal(fields["kind"], &name); err != nil {
		return nil, fmt.Errorf("missing node kind: %w", err)
	}
	k, ok := KindOf(name)
	if !ok {
		return nil, fmt.Errorf("unknown node kind %q", name)
	}
	node := New(k)
	v := reflect.ValueOf(node).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		fraw, ok := fields[f.Name]
		if !ok {
			continue
		}
		if err := decodeField(v.Field(i), f, fraw); err != nil {
			return nil, fmt.Errorf("%s.%s: %w", name, f.Name, err)
		}
	}
	if c, ok := node.(*Const); ok {
		if err := normalizeConst(c, fields["Value"]); err != nil {
			return nil, fmt.Errorf("Const.Value: %w", err)
		}
	}
	return node, nil
}

func decodeField(fv reflect.Value, f reflect.StructField, raw json.RawMessage) error {
	switch {
	case isNodeType(f.Type):
		child, err := decode(raw)
		if err != nil || child == nil {
			return err
		}
		return assign(fv, child)
	case f.Type.Kind() == reflect.Slice && isNodeType(f.Type.Elem()):
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return err
		}
		s := reflect.MakeSlice(f.Type, len(items), len(items))
		for j, item := range items {
			child, err := decode(item)
			if err != nil {
				return err
			}
			if child == nil {
				continue
			}
			if err := assign(s.Index(j), child); err != nil {
				return err
			}
		}
		fv.Set(s)
		return nil
	default:
		return json.Unmarshal(raw, fv.Addr().Interface())
	}
}

func assign(dst reflect.Value, child Element) error {
	cv := reflect.ValueOf(child)
	if !cv.Type().AssignableTo(dst.Type()) {
		return fmt.Errorf("%s cannot be used as %s", child.Kind(), dst.Type())
	}
	dst.Set(cv)
	return nil
}

func normalizeConst(c *Const, raw json.RawMessage) error {
	if len(raw) == 0 {
		c.Value = nil
		return nil
	}
	var err error
	switch c.ConstKind {
	case ConstNull:
		c.Value = nil
	case ConstBoolean:
		var b bool
		err = json.Unmarshal(raw, &b)
		c.Value = b
	case ConstChar:
		var r rune
		err = json.Unmarshal(raw, &r)
		c.Value = r
	case ConstInt, ConstLong:
		var n int64
		err = json.Unmarshal(raw, &n)
		c.Value = n
	case ConstString:
		var s string
		err = json.Unmarshal(raw, &s)
		c.Value = s
	case ConstFloat, ConstDouble:
		var f float64
		err = json.Unmarshal(raw, &f)
		c.Value = f
	}
	return err
}
