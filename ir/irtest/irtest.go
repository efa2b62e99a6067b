// Package irtest provides IR fixtures for tests.
package irtest

import "github.com/deepnoodle-ai/irmeta/ir"

func get(symbol string, typ ir.Type) *ir.GetValue {
	return &ir.GetValue{Type: typ, Symbol: symbol}
}

// Everything returns a module containing at least one node of every kind.
// Each call returns a fresh tree.
func Everything() *ir.ModuleFragment {
	box := ir.Named("Box")
	this := &ir.ValueParameter{Name: "<this>", Index: -1, Type: box}

	boxClass := &ir.Class{
		Name:           "Box",
		ClassKind:      ir.ClassKindClass,
		TypeParameters: []*ir.TypeParameter{{Name: "T", SuperTypes: []ir.Type{ir.TypeAny}}},
		SuperTypes:     []ir.Type{ir.TypeAny},
		Declarations: []ir.Declaration{
			&ir.Constructor{
				Class:           "Box",
				Primary:         true,
				ValueParameters: []*ir.ValueParameter{{Name: "value", Type: ir.TypeInt}},
				Body: &ir.BlockBody{Statements: []ir.Statement{
					&ir.DelegatingConstructorCall{Type: ir.TypeUnit, Symbol: "kotlin.Any.<init>"},
					&ir.InstanceInitializerCall{Type: ir.TypeUnit, Class: "Box"},
				}},
			},
			&ir.Property{
				Name: "value",
				BackingField: &ir.Field{
					Name:        "value",
					Type:        ir.TypeInt,
					Initializer: &ir.ExpressionBody{Expression: get("value", ir.TypeInt)},
				},
				Getter: &ir.SimpleFunction{
					Name:             "<get-value>",
					DispatchReceiver: this,
					ReturnType:       ir.TypeInt,
					Body: &ir.BlockBody{Statements: []ir.Statement{
						&ir.Return{
							Type:   ir.TypeNothing,
							Target: "<get-value>",
							Value:  &ir.GetField{Type: ir.TypeInt, Symbol: "value", Receiver: get("<this>", box)},
						},
					}},
				},
			},
			&ir.AnonymousInitializer{Body: &ir.BlockBody{Statements: []ir.Statement{
				&ir.Call{
					Type:   ir.TypeUnit,
					Symbol: "kotlin.io.println",
					Arguments: []ir.Expression{
						&ir.StringConcatenation{Type: ir.TypeString, Arguments: []ir.Expression{
							ir.StringConst("box "),
							get("value", ir.TypeInt),
						}},
					},
				},
			}}},
		},
	}

	colorClass := &ir.Class{
		Name:      "Color",
		ClassKind: ir.ClassKindEnum,
		Declarations: []ir.Declaration{
			&ir.EnumEntry{
				Name: "RED",
				Initializer: &ir.ExpressionBody{Expression: &ir.EnumConstructorCall{
					Type:   ir.Named("Color"),
					Symbol: "Color.<init>",
				}},
				Class: &ir.Class{Name: "RED", ClassKind: ir.ClassKindClass},
			},
			&ir.SimpleFunction{
				Name:       "values",
				ReturnType: ir.Type{Name: "Array", Arguments: []ir.Type{ir.Named("Color")}},
				Body:       &ir.SyntheticBody{SyntheticKind: "ENUM_VALUES"},
			},
		},
	}

	lazyDelegate := &ir.Variable{
		Name: "x$delegate",
		Type: ir.Named("Lazy"),
		Initializer: &ir.Call{
			Type:      ir.Named("Lazy"),
			Symbol:    "kotlin.lazy",
			Arguments: []ir.Expression{ir.IntConst(7)},
		},
	}

	mainBody := []ir.Statement{
		&ir.Variable{Name: "x", Type: ir.TypeInt, Mutable: true, Initializer: ir.IntConst(1)},
		&ir.LocalDelegatedProperty{
			Name:     "lazyX",
			Type:     ir.TypeInt,
			Delegate: lazyDelegate,
			Getter:   &ir.SimpleFunction{Name: "<get-lazyX>", ReturnType: ir.TypeInt},
		},
		&ir.SetValue{Type: ir.TypeUnit, Symbol: "x", Value: ir.IntConst(2)},
		&ir.WhileLoop{
			Type:      ir.TypeUnit,
			Label:     "outer",
			Condition: get("flag", ir.TypeBoolean),
			Body: &ir.Block{Type: ir.TypeUnit, Statements: []ir.Statement{
				&ir.Break{Type: ir.TypeNothing, Label: "outer"},
				&ir.Continue{Type: ir.TypeNothing},
			}},
		},
		&ir.DoWhileLoop{
			Type: ir.TypeUnit,
			Body: &ir.Composite{Type: ir.TypeUnit, Statements: []ir.Statement{
				&ir.SetField{Type: ir.TypeUnit, Symbol: "count", Receiver: get("box", box), Value: ir.IntConst(3)},
			}},
			Condition: ir.BoolConst(false),
		},
		ir.NewIf(ir.TypeAny,
			&ir.TypeOperatorCall{
				Type:        ir.TypeBoolean,
				Operator:    ir.OpInstanceOf,
				Argument:    get("x", ir.TypeInt),
				TypeOperand: ir.TypeInt,
			},
			&ir.GetObjectValue{Type: ir.TypeUnit, Symbol: "kotlin.Unit"},
			&ir.GetEnumValue{Type: ir.Named("Color"), Symbol: "Color.RED"},
		),
		&ir.Try{
			Type: ir.TypeUnit,
			Body: &ir.Call{
				Type:   ir.TypeUnit,
				Symbol: "listOf",
				Arguments: []ir.Expression{&ir.Vararg{
					Type:        ir.Type{Name: "Array", Arguments: []ir.Type{ir.TypeInt}},
					ElementType: ir.TypeInt,
					Elements: []ir.VarargElement{
						ir.IntConst(4),
						&ir.SpreadElement{Expression: get("arr", ir.Named("IntArray"))},
					},
				}},
			},
			Catches: []*ir.Catch{{
				Parameter: &ir.Variable{Name: "e", Type: ir.Named("Throwable")},
				Result:    &ir.Throw{Type: ir.TypeNothing, Value: get("e", ir.Named("Throwable"))},
			}},
			Finally: &ir.ErrorCallExpression{
				Type:             ir.TypeUnit,
				Description:      "unresolved cleanup",
				ExplicitReceiver: &ir.ErrorExpression{Type: ir.TypeAny, Description: "unresolved receiver"},
				Arguments:        []ir.Expression{ir.NullConst()},
			},
		},
		&ir.GetClass{Type: ir.Named("KClass"), Argument: get("x", ir.TypeInt)},
		&ir.FunctionReference{Type: ir.Named("KFunction0"), Symbol: "main", ReflectionTarget: "main"},
		&ir.PropertyReference{Type: ir.Named("KProperty1"), Symbol: "Box.value", Field: "value", Getter: "<get-value>"},
		&ir.LocalDelegatedPropertyReference{Type: ir.Named("KProperty0"), Symbol: "lazyX", Delegate: "x$delegate", Getter: "<get-lazyX>"},
		&ir.ClassReference{Type: ir.Named("KClass"), Symbol: "Box", ClassType: box},
		&ir.ConstructorCall{Type: box, Symbol: "Box.<init>", Arguments: []ir.Expression{ir.IntConst(5)}},
		&ir.SuspendableExpression{
			Type:              ir.TypeAny,
			SuspensionPointID: get("id", ir.TypeAny),
			Result: &ir.SuspensionPoint{
				Type:                       ir.TypeAny,
				SuspensionPointIDParameter: &ir.Variable{Name: "id", Type: ir.TypeAny},
				Result:                     ir.IntConst(6),
				ResumeResult:               get("resumed", ir.TypeAny),
			},
		},
		&ir.DynamicOperatorExpression{
			Type:      ir.Named("dynamic"),
			Operator:  "PLUS",
			Receiver:  get("d", ir.Named("dynamic")),
			Arguments: []ir.Expression{ir.IntConst(1)},
		},
		&ir.DynamicMemberExpression{Type: ir.Named("dynamic"), MemberName: "foo", Receiver: get("d", ir.Named("dynamic"))},
		&ir.Return{Type: ir.TypeNothing, Target: "main", Value: ir.IntConst(0)},
	}

	return &ir.ModuleFragment{
		Name: "everything",
		Files: []*ir.File{{
			Path:    "demo/main.kt",
			Package: "demo",
			Declarations: []ir.Declaration{
				boxClass,
				colorClass,
				&ir.TypeAlias{
					Name:           "Boxes",
					TypeParameters: []*ir.TypeParameter{{Name: "E"}},
					Expanded:       ir.Type{Name: "List", Arguments: []ir.Type{box}},
				},
				&ir.ErrorDeclaration{},
				&ir.SimpleFunction{
					Name:       "main",
					ReturnType: ir.TypeInt,
					ValueParameters: []*ir.ValueParameter{{
						Name:    "args",
						Type:    ir.Type{Name: "Array", Arguments: []ir.Type{ir.TypeString}},
						Vararg:  true,
						Default: &ir.ExpressionBody{Expression: &ir.Call{Type: ir.TypeAny, Symbol: "emptyArray"}},
					}},
					Body: &ir.BlockBody{Statements: mainBody},
				},
			},
		}},
	}
}

// ScenarioCall returns Call(GetValue(x), args=[Const(1), Const(2)]) wrapped
// in a module.
func ScenarioCall() *ir.ModuleFragment {
	return ir.NewModule("scenario", "call.kt", ir.NewFunction("f", ir.TypeInt,
		&ir.Call{
			Type:             ir.TypeInt,
			Symbol:           "plus",
			DispatchReceiver: get("x", ir.TypeInt),
			Arguments:        []ir.Expression{ir.IntConst(1), ir.IntConst(2)},
		},
	))
}
