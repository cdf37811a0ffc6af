// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package model describes concatenator types and classifies expressions and calls involving them.
package model

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"slices"
)

// Model is a read-only registry of concatenator types.
type Model struct {
	types map[string]*Type
}

// New returns a [Model] for the [Builtin] types and the given custom types.
// Custom types replace builtin types of the same name.
func New(custom ...Type) (*Model, error) {
	m := &Model{types: make(map[string]*Type, len(Builtin)+len(custom))}

	for _, list := range [...][]Type{Builtin, custom} {
		for i := range list {
			t := &list[i]
			if err := t.Validate(); err != nil {
				return nil, err
			}

			m.types[t.Name] = t
		}
	}

	return m, nil
}

// Lookup returns the concatenator type of t, dereferencing at most one pointer.
func (m *Model) Lookup(t types.Type) (*Type, bool) {
	if t == nil {
		return nil, false
	}

	if ptr, ok := types.Unalias(t).(*types.Pointer); ok {
		t = ptr.Elem()
	}

	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return nil, false
	}

	obj := named.Origin().Obj()
	if obj.Pkg() == nil {
		return nil, false
	}

	ct, ok := m.types[obj.Pkg().Path()+"."+obj.Name()]

	return ct, ok
}

// IsPointer reports whether t is a pointer to a concatenator type.
func IsPointer(t types.Type) bool {
	_, ok := types.Unalias(t).(*types.Pointer)

	return ok
}

// Construction describes an expression creating a new concatenator.
type Construction struct {
	// Type is the created concatenator type.
	Type *Type

	// Expr is the construction expression, nil for a zero value variable declaration.
	Expr ast.Expr

	// Seed is the initial content, or nil.
	Seed *Arg
}

// Construction reports whether expr creates a new, empty or seeded, concatenator.
func (m *Model) Construction(info *types.Info, expr ast.Expr) (Construction, bool) {
	switch e := ast.Unparen(expr).(type) {
	case *ast.CallExpr:
		return m.constructorCall(info, e)

	case *ast.CompositeLit: // strings.Builder{}
		return m.zeroValue(e, info.TypeOf(e))

	case *ast.UnaryExpr: // &strings.Builder{}
		if e.Op != token.AND {
			break
		}

		if lit, ok := ast.Unparen(e.X).(*ast.CompositeLit); ok {
			cons, ok := m.zeroValue(lit, info.TypeOf(lit))
			cons.Expr = e

			return cons, ok
		}
	}

	return Construction{}, false
}

func (m *Model) zeroValue(lit *ast.CompositeLit, t types.Type) (Construction, bool) {
	if len(lit.Elts) > 0 {
		return Construction{}, false
	}

	ct, ok := m.Lookup(t)
	if !ok || !ct.ZeroValue || IsPointer(t) {
		return Construction{}, false
	}

	return Construction{Type: ct, Expr: lit}, true
}

func (m *Model) constructorCall(info *types.Info, call *ast.CallExpr) (Construction, bool) {
	if call.Ellipsis.IsValid() {
		return Construction{}, false
	}

	switch obj := Callee(info, call.Fun).(type) {
	case *types.Builtin: // new(strings.Builder)
		if obj.Name() != "new" || len(call.Args) != 1 {
			return Construction{}, false
		}

		t := info.TypeOf(call.Args[0])
		if ct, ok := m.Lookup(t); ok && ct.ZeroValue && !IsPointer(t) {
			return Construction{Type: ct, Expr: call}, true
		}

	case *types.Func:
		sig, ok := obj.Type().(*types.Signature)
		if !ok || sig.Recv() != nil || sig.Results().Len() != 1 || obj.Pkg() == nil {
			return Construction{}, false
		}

		ct, ok := m.Lookup(sig.Results().At(0).Type())
		if !ok || ct.Path() != obj.Pkg().Path() || !slices.Contains(ct.Constructors, obj.Name()) {
			return Construction{}, false
		}

		return constructorArgs(info, ct, call, sig)
	}

	return Construction{}, false
}

func constructorArgs(info *types.Info, ct *Type, call *ast.CallExpr, sig *types.Signature) (Construction, bool) {
	cons := Construction{Type: ct, Expr: call}

	switch ct.Kind {
	case SeparatorJoiner:
		// Only the empty separator has a plain concatenation equivalent.
		if len(call.Args) != 1 || !emptyStringLiteral(call.Args[0]) {
			return Construction{}, false
		}

		return cons, true

	case PlainBuilder:
		switch len(call.Args) {
		case 0:
			return cons, true

		case 1:
			arg := call.Args[0]
			if sig.Variadic() || sig.Params().Len() != 1 {
				return Construction{}, false
			}

			switch kind := argKindOf(sig.Params().At(0).Type()); kind {
			case ArgInt:
				return cons, true // capacity hint

			case ArgBytes:
				if capacityOnly(info, arg) {
					return cons, true
				}

				cons.Seed = &Arg{Expr: arg, Kind: kind}

				return cons, true

			case ArgString, ArgNamedString, ArgRunes:
				cons.Seed = &Arg{Expr: arg, Kind: kind}

				return cons, true
			}
		}
	}

	return Construction{}, false
}

// capacityOnly reports whether a buffer argument is nil or a zero-length make.
func capacityOnly(info *types.Info, arg ast.Expr) bool {
	arg = ast.Unparen(arg)
	if tv, ok := info.Types[arg]; ok && tv.IsNil() {
		return true
	}

	if id, ok := arg.(*ast.Ident); ok && info.Uses[id] == types.Universe.Lookup("nil") {
		return true
	}

	call, ok := arg.(*ast.CallExpr)
	if !ok || len(call.Args) < 2 {
		return false
	}

	if b, ok := Callee(info, call.Fun).(*types.Builtin); !ok || b.Name() != "make" {
		return false
	}

	tv, ok := info.Types[call.Args[1]]
	if !ok || tv.Value == nil {
		return false
	}

	n, exact := constant.Int64Val(constant.ToInt(tv.Value))

	return exact && n == 0
}

func emptyStringLiteral(e ast.Expr) bool {
	lit, ok := ast.Unparen(e).(*ast.BasicLit)

	return ok && lit.Kind == token.STRING && (lit.Value == `""` || lit.Value == "``")
}

// Callee resolves the function or builtin called by fun.
func Callee(info *types.Info, fun ast.Expr) types.Object {
	switch f := ast.Unparen(fun).(type) {
	case *ast.Ident:
		return info.Uses[f]

	case *ast.SelectorExpr:
		if sel, ok := info.Selections[f]; ok {
			return sel.Obj()
		}

		return info.Uses[f.Sel] // qualified identifier

	case *ast.IndexExpr: // explicit instantiation
		return Callee(info, f.X)

	case *ast.IndexListExpr:
		return Callee(info, f.X)
	}

	return nil
}

// Arg is an argument of a chain call.
type Arg struct {
	Expr ast.Expr
	Kind ArgKind
}

// Call is a classified call.
type Call struct {
	// Kind is the call family.
	Kind CallKind

	// Type is the receiver's concatenator type, nil for [CallOther].
	Type *Type

	// Args are the typed call arguments.
	Args []Arg

	// Chainable reports whether the call returns the receiver type, so another call can follow.
	Chainable bool
}

// String is for debugging.
func (c Call) String() string {
	if c.Type == nil {
		return c.Kind.String()
	}

	return fmt.Sprintf("%s.%s/%d", c.Type.TypeName(), c.Kind, len(c.Args))
}

// Classify determines the role of call in a chain.
func (m *Model) Classify(info *types.Info, call *ast.CallExpr) Call {
	fun, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
	if !ok {
		if cons, ok := m.Construction(info, call); ok {
			return Call{Kind: CallConstruct, Type: cons.Type}
		}

		return Call{}
	}

	sel, ok := info.Selections[fun]
	if !ok || sel.Kind() != types.MethodVal {
		if cons, ok := m.Construction(info, call); ok {
			return Call{Kind: CallConstruct, Type: cons.Type}
		}

		return Call{}
	}

	ct, ok := m.Lookup(sel.Recv())
	if !ok {
		return Call{}
	}

	sig, ok := sel.Type().(*types.Signature)
	if !ok || sig.Variadic() || call.Ellipsis.IsValid() {
		return Call{}
	}

	kind := ct.family(fun.Sel.Name)

	args, ok := typedArgs(call.Args, sig.Params())
	if !ok {
		return Call{}
	}

	if !arity(kind, args) || kind == CallTerminal && !returnsString(sig) {
		return Call{}
	}

	if kind == CallAppend && len(args) == 3 {
		kind = CallAppendRanged
	}

	result := Call{Kind: kind, Type: ct, Args: args}

	if kind != CallTerminal && sig.Results().Len() == 1 {
		rt, ok := m.Lookup(sig.Results().At(0).Type())
		result.Chainable = ok && rt == ct
	}

	return result
}

func typedArgs(exprs []ast.Expr, params *types.Tuple) ([]Arg, bool) {
	if len(exprs) != params.Len() {
		return nil, false
	}

	args := make([]Arg, len(exprs))
	for i, e := range exprs {
		kind := argKindOf(params.At(i).Type())
		if kind == ArgInvalid {
			return nil, false
		}

		args[i] = Arg{Expr: e, Kind: kind}
	}

	return args, true
}

func arity(kind CallKind, args []Arg) bool {
	switch kind {
	case CallAppend:
		switch len(args) {
		case 1:
			return args[0].Kind.Content()

		case 3: // slice, offset, length
			return (args[0].Kind == ArgBytes || args[0].Kind == ArgRunes) &&
				args[1].Kind == ArgInt && args[2].Kind == ArgInt
		}

		return false

	case CallAdd:
		return len(args) == 1 && args[0].Kind.Content()

	case CallHint:
		return len(args) == 1 && args[0].Kind == ArgInt

	case CallTerminal:
		return len(args) == 0

	default:
		return false
	}
}

func returnsString(sig *types.Signature) bool {
	return sig.Results().Len() == 1 && types.Identical(sig.Results().At(0).Type(), types.Typ[types.String])
}

func argKindOf(t types.Type) ArgKind {
	switch u := t.Underlying().(type) {
	case *types.Basic:
		switch {
		case u.Kind() == types.String:
			if types.Identical(t, types.Typ[types.String]) {
				return ArgString
			}

			return ArgNamedString

		case types.Identical(t, types.Typ[types.Byte]):
			return ArgByte

		case types.Identical(t, types.Typ[types.Rune]):
			return ArgRune

		case u.Info()&types.IsInteger != 0:
			return ArgInt
		}

	case *types.Slice:
		switch {
		case types.Identical(u.Elem(), types.Typ[types.Byte]):
			return ArgBytes

		case types.Identical(u.Elem(), types.Typ[types.Rune]):
			return ArgRunes
		}
	}

	return ArgInvalid
}
