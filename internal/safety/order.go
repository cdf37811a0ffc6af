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

package safety

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/builderconcat/internal/chain"
	"fillmore-labs.com/builderconcat/internal/model"
)

// OrderSafe reports whether the contributions of ch can be evaluated as operands of one expression
// replacing the terminal call at terminal.
//
// Go evaluates calls and receives in an expression from left to right, but the order of
// variable reads relative to them is unspecified. The chain is rejected when one operand
// contains a call and another operand reads state the call could modify. The same holds for
// the expressions evaluated together with the terminal call, since the appended values were
// read before them. Arguments dropped by the rewrite, like capacity hints, must be free of
// side effects.
func (a Analyzer) OrderSafe(terminal inspector.Cursor, ch chain.Chain) bool {
	for _, dropped := range droppedArgs(ch) {
		if !a.inertExpr(dropped) {
			return false
		}
	}

	operands := operandGroups(ch)

	var calls []int

	for i, group := range operands {
		for _, e := range group {
			if !a.inertExpr(e.Expr) {
				calls = append(calls, i)

				break
			}
		}
	}

	escaped := a.escaping(terminal)
	unstable := false

	for j, group := range operands {
		if !a.unstable(group, escaped) {
			continue
		}

		unstable = true

		for _, i := range calls {
			if i != j {
				return false
			}
		}
	}

	return a.contextSafe(terminal, len(calls) > 0, unstable, escaped)
}

// contextSafe checks the operands against the expressions evaluated together with the terminal call.
func (a Analyzer) contextSafe(terminal inspector.Cursor, call, unstable bool, escaped map[*types.Var]struct{}) bool {
	if !call && !unstable {
		return true
	}

	pos := terminal.Node().Pos()

	for _, sibling := range siblings(terminal) {
		if !a.inertExpr(sibling) && (unstable || sibling.Pos() < pos) {
			return false
		}

		if call && a.mutableRead(sibling, escaped) {
			return false
		}
	}

	return true
}

// siblings returns the expressions evaluated together with the node at c, up to the enclosing statement.
func siblings(c inspector.Cursor) []ast.Expr {
	var exprs []ast.Expr

	for {
		parent := c.Parent()

		switch parent.Node().(type) {
		case ast.Expr, *ast.AssignStmt, *ast.ReturnStmt, *ast.SendStmt, *ast.ValueSpec:

		default:
			return exprs
		}

		for child := range parent.Children() {
			if e, ok := child.Node().(ast.Expr); ok && child != c {
				exprs = append(exprs, e)
			}
		}

		if _, ok := parent.Node().(ast.Expr); !ok {
			return exprs
		}

		c = parent
	}
}

// operandGroups returns the argument lists becoming one operand each.
func operandGroups(ch chain.Chain) [][]model.Arg {
	var groups [][]model.Arg

	if seed := ch.Construction.Seed; seed != nil {
		groups = append(groups, []model.Arg{*seed})
	}

	for _, l := range ch.Links {
		switch l.Kind {
		case model.CallAppend, model.CallAppendRanged, model.CallAdd:
			groups = append(groups, l.Args)
		}
	}

	return groups
}

// droppedArgs returns the evaluated arguments without a counterpart in the replacement.
func droppedArgs(ch chain.Chain) []ast.Expr {
	var dropped []ast.Expr

	if call, ok := ast.Unparen(ch.Construction.Expr).(*ast.CallExpr); ok && ch.Construction.Seed == nil {
		dropped = append(dropped, call.Args...)
	}

	for _, l := range ch.Links {
		if l.Kind == model.CallHint {
			dropped = append(dropped, l.Expr.Args...)
		}
	}

	return dropped
}

// unstable reports whether an operand reads state a call in another operand could modify.
func (a Analyzer) unstable(group []model.Arg, escaped map[*types.Var]struct{}) bool {
	for _, arg := range group {
		if tv, ok := a.Info.Types[arg.Expr]; ok && (tv.Value != nil || tv.IsNil()) {
			continue
		}

		switch arg.Kind {
		case model.ArgBytes, model.ArgRunes:
			return true // the conversion reads the backing array
		}

		if a.mutableRead(arg.Expr, escaped) {
			return true
		}
	}

	return false
}

// mutableRead reports whether expr reads a variable that is not a private local value.
func (a Analyzer) mutableRead(expr ast.Expr, escaped map[*types.Var]struct{}) bool {
	mutable := false

	ast.Inspect(expr, func(n ast.Node) bool {
		if mutable {
			return false
		}

		switch n := n.(type) {
		case *ast.FuncLit:
			return false

		case *ast.StarExpr:
			mutable = true

		case *ast.SelectorExpr:
			if sel, ok := a.Info.Selections[n]; ok {
				if sel.Kind() == types.FieldVal && sel.Indirect() {
					mutable = true
				}

				return !mutable
			}

			// qualified identifier
			if _, ok := a.Info.Uses[n.Sel].(*types.Var); ok {
				mutable = true
			}

			return false

		case *ast.IndexExpr:
			mutable = a.shared(n.X)

		case *ast.CallExpr:
			// A conversion from a slice reads its backing array.
			if tv, ok := a.Info.Types[n.Fun]; ok && tv.IsType() && len(n.Args) == 1 {
				mutable = a.shared(n.Args[0])
			}

		case *ast.Ident:
			v, ok := a.Info.Uses[n].(*types.Var)
			if !ok {
				break
			}

			if _, esc := escaped[v]; esc || v.Pkg() == nil || v.Parent() == v.Pkg().Scope() {
				mutable = true
			}
		}

		return !mutable
	})

	return mutable
}

// shared reports whether expr has reference semantics.
func (a Analyzer) shared(expr ast.Expr) bool {
	t := a.Info.TypeOf(expr)
	if t == nil {
		return true
	}

	switch t.Underlying().(type) {
	case *types.Slice, *types.Map, *types.Pointer:
		return true

	default:
		return false
	}
}

// escaping returns the local variables of the enclosing function whose address is taken
// or that are referenced from a function literal.
func (a Analyzer) escaping(c inspector.Cursor) map[*types.Var]struct{} {
	fn := c
	for e := range c.Enclosing((*ast.FuncDecl)(nil)) {
		fn = e
	}

	escaped := make(map[*types.Var]struct{})

	for e := range fn.Preorder((*ast.UnaryExpr)(nil), (*ast.SliceExpr)(nil), (*ast.CallExpr)(nil), (*ast.FuncLit)(nil)) {
		switch n := e.Node().(type) {
		case *ast.UnaryExpr:
			if n.Op == token.AND {
				a.markRoot(escaped, n.X)
			}

		case *ast.SliceExpr:
			if t := a.Info.TypeOf(n.X); t != nil {
				if _, ok := t.Underlying().(*types.Array); ok {
					a.markRoot(escaped, n.X)
				}
			}

		case *ast.CallExpr:
			a.markPointerReceiver(escaped, n)

		case *ast.FuncLit:
			a.markCaptured(escaped, n)
		}
	}

	return escaped
}

// markPointerReceiver marks the receiver of a method call taking its address implicitly.
func (a Analyzer) markPointerReceiver(escaped map[*types.Var]struct{}, call *ast.CallExpr) {
	fun, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
	if !ok {
		return
	}

	sel, ok := a.Info.Selections[fun]
	if !ok || sel.Kind() != types.MethodVal {
		return
	}

	sig, ok := sel.Obj().Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return
	}

	if _, ptr := sig.Recv().Type().Underlying().(*types.Pointer); ptr && !sel.Indirect() {
		a.markRoot(escaped, fun.X)
	}
}

func (a Analyzer) markCaptured(escaped map[*types.Var]struct{}, lit *ast.FuncLit) {
	ast.Inspect(lit.Body, func(n ast.Node) bool {
		if id, ok := n.(*ast.Ident); ok {
			if v, ok := a.Info.Uses[id].(*types.Var); ok && (v.Pos() < lit.Pos() || v.Pos() >= lit.End()) {
				escaped[v] = struct{}{}
			}
		}

		return true
	})
}

// markRoot marks the variable whose storage holds the addressed expression.
func (a Analyzer) markRoot(escaped map[*types.Var]struct{}, expr ast.Expr) {
	for {
		switch e := ast.Unparen(expr).(type) {
		case *ast.Ident:
			if v, ok := a.Info.Uses[e].(*types.Var); ok {
				escaped[v] = struct{}{}
			}

			return

		case *ast.SelectorExpr:
			expr = e.X

		case *ast.IndexExpr:
			expr = e.X

		default:
			return
		}
	}
}
