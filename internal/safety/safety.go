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

// Package safety proves that replacing a concatenator chain by a string expression preserves behavior.
package safety

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/builderconcat/internal/astutil"
	"fillmore-labs.com/builderconcat/internal/chain"
	"fillmore-labs.com/builderconcat/internal/model"
	"fillmore-labs.com/builderconcat/internal/scope"
)

// Analyzer checks chains for a single, linear, undisturbed use.
type Analyzer struct {
	Info   *types.Info
	Model  *model.Model
	Scopes scope.Index
}

// Result is the outcome of [Analyzer.Check].
type Result struct {
	// Status is the verdict.
	Status Status

	// Chain is the complete chain: initializer, floating appends and the terminal segment.
	Chain chain.Chain

	// Appends are the expression statements of floating appends, in source order.
	Appends []inspector.Cursor

	// Terminal is the terminal call.
	Terminal inspector.Cursor

	// Stmt is the statement of the declaring block containing the terminal call.
	Stmt inspector.Cursor
}

// Check walks the statements following the declaration of v to the end of the declaring block.
//
// Uses of v must be in the declaring scope, continue into append calls until either a terminal
// call or a floating expression statement, and must not follow a possible side effect.
func (a Analyzer) Check(v chain.Variable) Result {
	w := walker{Analyzer: a, v: v}

	for stmt, ok := v.Decl.NextSibling(); ok && !w.state.Blocked(); stmt, ok = stmt.NextSibling() {
		w.top = stmt
		w.visit(stmt)
	}

	result := Result{
		Status:   w.state.Status(),
		Chain:    v.Init.Extend(w.links, w.terminal),
		Appends:  w.appends,
		Terminal: w.terminalCall,
		Stmt:     w.terminalStmt,
	}

	if result.Status.Replaceable() && !a.OrderSafe(result.Terminal, result.Chain) {
		result.Status = BlockedOrder
	}

	return result
}

type walker struct {
	Analyzer

	v     chain.Variable
	state State
	top   inspector.Cursor

	links        []chain.Link
	appends      []inspector.Cursor
	terminal     *chain.Link
	terminalCall inspector.Cursor
	terminalStmt inspector.Cursor
}

// visit walks the tree post-order, so effects are recorded in evaluation order.
func (w *walker) visit(c inspector.Cursor) {
	n := c.Node()

	if id, ok := n.(*ast.Ident); ok {
		if obj, ok := w.Info.Uses[id]; ok && obj == w.v.Obj {
			w.reference(c)
		}

		return
	}

	for child := range c.Children() {
		w.visit(child)

		if w.state.Blocked() {
			return
		}
	}

	if w.state.TerminalSeen() {
		return // later effects are checked by OrderSafe
	}

	switch n := n.(type) {
	case *ast.CallExpr:
		if w.opaqueCall(n) && !w.inChainArgs(c) {
			w.state.SideEffect()
		}

	case *ast.AssignStmt:
		if n.Tok != token.DEFINE || w.redeclares(n) {
			w.state.SideEffect()
		}

	case *ast.UnaryExpr:
		if n.Op == token.ARROW {
			w.state.SideEffect()
		}

	case *ast.RangeStmt:
		if n.Tok == token.ASSIGN || !w.rangeInert(n.X) {
			w.state.SideEffect()
		}

	case *ast.BranchStmt:
		if n.Tok == token.GOTO {
			w.state.SideEffect()
		}

	case *ast.IncDecStmt, *ast.SendStmt, *ast.GoStmt, *ast.DeferStmt, *ast.LabeledStmt:
		w.state.SideEffect()
	}
}

// reference climbs from a use of the variable through the calls using it as receiver.
func (w *walker) reference(c inspector.Cursor) {
	switch {
	case !w.Scopes.SameTier(w.v.Obj, c.Node().Pos()):
		w.state.Block(BlockedTier)

		return

	case w.state.TerminalSeen():
		w.state.Block(BlockedReuse)

		return
	}

	var links []chain.Link

climb:
	for {
		next, call, ok := chain.ReceiverCall(c)
		if !ok {
			break
		}

		l := chain.Link{Expr: call, Call: w.Model.Classify(w.Info, call)}
		if l.Type != w.v.Type() {
			w.state.Block(BlockedShape)

			return
		}

		switch {
		case l.Kind == model.CallTerminal:
			if w.state.PossibleSideEffect() {
				w.state.Block(BlockedSideEffect)

				return
			}

			w.state.Terminal()
			w.links = append(w.links, links...)
			w.terminal, w.terminalCall, w.terminalStmt = &l, next, w.top

			return

		case l.Kind.Link():
			if w.state.PossibleSideEffect() {
				w.state.Block(BlockedSideEffect)

				return
			}

			links = append(links, l)
			c = next

			if !l.Chainable {
				break climb
			}

		default:
			w.state.Block(BlockedShape)

			return
		}
	}

	// A floating append must be a complete statement of the declaring block.
	if kind, _ := c.ParentEdge(); len(links) == 0 || kind != edge.ExprStmt_X || c.Parent() != w.top {
		w.state.Block(BlockedShape)

		return
	}

	w.links = append(w.links, links...)
	w.appends = append(w.appends, w.top)
}

// inChainArgs reports whether c is nested in the arguments of a chain call on the variable.
func (w *walker) inChainArgs(c inspector.Cursor) bool {
	for p := c; p != w.top; p = p.Parent() {
		if kind, _ := p.ParentEdge(); kind != edge.CallExpr_Args {
			continue
		}

		if call, ok := p.Parent().Node().(*ast.CallExpr); ok && w.rootedAtVariable(call) {
			return true
		}
	}

	return false
}

// rootedAtVariable reports whether the receiver chain of call starts at the variable.
func (w *walker) rootedAtVariable(call *ast.CallExpr) bool {
	var expr ast.Expr = call

	for {
		switch e := ast.Unparen(expr).(type) {
		case *ast.CallExpr:
			sel, ok := ast.Unparen(e.Fun).(*ast.SelectorExpr)
			if !ok {
				return false
			}

			expr = sel.X

		case *ast.Ident:
			return w.Info.Uses[e] == w.v.Obj

		default:
			return false
		}
	}
}

// redeclares reports whether a short variable declaration assigns to an existing variable.
func (w *walker) redeclares(n *ast.AssignStmt) bool {
	for id := range astutil.AssignedIdents(n) {
		if w.Info.Defs[id] == nil {
			return true
		}
	}

	return false
}

// rangeInert reports whether ranging over x neither receives nor calls.
func (w *walker) rangeInert(x ast.Expr) bool {
	t := w.Info.TypeOf(x)
	if t == nil {
		return false
	}

	switch t.Underlying().(type) {
	case *types.Chan, *types.Signature:
		return false

	default:
		return true
	}
}
