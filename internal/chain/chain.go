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

// Package chain recognizes linear construction, append and terminal call sequences on concatenators.
package chain

import (
	"go/ast"
	"go/token"
	"go/types"
	"slices"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/builderconcat/internal/model"
)

// Link is a classified call of a chain.
type Link struct {
	Expr *ast.CallExpr
	model.Call
}

// Anchor returns the position of the method name.
func (l Link) Anchor() token.Pos {
	if sel, ok := ast.Unparen(l.Expr.Fun).(*ast.SelectorExpr); ok {
		return sel.Sel.Pos()
	}

	return l.Expr.Pos()
}

// Chain is the ordered sequence of a construction, its links and the terminal call.
type Chain struct {
	// Construction creates the concatenator.
	Construction model.Construction

	// Links are the append, add and hint calls in evaluation order.
	Links []Link

	// Terminal is the call returning the built string, nil for an initializer.
	Terminal *Link
}

// Type returns the concatenator type of the chain.
func (c Chain) Type() *model.Type {
	return c.Construction.Type
}

// Contributions returns the arguments contributing to the built string, in order.
func (c Chain) Contributions() []model.Arg {
	var args []model.Arg
	if seed := c.Construction.Seed; seed != nil {
		args = append(args, *seed)
	}

	for _, l := range c.Links {
		switch l.Kind {
		case model.CallAppend, model.CallAdd, model.CallAppendRanged:
			args = append(args, l.Args...)
		}
	}

	return args
}

// Extend returns a chain with additional links and a terminal.
func (c Chain) Extend(links []Link, terminal *Link) Chain {
	return Chain{
		Construction: c.Construction,
		Links:        slices.Concat(c.Links, links),
		Terminal:     terminal,
	}
}

// Classifier finds chains in type-checked syntax.
type Classifier struct {
	Info  *types.Info
	Model *model.Model
}

// FromConstruction follows the calls using the construction expression at c as receiver.
// It returns a chain when every call is a chainable link until a terminal call,
// together with the cursor of the terminal call.
func (cl Classifier) FromConstruction(c inspector.Cursor) (Chain, inspector.Cursor, bool) {
	expr, ok := c.Node().(ast.Expr)
	if !ok {
		return Chain{}, c, false
	}

	cons, ok := cl.Model.Construction(cl.Info, expr)
	if !ok {
		return Chain{}, c, false
	}

	ch := Chain{Construction: cons}

	for {
		next, call, ok := ReceiverCall(c)
		if !ok {
			return Chain{}, c, false
		}

		l := Link{Expr: call, Call: cl.Model.Classify(cl.Info, call)}
		if l.Type != cons.Type {
			return Chain{}, c, false
		}

		switch {
		case l.Kind == model.CallTerminal:
			ch.Terminal = &l

			return ch, next, true

		case l.Kind.Link() && l.Chainable:
			ch.Links = append(ch.Links, l)
			c = next

		default:
			return Chain{}, c, false
		}
	}
}

// ReceiverCall returns the call using the expression at c as its receiver.
func ReceiverCall(c inspector.Cursor) (inspector.Cursor, *ast.CallExpr, bool) {
	kind, _ := c.ParentEdge()
	for kind == edge.ParenExpr_X {
		c = c.Parent()
		kind, _ = c.ParentEdge()
	}

	if kind != edge.SelectorExpr_X {
		return c, nil, false
	}

	if kind, _ = c.Parent().ParentEdge(); kind != edge.CallExpr_Fun {
		return c, nil, false
	}

	call := c.Parent().Parent()

	return call, call.Node().(*ast.CallExpr), true
}

// Initializer decomposes an initializer expression into a construction followed by chainable links.
func (cl Classifier) Initializer(expr ast.Expr) (Chain, bool) {
	var links []Link

	for {
		expr = ast.Unparen(expr)
		if cons, ok := cl.Model.Construction(cl.Info, expr); ok {
			slices.Reverse(links)

			for _, l := range links {
				if l.Type != cons.Type {
					return Chain{}, false
				}
			}

			return Chain{Construction: cons, Links: links}, true
		}

		call, ok := expr.(*ast.CallExpr)
		if !ok {
			return Chain{}, false
		}

		l := Link{Expr: call, Call: cl.Model.Classify(cl.Info, call)}
		if !l.Kind.Link() || !l.Chainable {
			return Chain{}, false
		}

		links = append(links, l)
		expr = ast.Unparen(call.Fun).(*ast.SelectorExpr).X
	}
}
