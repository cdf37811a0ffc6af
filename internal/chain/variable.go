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

package chain

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/builderconcat/internal/model"
)

// Variable is a concatenator variable declared directly in a statement list.
type Variable struct {
	// Decl is the declaring statement.
	Decl inspector.Cursor

	// Name is the declared identifier.
	Name *ast.Ident

	// Obj is the declared variable.
	Obj *types.Var

	// Init is the construction and the links of the initializer, without terminal.
	Init Chain
}

// Type returns the concatenator type of the variable.
func (v Variable) Type() *model.Type {
	return v.Init.Type()
}

// FromVariable recognizes a single-variable declaration of a concatenator type
// whose initializer is a construction, possibly followed by chainable appends.
// A declaration without initializer constructs the zero value when the type permits.
func (cl Classifier) FromVariable(c inspector.Cursor) (Variable, bool) {
	switch kind, _ := c.ParentEdge(); kind {
	case edge.BlockStmt_List, edge.CaseClause_Body, edge.CommClause_Body:

	default:
		return Variable{}, false
	}

	var (
		name *ast.Ident
		init ast.Expr
	)

	switch n := c.Node().(type) {
	case *ast.DeclStmt:
		decl, ok := n.Decl.(*ast.GenDecl)
		if !ok || decl.Tok != token.VAR || len(decl.Specs) != 1 {
			return Variable{}, false
		}

		spec, ok := decl.Specs[0].(*ast.ValueSpec)
		if !ok || len(spec.Names) != 1 || len(spec.Values) > 1 {
			return Variable{}, false
		}

		name = spec.Names[0]
		if len(spec.Values) == 1 {
			init = spec.Values[0]
		}

	case *ast.AssignStmt:
		if n.Tok != token.DEFINE || len(n.Lhs) != 1 || len(n.Rhs) != 1 {
			return Variable{}, false
		}

		id, ok := n.Lhs[0].(*ast.Ident)
		if !ok {
			return Variable{}, false
		}

		name, init = id, n.Rhs[0]

	default:
		return Variable{}, false
	}

	if name.Name == "_" {
		return Variable{}, false
	}

	obj, ok := cl.Info.Defs[name].(*types.Var)
	if !ok { // not a new variable
		return Variable{}, false
	}

	ct, ok := cl.Model.Lookup(obj.Type())
	if !ok {
		return Variable{}, false
	}

	v := Variable{Decl: c, Name: name, Obj: obj}

	if init == nil {
		if !ct.ZeroValue || model.IsPointer(obj.Type()) {
			return Variable{}, false
		}

		v.Init = Chain{Construction: model.Construction{Type: ct}}

		return v, true
	}

	ch, ok := cl.Initializer(init)
	if !ok || ch.Type() != ct {
		return Variable{}, false
	}

	v.Init = ch

	return v, true
}
