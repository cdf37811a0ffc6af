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

// Package scope maps lexical scopes to syntax and decides whether uses share the declaration's scope.
package scope

import (
	"go/ast"
	"go/token"
	"go/types"
)

// Index maps scopes to their corresponding AST nodes.
type Index map[*types.Scope]ast.Node

// NewIndex creates a scope index from the type checker's scope map.
func NewIndex(info *types.Info) Index {
	s := make(Index, len(info.Scopes))
	for node, scope := range info.Scopes {
		s[scope] = node
	}

	return s
}

// Innermost finds the innermost scope containing a use, with special handling
// for case/select expressions.
//
// For most positions, this returns the innermost scope from the type checker. However,
// when a variable is used in a case or select expression (between "case" and ":" tokens),
// it adjusts the scope to the parent, since the expression is evaluated outside the clause body.
func (s Index) Innermost(declScope *types.Scope, pos token.Pos) *types.Scope {
	usageScope := declScope.Innermost(pos)
	switch usageScope {
	case declScope, nil:
		return usageScope
	}

	switch n := s[usageScope].(type) {
	case *ast.CaseClause:
		if pos < n.Colon {
			usageScope = usageScope.Parent()
		}

	case *ast.CommClause:
		if pos < n.Colon {
			usageScope = usageScope.Parent()
		}
	}

	return usageScope
}

// SameTier reports whether a use of v at pos lies in the scope declaring v,
// not in a nested block, branch, loop or function literal.
func (s Index) SameTier(v *types.Var, pos token.Pos) bool {
	declScope := v.Parent()
	if declScope == nil {
		return false
	}

	return s.Innermost(declScope, pos) == declScope
}
