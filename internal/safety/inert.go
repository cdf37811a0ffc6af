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

	"fillmore-labs.com/builderconcat/internal/model"
)

// inertBuiltins are the builtin functions without side effects.
var inertBuiltins = map[string]struct{}{
	"cap":     {},
	"complex": {},
	"imag":    {},
	"len":     {},
	"make":    {},
	"max":     {},
	"min":     {},
	"new":     {},
	"real":    {},
}

// opaqueCall reports whether a call could observe or mutate state.
//
// Conversions, inert builtins, methods of concatenator types and their
// constructors are not considered opaque.
func (a Analyzer) opaqueCall(call *ast.CallExpr) bool {
	if tv, ok := a.Info.Types[call.Fun]; ok && tv.IsType() {
		return false // conversion
	}

	switch obj := model.Callee(a.Info, call.Fun).(type) {
	case *types.Builtin:
		_, inert := inertBuiltins[obj.Name()]

		return !inert

	case *types.Func:
		sig, ok := obj.Type().(*types.Signature)
		if !ok {
			return true
		}

		if recv := sig.Recv(); recv != nil {
			_, concatenator := a.Model.Lookup(recv.Type())

			return !concatenator
		}

		_, constructor := a.Model.Construction(a.Info, call)

		return !constructor
	}

	return true
}

// inertExpr reports whether evaluating expr has no side effects.
func (a Analyzer) inertExpr(expr ast.Expr) bool {
	if tv, ok := a.Info.Types[expr]; ok && tv.Value != nil {
		return true
	}

	inert := true

	ast.Inspect(expr, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.CallExpr:
			if a.opaqueCall(n) {
				inert = false
			}

		case *ast.UnaryExpr:
			if n.Op == token.ARROW {
				inert = false
			}

		case *ast.FuncLit:
			return false // not evaluated
		}

		return inert
	})

	return inert
}
