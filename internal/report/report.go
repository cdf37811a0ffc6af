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

// Package report emits diagnostics with suggested fixes for replaceable concatenator chains.
package report

import (
	"context"
	"fmt"
	"go/ast"
	"go/types"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/builderconcat/internal/astutil"
	"fillmore-labs.com/builderconcat/internal/chain"
	"fillmore-labs.com/builderconcat/internal/config"
)

// Candidate is a chain proven replaceable.
type Candidate struct {
	// Chain is the complete chain.
	Chain chain.Chain

	// Name is the declared concatenator variable, nil for a free-standing chain.
	Name *ast.Ident

	// Decl is the declaration statement, or the construction expression of a free-standing chain.
	Decl inspector.Cursor

	// Appends are the floating append statements.
	Appends []inspector.Cursor

	// Terminal is the terminal call.
	Terminal inspector.Cursor

	// Stmt is the statement containing the terminal call.
	Stmt inspector.Cursor
}

// Free reports whether the candidate is a free-standing chain expression.
func (c Candidate) Free() bool {
	return c.Name == nil
}

// ProcessDiagnostics reports replaceable chains of a function.
//
// This is the final phase of the analyzer pipeline. For each candidate a diagnostic
// naming the concatenator type is created, together with a suggested fix replacing the chain
// by a string expression when the rewrite can be planned.
func ProcessDiagnostics(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile, candidates []Candidate, option config.BitMask[config.Behavior]) {
	if len(candidates) == 0 {
		return
	}

	defer trace.StartRegion(ctx, "Report").End()

	e := executor{
		Pass:        p,
		CurrentFile: currentFile,
		explicitVar: option.Enabled(config.ExplicitVar),
	}

	for _, c := range candidates {
		diagnostic := createDiagnostic(p, c)

		edits, err := e.edits(c)
		switch {
		case err != nil:
			trace.Logf(ctx, "abort", "%s: %v", p.Fset.Position(diagnostic.Pos), err)

			continue

		case len(edits) > 0:
			diagnostic.SuggestedFixes = []analysis.SuggestedFix{{
				Message:   fmt.Sprintf("Replace %s with string concatenation", typeName(p, c)),
				TextEdits: edits,
			}}
		}

		p.Report(diagnostic)
	}
}

// createDiagnostic constructs the diagnostic message and related information.
func createDiagnostic(p *analysis.Pass, c Candidate) analysis.Diagnostic {
	tn := typeName(p, c)

	if c.Free() {
		call := c.Terminal.Node()

		return analysis.Diagnostic{
			Pos:     call.Pos(),
			End:     call.End(),
			Message: fmt.Sprintf("Construction of %s can be replaced with a string expression (bc:new)", tn),
		}
	}

	decl, call := c.Decl.Node(), c.Terminal.Node()

	return analysis.Diagnostic{
		Pos:     decl.Pos(),
		End:     decl.End(),
		Message: fmt.Sprintf("Variable '%s' of type %s can be replaced with a string expression (bc:var)", c.Name.Name, tn),
		Related: []analysis.RelatedInformation{{Pos: call.Pos(), End: call.End(), Message: "String built here"}},
	}
}

// typeName returns the detected concatenator type, qualified by package name.
func typeName(p *analysis.Pass, c Candidate) string {
	var t types.Type
	if c.Free() {
		t = p.TypesInfo.TypeOf(c.Chain.Construction.Expr)
	} else {
		t = p.TypesInfo.TypeOf(c.Name)
	}

	if t == nil {
		return c.Chain.Type().Name
	}

	return types.TypeString(t, func(pkg *types.Package) string {
		if pkg == p.Pkg {
			return ""
		}

		return pkg.Name()
	})
}
