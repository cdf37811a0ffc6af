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

package run

import (
	"context"
	"go/ast"
	"go/token"
	"runtime/trace"

	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/builderconcat/internal/astutil"
	"fillmore-labs.com/builderconcat/internal/chain"
	"fillmore-labs.com/builderconcat/internal/report"
	"fillmore-labs.com/builderconcat/internal/safety"
)

// stages holds the classification and safety stages of a pass.
type stages struct {
	classifier chain.Classifier
	safety     safety.Analyzer
}

// claim is a source range edited by the fix of an accepted candidate.
type claim struct{ pos, end token.Pos }

func (c claim) overlaps(o claim) bool { return c.pos < o.end && o.pos < c.end }

// collect finds replaceable chains in a function body.
//
// Candidates overlapping the edited ranges of an already accepted candidate are
// skipped, so that suggested fixes never overlap.
func (s stages) collect(ctx context.Context, currentFile astutil.CurrentFile, body inspector.Cursor) []report.Candidate {
	defer trace.StartRegion(ctx, "Collect").End()

	var (
		candidates []report.Candidate
		claims     []claim
	)

	types := []ast.Node{
		(*ast.DeclStmt)(nil),
		(*ast.AssignStmt)(nil),
		(*ast.CallExpr)(nil),
		(*ast.UnaryExpr)(nil),
		(*ast.CompositeLit)(nil),
	}

	for c := range body.Preorder(types...) {
		if claimed(claims, c.Node().Pos()) {
			continue
		}

		var (
			candidate report.Candidate
			ok        bool
		)

		switch c.Node().(type) {
		case *ast.DeclStmt, *ast.AssignStmt:
			candidate, ok = s.variable(ctx, c)

		default:
			candidate, ok = s.expression(ctx, c)
		}

		if !ok {
			continue
		}

		edited := editedRanges(candidate)
		if overlapping(claims, edited) {
			continue
		}

		claims = append(claims, edited...)

		if currentFile.NoLintComment(candidate.Decl.Node().Pos()) {
			continue
		}

		candidates = append(candidates, candidate)
	}

	return candidates
}

// variable checks a concatenator variable declaration.
func (s stages) variable(ctx context.Context, c inspector.Cursor) (report.Candidate, bool) {
	v, ok := s.classifier.FromVariable(c)
	if !ok {
		return report.Candidate{}, false
	}

	result := s.safety.Check(v)
	if !result.Status.Replaceable() {
		trace.Logf(ctx, "blocked", "%s: %s", v.Name.Name, result.Status)

		return report.Candidate{}, false
	}

	return report.Candidate{
		Chain:    result.Chain,
		Name:     v.Name,
		Decl:     v.Decl,
		Appends:  result.Appends,
		Terminal: result.Terminal,
		Stmt:     result.Stmt,
	}, true
}

// expression checks a free-standing construction chain.
func (s stages) expression(ctx context.Context, c inspector.Cursor) (report.Candidate, bool) {
	ch, call, ok := s.classifier.FromConstruction(c)
	if !ok {
		return report.Candidate{}, false
	}

	if !s.safety.OrderSafe(call, ch) {
		trace.Logf(ctx, "blocked", "expression: %s", safety.BlockedOrder)

		return report.Candidate{}, false
	}

	stmt, ok := enclosingStmt(call)
	if !ok {
		return report.Candidate{}, false
	}

	return report.Candidate{Chain: ch, Decl: c, Terminal: call, Stmt: stmt}, true
}

// enclosingStmt returns the statement of a statement list containing the node at c.
func enclosingStmt(c inspector.Cursor) (inspector.Cursor, bool) {
	for {
		switch kind, _ := c.ParentEdge(); kind {
		case edge.BlockStmt_List, edge.CaseClause_Body, edge.CommClause_Body:
			return c, true

		case edge.Invalid, edge.File_Decls:
			return c, false
		}

		c = c.Parent()
	}
}

// editedRanges returns the ranges a candidate's fix deletes, replaces or inserts into.
func editedRanges(c report.Candidate) []claim {
	ranges := make([]claim, 0, 2+len(c.Appends))

	if !c.Free() {
		ranges = append(ranges, claim{c.Decl.Node().Pos(), c.Decl.Node().End()})
		for _, a := range c.Appends {
			ranges = append(ranges, claim{a.Node().Pos(), a.Node().End()})
		}
	}

	return append(ranges, claim{c.Stmt.Node().Pos(), c.Stmt.Node().End()})
}

func overlapping(claims, ranges []claim) bool {
	for _, r := range ranges {
		for _, cl := range claims {
			if cl.overlaps(r) {
				return true
			}
		}
	}

	return false
}

func claimed(claims []claim, pos token.Pos) bool {
	for _, cl := range claims {
		if cl.pos <= pos && pos < cl.end {
			return true
		}
	}

	return false
}
