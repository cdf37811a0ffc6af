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

package report

import (
	"errors"
	"go/ast"
	"go/token"
	"go/types"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/ast/edge"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/builderconcat/internal/astutil"
	"fillmore-labs.com/builderconcat/internal/model"
	"fillmore-labs.com/builderconcat/internal/synth"
	"fillmore-labs.com/builderconcat/internal/trivia"
)

// ErrUnexpectedShape is returned when the source around a chain can't be rewritten.
var ErrUnexpectedShape = errors.New("unexpected source shape")

// executor plans the text edits of a suggested fix.
type executor struct {
	*analysis.Pass
	astutil.CurrentFile

	explicitVar bool
}

// span is a source range removed by a fix.
type span struct{ pos, end token.Pos }

func (s span) contains(pos token.Pos) bool { return s.pos <= pos && pos < s.end }

// edits creates the text edits replacing a chain with the synthesized string expression.
//
// A declared variable is removed together with its floating appends, and the terminal call is
// replaced. Multi-line expressions not initializing a new variable are materialized
// as a variable declaration before the statement containing the terminal call.
func (e executor) edits(c Candidate) ([]analysis.TextEdit, error) {
	call, ok := c.Terminal.Node().(*ast.CallExpr)
	if !ok || c.Stmt.Inspector() == nil {
		return nil, ErrUnexpectedShape
	}

	var removed []span
	if !c.Free() {
		removed = e.removals(c.Decl, c.Appends)
	}

	stmt := c.Stmt.Node()
	indent := e.Indent(stmt.Pos())

	r := trivia.New(e.Handle())
	r.Indent(indent + "\t")

	for _, s := range removed {
		r.Add(e.Comments(s.pos, s.end)...)
	}

	r.Add(e.Comments(call.Pos(), call.End())...)

	syn := synth.Synthesizer{Info: e.TypesInfo, Source: e.NodeText, Trivia: r}

	expr, err := syn.Render(c.Chain)
	if err != nil {
		return nil, err
	}

	edits := make([]analysis.TextEdit, 0, len(removed)+4)
	for _, s := range removed {
		edits = append(edits, analysis.TextEdit{Pos: s.pos, End: s.end})
	}

	var before strings.Builder
	for _, comment := range expr.Leading {
		before.WriteString(comment)       // ignore error
		before.WriteString("\n" + indent) // ignore error
	}

	replacement := expr.Text

	switch {
	case !c.Free() && expr.MultiLine() && !soleInitializer(stmt, call):
		name := c.Name.Name
		if e.explicitVar {
			before.WriteString("var " + name + " = ") // ignore error
		} else {
			before.WriteString(name + " := ") // ignore error
		}

		before.WriteString(expr.Text)     // ignore error
		before.WriteString("\n" + indent) // ignore error

		replacement = name

	case NeedParens(c.Terminal, expr.Operands), compositeLitHazard(c):
		replacement = "(" + expr.Text + ")"
	}

	if before.Len() > 0 {
		edits = append(edits, analysis.TextEdit{Pos: stmt.Pos(), NewText: []byte(before.String())})
	}

	edits = append(edits, analysis.TextEdit{Pos: call.Pos(), End: call.End(), NewText: []byte(replacement)})

	if len(expr.Trailing) > 0 {
		var after strings.Builder
		for _, comment := range expr.Trailing {
			after.WriteString("\n" + indent + comment) // ignore error
		}

		edits = append(edits, analysis.TextEdit{Pos: e.LineEnd(stmt.End()), NewText: []byte(after.String())})
	}

	if edit, ok := e.removeImport(c, append(removed, span{call.Pos(), call.End()})); ok {
		edits = append(edits, edit)
	}

	return edits, nil
}

// removals returns the source ranges of the declaration and the floating append statements.
// Adjacent ranges separated only by comments and white space are merged.
func (e executor) removals(decl inspector.Cursor, appends []inspector.Cursor) []span {
	spans := make([]span, 0, 1+len(appends))

	spans = append(spans, e.removal(decl.Node()))
	for _, a := range appends {
		spans = append(spans, e.removal(a.Node()))
	}

	merged := spans[:1]
	for _, s := range spans[1:] {
		if last := &merged[len(merged)-1]; e.onlyComments(last.end, s.pos) {
			last.end = s.end

			continue
		}

		merged = append(merged, s)
	}

	return merged
}

// removal returns the range to delete for a node.
//
// A node alone on its lines is removed with its lines, including a trailing comment.
// Otherwise only the node and a following semicolon are removed.
func (e executor) removal(n ast.Node) span {
	pos, end := n.Pos(), n.End()

	if start := e.LineStart(pos); e.Blank(start, pos) {
		if lineEnd := e.LineEnd(end); e.onlyComments(end, lineEnd) {
			return span{start, e.nextLine(lineEnd)}
		}
	}

	rest := e.Text(end, e.LineEnd(end))
	if trimmed := strings.TrimLeft(rest, " \t"); strings.HasPrefix(trimmed, ";") {
		skip := len(rest) - len(strings.TrimLeft(trimmed[1:], " \t"))
		end += token.Pos(skip)
	}

	return span{pos, end}
}

// nextLine returns the start of the line following the newline at lineEnd.
func (e executor) nextLine(lineEnd token.Pos) token.Pos {
	if eof := token.Pos(e.Handle().Base() + e.Handle().Size()); lineEnd >= eof {
		return eof
	}

	return lineEnd + 1
}

// onlyComments reports whether the source text between two positions consists of comments and white space.
func (e executor) onlyComments(pos, end token.Pos) bool {
	if end < pos {
		return false
	}

	for _, comment := range e.Comments(pos, end) {
		if !e.Blank(pos, comment.Pos()) {
			return false
		}

		pos = comment.End()
	}

	return e.Blank(pos, end)
}

// soleInitializer reports whether call is the only initializer of a new variable declared by stmt.
func soleInitializer(stmt ast.Node, call *ast.CallExpr) bool {
	switch s := stmt.(type) {
	case *ast.AssignStmt:
		return s.Tok == token.DEFINE && len(s.Lhs) == 1 && len(s.Rhs) == 1 && ast.Unparen(s.Rhs[0]) == call

	case *ast.DeclStmt:
		decl, ok := s.Decl.(*ast.GenDecl)
		if !ok || decl.Tok != token.VAR || len(decl.Specs) != 1 {
			return false
		}

		vspec, ok := decl.Specs[0].(*ast.ValueSpec)

		return ok && len(vspec.Names) == 1 && len(vspec.Values) == 1 && ast.Unparen(vspec.Values[0]) == call
	}

	return false
}

// NeedParens reports whether an expression of the given number of additive operands
// replacing the node at c must be parenthesized.
func NeedParens(c inspector.Cursor, operands int) bool {
	if operands < 2 {
		return false
	}

	additive := token.ADD.Precedence()

	switch kind, _ := c.ParentEdge(); kind {
	case edge.UnaryExpr_X, edge.StarExpr_X, edge.SelectorExpr_X, edge.CallExpr_Fun,
		edge.IndexExpr_X, edge.IndexListExpr_X, edge.SliceExpr_X, edge.TypeAssertExpr_X:
		return true

	case edge.BinaryExpr_X:
		return c.Parent().Node().(*ast.BinaryExpr).Op.Precedence() > additive

	case edge.BinaryExpr_Y:
		return c.Parent().Node().(*ast.BinaryExpr).Op.Precedence() >= additive
	}

	return false
}

// compositeLitHazard reports whether a spliced operand would put a composite literal
// into the header of an "if", "for" or "switch" statement without delimiters.
func compositeLitHazard(c Candidate) bool {
	if !inHeader(c.Terminal) {
		return false
	}

	root := c.Terminal.Inspector().Root()

	for _, arg := range c.Chain.Contributions() {
		if arg.Kind != model.ArgString {
			continue // rendered inside a conversion
		}

		if ac, ok := root.FindByPos(arg.Expr.Pos(), arg.Expr.End()); ok && NeedParent(ac) {
			return true
		}
	}

	return false
}

// inHeader reports whether the node at c is an undelimited part of a control clause.
func inHeader(c inspector.Cursor) bool {
	for {
		switch kind, _ := c.ParentEdge(); kind {
		case edge.IfStmt_Init, edge.IfStmt_Cond,
			edge.ForStmt_Init, edge.ForStmt_Cond, edge.ForStmt_Post,
			edge.SwitchStmt_Init, edge.SwitchStmt_Tag,
			edge.TypeSwitchStmt_Init, edge.RangeStmt_X:
			return true

		case edge.Invalid,
			edge.ParenExpr_X, edge.CallExpr_Args, edge.IndexExpr_Index, edge.IndexListExpr_Indices,
			edge.SliceExpr_Low, edge.SliceExpr_High, edge.SliceExpr_Max,
			edge.CompositeLit_Elts, edge.KeyValueExpr_Value,
			edge.BlockStmt_List, edge.CaseClause_Body, edge.CommClause_Body:
			return false
		}

		c = c.Parent()
	}
}

// NeedParent detects whether an expression contains composite literals that need parenthesization:
//
//	A parsing ambiguity arises when a composite literal [...] appears as an operand between the keyword and the opening brace of the block of an "if", "for", or "switch" statement, ...
//
// See [composite literals].
//
// [composite literals]: https://go.dev/ref/spec#Composite_literals
func NeedParent(e inspector.Cursor) bool {
	// A composite literal at the root has no enclosing delimiters.
	if _, ok := e.Node().(*ast.CompositeLit); ok {
		return true
	}

compLits:
	for c := range e.Preorder((*ast.CompositeLit)(nil)) {
		for p := c; p.Index() != e.Index(); p = p.Parent() {
			switch kind, _ := p.ParentEdge(); kind {
			case edge.ParenExpr_X,
				edge.BlockStmt_List, edge.CallExpr_Args, edge.IndexExpr_Index,
				edge.SliceExpr_Low, edge.SliceExpr_High, edge.SliceExpr_Max,
				edge.CompositeLit_Elts, edge.KeyValueExpr_Value:
				continue compLits
			}
		}

		return true
	}

	return false
}

// removeImport deletes the import of the concatenator's package when every reference
// to it lies in the edited ranges.
func (e executor) removeImport(c Candidate, edited []span) (analysis.TextEdit, bool) {
	path := c.Chain.Type().Path()
	file := e.File()

	for _, spec := range file.Imports {
		if p, err := strconv.Unquote(spec.Path.Value); err != nil || p != path {
			continue
		}

		if spec.Name != nil && (spec.Name.Name == "_" || spec.Name.Name == ".") {
			return analysis.TextEdit{}, false
		}

		pkgName := e.TypesInfo.PkgNameOf(spec)
		if pkgName == nil || !e.onlyEdited(c, pkgName, edited) {
			return analysis.TextEdit{}, false
		}

		var target ast.Node = spec
		if decl := importDecl(file, spec); decl != nil && len(decl.Specs) == 1 {
			target = decl
		}

		s := e.removal(target)

		return analysis.TextEdit{Pos: s.pos, End: s.end}, true
	}

	return analysis.TextEdit{}, false
}

// onlyEdited reports whether obj is referenced in the file and all references are inside the edited ranges.
// Arguments are carried over into the replacement, so references inside them are kept.
func (e executor) onlyEdited(c Candidate, obj *types.PkgName, edited []span) bool {
	var kept []span
	for _, arg := range c.Chain.Contributions() {
		kept = append(kept, span{arg.Expr.Pos(), arg.Expr.End()})
	}

	found := false

	for file := range c.Terminal.Enclosing((*ast.File)(nil)) {
		for i := range file.Preorder((*ast.Ident)(nil)) {
			id := i.Node().(*ast.Ident)
			if e.TypesInfo.Uses[id] != obj {
				continue
			}

			inside := func(s span) bool { return s.contains(id.Pos()) }
			if !slices.ContainsFunc(edited, inside) || slices.ContainsFunc(kept, inside) {
				return false
			}

			found = true
		}
	}

	return found
}

// importDecl returns the import declaration containing spec.
func importDecl(file *ast.File, spec *ast.ImportSpec) *ast.GenDecl {
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.IMPORT {
			continue
		}

		if slices.Contains(gen.Specs, ast.Spec(spec)) {
			return gen
		}
	}

	return nil
}
