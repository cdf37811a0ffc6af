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

package synth_test

import (
	"go/ast"
	"go/types"
	"slices"
	"testing"

	"fillmore-labs.com/builderconcat/internal/astutil"
	"fillmore-labs.com/builderconcat/internal/chain"
	"fillmore-labs.com/builderconcat/internal/model"
	. "fillmore-labs.com/builderconcat/internal/synth"
	"fillmore-labs.com/builderconcat/internal/testsource"
	"fillmore-labs.com/builderconcat/internal/trivia"
)

const params = `s, t := "s", "t"; var c byte = 'c'; var r rune = 'r'; p := []byte("p")
_, _, _, _, _ = s, t, c, r, p
`

func TestRender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		want     string
		operands int
		leading  []string
		trailing []string
	}{
		{"empty", `var b strings.Builder; _ = b.String()`, `""`, 1, nil, nil},
		{"single", `var b strings.Builder; b.WriteString("a"); _ = b.String()`, `"a"`, 1, nil, nil},
		{"two", `var b strings.Builder; b.WriteString("a"); b.WriteString(s); _ = b.String()`, `"a" + s`, 2, nil, nil},
		{"byte_const", `var b strings.Builder; b.WriteByte('a'); _ = b.String()`, `"a"`, 1, nil, nil},
		{"byte_var", `var b strings.Builder; b.WriteByte(c); _ = b.String()`, `string([]byte{c})`, 1, nil, nil},
		{"rune_const", `var b strings.Builder; b.WriteRune('€'); _ = b.String()`, `"€"`, 1, nil, nil},
		{"rune_var", `var b strings.Builder; b.WriteRune(r); _ = b.String()`, `string(r)`, 1, nil, nil},
		{"bytes", `var b strings.Builder; b.Write(p); _ = b.String()`, `string(p)`, 1, nil, nil},
		{"bytes_nil", `var b strings.Builder; b.Write(nil); _ = b.String()`, `""`, 1, nil, nil},
		{"hint", `var b strings.Builder; b.Grow(10); b.WriteString(s); _ = b.String()`, `s`, 1, nil, nil},
		{"seed", `b := bytes.NewBufferString("a"); b.WriteString(s); _ = b.String()`, `"a" + s`, 2, nil, nil},
		{"sum", `var b strings.Builder; b.WriteString(s); b.WriteString(s + t); _ = b.String()`, `s + s + t`, 2, nil, nil},
		{
			"inline_comments",
			"var b strings.Builder\nb.WriteString(\"a\") // first\n// second\nb.WriteString(s)\n_ = b.String()",
			"\"a\" + // first\n// second\ns", 2, nil, nil,
		},
		{
			"block_comment",
			"var b strings.Builder\nb.WriteString(\"a\"); /* note */ b.WriteString(s)\n_ = b.String()",
			"\"a\" + /* note */ s", 2, nil, nil,
		},
		{
			"leading",
			"var b strings.Builder\n// lead\nb.WriteString(\"a\")\n_ = b.String()",
			`"a"`, 1, []string{"// lead"}, nil,
		},
		{
			"trailing",
			"var b strings.Builder\nb.WriteString(\"a\") // tail\n_ = b.String()",
			`"a"`, 1, nil, []string{"// tail"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := testsource.Parse(t, "_, _ = bytes.MinRead, strings.Compare\n"+params+tt.src, "bytes", "strings")
			_, info := testsource.Check(t, src)

			ch := buildChain(t, src, info)

			file := astutil.NewCurrentFileContent(src.TokenFile(), src.File, src.Content)
			comments := file.Comments(src.Func.Body.Pos(), src.Func.Body.End())

			s := Synthesizer{
				Info:   info,
				Source: file.NodeText,
				Trivia: trivia.New(src.TokenFile(), comments...),
			}

			got, err := s.Render(ch)
			if err != nil {
				t.Fatalf("Render() failed: %v", err)
			}

			if got.Text != tt.want {
				t.Errorf("Render() = %q, want %q", got.Text, tt.want)
			}

			if got.Operands != tt.operands {
				t.Errorf("Render() operands = %d, want %d", got.Operands, tt.operands)
			}

			if len(got.Leading)+len(tt.leading) > 0 && !slices.Equal(got.Leading, tt.leading) {
				t.Errorf("Render() leading = %q, want %q", got.Leading, tt.leading)
			}

			if len(got.Trailing)+len(tt.trailing) > 0 && !slices.Equal(got.Trailing, tt.trailing) {
				t.Errorf("Render() trailing = %q, want %q", got.Trailing, tt.trailing)
			}
		})
	}
}

func TestRenderNoTrivia(t *testing.T) {
	t.Parallel()

	src := testsource.Parse(t, params+`var b strings.Builder
b.WriteString("a") // dropped
b.WriteString(s)
_ = b.String()`, "strings")
	_, info := testsource.Check(t, src)

	ch := buildChain(t, src, info)
	file := astutil.NewCurrentFileContent(src.TokenFile(), src.File, src.Content)

	got, err := Synthesizer{Info: info, Source: file.NodeText, Trivia: NoTrivia{}}.Render(ch)
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	if want := `"a" + s`; got.Text != want || got.MultiLine() {
		t.Errorf("Render() = %q, want %q", got.Text, want)
	}
}

// buildChain collects the concatenator variable, the statement level calls and the terminal.
func buildChain(tb testing.TB, src testsource.Source, info *types.Info) chain.Chain {
	tb.Helper()

	m, err := model.New()
	if err != nil {
		tb.Fatalf("model.New() failed: %v", err)
	}

	cl := chain.Classifier{Info: info, Model: m}

	var (
		v        chain.Variable
		found    bool
		links    []chain.Link
		terminal *chain.Link
	)

	for c := range src.Body.Children() {
		if !found {
			v, found = cl.FromVariable(c)

			continue
		}

		var call *ast.CallExpr
		switch n := c.Node().(type) {
		case *ast.ExprStmt:
			call, _ = n.X.(*ast.CallExpr)

		case *ast.AssignStmt:
			call, _ = n.Rhs[0].(*ast.CallExpr)
		}

		if call == nil {
			continue
		}

		l := chain.Link{Expr: call, Call: m.Classify(info, call)}
		switch {
		case l.Kind == model.CallTerminal:
			terminal = &l

		case l.Kind.Link():
			links = append(links, l)
		}
	}

	if !found || terminal == nil {
		tb.Fatal("Can't find chain")
	}

	return v.Init.Extend(links, terminal)
}

func TestRenderRanged(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		call string
		want string
	}{
		{"zero", `f(p, 0, 1)`, `string(p[:1])`},
		{"offset", `f(p, i, m)`, `string(p[i:][:m])`},
		{"sum", `f(p, i+1, m)`, `string(p[i+1:][:m])`},
		{"call", `f(p, len(s), 2)`, `string(p[len(s):][:2])`},
		{"slice_expr", `f(p[1:], i, m)`, `string(p[1:][i:][:m])`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := testsource.Parse(t, params+`i, m := 1, int32(2); f := func([]byte, int, int32) {}
_, _ = i, m
`+tt.call)
			_, info := testsource.Check(t, src)

			c := src.Find(t, func(n ast.Node) bool {
				call, ok := n.(*ast.CallExpr)
				if !ok {
					return false
				}

				id, ok := call.Fun.(*ast.Ident)

				return ok && id.Name == "f"
			})
			call := c.Node().(*ast.CallExpr)

			ch := chain.Chain{Links: []chain.Link{{
				Expr: call,
				Call: model.Call{
					Kind: model.CallAppendRanged,
					Args: []model.Arg{
						{Expr: call.Args[0], Kind: model.ArgBytes},
						{Expr: call.Args[1], Kind: model.ArgInt},
						{Expr: call.Args[2], Kind: model.ArgInt},
					},
				},
			}}}

			file := astutil.NewCurrentFileContent(src.TokenFile(), src.File, src.Content)

			got, err := Synthesizer{Info: info, Source: file.NodeText, Trivia: NoTrivia{}}.Render(ch)
			if err != nil {
				t.Fatalf("Render() failed: %v", err)
			}

			if got.Text != tt.want || got.Operands != 1 {
				t.Errorf("Render() = %q (%d operands), want %q", got.Text, got.Operands, tt.want)
			}
		})
	}
}
